package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/aplamondon/go-restomenu/app/helpers"
	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/aplamondon/go-restomenu/app/storage"
	"github.com/aplamondon/go-restomenu/app/utils/names"
	"github.com/aplamondon/go-restomenu/app/utils/renderer"
	"github.com/aplamondon/go-restomenu/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the handler tests. They keep the real
// repositories' contract: folded names in storage, display names out,
// nil result for a missing row.

type fakeOptionRepo struct {
	nextID uint
	items  map[uint]*models.Option
}

func (f *fakeOptionRepo) Create(_ context.Context, option *models.Option) error {
	option.ID = f.nextID
	f.nextID++
	stored := *option
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	option.NameEN = names.Display(stored.NameEN)
	option.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeOptionRepo) GetByID(_ context.Context, id uint) (*models.Option, error) {
	stored, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *stored
	out.NameEN = names.Display(out.NameEN)
	out.NameFR = names.Display(out.NameFR)
	return &out, nil
}

func (f *fakeOptionRepo) GetByIDWithCategories(ctx context.Context, id uint) (*models.Option, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOptionRepo) GetAll(ctx context.Context) ([]models.Option, error) {
	var out []models.Option
	for id := range f.items {
		o, _ := f.GetByID(ctx, id)
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOptionRepo) GetAllWithCategories(ctx context.Context) ([]models.Option, error) {
	return f.GetAll(ctx)
}

func (f *fakeOptionRepo) FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Option, error) {
	if foldedEN := names.Fold(nameEN); foldedEN != "" {
		for id, stored := range f.items {
			if stored.NameEN == foldedEN {
				return f.GetByID(ctx, id)
			}
		}
	}
	if foldedFR := names.Fold(nameFR); foldedFR != "" {
		for id, stored := range f.items {
			if stored.NameFR == foldedFR {
				return f.GetByID(ctx, id)
			}
		}
	}
	return nil, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, option *models.Option) error {
	stored := *option
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	option.NameEN = names.Display(stored.NameEN)
	option.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeOptionRepo) Delete(_ context.Context, id uint) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOptionRepo) ClearThumbnail(_ context.Context, id uint) error {
	if stored, ok := f.items[id]; ok {
		stored.Thumbnail = ""
	}
	return nil
}

type fakeCategoryRepo struct {
	nextID uint
	items  map[uint]*models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = f.nextID
	f.nextID++
	stored := *category
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	category.NameEN = names.Display(stored.NameEN)
	category.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*models.Category, error) {
	stored, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *stored
	out.NameEN = names.Display(out.NameEN)
	out.NameFR = names.Display(out.NameFR)
	return &out, nil
}

func (f *fakeCategoryRepo) GetByIDWithOptions(ctx context.Context, id uint) (*models.Category, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for id := range f.items {
		c, _ := f.GetByID(ctx, id)
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetAllWithOptions(ctx context.Context) ([]models.Category, error) {
	return f.GetAll(ctx)
}

func (f *fakeCategoryRepo) FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Category, error) {
	if foldedEN := names.Fold(nameEN); foldedEN != "" {
		for id, stored := range f.items {
			if stored.NameEN == foldedEN {
				return f.GetByID(ctx, id)
			}
		}
	}
	if foldedFR := names.Fold(nameFR); foldedFR != "" {
		for id, stored := range f.items {
			if stored.NameFR == foldedFR {
				return f.GetByID(ctx, id)
			}
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	stored := *category
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	category.NameEN = names.Display(stored.NameEN)
	category.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(f.items, id)
	return nil
}

type fakeProductRepo struct {
	nextID      uint
	items       map[uint]*models.Product
	options     *fakeOptionRepo
	prodOptions *fakeProductOptionRepo
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = f.nextID
	f.nextID++
	stored := *product
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	product.NameEN = names.Display(stored.NameEN)
	product.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	stored, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *stored
	out.NameEN = names.Display(out.NameEN)
	out.NameFR = names.Display(out.NameFR)
	return &out, nil
}

func (f *fakeProductRepo) GetAllWithAssociations(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for id := range f.items {
		p, _ := f.GetByID(ctx, id)
		for link := range f.prodOptions.links {
			if link.a != id {
				continue
			}
			if o, _ := f.options.GetByID(ctx, link.b); o != nil {
				p.Options = append(p.Options, *o)
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	stored := *product
	stored.NameEN = names.Fold(stored.NameEN)
	stored.NameFR = names.Fold(stored.NameFR)
	f.items[stored.ID] = &stored
	product.NameEN = names.Display(stored.NameEN)
	product.NameFR = names.Display(stored.NameFR)
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.items, id)
	return nil
}

type fakeOrderRepo struct{}

func (fakeOrderRepo) GetAllWithDetails(context.Context) ([]models.Order, error) { return nil, nil }
func (fakeOrderRepo) GetByID(context.Context, uint) (*models.Order, error)     { return nil, nil }

type pair struct{ a, b uint }

type fakeCategoryOptionRepo struct {
	links map[pair]bool
}

func (f *fakeCategoryOptionRepo) Attach(ctx context.Context, categoryID, optionID uint) error {
	f.links[pair{categoryID, optionID}] = true
	return nil
}

func (f *fakeCategoryOptionRepo) Detach(_ context.Context, categoryID, optionID uint) error {
	delete(f.links, pair{categoryID, optionID})
	return nil
}

func (f *fakeCategoryOptionRepo) DetachAllForCategory(_ context.Context, categoryID uint) error {
	for link := range f.links {
		if link.a == categoryID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeCategoryOptionRepo) DetachAllForOption(_ context.Context, optionID uint) error {
	for link := range f.links {
		if link.b == optionID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeCategoryOptionRepo) Exists(_ context.Context, categoryID, optionID uint) (bool, error) {
	return f.links[pair{categoryID, optionID}], nil
}

type fakeProductOptionRepo struct {
	links map[pair]decimal.Decimal
}

func (f *fakeProductOptionRepo) Attach(ctx context.Context, productID, optionID uint, extraPrice decimal.Decimal) error {
	if _, ok := f.links[pair{productID, optionID}]; ok {
		return nil
	}
	f.links[pair{productID, optionID}] = extraPrice
	return nil
}

func (f *fakeProductOptionRepo) Detach(_ context.Context, productID, optionID uint) error {
	delete(f.links, pair{productID, optionID})
	return nil
}

func (f *fakeProductOptionRepo) DetachAllForProduct(_ context.Context, productID uint) error {
	for link := range f.links {
		if link.a == productID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeProductOptionRepo) DetachAllForOption(_ context.Context, optionID uint) error {
	for link := range f.links {
		if link.b == optionID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeProductOptionRepo) Exists(_ context.Context, productID, optionID uint) (bool, error) {
	_, ok := f.links[pair{productID, optionID}]
	return ok, nil
}

func (f *fakeProductOptionRepo) ListForProducts(_ context.Context, productIDs []uint) ([]models.ProductOption, error) {
	var out []models.ProductOption
	for _, id := range productIDs {
		for link, extra := range f.links {
			if link.a == id {
				out = append(out, models.ProductOption{ProductID: link.a, OptionID: link.b, ExtraPrice: extra})
			}
		}
	}
	return out, nil
}

type fakeProductCategoryRepo struct {
	links map[pair]bool
}

func (f *fakeProductCategoryRepo) Attach(ctx context.Context, productID, categoryID uint) error {
	f.links[pair{productID, categoryID}] = true
	return nil
}

func (f *fakeProductCategoryRepo) Detach(_ context.Context, productID, categoryID uint) error {
	delete(f.links, pair{productID, categoryID})
	return nil
}

func (f *fakeProductCategoryRepo) DetachAllForProduct(_ context.Context, productID uint) error {
	for link := range f.links {
		if link.a == productID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeProductCategoryRepo) DetachAllForCategory(_ context.Context, categoryID uint) error {
	for link := range f.links {
		if link.b == categoryID {
			delete(f.links, link)
		}
	}
	return nil
}

func (f *fakeProductCategoryRepo) Exists(_ context.Context, productID, categoryID uint) (bool, error) {
	return f.links[pair{productID, categoryID}], nil
}

// testEnv wires real services and a real router over the in-memory
// repositories, so tests exercise the same paths production requests take.
type testEnv struct {
	router       *mux.Router
	uploadRoot   string
	options      *fakeOptionRepo
	categories   *fakeCategoryRepo
	products     *fakeProductRepo
	catOptions   *fakeCategoryOptionRepo
	prodOptions  *fakeProductOptionRepo
	prodCategory *fakeProductCategoryRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		uploadRoot:   t.TempDir(),
		options:      &fakeOptionRepo{nextID: 1, items: map[uint]*models.Option{}},
		categories:   &fakeCategoryRepo{nextID: 1, items: map[uint]*models.Category{}},
		products:     &fakeProductRepo{nextID: 1, items: map[uint]*models.Product{}},
		catOptions:   &fakeCategoryOptionRepo{links: map[pair]bool{}},
		prodOptions:  &fakeProductOptionRepo{links: map[pair]decimal.Decimal{}},
		prodCategory: &fakeProductCategoryRepo{links: map[pair]bool{}},
	}
	env.products.options = env.options
	env.products.prodOptions = env.prodOptions

	lookupSvc := services.NewLookupService(env.options, env.categories, env.catOptions, env.prodOptions, env.prodCategory)
	uploadSvc := services.NewUploadService(storage.NewLocalDisk(env.uploadRoot, "http://localhost:8080"))

	handler := NewAdminHandler(
		renderer.New(),
		helpers.NewValidator(),
		sessions.NewFlashStore(securecookie.GenerateRandomKey(32), securecookie.GenerateRandomKey(32)),
		env.options, env.categories, env.products, fakeOrderRepo{},
		env.prodOptions, env.prodCategory,
		lookupSvc, uploadSvc,
	)

	router := mux.NewRouter()
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/lookups", handler.GetLookups).Methods("GET")
	admin.HandleFunc("/options", handler.GetOptions).Methods("GET")
	admin.HandleFunc("/options", handler.CreateOption).Methods("POST")
	admin.HandleFunc("/options/{id:[0-9]+}", handler.DeleteOption).Methods("DELETE")
	admin.HandleFunc("/options/{id:[0-9]+}/thumbnail", handler.RemoveOptionThumbnail).Methods("DELETE")
	admin.HandleFunc("/categories", handler.GetCategories).Methods("GET")
	admin.HandleFunc("/categories", handler.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id:[0-9]+}", handler.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/categories/{categoryId:[0-9]+}/options/{optionId:[0-9]+}", handler.DetachCategoryOption).Methods("DELETE")
	admin.HandleFunc("/products", handler.GetProducts).Methods("GET")
	admin.HandleFunc("/products", handler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id:[0-9]+}", handler.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/products/{id:[0-9]+}/options", handler.AddProductOption).Methods("POST")
	admin.HandleFunc("/products/{id:[0-9]+}/categories", handler.AddProductCategory).Methods("POST")
	admin.HandleFunc("/orders", handler.GetOrders).Methods("GET")
	admin.HandleFunc("/uploads/image", handler.UploadImage).Methods("POST")
	env.router = router

	return env
}

// doJSON sends a request negotiating a JSON response, the way API clients
// and the admin frontend talk to these endpoints.
func (e *testEnv) doJSON(t *testing.T, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func (e *testEnv) seedCategory(t *testing.T, nameEN, nameFR string) uint {
	t.Helper()

	category := &models.Category{NameEN: nameEN, NameFR: nameFR}
	require.NoError(t, e.categories.Create(context.Background(), category))
	return category.ID
}

func (e *testEnv) seedOption(t *testing.T, nameEN, nameFR string) uint {
	t.Helper()

	option := &models.Option{NameEN: nameEN, NameFR: nameFR}
	require.NoError(t, e.options.Create(context.Background(), option))
	return option.ID
}
