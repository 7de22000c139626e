package admin

import (
	"log"
	"net/http"

	"github.com/aplamondon/go-restomenu/app/helpers"
	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type ProductForm struct {
	NameEN        string          `json:"name_en" validate:"required,max=255"`
	NameFR        string          `json:"name_fr" validate:"omitempty,max=255"`
	DescriptionEN string          `json:"description_en"`
	DescriptionFR string          `json:"description_fr"`
	Price         decimal.Decimal `json:"price"`
	Thumbnail     string          `json:"thumbnail"`
	Stock         int             `json:"stock"`
}

type ProductOptionForm struct {
	NameEN     string          `json:"name_en" validate:"required,max=255"`
	NameFR     string          `json:"name_fr" validate:"omitempty,max=255"`
	ExtraPrice decimal.Decimal `json:"extra_price"`
}

type ProductCategoryForm struct {
	NameEN string `json:"name_en" validate:"required,max=255"`
	NameFR string `json:"name_fr" validate:"omitempty,max=255"`
}

// productOptionView pairs an attached option with its extra_price pivot,
// which lives on the join row rather than the option itself.
type productOptionView struct {
	models.Option
	ExtraPrice decimal.Decimal `json:"extra_price"`
}

type productView struct {
	models.Product
	Options        []productOptionView `json:"options"`
	FormattedPrice string              `json:"formatted_price"`
}

// GetProducts returns everything the products screen needs in one payload:
// products with their associations and option pivots, plus the full option
// and category lists for the pickers.
func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAllWithAssociations(r.Context())
	if err != nil {
		log.Printf("GetProducts: failed to list products: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list products"})
		return
	}

	productIDs := make([]uint, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}
	links, err := h.productOptionRepo.ListForProducts(r.Context(), productIDs)
	if err != nil {
		log.Printf("GetProducts: failed to list option pivots: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list products"})
		return
	}
	extras := make(map[uint]map[uint]decimal.Decimal, len(products))
	for _, link := range links {
		if extras[link.ProductID] == nil {
			extras[link.ProductID] = make(map[uint]decimal.Decimal)
		}
		extras[link.ProductID][link.OptionID] = link.ExtraPrice
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		view := productView{Product: p, FormattedPrice: helpers.FormatPrice(p.Price)}
		view.Options = make([]productOptionView, 0, len(p.Options))
		for _, o := range p.Options {
			view.Options = append(view.Options, productOptionView{Option: o, ExtraPrice: extras[p.ID][o.ID]})
		}
		views = append(views, view)
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetProducts: failed to list categories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list categories"})
		return
	}
	options, err := h.optionRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetProducts: failed to list options: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list options"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":   views,
		"categories": categories,
		"options":    options,
	})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := decodeForm(r, &form, func() {
		form.NameEN = r.PostFormValue("name_en")
		form.NameFR = r.PostFormValue("name_fr")
		form.DescriptionEN = r.PostFormValue("description_en")
		form.DescriptionFR = r.PostFormValue("description_fr")
		form.Thumbnail = r.PostFormValue("thumbnail")
		if price, err := decimal.NewFromString(r.PostFormValue("price")); err == nil {
			form.Price = price
		}
		form.Stock = int(parseUint(r.PostFormValue("stock")))
	}); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.validate(&form); errs != nil {
		h.respondValidationErrors(w, r, errs)
		return
	}

	product := &models.Product{
		NameEN:        form.NameEN,
		NameFR:        form.NameFR,
		DescriptionEN: form.DescriptionEN,
		DescriptionFR: form.DescriptionFR,
		Price:         form.Price,
		Thumbnail:     form.Thumbnail,
		Stock:         form.Stock,
	}
	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("CreateProduct: failed to create product: %v", err)
		h.respondError(w, r, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.respondSuccess(w, r, http.StatusCreated, product, "Product created")
}

// AddProductOption upserts an option by name and links it to the product
// with its extra_price pivot. The pivot is set on first attach only.
func (h *AdminHandler) AddProductOption(w http.ResponseWriter, r *http.Request) {
	productID := parseUint(mux.Vars(r)["id"])

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("AddProductOption: failed to load product %d: %v", productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	var form ProductOptionForm
	if err := decodeForm(r, &form, func() {
		form.NameEN = r.PostFormValue("name_en")
		form.NameFR = r.PostFormValue("name_fr")
		if extra, err := decimal.NewFromString(r.PostFormValue("extra_price")); err == nil {
			form.ExtraPrice = extra
		}
	}); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.validate(&form); errs != nil {
		h.respondValidationErrors(w, r, errs)
		return
	}

	option, _, err := h.lookupSvc.UpsertOption(r.Context(), services.OptionInput{
		NameEN: form.NameEN,
		NameFR: form.NameFR,
	})
	if err != nil {
		h.handleUpsertError(w, r, "Option", err)
		return
	}

	if err := h.productOptionRepo.Attach(r.Context(), productID, option.ID, form.ExtraPrice); err != nil {
		log.Printf("AddProductOption: failed to attach option %d to product %d: %v", option.ID, productID, err)
		h.respondError(w, r, http.StatusInternalServerError, "Failed to attach option")
		return
	}

	h.respondSuccess(w, r, http.StatusCreated, option, "Option added to product")
}

func (h *AdminHandler) AddProductCategory(w http.ResponseWriter, r *http.Request) {
	productID := parseUint(mux.Vars(r)["id"])

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("AddProductCategory: failed to load product %d: %v", productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	var form ProductCategoryForm
	if err := decodeForm(r, &form, func() {
		form.NameEN = r.PostFormValue("name_en")
		form.NameFR = r.PostFormValue("name_fr")
	}); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.validate(&form); errs != nil {
		h.respondValidationErrors(w, r, errs)
		return
	}

	category, _, err := h.lookupSvc.UpsertCategory(r.Context(), services.CategoryInput{
		NameEN: form.NameEN,
		NameFR: form.NameFR,
	})
	if err != nil {
		h.handleUpsertError(w, r, "Category", err)
		return
	}

	if err := h.productCategoryRepo.Attach(r.Context(), productID, category.ID); err != nil {
		log.Printf("AddProductCategory: failed to attach category %d to product %d: %v", category.ID, productID, err)
		h.respondError(w, r, http.StatusInternalServerError, "Failed to attach category")
		return
	}

	h.respondSuccess(w, r, http.StatusCreated, category, "Category added to product")
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := parseUint(mux.Vars(r)["id"])

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteProduct: failed to load product %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	if err := h.productOptionRepo.DetachAllForProduct(r.Context(), id); err != nil {
		log.Printf("DeleteProduct: failed to detach options of product %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
		return
	}
	if err := h.productCategoryRepo.DetachAllForProduct(r.Context(), id); err != nil {
		log.Printf("DeleteProduct: failed to detach categories of product %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
		return
	}
	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteProduct: failed to delete product %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
