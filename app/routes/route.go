package routes

import (
	"net/http"
	"path/filepath"

	"github.com/aplamondon/go-restomenu/app/configs"
	adminhandlers "github.com/aplamondon/go-restomenu/app/handlers/admin"
	"github.com/aplamondon/go-restomenu/app/helpers"
	"github.com/aplamondon/go-restomenu/app/middlewares"
	"github.com/aplamondon/go-restomenu/app/repositories"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/aplamondon/go-restomenu/app/storage"
	"github.com/aplamondon/go-restomenu/app/utils/renderer"
	"github.com/aplamondon/go-restomenu/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(env configs.ENV, db *gorm.DB, keys *configs.SessionKeys, disk storage.Disk) http.Handler {
	router := mux.NewRouter()
	router.Use(middlewares.Recovery)
	router.Use(middlewares.Logging)

	rnd := renderer.New()
	validate := helpers.NewValidator()
	flash := sessions.NewFlashStore(keys.AuthKey, keys.EncKey)

	optionRepo := repositories.NewOptionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	categoryOptionRepo := repositories.NewCategoryOptionRepository(db)
	productOptionRepo := repositories.NewProductOptionRepository(db)
	productCategoryRepo := repositories.NewProductCategoryRepository(db)

	lookupSvc := services.NewLookupService(optionRepo, categoryRepo, categoryOptionRepo, productOptionRepo, productCategoryRepo)
	uploadSvc := services.NewUploadService(disk)

	adminHandler := adminhandlers.NewAdminHandler(
		rnd, validate, flash,
		optionRepo, categoryRepo, productRepo, orderRepo,
		productOptionRepo, productCategoryRepo,
		lookupSvc, uploadSvc,
	)

	registerCSRFToken(router, rnd)

	adminRouter := router.PathPrefix("/admin").Subrouter()

	adminRouter.HandleFunc("/lookups", adminHandler.GetLookups).Methods("GET")

	adminRouter.HandleFunc("/options", adminHandler.GetOptions).Methods("GET")
	adminRouter.HandleFunc("/options", adminHandler.CreateOption).Methods("POST")
	adminRouter.HandleFunc("/options/{id:[0-9]+}", adminHandler.DeleteOption).Methods("DELETE")
	adminRouter.HandleFunc("/options/{id:[0-9]+}/thumbnail", adminHandler.RemoveOptionThumbnail).Methods("DELETE")

	adminRouter.HandleFunc("/categories", adminHandler.GetCategories).Methods("GET")
	adminRouter.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", adminHandler.DeleteCategory).Methods("DELETE")
	adminRouter.HandleFunc("/categories/{categoryId:[0-9]+}/options/{optionId:[0-9]+}", adminHandler.DetachCategoryOption).Methods("DELETE")

	adminRouter.HandleFunc("/products", adminHandler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}", adminHandler.DeleteProduct).Methods("DELETE")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/options", adminHandler.AddProductOption).Methods("POST")
	adminRouter.HandleFunc("/products/{id:[0-9]+}/categories", adminHandler.AddProductCategory).Methods("POST")

	adminRouter.HandleFunc("/orders", adminHandler.GetOrders).Methods("GET")

	adminRouter.HandleFunc("/uploads/image", adminHandler.UploadImage).Methods("POST")

	// Uploaded images are only served by this process when the public
	// directory target is active; the S3 disk serves its own URLs.
	if env.UploadToPublic {
		imagesDir := filepath.Join(env.AssetRoot, "images")
		router.PathPrefix("/images/").Handler(
			http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))),
		)
	}

	protect := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)
	return protect(router)
}

// registerCSRFToken exposes a fresh token for the uploaders, which refresh
// it when a stale form gets rejected.
func registerCSRFToken(router *mux.Router, rnd *render.Render) {
	router.HandleFunc("/csrf-token", func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusOK, map[string]string{"token": csrf.Token(r)})
	}).Methods("GET")
}
