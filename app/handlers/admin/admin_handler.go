package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/aplamondon/go-restomenu/app/helpers"
	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/repositories"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/aplamondon/go-restomenu/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

const lookupsPath = "/admin/lookups"

type AdminHandler struct {
	render              *render.Render
	validator           *validator.Validate
	flash               *sessions.FlashStore
	optionRepo          repositories.OptionRepositoryImpl
	categoryRepo        repositories.CategoryRepositoryImpl
	productRepo         repositories.ProductRepositoryImpl
	orderRepo           repositories.OrderRepositoryImpl
	productOptionRepo   repositories.ProductOptionRepositoryImpl
	productCategoryRepo repositories.ProductCategoryRepositoryImpl
	lookupSvc           *services.LookupService
	uploadSvc           *services.UploadService
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	flash *sessions.FlashStore,
	optionRepo repositories.OptionRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	productOptionRepo repositories.ProductOptionRepositoryImpl,
	productCategoryRepo repositories.ProductCategoryRepositoryImpl,
	lookupSvc *services.LookupService,
	uploadSvc *services.UploadService,
) *AdminHandler {
	return &AdminHandler{
		render:              render,
		validator:           validator,
		flash:               flash,
		optionRepo:          optionRepo,
		categoryRepo:        categoryRepo,
		productRepo:         productRepo,
		orderRepo:           orderRepo,
		productOptionRepo:   productOptionRepo,
		productCategoryRepo: productCategoryRepo,
		lookupSvc:           lookupSvc,
		uploadSvc:           uploadSvc,
	}
}

// respondSuccess answers JSON for API callers and redirect-with-flash for
// form posts, matching what the client negotiated via Accept.
func (h *AdminHandler) respondSuccess(w http.ResponseWriter, r *http.Request, status int, body interface{}, flashMessage string) {
	if helpers.WantsJSON(r) {
		h.render.JSON(w, status, body)
		return
	}
	h.flash.Success(w, r, flashMessage)
	http.Redirect(w, r, lookupsPath, http.StatusSeeOther)
}

func (h *AdminHandler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if helpers.WantsJSON(r) {
		h.render.JSON(w, status, map[string]string{"error": message})
		return
	}
	h.flash.Error(w, r, message)
	http.Redirect(w, r, lookupsPath, http.StatusSeeOther)
}

func (h *AdminHandler) handleUpsertError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	if errors.Is(err, models.ErrDuplicate) {
		h.respondError(w, r, http.StatusUnprocessableEntity, entity+" could not be created (possible duplicate)")
		return
	}
	log.Printf("upsert %s failed: %v", strings.ToLower(entity), err)
	h.respondError(w, r, http.StatusInternalServerError, "Failed to save "+strings.ToLower(entity))
}

func (h *AdminHandler) handleDeleteError(w http.ResponseWriter, r *http.Request, entity string, id uint, err error) {
	if errors.Is(err, models.ErrNotFound) {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": entity + " not found"})
		return
	}
	log.Printf("delete %s %d failed: %v", strings.ToLower(entity), id, err)
	h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete " + strings.ToLower(entity)})
}

func (h *AdminHandler) respondValidationErrors(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string) {
	if helpers.WantsJSON(r) {
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "The given data was invalid.",
			"errors":  fieldErrors,
		})
		return
	}
	for _, msg := range fieldErrors {
		h.flash.Error(w, r, msg)
	}
	http.Redirect(w, r, lookupsPath, http.StatusSeeOther)
}
