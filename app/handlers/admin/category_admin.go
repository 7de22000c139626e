package admin

import (
	"log"
	"net/http"

	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/gorilla/mux"
)

type CategoryForm struct {
	NameEN string `json:"name_en" validate:"required"`
	NameFR string `json:"name_fr" validate:"required"`
}

func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAllWithOptions(r.Context())
	if err != nil {
		log.Printf("GetCategories: failed to list categories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
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

	category, created, err := h.lookupSvc.UpsertCategory(r.Context(), services.CategoryInput{
		NameEN: form.NameEN,
		NameFR: form.NameFR,
	})
	if err != nil {
		h.handleUpsertError(w, r, "Category", err)
		return
	}

	loaded, err := h.categoryRepo.GetByIDWithOptions(r.Context(), category.ID)
	if err != nil || loaded == nil {
		loaded = category
	}

	if created {
		h.respondSuccess(w, r, http.StatusCreated, loaded, "Category created")
		return
	}
	h.respondSuccess(w, r, http.StatusOK, loaded, "Category updated")
}

// DeleteCategory detaches the category's options and products first, then
// removes the row. The options themselves are left intact.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := parseUint(mux.Vars(r)["id"])

	if err := h.lookupSvc.DeleteCategory(r.Context(), id); err != nil {
		h.handleDeleteError(w, r, "Category", id, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

// DetachCategoryOption removes a single Category-Option link. Used when an
// option is miscategorized but should stay usable elsewhere.
func (h *AdminHandler) DetachCategoryOption(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := parseUint(vars["categoryId"])
	optionID := parseUint(vars["optionId"])

	err := h.lookupSvc.DetachOptionFromCategory(r.Context(), categoryID, optionID)
	if err != nil {
		if err == models.ErrNotFound {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
			return
		}
		log.Printf("DetachCategoryOption: failed to detach option %d from category %d: %v", optionID, categoryID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to detach option"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Option detached from category"})
}
