package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/aplamondon/go-restomenu/app/helpers"
	"github.com/aplamondon/go-restomenu/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type OptionForm struct {
	NameEN        string `json:"name_en" validate:"required"`
	NameFR        string `json:"name_fr" validate:"required"`
	DescriptionEN string `json:"description_en" validate:"required"`
	DescriptionFR string `json:"description_fr" validate:"required"`
	Thumbnail     string `json:"thumbnail" validate:"required"`
	CategoryID    uint   `json:"category_id" validate:"required"`
}

func (h *AdminHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.optionRepo.GetAllWithCategories(r.Context())
	if err != nil {
		log.Printf("GetOptions: failed to list options: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list options"})
		return
	}
	h.render.JSON(w, http.StatusOK, options)
}

// CreateOption is the upsert endpoint behind the lookups screen: a name
// collision in either language updates the existing option and attaches
// the category instead of inserting a duplicate.
func (h *AdminHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	var form OptionForm
	if err := decodeForm(r, &form, func() {
		form.NameEN = r.PostFormValue("name_en")
		form.NameFR = r.PostFormValue("name_fr")
		form.DescriptionEN = r.PostFormValue("description_en")
		form.DescriptionFR = r.PostFormValue("description_fr")
		form.Thumbnail = r.PostFormValue("thumbnail")
		form.CategoryID = parseUint(r.PostFormValue("category_id"))
	}); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := h.validate(&form); errs != nil {
		h.respondValidationErrors(w, r, errs)
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID)
	if err != nil {
		log.Printf("CreateOption: failed to check category %d: %v", form.CategoryID, err)
		h.respondError(w, r, http.StatusInternalServerError, "Failed to save option")
		return
	}
	if category == nil {
		h.respondValidationErrors(w, r, map[string]string{"category_id": "The selected category_id is invalid."})
		return
	}

	option, created, err := h.lookupSvc.UpsertOption(r.Context(), services.OptionInput{
		NameEN:        form.NameEN,
		NameFR:        form.NameFR,
		DescriptionEN: form.DescriptionEN,
		DescriptionFR: form.DescriptionFR,
		Thumbnail:     form.Thumbnail,
		CategoryID:    form.CategoryID,
	})
	if err != nil {
		h.handleUpsertError(w, r, "Option", err)
		return
	}

	loaded, err := h.optionRepo.GetByIDWithCategories(r.Context(), option.ID)
	if err != nil || loaded == nil {
		loaded = option
	}

	if created {
		h.respondSuccess(w, r, http.StatusCreated, loaded, "Option created")
		return
	}
	h.respondSuccess(w, r, http.StatusOK, loaded, "Option updated")
}

func (h *AdminHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	id := parseUint(mux.Vars(r)["id"])

	if err := h.lookupSvc.DeleteOption(r.Context(), id); err != nil {
		h.handleDeleteError(w, r, "Option", id, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Option deleted"})
}

// RemoveOptionThumbnail clears the stored thumbnail reference and cleans
// up the files it pointed at. File deletion is best-effort; the database
// field is the authoritative state.
func (h *AdminHandler) RemoveOptionThumbnail(w http.ResponseWriter, r *http.Request) {
	id := parseUint(mux.Vars(r)["id"])

	option, err := h.optionRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("RemoveOptionThumbnail: failed to load option %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load option"})
		return
	}
	if option == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Option not found"})
		return
	}
	if option.Thumbnail == "" {
		h.render.JSON(w, http.StatusOK, map[string]string{"message": "No thumbnail"})
		return
	}

	h.uploadSvc.RemoveThumbnail(r.Context(), option.Thumbnail)

	if err := h.optionRepo.ClearThumbnail(r.Context(), id); err != nil {
		log.Printf("RemoveOptionThumbnail: failed to clear thumbnail for option %d: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to clear thumbnail"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Thumbnail removed"})
}

func (h *AdminHandler) validate(form interface{}) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return helpers.FormatValidationErrors(validationErrors)
		}
		return map[string]string{"form": "Invalid input."}
	}
	return nil
}

// decodeForm fills a form from a JSON body when the client sent one, and
// falls back to url-encoded form fields otherwise.
func decodeForm(r *http.Request, dst interface{}, fromForm func()) error {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	fromForm()
	return nil
}

func parseUint(s string) uint {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
