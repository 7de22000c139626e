package admin

import (
	"log"
	"net/http"
	"strings"
)

// GetLookups feeds the lookups screen: the full option and category lists
// plus the locale the front end should render, in one payload.
func (h *AdminHandler) GetLookups(w http.ResponseWriter, r *http.Request) {
	options, err := h.optionRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetLookups: failed to list options: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list options"})
		return
	}
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetLookups: failed to list categories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list categories"})
		return
	}

	successes, errs := h.flash.Pop(w, r)

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"options":    options,
		"categories": categories,
		"locale":     requestLocale(r),
		"flash": map[string][]string{
			"success": successes,
			"error":   errs,
		},
	})
}

// requestLocale picks between the two exposed locales. Anything that is
// not French is English.
func requestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale == "fr" {
		return "fr"
	}
	if strings.HasPrefix(r.Header.Get("Accept-Language"), "fr") {
		return "fr"
	}
	return "en"
}
