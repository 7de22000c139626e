package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/aplamondon/go-restomenu/app/services"
)

// UploadImage receives a multipart image, stores the original plus a
// 400x400 thumbnail, and returns public URLs for both.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// A little slack over the file cap for the multipart envelope.
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(services.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "The image may not be greater than 10 MiB."})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid multipart request body."})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.respondValidationErrors(w, r, map[string]string{"image": "The image field is required."})
		return
	}
	file.Close()

	result, err := h.uploadSvc.Image(r.Context(), header)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUpload) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
			return
		}
		log.Printf("UploadImage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Upload failed",
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, result)
}
