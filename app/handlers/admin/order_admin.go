package admin

import (
	"log"
	"net/http"
)

func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAllWithDetails(r.Context())
	if err != nil {
		log.Printf("GetOrders: failed to list orders: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list orders"})
		return
	}
	h.render.JSON(w, http.StatusOK, orders)
}
