package http

import (
	"net/http"

	"github.com/agrohive/agrigate/internal/utils"
)

// test is a plain liveness probe kept apart from the Envelope shape.
func (h *Handler) test(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "API is working"}, http.StatusOK)
}
