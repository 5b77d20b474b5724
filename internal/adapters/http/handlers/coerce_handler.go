package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// CoerceHandler handles stateless batch coercion.
type CoerceHandler struct {
	svc ports.CoercionService
}

// NewCoerceHandler creates a new CoerceHandler with the given service port.
func NewCoerceHandler(svc ports.CoercionService) *CoerceHandler {
	return &CoerceHandler{svc: svc}
}

// Coerce handles POST /api/v1/coerce. The response is 200 even when items
// are rejected; each rejected item carries its own problem.
func (h *CoerceHandler) Coerce(w http.ResponseWriter, r *http.Request) {
	var req dto.CoerceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := req.ToItems()
	outcomes, err := h.svc.Coerce(r.Context(), items)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCoerceResponse(items, outcomes))
}
