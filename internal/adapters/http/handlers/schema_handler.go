// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// SchemaHandler handles HTTP requests for reading configured schemas.
type SchemaHandler struct {
	svc ports.SchemaService
}

// NewSchemaHandler creates a new SchemaHandler with the given service port.
func NewSchemaHandler(svc ports.SchemaService) *SchemaHandler {
	return &SchemaHandler{svc: svc}
}

// ListSchemas handles GET /api/v1/schemas.
func (h *SchemaHandler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	schemas, err := h.svc.ListSchemas(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSchemaListResponse(schemas))
}

// GetSchema handles GET /api/v1/schemas/{name}.
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSchema(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSchemaResponse(s))
}
