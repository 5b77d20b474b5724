package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// RecordHandler handles HTTP requests for record CRUD. Attribute values in
// request bodies are raw and coerced by the service.
type RecordHandler struct {
	svc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler with the given service port.
func NewRecordHandler(svc ports.RecordService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// CreateRecord handles POST /api/v1/schemas/{name}/records.
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.WriteRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.CreateRecord(r.Context(), chi.URLParam(r, "name"), req.Values())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/records/"+res.Record.ID.String())
	writeJSON(w, http.StatusCreated, dto.ToWriteResponse(res))
}

// ListRecords handles GET /api/v1/schemas/{name}/records.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListRecords(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecordListResponse(records))
}

// GetRecord handles GET /api/v1/records/{id}.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecordResponse(rec))
}

// UpdateRecord handles PATCH /api/v1/records/{id}. Only the attributes in
// the body are written; a null value clears an attribute.
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.WriteRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.UpdateRecord(r.Context(), id, req.Values())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWriteResponse(res))
}

// DeleteRecord handles DELETE /api/v1/records/{id}.
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
