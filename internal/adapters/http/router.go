// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/attrd/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/attrd/internal/domain"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Schema *handlers.SchemaHandler
	Record *handlers.RecordHandler
	Coerce *handlers.CoerceHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods answer with RFC 9457 problem responses.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, &domain.NotFoundError{Kind: "route", Key: req.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		resp := dto.NewErrorResponse(req, errors.New(req.Method+" is not allowed on "+req.URL.Path))
		resp.Status = http.StatusMethodNotAllowed
		resp.Title = http.StatusText(http.StatusMethodNotAllowed)
		writeProblem(w, resp)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Schemas are configured, read-only.
		r.Get("/schemas", h.Schema.ListSchemas)
		r.Get("/schemas/{name}", h.Schema.GetSchema)

		// Records are created and listed under their schema.
		r.Post("/schemas/{name}/records", h.Record.CreateRecord)
		r.Get("/schemas/{name}/records", h.Record.ListRecords)

		r.Get("/records/{id}", h.Record.GetRecord)
		r.Patch("/records/{id}", h.Record.UpdateRecord)
		r.Delete("/records/{id}", h.Record.DeleteRecord)

		// Stateless batch coercion.
		r.Post("/coerce", h.Coerce.Coerce)
	})

	return r
}
