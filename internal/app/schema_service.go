package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// Compile-time check that SchemaService implements ports.SchemaService.
var _ ports.SchemaService = (*SchemaService)(nil)

// SchemaService implements ports.SchemaService over the configured catalog.
type SchemaService struct {
	catalog *attr.Catalog
	logger  *slog.Logger
}

// NewSchemaService creates a SchemaService. A nil logger disables logging.
func NewSchemaService(catalog *attr.Catalog, logger *slog.Logger) *SchemaService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SchemaService{catalog: catalog, logger: logger}
}

// ListSchemas returns every schema ordered by name.
func (s *SchemaService) ListSchemas(ctx context.Context) ([]*attr.Schema, error) {
	s.logger.DebugContext(ctx, "listing schemas")
	return s.catalog.Schemas(), nil
}

// GetSchema returns a schema by name.
func (s *SchemaService) GetSchema(ctx context.Context, name string) (*attr.Schema, error) {
	s.logger.DebugContext(ctx, "fetching schema", slog.String("schema", name))
	return s.catalog.Lookup(name)
}
