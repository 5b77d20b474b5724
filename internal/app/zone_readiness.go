package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// Compile-time check that ZoneReadiness implements ports.HealthChecker.
var _ ports.HealthChecker = (*ZoneReadiness)(nil)

// ZoneReadiness reports the service as not ready when a schema declares
// zoned time attributes but the engine has no ambient time zone, since
// every write to those attributes would be rejected.
type ZoneReadiness struct {
	catalog *attr.Catalog
	engine  *coerce.Engine
}

// NewZoneReadiness creates a ZoneReadiness checker.
func NewZoneReadiness(catalog *attr.Catalog, engine *coerce.Engine) *ZoneReadiness {
	return &ZoneReadiness{catalog: catalog, engine: engine}
}

// Name implements ports.HealthChecker.
func (z *ZoneReadiness) Name() string {
	return "time-zone"
}

// HealthCheck implements ports.HealthChecker.
func (z *ZoneReadiness) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if z.engine.HasZone() {
		return nil
	}
	if names := z.catalog.Declaring(coerce.TagTime); len(names) > 0 {
		return fmt.Errorf("%w: schemas %s declare time attributes", domain.ErrZoneRequired, strings.Join(names, ", "))
	}
	return nil
}
