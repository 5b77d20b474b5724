package attr

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Catalog is the fixed set of schemas a process was configured with.
type Catalog struct {
	binder *Binder
}

// NewCatalog defines one schema per entry of defs, keyed by schema name and
// then attribute name. All definitions are attempted; the returned error
// joins every failure.
func NewCatalog(b *Binder, defs map[string]map[string]string) (*Catalog, error) {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		decls := make(map[string]coerce.Tag, len(defs[name]))
		for attrName, tag := range defs[name] {
			decls[attrName] = coerce.Tag(tag)
		}
		if _, err := b.Define(name, decls); err != nil {
			errs = append(errs, fmt.Errorf("schema %q: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Catalog{binder: b}, nil
}

// Binder returns the binder the schemas were defined on.
func (c *Catalog) Binder() *Binder {
	return c.binder
}

// Lookup returns the named schema or a domain.NotFoundError.
func (c *Catalog) Lookup(name string) (*Schema, error) {
	return c.binder.Lookup(name)
}

// Schemas returns every schema ordered by name.
func (c *Catalog) Schemas() []*Schema {
	return c.binder.Schemas()
}

// Declaring returns the names of schemas with at least one attribute of the
// given tag.
func (c *Catalog) Declaring(tag coerce.Tag) []string {
	var names []string
	for _, s := range c.binder.Schemas() {
		if s.Declares(tag) {
			names = append(names, s.Name())
		}
	}
	return names
}
