package attr

import (
	"fmt"
	"sync"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Attribute is one declared (name, tag) pair.
type Attribute struct {
	Name string
	Tag  coerce.Tag
}

// Schema is a declaration table shared by every Object created from it.
// Declarations are accepted until the first Object exists.
type Schema struct {
	name   string
	binder *Binder

	mu     sync.RWMutex
	attrs  []Attribute
	index  map[string]int
	sealed bool
}

func newSchema(name string, b *Binder) *Schema {
	return &Schema{
		name:   name,
		binder: b,
		index:  make(map[string]int),
	}
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Declare adds an attribute. An unsupported tag fails with an
// *UnsupportedTypeError and nothing is declared. Redeclaring a name with the
// same tag is a no-op; with a different tag it is a conflict.
func (s *Schema) Declare(tag coerce.Tag, name string) error {
	if err := checkDeclaration(s.name, name, tag); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return fmt.Errorf("declaring %q on schema %q: %w", name, s.name, domain.ErrSealed)
	}
	if i, ok := s.index[name]; ok {
		if s.attrs[i].Tag == tag {
			return nil
		}
		return fmt.Errorf("attribute %q on schema %q already declared as %s: %w",
			name, s.name, s.attrs[i].Tag, domain.ErrConflict)
	}
	s.bind(name, tag)
	return nil
}

// bind appends a checked declaration. Callers hold mu or own s exclusively.
func (s *Schema) bind(name string, tag coerce.Tag) {
	s.index[name] = len(s.attrs)
	s.attrs = append(s.attrs, Attribute{Name: name, Tag: tag})
}

// Attributes returns the declarations in declaration order.
func (s *Schema) Attributes() []Attribute {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// Lookup returns the declaration for name.
func (s *Schema) Lookup(name string) (Attribute, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}

// Declares reports whether any attribute has the given tag.
func (s *Schema) Declares(tag coerce.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.attrs {
		if a.Tag == tag {
			return true
		}
	}
	return false
}

// Sealed reports whether an Object has been created from the schema.
func (s *Schema) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}

// New returns an Object with every attribute absent and seals the schema.
func (s *Schema) New() *Object {
	s.mu.Lock()
	s.sealed = true
	n := len(s.attrs)
	s.mu.Unlock()

	return &Object{schema: s, values: make(map[string]any, n)}
}

func checkDeclaration(schema, name string, tag coerce.Tag) error {
	if !tag.IsValid() {
		return &UnsupportedTypeError{Schema: schema, Attribute: name, Tag: tag}
	}
	if name == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": "attribute name is required"}}
	}
	return nil
}

// UnsupportedTypeError is a declaration with a tag outside the supported set.
type UnsupportedTypeError struct {
	Schema    string
	Attribute string
	Tag       coerce.Tag
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: attribute %q on schema %q declared as %q", domain.ErrUnsupportedType, e.Attribute, e.Schema, e.Tag)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return domain.ErrUnsupportedType
}
