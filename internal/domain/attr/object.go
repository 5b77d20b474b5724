package attr

import (
	"context"
	"fmt"
	"maps"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Object holds one value slot per attribute of its schema. Every write is
// coerced; reads return what was stored. An Object is not safe for
// concurrent use.
type Object struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema the object was created from.
func (o *Object) Schema() *Schema {
	return o.schema
}

// Set coerces raw into the attribute's tag and stores the result. A rejected
// write returns a *WriteError and keeps the previous value.
func (o *Object) Set(ctx context.Context, name string, raw any) error {
	_, err := o.Apply(ctx, name, raw)
	return err
}

// Apply is Set that also returns the coercion result, so callers can tell a
// substituted fallback from a clean conversion.
func (o *Object) Apply(ctx context.Context, name string, raw any) (coerce.Result, error) {
	a, ok := o.schema.Lookup(name)
	if !ok {
		return coerce.Result{}, &UnknownAttributeError{Schema: o.schema.name, Attribute: name}
	}

	res, err := o.schema.binder.convert(ctx, o.schema.name, a, raw)
	if err != nil {
		return coerce.Result{}, err
	}

	if res.Absent() {
		delete(o.values, name)
	} else {
		o.values[name] = res.Value
	}
	return res, nil
}

// Get returns the stored value of an attribute, or nil when absent.
func (o *Object) Get(name string) (any, error) {
	if _, ok := o.schema.Lookup(name); !ok {
		return nil, &UnknownAttributeError{Schema: o.schema.name, Attribute: name}
	}
	return o.values[name], nil
}

// Values returns a copy of every declared attribute's value. Absent
// attributes map to nil.
func (o *Object) Values() map[string]any {
	attrs := o.schema.Attributes()
	out := make(map[string]any, len(attrs))
	for _, a := range attrs {
		out[a.Name] = o.values[a.Name]
	}
	return out
}

// Clone returns an independent copy. Stored values are immutable, so the
// copy shares them.
func (o *Object) Clone() *Object {
	return &Object{schema: o.schema, values: maps.Clone(o.values)}
}

// Value returns an attribute's value as T. It reports false when the
// attribute is unknown, absent, or of another type.
func Value[T any](o *Object, name string) (T, bool) {
	var zero T
	v, err := o.Get(name)
	if err != nil || v == nil {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// UnknownAttributeError is an access to a name the schema does not declare.
type UnknownAttributeError struct {
	Schema    string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q on schema %q", e.Attribute, e.Schema)
}

func (e *UnknownAttributeError) Unwrap() error {
	return domain.ErrValidation
}

// WriteError is a write the engine rejected. It unwraps to the engine's
// error, so errors.Is tells a malformed value from a missing time zone.
type WriteError struct {
	Schema    string
	Attribute string
	Tag       coerce.Tag
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("setting %s.%s: %v", e.Schema, e.Attribute, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
