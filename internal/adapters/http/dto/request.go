package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// WriteRecordRequest represents the JSON body for creating or updating a
// record. Values are raw: each is coerced to its attribute's declared type.
// A JSON null clears the attribute.
type WriteRecordRequest struct {
	Attributes map[string]any `json:"attributes"`
}

// Validate checks that attribute names are not blank.
// Returns a *domain.ValidationError if any checks fail.
func (r *WriteRecordRequest) Validate() error {
	fields := make(map[string]string)

	for name := range r.Attributes {
		if strings.TrimSpace(name) == "" {
			fields["attributes"] = "attribute names " + msgMustNotEmpty
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Values returns the attributes with JSON numbers normalized.
func (r *WriteRecordRequest) Values() map[string]any {
	values := make(map[string]any, len(r.Attributes))
	for name, v := range r.Attributes {
		values[name] = NormalizeJSON(v)
	}
	return values
}

// CoerceRequest represents the JSON body of a batch coercion.
type CoerceRequest struct {
	Items []CoerceItem `json:"items"`
}

// CoerceItem is one raw value and the type name to convert it to.
type CoerceItem struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Validate checks that the batch is not empty and every item names a type.
// Unknown type names are reported per item by the service.
func (r *CoerceRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Items) == 0 {
		fields["items"] = msgRequired
	}
	for i, it := range r.Items {
		if strings.TrimSpace(it.Type) == "" {
			fields[fmt.Sprintf("items[%d].type", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToItems maps the request to service items.
func (r *CoerceRequest) ToItems() []ports.CoercionItem {
	items := make([]ports.CoercionItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = ports.CoercionItem{
			Tag:   coerce.Tag(strings.TrimSpace(it.Type)),
			Value: NormalizeJSON(it.Value),
		}
	}
	return items
}

// NormalizeJSON converts values decoded with json.Decoder.UseNumber into the
// types the coercion engine reads exactly: integral numbers become int64,
// all other numbers decimal.Decimal. Arrays and objects are walked.
func NormalizeJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if d, err := decimal.NewFromString(x.String()); err == nil {
			return d
		}
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = NormalizeJSON(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = NormalizeJSON(e)
		}
		return out
	default:
		return v
	}
}
