// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// AttributeResponse is one declared attribute.
type AttributeResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SchemaResponse represents a schema in HTTP responses.
type SchemaResponse struct {
	Name       string              `json:"name"`
	Attributes []AttributeResponse `json:"attributes"`
	Sealed     bool                `json:"sealed"`
}

// SchemaListResponse represents a list of schemas in HTTP responses.
type SchemaListResponse struct {
	Schemas []SchemaResponse `json:"schemas"`
	Count   int              `json:"count"`
}

// ToSchemaResponse converts a schema to an HTTP response DTO.
func ToSchemaResponse(s *attr.Schema) SchemaResponse {
	attrs := s.Attributes()
	items := make([]AttributeResponse, len(attrs))
	for i, a := range attrs {
		items[i] = AttributeResponse{Name: a.Name, Type: a.Tag.String()}
	}
	return SchemaResponse{
		Name:       s.Name(),
		Attributes: items,
		Sealed:     s.Sealed(),
	}
}

// ToSchemaListResponse converts schemas to an HTTP list response DTO.
func ToSchemaListResponse(schemas []*attr.Schema) SchemaListResponse {
	items := make([]SchemaResponse, len(schemas))
	for i, s := range schemas {
		items[i] = ToSchemaResponse(s)
	}
	return SchemaListResponse{
		Schemas: items,
		Count:   len(items),
	}
}

// RecordResponse represents a single record in HTTP responses. Every declared
// attribute is present; absent values are null.
type RecordResponse struct {
	ID         string         `json:"id"`
	Schema     string         `json:"schema"`
	Attributes map[string]any `json:"attributes"`
	Fallbacks  []string       `json:"fallbacks,omitempty"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// RecordListResponse represents a list of records in HTTP responses.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// ToRecordResponse converts a record to an HTTP response DTO.
func ToRecordResponse(r *record.Record) RecordResponse {
	values := r.Object.Values()
	attrs := make(map[string]any, len(values))
	for name, v := range values {
		attrs[name] = EncodeValue(v)
	}
	return RecordResponse{
		ID:         r.ID.String(),
		Schema:     r.Schema,
		Attributes: attrs,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

// ToWriteResponse converts a write result, listing the attributes that fell
// back to a substituted value.
func ToWriteResponse(res *ports.WriteResult) RecordResponse {
	resp := ToRecordResponse(res.Record)
	resp.Fallbacks = res.Fallbacks
	return resp
}

// ToRecordListResponse converts records to an HTTP list response DTO.
func ToRecordListResponse(records []*record.Record) RecordListResponse {
	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = ToRecordResponse(r)
	}
	return RecordListResponse{
		Records: items,
		Count:   len(items),
	}
}

// MoneyResponse is the JSON form of a monetary amount.
type MoneyResponse struct {
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minor_units"`
}

// EncodeValue converts a canonical attribute value to its JSON form:
// dates as YYYY-MM-DD, date-times and instants as RFC 3339, decimals as
// strings so no precision is lost, money as a MoneyResponse.
func EncodeValue(v any) any {
	switch x := v.(type) {
	case coerce.Date:
		return x.String()
	case coerce.DateTime:
		return x.Format(time.RFC3339Nano)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return x.String()
	case *money.Money:
		if x == nil {
			return nil
		}
		return MoneyResponse{
			Amount:     coerce.Text(x),
			Currency:   x.Currency().Code,
			MinorUnits: x.Amount(),
		}
	default:
		return v
	}
}

// CoerceResultResponse is the outcome of one batch item. Exactly one of
// Value and Error is meaningful; a null Value with no Error is absent.
type CoerceResultResponse struct {
	Type     string       `json:"type"`
	Value    any          `json:"value"`
	Fallback bool         `json:"fallback,omitempty"`
	Error    *ItemProblem `json:"error,omitempty"`
}

// ItemProblem describes a rejected batch item.
type ItemProblem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// CoerceResponse represents the result of a batch coercion.
type CoerceResponse struct {
	Results  []CoerceResultResponse `json:"results"`
	Total    int                    `json:"total"`
	Rejected int                    `json:"rejected"`
}

// ToCoerceResponse pairs each item with its outcome.
func ToCoerceResponse(items []ports.CoercionItem, outcomes []ports.CoercionOutcome) CoerceResponse {
	results := make([]CoerceResultResponse, len(outcomes))
	rejected := 0
	for i, o := range outcomes {
		res := CoerceResultResponse{Type: items[i].Tag.String()}
		if o.Err != nil {
			rejected++
			status := StatusOf(o.Err)
			res.Error = &ItemProblem{
				Status: status,
				Title:  http.StatusText(status),
				Detail: o.Err.Error(),
			}
		} else {
			res.Value = EncodeValue(o.Value)
			res.Fallback = o.Fallback
		}
		results[i] = res
	}
	return CoerceResponse{
		Results:  results,
		Total:    len(results),
		Rejected: rejected,
	}
}
