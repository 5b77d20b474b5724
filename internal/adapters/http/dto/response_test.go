package dto_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testSchema(t *testing.T) *attr.Schema {
	t.Helper()

	engine, err := coerce.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	s, err := attr.NewBinder(engine).Define("invoice", map[string]coerce.Tag{
		"amount": coerce.TagMoney,
		"due":    coerce.TagDate,
		"memo":   coerce.TagString,
	})
	if err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	return s
}

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "nil", in: nil, want: nil},
		{name: "date", in: coerce.NewDate(2012, time.October, 1), want: "2012-10-01"},
		{name: "date time", in: coerce.NewDateTime(testTime), want: "2026-02-12T15:04:05Z"},
		{name: "instant", in: testTime, want: "2026-02-12T15:04:05Z"},
		{name: "decimal", in: decimal.RequireFromString("1.50"), want: "1.5"},
		{name: "integer", in: int64(7), want: int64(7)},
		{name: "boolean", in: false, want: false},
		{
			name: "money",
			in:   money.New(1234, money.USD),
			want: dto.MoneyResponse{Amount: "12.34", Currency: "USD", MinorUnits: 1234},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dto.EncodeValue(tt.in); got != tt.want {
				t.Errorf("EncodeValue(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToSchemaResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToSchemaResponse(testSchema(t))

	if got.Name != "invoice" {
		t.Errorf("Name = %q, want invoice", got.Name)
	}
	want := []dto.AttributeResponse{
		{Name: "amount", Type: "money"},
		{Name: "due", Type: "date"},
		{Name: "memo", Type: "string"},
	}
	if len(got.Attributes) != len(want) {
		t.Fatalf("Attributes = %v, want %v", got.Attributes, want)
	}
	for i := range want {
		if got.Attributes[i] != want[i] {
			t.Errorf("Attributes[%d] = %v, want %v", i, got.Attributes[i], want[i])
		}
	}

	list := dto.ToSchemaListResponse([]*attr.Schema{testSchema(t)})
	if list.Count != 1 {
		t.Errorf("Count = %d, want 1", list.Count)
	}
}

func TestToWriteResponse(t *testing.T) {
	t.Parallel()

	obj := testSchema(t).New()
	if err := obj.Set(context.Background(), "due", "2012-10-01"); err != nil {
		t.Fatalf("Set(due) error = %v", err)
	}
	if err := obj.Set(context.Background(), "amount", "lots"); err != nil {
		t.Fatalf("Set(amount) error = %v", err)
	}

	rec := record.New(obj, testTime)
	got := dto.ToWriteResponse(&ports.WriteResult{Record: rec, Fallbacks: []string{"amount"}})

	if got.ID != rec.ID.String() || got.Schema != "invoice" {
		t.Errorf("ID/Schema = %q/%q, want record identity", got.ID, got.Schema)
	}
	if got.Attributes["due"] != "2012-10-01" {
		t.Errorf("due = %#v, want 2012-10-01", got.Attributes["due"])
	}
	if m, ok := got.Attributes["amount"].(dto.MoneyResponse); !ok || m.MinorUnits != 0 {
		t.Errorf("amount = %#v, want zero money", got.Attributes["amount"])
	}
	if v, ok := got.Attributes["memo"]; !ok || v != nil {
		t.Errorf("memo = %#v (present %v), want explicit null", v, ok)
	}
	if len(got.Fallbacks) != 1 || got.Fallbacks[0] != "amount" {
		t.Errorf("Fallbacks = %v, want [amount]", got.Fallbacks)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC 3339", got.CreatedAt)
	}

	list := dto.ToRecordListResponse([]*record.Record{rec})
	if list.Count != 1 || list.Records[0].Fallbacks != nil {
		t.Errorf("list = %+v, want one record without fallbacks", list)
	}
}

func TestToCoerceResponse(t *testing.T) {
	t.Parallel()

	items := []ports.CoercionItem{
		{Tag: coerce.TagInteger, Value: "21abc"},
		{Tag: coerce.TagDecimal, Value: "junk"},
		{Tag: coerce.TagDate, Value: "xyzq-baad"},
		{Tag: coerce.TagStrictInteger, Value: "21abc"},
	}
	outcomes := []ports.CoercionOutcome{
		{Value: int64(21)},
		{Value: decimal.Zero, Fallback: true},
		{Err: &coerce.ParseError{Tag: coerce.TagDate, Raw: "xyzq-baad"}},
		{},
	}

	got := dto.ToCoerceResponse(items, outcomes)

	if got.Total != 4 || got.Rejected != 1 {
		t.Errorf("Total/Rejected = %d/%d, want 4/1", got.Total, got.Rejected)
	}
	if got.Results[0].Value != int64(21) || got.Results[0].Type != "integer" {
		t.Errorf("Results[0] = %+v, want integer 21", got.Results[0])
	}
	if got.Results[1].Value != "0" || !got.Results[1].Fallback {
		t.Errorf("Results[1] = %+v, want fallback zero", got.Results[1])
	}
	if got.Results[2].Error == nil || got.Results[2].Error.Status != http.StatusUnprocessableEntity {
		t.Errorf("Results[2] = %+v, want 422 problem", got.Results[2])
	}
	if got.Results[3].Value != nil || got.Results[3].Error != nil {
		t.Errorf("Results[3] = %+v, want absent", got.Results[3])
	}
}

func TestStatusOf_UnsupportedItem(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: %q", domain.ErrUnsupportedType, "uuid")
	if got := dto.StatusOf(err); got != http.StatusBadRequest {
		t.Errorf("StatusOf = %d, want 400", got)
	}
}
