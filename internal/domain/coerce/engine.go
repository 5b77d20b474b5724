package coerce

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/jsamuelsen11/attrd/internal/domain"
)

// DefaultCurrency is the money currency used when none is configured.
const DefaultCurrency = money.USD

// Engine converts raw inputs into the canonical value of a Tag.
type Engine struct {
	zone     Zone
	currency string
	fraction int
}

// Option configures an Engine.
type Option func(*Engine)

// WithZone sets the ambient time-zone context. A nil zone leaves the engine
// without one.
func WithZone(z Zone) Option {
	return func(e *Engine) {
		e.zone = z
	}
}

// WithCurrency sets the ISO 4217 currency of money values.
// Defaults to DefaultCurrency.
func WithCurrency(code string) Option {
	return func(e *Engine) {
		e.currency = strings.ToUpper(strings.TrimSpace(code))
	}
}

// NewEngine returns an Engine. It fails if the currency is unknown.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(e)
	}

	cur := money.GetCurrency(e.currency)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", e.currency)
	}
	e.currency = cur.Code
	e.fraction = cur.Fraction

	return e, nil
}

// Zone returns the ambient zone, or nil when none is configured.
func (e *Engine) Zone() Zone {
	return e.zone
}

// HasZone reports whether an ambient zone is configured.
func (e *Engine) HasZone() bool {
	return e.zone != nil
}

// Currency returns the ISO 4217 code used for money values.
func (e *Engine) Currency() string {
	return e.currency
}

// Result is the outcome of an accepted coercion.
type Result struct {
	// Value is the canonical value, or nil when absent.
	Value any
	// Fallback is set when the input could not be read and a default
	// (zero or absent) was substituted.
	Fallback bool
}

// Absent reports whether the result holds no value.
func (r Result) Absent() bool {
	return r.Value == nil
}

// Coerce converts raw into the canonical value for tag. A nil result with a
// nil error means absent. A non-nil error means the input was rejected; it
// wraps domain.ErrCoercion.
func (e *Engine) Coerce(raw any, tag Tag) (any, error) {
	res, err := e.Convert(raw, tag)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Convert is Coerce that also reports whether a fallback was substituted.
func (e *Engine) Convert(raw any, tag Tag) (Result, error) {
	raw = deref(raw)
	if raw == nil {
		if !tag.IsValid() {
			return Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, tag)
		}
		return Result{}, nil
	}

	switch tag {
	case TagString:
		return Result{Value: Text(raw)}, nil
	case TagInteger:
		return integer(raw), nil
	case TagStrictInteger:
		return strictInteger(raw), nil
	case TagBoolean:
		return boolean(raw), nil
	case TagDecimal:
		return bigDecimal(raw), nil
	case TagMoney:
		return e.money(raw), nil
	case TagDate:
		return e.date(raw)
	case TagDateTime:
		return dateTime(raw)
	case TagTime:
		return e.instant(raw)
	default:
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, tag)
	}
}

// boolean accepts true, "true" and "y" in any case as true. Everything else
// that is not already a bool is false.
func boolean(raw any) Result {
	if b, ok := raw.(bool); ok {
		return Result{Value: b}
	}
	s := strings.ToLower(Text(raw))
	return Result{Value: s == "true" || s == "y"}
}
