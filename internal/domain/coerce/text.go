package coerce

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Text returns the canonical text form of v. It is the string coercion and
// the first step of money coercion.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		return x.String()
	case *money.Money:
		return MoneyAmount(x).StringFixed(int32(x.Currency().Fraction))
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if s, ok := textInput(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// MoneyAmount returns m in major units, e.g. 1234 USD cents as 12.34.
func MoneyAmount(m *money.Money) decimal.Decimal {
	return decimal.New(m.Amount(), -int32(m.Currency().Fraction))
}

// textInput reports whether v is text: a string, a byte slice, or a value of
// a named string type such as json.Number.
func textInput(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// deref follows pointers so that *string, *int64 and friends coerce like
// their targets. A nil pointer is absent. *money.Money is already canonical.
func deref(raw any) any {
	if raw == nil {
		return nil
	}
	if m, ok := raw.(*money.Money); ok {
		if m == nil {
			return nil
		}
		return m
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Pointer {
		return raw
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		if m, ok := rv.Interface().(*money.Money); ok {
			return m
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
