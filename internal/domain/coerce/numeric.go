package coerce

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// integer reads the leading integer of any input. Text without a numeric
// prefix is 0; out-of-range values saturate.
func integer(raw any) Result {
	switch x := raw.(type) {
	case bool:
		if x {
			return Result{Value: int64(1)}
		}
		return Result{Value: int64(0)}
	case decimal.Decimal:
		return Result{Value: saturate(x.Truncate(0))}
	case *money.Money:
		return Result{Value: saturate(MoneyAmount(x).Truncate(0))}
	}
	if n, ok := intOf(raw); ok {
		return Result{Value: n}
	}
	if f, ok := floatOf(raw); ok {
		if math.IsNaN(f) {
			return Result{Value: int64(0), Fallback: true}
		}
		return Result{Value: saturate(decimal.NewFromFloat(clampFloat(f)).Truncate(0))}
	}

	n, ok := prefixInt(Text(raw))
	return Result{Value: n, Fallback: !ok}
}

// strictInteger accepts whole numbers only. Text must be digits with an
// optional sign and surrounding whitespace; anything else is absent.
func strictInteger(raw any) Result {
	if n, ok := intOf(raw); ok {
		return Result{Value: n}
	}
	if f, ok := floatOf(raw); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Result{Fallback: true}
		}
		return strictFromDecimal(decimal.NewFromFloat(f))
	}
	if d, ok := raw.(decimal.Decimal); ok {
		return strictFromDecimal(d)
	}

	s, ok := textInput(raw)
	if !ok {
		return Result{Fallback: true}
	}
	n, ok := parseStrictInt(s)
	if !ok {
		return Result{Fallback: true}
	}
	return Result{Value: n}
}

func strictFromDecimal(d decimal.Decimal) Result {
	t := d.Truncate(0)
	if t.GreaterThan(maxInt64) || t.LessThan(minInt64) {
		return Result{Fallback: true}
	}
	return Result{Value: t.IntPart()}
}

// bigDecimal converts floats through their shortest representation and
// parses everything else as a decimal literal. Unreadable input is zero.
func bigDecimal(raw any) Result {
	switch x := raw.(type) {
	case decimal.Decimal:
		return Result{Value: x}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{Value: decimal.Zero, Fallback: true}
		}
		return Result{Value: decimal.NewFromFloat(x)}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return Result{Value: decimal.Zero, Fallback: true}
		}
		return Result{Value: decimal.NewFromFloat32(x)}
	case *money.Money:
		return Result{Value: MoneyAmount(x)}
	}

	d, ok := parseDecimal(Text(raw))
	if !ok {
		return Result{Value: decimal.Zero, Fallback: true}
	}
	return Result{Value: d}
}

// money reads the canonical text of raw as a decimal amount in major units
// and converts it to minor units of the engine currency, rounding half to
// even. Unreadable input is a zero amount.
func (e *Engine) money(raw any) Result {
	switch x := raw.(type) {
	case *money.Money:
		return Result{Value: x}
	case money.Money:
		return Result{Value: &x}
	}

	d, ok := parseDecimal(Text(raw))
	if !ok {
		return Result{Value: money.New(0, e.currency), Fallback: true}
	}
	minor := d.Shift(int32(e.fraction)).RoundBank(0)
	if minor.GreaterThan(maxInt64) || minor.LessThan(minInt64) {
		return Result{Value: money.New(0, e.currency), Fallback: true}
	}
	return Result{Value: money.New(minor.IntPart(), e.currency)}
}

// parseDecimal reads a decimal literal. Single underscores between digits
// are accepted as separators, as in "1_000.50".
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, "_") {
		var ok bool
		if s, ok = stripDigitSeparators(s); !ok {
			return decimal.Zero, false
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// stripDigitSeparators removes underscores that sit between two digits and
// reports false for any other underscore.
func stripDigitSeparators(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i+1 == len(s) || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

// parseStrictInt parses base-10 text: optional surrounding whitespace, an
// optional sign, then digits only. Leading zeros are allowed.
func parseStrictInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// prefixInt reads the longest integer prefix of s after leading whitespace:
// an optional sign followed by digits, with single underscores allowed
// between digits. It reports false when no digit was read.
func prefixInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		b.WriteByte(s[i])
		i++
	}
	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			b.WriteByte(c)
			digits++
			continue
		}
		if c == '_' && digits > 0 && i+1 < len(s) && isDigit(s[i+1]) {
			continue
		}
		break
	}
	if digits == 0 {
		return 0, false
	}

	// On overflow ParseInt returns the saturated value.
	n, _ := strconv.ParseInt(b.String(), 10, 64)
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// intOf returns integer kinds as int64, saturating large unsigned values.
func intOf(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return clampUint(uint64(x)), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return clampUint(x), true
	default:
		return 0, false
	}
}

func floatOf(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

// clampFloat maps infinities to the largest finite floats so they can be
// converted to decimals and saturated.
func clampFloat(f float64) float64 {
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	default:
		return f
	}
}

func saturate(d decimal.Decimal) int64 {
	switch {
	case d.GreaterThan(maxInt64):
		return math.MaxInt64
	case d.LessThan(minInt64):
		return math.MinInt64
	default:
		return d.IntPart()
	}
}
