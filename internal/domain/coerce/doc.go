// Package coerce is the coercion engine behind typed attributes.
//
// Given a raw input and a declared type tag, an Engine produces the canonical
// Go value for that tag, substitutes a fallback, or rejects the input:
//
//	engine, err := coerce.NewEngine(coerce.WithZone(zone), coerce.WithCurrency("USD"))
//	v, err := engine.Coerce("00001234", coerce.TagStrictInteger) // int64(1234)
//	v, err = engine.Coerce("garbage", coerce.TagMoney)           // zero USD
//	v, err = engine.Coerce("not a date", coerce.TagDate)         // *ParseError
//
// Each tag has its own failure policy and they are not interchangeable:
// temporal tags reject malformed input (the error wraps domain.ErrMalformed),
// numeric and money tags fall back to zero, strict integers fall back to
// absent (nil), and booleans compute a value from any input. A nil input is
// always absent, for every tag.
//
// The engine holds only immutable configuration (ambient zone and currency),
// so a single Engine may be shared by any number of goroutines.
package coerce
