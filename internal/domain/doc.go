// Package domain contains shared domain types used across the attribute
// sub-packages. The coercion engine lives in domain/coerce, the attribute
// binder in domain/attr, and the stored record entity in domain/record.
// This root package holds the sentinel errors that classify every failure:
// configuration errors (ErrUnsupportedType), rejected writes (ErrCoercion and
// the ErrMalformed / ErrZoneRequired reasons that wrap it), and the lookup and
// validation errors used by the service layers.
package domain
