package coerce

import (
	"fmt"

	"github.com/jsamuelsen11/attrd/internal/domain"
)

// ParseError is a rejected coercion of Raw into Tag. It matches
// domain.ErrMalformed and domain.ErrCoercion with errors.Is, and the
// underlying parser error when there is one.
type ParseError struct {
	Tag Tag
	Raw any
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parsing %q into a %s: %s", Text(e.Raw), e.Tag, domain.ErrMalformed)
	}
	return fmt.Sprintf("parsing %q into a %s: %s: %v", Text(e.Raw), e.Tag, domain.ErrMalformed, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrMalformed}
	}
	return []error{domain.ErrMalformed, e.Err}
}
