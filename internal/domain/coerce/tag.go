package coerce

import (
	"fmt"

	"github.com/jsamuelsen11/attrd/internal/domain"
)

// Tag identifies the target type of an attribute. The set is closed.
type Tag string

const (
	TagString        Tag = "string"
	TagMoney         Tag = "money"
	TagTime          Tag = "time"
	TagDecimal       Tag = "big_decimal"
	TagDate          Tag = "date"
	TagInteger       Tag = "integer"
	TagStrictInteger Tag = "strict_integer"
	TagBoolean       Tag = "boolean"
	TagDateTime      Tag = "date_time"
)

// Tags returns every supported tag in declaration order.
func Tags() []Tag {
	return []Tag{
		TagString,
		TagMoney,
		TagTime,
		TagDecimal,
		TagDate,
		TagInteger,
		TagStrictInteger,
		TagBoolean,
		TagDateTime,
	}
}

// IsValid returns true if the tag is one of the defined constants.
func (t Tag) IsValid() bool {
	switch t {
	case TagString, TagMoney, TagTime, TagDecimal, TagDate,
		TagInteger, TagStrictInteger, TagBoolean, TagDateTime:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	return string(t)
}

// ParseTag converts a configuration or request string into a Tag.
// Unknown names return an error wrapping domain.ErrUnsupportedType.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedType, s)
	}
	return t, nil
}
