package coerce

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Zone is the ambient time-zone context. When an Engine has one, date text is
// parsed through it and zoned times become available; without one, time
// attributes cannot be coerced at all.
type Zone interface {
	// Location returns the zone's location.
	Location() *time.Location
	// Parse reads s as a point in time. Text without an explicit offset is
	// interpreted in Location.
	Parse(s string) (time.Time, error)
}

// LocationZone is a Zone backed by a *time.Location.
type LocationZone struct {
	loc *time.Location
}

// NewZone returns a Zone for loc. A nil loc means UTC.
func NewZone(loc *time.Location) *LocationZone {
	if loc == nil {
		loc = time.UTC
	}
	return &LocationZone{loc: loc}
}

// LoadZone returns a Zone for an IANA zone name such as "America/New_York".
func LoadZone(name string) (*LocationZone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", name, err)
	}
	return NewZone(loc), nil
}

// Location implements Zone.
func (z *LocationZone) Location() *time.Location {
	return z.loc
}

// Parse implements Zone. The result is expressed in the zone's location even
// when the text carried a different offset. All-digit text other than
// yyyymmdd is rejected.
func (z *LocationZone) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if err := checkBareDigits(s); err != nil {
		return time.Time{}, err
	}
	t, err := dateparse.ParseIn(s, z.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(z.loc), nil
}

// String returns the zone name.
func (z *LocationZone) String() string {
	return z.loc.String()
}
