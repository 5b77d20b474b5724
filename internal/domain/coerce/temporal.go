package coerce

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jsamuelsen11/attrd/internal/domain"
)

var (
	// errNotText is the parse cause for non-text input to a temporal tag.
	errNotText = errors.New("input is not text")

	// errBareDigits is the parse cause for all-digit text other than yyyymmdd,
	// which dateparse would read as a Unix timestamp or a bare year.
	errBareDigits = errors.New("digits-only text must be yyyymmdd")
)

// compactDateLen is the length of the only accepted all-digit form, yyyymmdd.
const compactDateLen = 8

// date reads a calendar date. With an ambient zone the text is parsed in that
// zone and the zoned result's date is kept.
func (e *Engine) date(raw any) (Result, error) {
	switch x := raw.(type) {
	case Date:
		return Result{Value: x}, nil
	case DateTime:
		return Result{Value: DateOf(x.Time)}, nil
	case time.Time:
		if e.zone != nil {
			x = x.In(e.zone.Location())
		}
		return Result{Value: DateOf(x)}, nil
	}

	s, ok := textInput(raw)
	if !ok {
		return Result{}, &ParseError{Tag: TagDate, Raw: raw, Err: errNotText}
	}

	if e.zone != nil {
		t, err := e.zone.Parse(s)
		if err != nil {
			return Result{}, &ParseError{Tag: TagDate, Raw: raw, Err: err}
		}
		return Result{Value: DateOf(t.In(e.zone.Location()))}, nil
	}

	t, err := parseNaive(s)
	if err != nil {
		return Result{}, &ParseError{Tag: TagDate, Raw: raw, Err: err}
	}
	return Result{Value: DateOf(t)}, nil
}

// dateTime reads a date and time of day without consulting the ambient zone.
func dateTime(raw any) (Result, error) {
	switch x := raw.(type) {
	case DateTime:
		return Result{Value: x}, nil
	case time.Time:
		return Result{Value: NewDateTime(x)}, nil
	case Date:
		return Result{Value: NewDateTime(x.In(time.UTC))}, nil
	}

	s, ok := textInput(raw)
	if !ok {
		return Result{}, &ParseError{Tag: TagDateTime, Raw: raw, Err: errNotText}
	}
	t, err := parseNaive(s)
	if err != nil {
		return Result{}, &ParseError{Tag: TagDateTime, Raw: raw, Err: err}
	}
	return Result{Value: NewDateTime(t)}, nil
}

// instant reads a zoned point in time. Anything but a time.Time needs the
// ambient zone, which is checked before parsing.
func (e *Engine) instant(raw any) (Result, error) {
	if t, ok := raw.(time.Time); ok {
		return Result{Value: t}, nil
	}
	if e.zone == nil {
		return Result{}, domain.ErrZoneRequired
	}
	loc := e.zone.Location()

	switch x := raw.(type) {
	case DateTime:
		return Result{Value: x.In(loc)}, nil
	case Date:
		return Result{Value: x.In(loc)}, nil
	}

	s, ok := textInput(raw)
	if !ok {
		return Result{}, &ParseError{Tag: TagTime, Raw: raw, Err: errNotText}
	}
	t, err := e.zone.Parse(s)
	if err != nil {
		return Result{}, &ParseError{Tag: TagTime, Raw: raw, Err: err}
	}
	return Result{Value: t}, nil
}

// parseNaive parses s with no ambient zone; text without an offset is UTC.
func parseNaive(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if err := checkBareDigits(s); err != nil {
		return time.Time{}, err
	}
	return dateparse.ParseAny(s)
}

// checkBareDigits rejects text made only of digits unless it is yyyymmdd.
func checkBareDigits(s string) error {
	if s == "" || len(s) == compactDateLen {
		return nil
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return nil
		}
	}
	return errBareDigits
}
