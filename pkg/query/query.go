package query

import (
	"net/url"
	"strconv"
	"time"
)

// Params wraps raw query-string values with typed, defaulted accessors.
// Absent or unparseable values fall back to the declared default; no accessor
// ever fails. Required-ness is the caller's concern, not this layer's.
type Params struct {
	values url.Values
}

func From(values url.Values) Params {
	return Params{values: values}
}

func (p Params) String(key, def string) string {
	if !p.values.Has(key) {
		return def
	}
	return p.values.Get(key)
}

func (p Params) Int(key string, def int) int {
	raw := p.values.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func (p Params) Uint(key string, def uint) uint {
	raw := p.values.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return def
	}
	return uint(n)
}

// Bool accepts only the literals "true" and "false".
func (p Params) Bool(key string, def bool) bool {
	switch p.values.Get(key) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// OptionalBool returns nil unless the value is literally "true" or "false",
// so filters can distinguish "not asked" from "asked for false".
func (p Params) OptionalBool(key string) *bool {
	switch p.values.Get(key) {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	default:
		return nil
	}
}

// OptionalTime parses the value with the given layout, nil when absent or
// malformed.
func (p Params) OptionalTime(key, layout string) *time.Time {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// OptionalDateEnd parses a date like OptionalTime and returns the start of
// the following day, so an inclusive day bound can be applied with an
// exclusive comparison.
func (p Params) OptionalDateEnd(key, layout string) *time.Time {
	t := p.OptionalTime(key, layout)
	if t == nil {
		return nil
	}
	end := t.AddDate(0, 0, 1)
	return &end
}

// Page returns the 1-based page number, never below 1.
func (p Params) Page() int {
	page := p.Int("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// Limit returns the page size, defaulting to 10, never below 1. Both "limit"
// and "size" are accepted, with "limit" taking precedence.
func (p Params) Limit() int {
	limit := p.Int("limit", 0)
	if limit < 1 {
		limit = p.Int("size", 10)
	}
	if limit < 1 {
		limit = 10
	}
	return limit
}
