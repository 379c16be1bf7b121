package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringDefaults(t *testing.T) {
	params := From(url.Values{"name": {"Ana"}})

	assert.Equal(t, "Ana", params.String("name", ""))
	assert.Equal(t, "fallback", params.String("missing", "fallback"))
}

func TestIntAndUint(t *testing.T) {
	params := From(url.Values{
		"page":  {"3"},
		"bad":   {"abc"},
		"count": {"42"},
	})

	assert.Equal(t, 3, params.Int("page", 1))
	assert.Equal(t, 1, params.Int("bad", 1))
	assert.Equal(t, 7, params.Int("missing", 7))
	assert.Equal(t, uint(42), params.Uint("count", 0))
	assert.Equal(t, uint(0), params.Uint("bad", 0))
}

func TestBoolAcceptsOnlyLiterals(t *testing.T) {
	params := From(url.Values{
		"a": {"true"},
		"b": {"false"},
		"c": {"1"},
	})

	assert.True(t, params.Bool("a", false))
	assert.False(t, params.Bool("b", true))
	assert.True(t, params.Bool("c", true))
	assert.False(t, params.Bool("missing", false))
}

func TestOptionalBool(t *testing.T) {
	params := From(url.Values{
		"active":  {"false"},
		"enabled": {"true"},
		"garbage": {"yes"},
	})

	active := params.OptionalBool("active")
	if assert.NotNil(t, active) {
		assert.False(t, *active)
	}

	enabled := params.OptionalBool("enabled")
	if assert.NotNil(t, enabled) {
		assert.True(t, *enabled)
	}

	assert.Nil(t, params.OptionalBool("garbage"))
	assert.Nil(t, params.OptionalBool("missing"))
}

func TestOptionalTime(t *testing.T) {
	params := From(url.Values{
		"from": {"2026-03-15"},
		"bad":  {"15/03/2026"},
	})

	from := params.OptionalTime("from", "2006-01-02")
	if assert.NotNil(t, from) {
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *from)
	}

	assert.Nil(t, params.OptionalTime("bad", "2006-01-02"))
	assert.Nil(t, params.OptionalTime("missing", "2006-01-02"))
}

func TestOptionalDateEnd(t *testing.T) {
	params := From(url.Values{
		"to":  {"2026-03-01"},
		"bad": {"01/03/2026"},
	})

	end := params.OptionalDateEnd("to", "2006-01-02")
	if assert.NotNil(t, end) {
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *end)
	}

	assert.Nil(t, params.OptionalDateEnd("bad", "2006-01-02"))
	assert.Nil(t, params.OptionalDateEnd("missing", "2006-01-02"))
}

func TestPageAndLimitFloors(t *testing.T) {
	cases := []struct {
		name      string
		values    url.Values
		wantPage  int
		wantLimit int
	}{
		{"defaults", url.Values{}, 1, 10},
		{"explicit", url.Values{"page": {"4"}, "limit": {"25"}}, 4, 25},
		{"size alias", url.Values{"size": {"25"}}, 1, 25},
		{"limit wins over size", url.Values{"limit": {"5"}, "size": {"25"}}, 1, 5},
		{"zero page", url.Values{"page": {"0"}}, 1, 10},
		{"negative", url.Values{"page": {"-2"}, "limit": {"-5"}}, 1, 10},
		{"garbage", url.Values{"page": {"x"}, "limit": {"y"}}, 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := From(tc.values)
			assert.Equal(t, tc.wantPage, params.Page())
			assert.Equal(t, tc.wantLimit, params.Limit())
		})
	}
}
