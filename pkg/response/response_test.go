package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"exact division", 20, 1, 10, 2},
		{"partial last page", 21, 1, 10, 3},
		{"empty", 0, 1, 10, 0},
		{"single item", 1, 1, 10, 1},
		{"limit clamped", 5, 1, 0, 5},
		{"page past end echoed", 3, 9, 10, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewMeta(tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.wantPages, meta.TotalPages)
			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.total, meta.Total)
		})
	}
}

func TestFromErrorKnown(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperror.NotFound("Patient not found"), "fallback")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Patient not found", body.Message)
}

func TestFromErrorUnknownHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, errors.New("pq: connection reset"), "Failed to list patients")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to list patients", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestFromErrorWrappedAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := apperror.Conflict("CPF already registered").Wrap(errors.New("duplicate key"))
	FromError(rec, wrapped, "fallback")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "ok", []string{"a"}, NewMeta(1, 1, 10))

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	if assert.NotNil(t, body.Meta) {
		assert.Equal(t, int64(1), body.Meta.Total)
	}
}
