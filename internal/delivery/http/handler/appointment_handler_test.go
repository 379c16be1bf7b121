package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/usecase"
	"github.com/clinicdev/clinic-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	ListFunc func(filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error)
}

func (s *stubAppointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error) {
	if s.ListFunc != nil {
		return s.ListFunc(filter)
	}
	return nil, 0, nil
}

func (s *stubAppointmentUsecase) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: 1}, nil
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: id}, nil
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id uint, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	return &dto.AppointmentResponse{ID: id, Status: string(status)}, nil
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, id uint) error {
	return nil
}

func newAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewAppointmentHandler(log, uc, validator.NewValidator())
}

// The "to" date names a whole day, so the filter bound must cover
// appointments scheduled after midnight on that day.
func TestAppointmentListDateRangeIncludesLastDay(t *testing.T) {
	var captured *entity.AppointmentFilter
	h := newAppointmentHandler(&stubAppointmentUsecase{
		ListFunc: func(filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/appointments?from=2026-02-01&to=2026-03-01", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.From)
	require.NotNil(t, captured.To)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *captured.From)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *captured.To)

	lastDayAfternoon := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	assert.True(t, lastDayAfternoon.Before(*captured.To))
}
