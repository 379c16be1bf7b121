package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/usecase"
	"github.com/clinicdev/clinic-api/pkg/response"
	"github.com/clinicdev/clinic-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientUsecase struct {
	ListFunc   func(filter *entity.PatientFilter) ([]dto.PatientResponse, int64, error)
	GetFunc    func(id uint) (*dto.PatientResponse, error)
	CreateFunc func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdateFunc func(id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeleteFunc func(id uint) error
}

func (s *stubPatientUsecase) List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, int64, error) {
	if s.ListFunc != nil {
		return s.ListFunc(filter)
	}
	return nil, 0, nil
}

func (s *stubPatientUsecase) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	if s.GetFunc != nil {
		return s.GetFunc(id)
	}
	return nil, usecase.ErrPatientNotFound
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if s.CreateFunc != nil {
		return s.CreateFunc(req)
	}
	return &dto.PatientResponse{ID: 1}, nil
}

func (s *stubPatientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(id, req)
	}
	return &dto.PatientResponse{ID: id}, nil
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id uint) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(id)
	}
	return nil
}

func newPatientHandler(uc usecase.PatientUsecase) *PatientHandler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewPatientHandler(log, uc, validator.NewValidator())
}

func TestPatientListBuildsFilterAndMeta(t *testing.T) {
	var captured *entity.PatientFilter
	h := newPatientHandler(&stubPatientUsecase{
		ListFunc: func(filter *entity.PatientFilter) ([]dto.PatientResponse, int64, error) {
			captured = filter
			return []dto.PatientResponse{{ID: 1, Name: "Maria Silva"}}, 21, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/patients?name=Silva&active=true&page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "Silva", captured.Name)
	require.NotNil(t, captured.Active)
	assert.True(t, *captured.Active)
	assert.Equal(t, 2, captured.Page)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(21), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
	assert.Equal(t, 2, body.Meta.Page)
}

func TestPatientGetInvalidID(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/patients/abc", nil), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatientGetNotFound(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/patients/99", nil), map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatientCreateValidationFailure(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{
		CreateFunc: func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			t.Fatal("usecase must not be called on invalid input")
			return nil, nil
		},
	})

	body := `{"name":"Maria","cpf":"11111111111","birth_date":"1990-05-10","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CPF")
}

func TestPatientCreateMalformedBody(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatientCreateSuccess(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{
		CreateFunc: func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{ID: 7, Name: req.Name}, nil
		},
	})

	body := `{"name":"Maria Silva","cpf":"52998224725","birth_date":"1990-05-10","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestPatientCreateConflictPassesThrough(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{
		CreateFunc: func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientCPFExists
		},
	})

	body := `{"name":"Maria Silva","cpf":"52998224725","birth_date":"1990-05-10","phone":"11999990000"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
