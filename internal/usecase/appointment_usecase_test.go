package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAppointmentRepo struct {
	ListFunc         func(filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByIDFunc     func(id uint) (*entity.Appointment, error)
	FindConflictFunc func(doctorID uint, at time.Time, excludeID uint) (*entity.Appointment, error)
	CreateFunc       func(appointment *entity.Appointment) error
	UpdateFunc       func(appointment *entity.Appointment) error
	UpdateStatusFunc func(id uint, status entity.AppointmentStatus) (int64, error)
}

func (s *stubAppointmentRepo) List(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	if s.ListFunc != nil {
		return s.ListFunc(filter)
	}
	return nil, 0, nil
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(id)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) FindConflict(db *gorm.DB, doctorID uint, at time.Time, excludeID uint) (*entity.Appointment, error) {
	if s.FindConflictFunc != nil {
		return s.FindConflictFunc(doctorID, at, excludeID)
	}
	return nil, nil
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(appointment)
	}
	return nil
}

func (s *stubAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(appointment)
	}
	return nil
}

func (s *stubAppointmentRepo) UpdateStatus(db *gorm.DB, id uint, status entity.AppointmentStatus) (int64, error) {
	if s.UpdateStatusFunc != nil {
		return s.UpdateStatusFunc(id, status)
	}
	return 1, nil
}

func (s *stubAppointmentRepo) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaStatus
}

type stubDoctorRepo struct {
	FindByIDFunc func(id uint) (*entity.Doctor, error)
}

func (s *stubDoctorRepo) List(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	return nil, 0, nil
}

func (s *stubDoctorRepo) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(id)
	}
	return &entity.Doctor{ID: id, Name: "Dr. Souza"}, nil
}

func (s *stubDoctorRepo) FindByCRM(db *gorm.DB, crm string) (*entity.Doctor, error)     { return nil, nil }
func (s *stubDoctorRepo) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) { return nil, nil }
func (s *stubDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error               { return nil }
func (s *stubDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error               { return nil }
func (s *stubDoctorRepo) ReplaceSpecialties(db *gorm.DB, doctor *entity.Doctor, specialties []entity.Specialty) error {
	return nil
}
func (s *stubDoctorRepo) Deactivate(db *gorm.DB, id uint) (int64, error) { return 1, nil }
func (s *stubDoctorRepo) DeletionPolicy() entity.DeletionPolicy          { return entity.SoftDeleteViaFlag }

func existingPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{
		FindByIDFunc: func(id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "Maria Silva"}, nil
		},
	}
}

func TestAppointmentCreateRejectsBadTimestamp(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewAppointmentUsecase(db, testLogger(), &stubAppointmentRepo{}, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   1,
		DoctorID:    2,
		ScheduledAt: "2026-09-01 14:00",
	})

	assert.ErrorIs(t, err, ErrInvalidScheduledAt)
}

func TestAppointmentCreateRejectsTakenSlot(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &stubAppointmentRepo{
		FindConflictFunc: func(doctorID uint, at time.Time, excludeID uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: 33, DoctorID: doctorID, ScheduledAt: at}, nil
		},
	}

	uc := NewAppointmentUsecase(db, testLogger(), repo, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   1,
		DoctorID:    2,
		ScheduledAt: "2026-09-01T14:00:00Z",
	})

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateDefaultsToScheduled(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entity.Appointment
	repo := &stubAppointmentRepo{
		CreateFunc: func(appointment *entity.Appointment) error {
			appointment.ID = 50
			created = appointment
			return nil
		},
	}
	audit := &stubAuditService{}

	uc := NewAppointmentUsecase(db, testLogger(), repo, existingPatientRepo(), &stubDoctorRepo{}, audit)

	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   1,
		DoctorID:    2,
		ScheduledAt: "2026-09-01T14:00:00Z",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.AppointmentStatusScheduled, created.Status)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
	assert.Equal(t, "Maria Silva", resp.Patient.Name)
	assert.Contains(t, audit.actions, entity.AuditActionAppointmentCreate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateAcceptsZonelessTimestamp(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entity.Appointment
	repo := &stubAppointmentRepo{
		CreateFunc: func(appointment *entity.Appointment) error {
			appointment.ID = 51
			created = appointment
			return nil
		},
	}

	uc := NewAppointmentUsecase(db, testLogger(), repo, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   1,
		DoctorID:    2,
		ScheduledAt: "2026-09-01T14:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), created.ScheduledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateUnknownPatient(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	uc := NewAppointmentUsecase(db, testLogger(), &stubAppointmentRepo{}, &stubPatientRepo{}, &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   404,
		DoctorID:    2,
		ScheduledAt: "2026-09-01T14:00:00Z",
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCreateUnknownDoctor(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	doctorRepo := &stubDoctorRepo{
		FindByIDFunc: func(id uint) (*entity.Doctor, error) {
			return nil, nil
		},
	}

	uc := NewAppointmentUsecase(db, testLogger(), &stubAppointmentRepo{}, existingPatientRepo(), doctorRepo, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   1,
		DoctorID:    404,
		ScheduledAt: "2026-09-01T14:00:00Z",
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateStatusRejectsUnknownValue(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewAppointmentUsecase(db, testLogger(), &stubAppointmentRepo{}, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.UpdateStatus(context.Background(), 1, "DONE")

	assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)
}

func TestAppointmentReactivationRechecksSlot(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	at := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		FindByIDFunc: func(id uint) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:          id,
				DoctorID:    2,
				ScheduledAt: at,
				Status:      entity.AppointmentStatusCanceled,
			}, nil
		},
		FindConflictFunc: func(doctorID uint, conflictAt time.Time, excludeID uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: 99}, nil
		},
	}

	uc := NewAppointmentUsecase(db, testLogger(), repo, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	_, err := uc.UpdateStatus(context.Background(), 1, entity.AppointmentStatusScheduled)

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCancelIsStatusChange(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var canceled entity.AppointmentStatus
	repo := &stubAppointmentRepo{
		FindByIDFunc: func(id uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, Status: entity.AppointmentStatusScheduled}, nil
		},
		UpdateStatusFunc: func(id uint, status entity.AppointmentStatus) (int64, error) {
			canceled = status
			return 1, nil
		},
	}

	uc := NewAppointmentUsecase(db, testLogger(), repo, existingPatientRepo(), &stubDoctorRepo{}, &stubAuditService{})

	err := uc.Cancel(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCanceled, canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
