package usecase

import (
	"context"
	"testing"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// stubPatientRepo fakes the patient repository with overridable functions.
type stubPatientRepo struct {
	ListFunc        func(filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	FindByIDFunc    func(id uint) (*entity.Patient, error)
	FindByCPFFunc   func(cpf string) (*entity.Patient, error)
	FindByEmailFunc func(email string) (*entity.Patient, error)
	CreateFunc      func(patient *entity.Patient) error
	UpdateFunc      func(patient *entity.Patient) error
	DeactivateFunc  func(id uint) (int64, error)
}

func (s *stubPatientRepo) List(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	if s.ListFunc != nil {
		return s.ListFunc(filter)
	}
	return nil, 0, nil
}

func (s *stubPatientRepo) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(id)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByCPF(db *gorm.DB, cpf string) (*entity.Patient, error) {
	if s.FindByCPFFunc != nil {
		return s.FindByCPFFunc(cpf)
	}
	return nil, nil
}

func (s *stubPatientRepo) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(email)
	}
	return nil, nil
}

func (s *stubPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(patient)
	}
	return nil
}

func (s *stubPatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(patient)
	}
	return nil
}

func (s *stubPatientRepo) Deactivate(db *gorm.DB, id uint) (int64, error) {
	if s.DeactivateFunc != nil {
		return s.DeactivateFunc(id)
	}
	return 1, nil
}

func (s *stubPatientRepo) DeletionPolicy() entity.DeletionPolicy {
	return entity.SoftDeleteViaFlag
}

// stubAuditService swallows audit writes.
type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID string, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *stubAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *stubAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func TestPatientCreateRejectsDuplicateCPF(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &stubPatientRepo{
		FindByCPFFunc: func(cpf string) (*entity.Patient, error) {
			return &entity.Patient{ID: 1, CPF: cpf}, nil
		},
	}

	uc := NewPatientUsecase(db, testLogger(), repo, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		Name:      "Maria Silva",
		CPF:       "52998224725",
		BirthDate: "1990-05-10",
		Phone:     "11999990000",
	})

	assert.ErrorIs(t, err, ErrPatientCPFExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientCreateRejectsBadBirthDate(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewPatientUsecase(db, testLogger(), &stubPatientRepo{}, &stubAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		Name:      "Maria Silva",
		CPF:       "52998224725",
		BirthDate: "10/05/1990",
		Phone:     "11999990000",
	})

	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestPatientCreateSuccessWritesAudit(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &stubPatientRepo{
		CreateFunc: func(patient *entity.Patient) error {
			patient.ID = 10
			return nil
		},
	}
	audit := &stubAuditService{}

	uc := NewPatientUsecase(db, testLogger(), repo, audit)

	patient, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		Name:      "Maria Silva",
		CPF:       "52998224725",
		BirthDate: "1990-05-10",
		Phone:     "11999990000",
		Email:     "maria@clinic.test",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), patient.ID)
	assert.Equal(t, "1990-05-10", patient.BirthDate)
	assert.Contains(t, audit.actions, entity.AuditActionPatientCreate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientGetNotFound(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewPatientUsecase(db, testLogger(), &stubPatientRepo{}, &stubAuditService{})

	_, err := uc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDeleteNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	uc := NewPatientUsecase(db, testLogger(), &stubPatientRepo{}, &stubAuditService{})

	err := uc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientUpdateAppliesPartialPatch(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	email := "old@clinic.test"
	existing := &entity.Patient{
		ID:    5,
		Name:  "Maria Silva",
		CPF:   "52998224725",
		Phone: "11999990000",
		Email: &email,
	}

	var saved *entity.Patient
	repo := &stubPatientRepo{
		FindByIDFunc: func(id uint) (*entity.Patient, error) { return existing, nil },
		UpdateFunc: func(patient *entity.Patient) error {
			saved = patient
			return nil
		},
	}

	uc := NewPatientUsecase(db, testLogger(), repo, &stubAuditService{})

	resp, err := uc.Update(context.Background(), 5, &dto.UpdatePatientRequest{
		Phone: "11888887777",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "11888887777", saved.Phone)
	assert.Equal(t, "Maria Silva", saved.Name)
	assert.Equal(t, "old@clinic.test", resp.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
