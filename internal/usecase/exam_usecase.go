package usecase

import (
	"context"

	"github.com/clinicdev/clinic-api/internal/converter"
	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/domain/entity"
	"github.com/clinicdev/clinic-api/internal/domain/repository"
	"github.com/clinicdev/clinic-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExamNotFound      = apperror.NotFound("Exam not found")
	ErrInvalidExamStatus = apperror.BadRequest("Invalid exam status")
)

type ExamUsecase interface {
	List(ctx context.Context, filter *entity.ExamFilter) ([]dto.ExamResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.ExamResponse, error)
	Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateExamRequest) (*dto.ExamResponse, error)
	UpdateStatus(ctx context.Context, id uint, status entity.ExamStatus) (*dto.ExamResponse, error)
	SetResult(ctx context.Context, id uint, req *dto.SetExamResultRequest) (*dto.ExamResponse, error)
	Cancel(ctx context.Context, id uint) error
}

type examUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	examRepo        repository.ExamRepository
	appointmentRepo repository.AppointmentRepository
}

func NewExamUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	examRepo repository.ExamRepository,
	appointmentRepo repository.AppointmentRepository,
) ExamUsecase {
	return &examUsecase{
		db:              db,
		log:             log,
		examRepo:        examRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *examUsecase) List(ctx context.Context, filter *entity.ExamFilter) ([]dto.ExamResponse, int64, error) {
	exams, total, err := u.examRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list exams: %+v", err)
		return nil, 0, err
	}

	return converter.ExamsToResponses(exams), total, nil
}

func (u *examUsecase) Get(ctx context.Context, id uint) (*dto.ExamResponse, error) {
	exam, err := u.examRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	exam := &entity.Exam{
		AppointmentID: req.AppointmentID,
		Type:          req.Type,
		Status:        entity.ExamStatusRequested,
	}

	if err := u.examRepo.Create(tx, exam); err != nil {
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	exam.Appointment = *appointment
	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) Update(ctx context.Context, id uint, req *dto.UpdateExamRequest) (*dto.ExamResponse, error) {
	db := u.db.WithContext(ctx)

	exam, err := u.examRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	if req.Type != "" {
		exam.Type = req.Type
	}

	if err := u.examRepo.Update(db, exam); err != nil {
		u.log.Warnf("Failed to update exam: %+v", err)
		return nil, err
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) UpdateStatus(ctx context.Context, id uint, status entity.ExamStatus) (*dto.ExamResponse, error) {
	if !entity.ValidExamStatus(status) {
		return nil, ErrInvalidExamStatus
	}

	db := u.db.WithContext(ctx)

	exam, err := u.examRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	if _, err := u.examRepo.UpdateStatus(db, id, status); err != nil {
		u.log.Warnf("Failed to update exam status: %+v", err)
		return nil, err
	}
	exam.Status = status

	return converter.ExamToResponse(exam), nil
}

// SetResult stores the result text and moves the exam to COMPLETED in one step.
func (u *examUsecase) SetResult(ctx context.Context, id uint, req *dto.SetExamResultRequest) (*dto.ExamResponse, error) {
	db := u.db.WithContext(ctx)

	exam, err := u.examRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	exam.Result = req.Result
	exam.Status = entity.ExamStatusCompleted

	if err := u.examRepo.Update(db, exam); err != nil {
		u.log.Warnf("Failed to set exam result: %+v", err)
		return nil, err
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) Cancel(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	affected, err := u.examRepo.UpdateStatus(db, id, entity.ExamStatusCanceled)
	if err != nil {
		u.log.Warnf("Failed to cancel exam: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrExamNotFound
	}

	return nil
}
