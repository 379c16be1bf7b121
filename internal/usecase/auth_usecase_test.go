package usecase

import (
	"context"
	"testing"

	"github.com/clinicdev/clinic-api/internal/delivery/dto"
	"github.com/clinicdev/clinic-api/internal/delivery/http/middleware"
	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	FindByIDFunc    func(id uint) (*entity.User, error)
	FindByEmailFunc func(email string) (*entity.User, error)
	CreateFunc      func(user *entity.User) error
}

func (s *stubUserRepo) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(email)
	}
	return nil, nil
}

func (s *stubUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(user)
	}
	user.ID = 1
	return nil
}

func (s *stubUserRepo) Update(db *gorm.DB, user *entity.User) error    { return nil }
func (s *stubUserRepo) Deactivate(db *gorm.DB, id uint) (int64, error) { return 1, nil }
func (s *stubUserRepo) DeletionPolicy() entity.DeletionPolicy          { return entity.SoftDeleteViaFlag }

func ctxWithRole(role string) context.Context {
	return middleware.WithPrincipal(context.Background(), &middleware.Principal{
		UserID: 1,
		Email:  "caller@clinic.test",
		Role:   role,
	})
}

func TestRegisterForcesUserRole(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var created *entity.User
	repo := &stubUserRepo{
		CreateFunc: func(user *entity.User) error {
			user.ID = 9
			created = user
			return nil
		},
	}
	audit := &stubAuditService{}

	uc := NewAuthUsecase(db, testLogger(), repo, nil, nil, audit)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@clinic.test",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.Equal(t, "USER", resp.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
	assert.Contains(t, audit.actions, entity.AuditActionUserRegister)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &stubUserRepo{
		FindByEmailFunc: func(email string) (*entity.User, error) {
			return &entity.User{ID: 2, Email: email}, nil
		},
	}

	uc := NewAuthUsecase(db, testLogger(), repo, nil, nil, &stubAuditService{})

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@clinic.test",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterPrivilegedGrantRules(t *testing.T) {
	denied := []struct {
		name    string
		ctx     context.Context
		role    string
		wantErr error
	}{
		{"user cannot grant admin", ctxWithRole("USER"), "ADMIN", ErrRoleNotGrantable},
		{"admin cannot grant master", ctxWithRole("ADMIN"), "MASTER", ErrRoleNotGrantable},
	}

	for _, tc := range denied {
		t.Run(tc.name, func(t *testing.T) {
			db, _ := setupMockDB(t)
			uc := NewAuthUsecase(db, testLogger(), &stubUserRepo{}, nil, nil, &stubAuditService{})

			_, err := uc.RegisterPrivileged(tc.ctx, &dto.RegisterPrivilegedRequest{
				Email:    "new@clinic.test",
				Password: "s3cret-pass",
				Role:     tc.role,
			})

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("unauthenticated caller", func(t *testing.T) {
		db, _ := setupMockDB(t)
		uc := NewAuthUsecase(db, testLogger(), &stubUserRepo{}, nil, nil, &stubAuditService{})

		_, err := uc.RegisterPrivileged(context.Background(), &dto.RegisterPrivilegedRequest{
			Email:    "new@clinic.test",
			Password: "s3cret-pass",
			Role:     "ADMIN",
		})

		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		db, _ := setupMockDB(t)
		uc := NewAuthUsecase(db, testLogger(), &stubUserRepo{}, nil, nil, &stubAuditService{})

		_, err := uc.RegisterPrivileged(ctxWithRole("MASTER"), &dto.RegisterPrivilegedRequest{
			Email:    "new@clinic.test",
			Password: "s3cret-pass",
			Role:     "SUPERVISOR",
		})

		assert.Error(t, err)
	})

	t.Run("master grants admin", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *entity.User
		repo := &stubUserRepo{
			CreateFunc: func(user *entity.User) error {
				user.ID = 3
				created = user
				return nil
			},
		}

		uc := NewAuthUsecase(db, testLogger(), repo, nil, nil, &stubAuditService{})

		resp, err := uc.RegisterPrivileged(ctxWithRole("MASTER"), &dto.RegisterPrivilegedRequest{
			Email:    "new-admin@clinic.test",
			Password: "s3cret-pass",
			Role:     "ADMIN",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, created.Role)
		assert.Equal(t, "ADMIN", resp.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func loginRepo(t *testing.T, active bool) *stubUserRepo {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	return &stubUserRepo{
		FindByEmailFunc: func(email string) (*entity.User, error) {
			return &entity.User{
				ID:       5,
				Email:    email,
				Password: string(hashed),
				Role:     entity.RoleUser,
				Active:   &active,
			}, nil
		},
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewAuthUsecase(db, testLogger(), &stubUserRepo{}, nil, nil, &stubAuditService{})

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@clinic.test",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewAuthUsecase(db, testLogger(), loginRepo(t, true), nil, nil, &stubAuditService{})

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@clinic.test",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	db, _ := setupMockDB(t)
	uc := NewAuthUsecase(db, testLogger(), loginRepo(t, false), nil, nil, &stubAuditService{})

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@clinic.test",
		Password: "right-pass",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}
