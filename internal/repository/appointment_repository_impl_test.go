package repository

import (
	"testing"
	"time"

	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFindConflictSlotFree(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	at := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	// A single condition group is emitted without parentheses.
	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE doctor_id = \$1 AND scheduled_at = \$2 AND status <> \$3 ORDER BY "appointments"\."id" LIMIT \$4`).
		WithArgs(7, at, string(entity.AppointmentStatusCanceled), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	conflict, err := repo.FindConflict(db, 7, at, 0)

	assert.NoError(t, err)
	assert.Nil(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentFindConflictSlotTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	at := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WithArgs(7, at, string(entity.AppointmentStatusCanceled), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "status"}).
			AddRow(11, 7, string(entity.AppointmentStatusScheduled)))

	conflict, err := repo.FindConflict(db, 7, at, 0)

	assert.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, uint(11), conflict.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentFindConflictExcludesSelf(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	at := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE \(doctor_id = \$1 AND scheduled_at = \$2 AND status <> \$3\) AND id <> \$4`).
		WithArgs(7, at, string(entity.AppointmentStatusCanceled), 11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	conflict, err := repo.FindConflict(db, 7, at, 11)

	assert.NoError(t, err)
	assert.Nil(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentListRangeUpperBoundExclusive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE scheduled_at >= \$1 AND scheduled_at < \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE scheduled_at >= \$1 AND scheduled_at < \$2 ORDER BY scheduled_at ASC LIMIT \$3`).
		WithArgs(from, to, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	appointments, total, err := repo.List(db, &entity.AppointmentFilter{
		From:  &from,
		To:    &to,
		Page:  1,
		Limit: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, appointments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectExec(`UPDATE "appointments" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(string(entity.AppointmentStatusConfirmed), sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(db, 4, entity.AppointmentStatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
