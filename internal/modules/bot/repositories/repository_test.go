package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock, gdb
}

func newAppointment() (*models.Appointment, time.Time, time.Time) {
	at := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	from, to := scheduling.Window(at, 30)
	return &models.Appointment{TenantID: "demo", Customer: "Ana", StartsAt: at}, from, to
}

func TestGetOrCreateConfig_Created(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO "bot_configs"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "bot_configs"`).
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "mode", "slot_minutes"}).AddRow("demo", "sales", 30))

	cfg, created, err := NewConfigRepo(gdb).GetOrCreateConfig(context.Background(), "demo")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.ModeSales, cfg.Mode)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateConfig_Existing(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO "bot_configs"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "bot_configs"`).
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "mode", "slot_minutes", "hours"}).
			AddRow("demo", "reservations", 45, "9 a 18"))

	cfg, created, err := NewConfigRepo(gdb).GetOrCreateConfig(context.Background(), "demo")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.ModeReservations, cfg.Mode)
	assert.Equal(t, "9 a 18", cfg.Hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRulesSeeded(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "bot_configs" SET "rules_seeded_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bot_configs" SET "rules_seeded_at"`).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewConfigRepo(gdb)
	require.NoError(t, repo.MarkRulesSeeded(context.Background(), "demo", time.Now()))
	assert.ErrorIs(t, repo.MarkRulesSeeded(context.Background(), "missing", time.Now()), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConflict(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	_, from, to := newAppointment()
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	clash, err := NewAppointmentRepo(gdb).HasConflict(context.Background(), "demo", from, to)

	require.NoError(t, err)
	assert.True(t, clash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_Success(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO "appointments"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	appt, from, to := newAppointment()
	err := NewAppointmentRepo(gdb).CreateAppointment(context.Background(), appt, from, to)

	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_Conflict(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	appt, from, to := newAppointment()
	err := NewAppointmentRepo(gdb).CreateAppointment(context.Background(), appt, from, to)

	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_RetriesSerializationFailure(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO "appointments"`).WillReturnError(&pgconn.PgError{Code: sqlStateSerializationFailure})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO "appointments"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	appt, from, to := newAppointment()
	err := NewAppointmentRepo(gdb).CreateAppointment(context.Background(), appt, from, to)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_UniqueViolationIsUnavailable(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO "appointments"`).WillReturnError(&pgconn.PgError{Code: sqlStateUniqueViolation})
	mock.ExpectRollback()

	appt, from, to := newAppointment()
	err := NewAppointmentRepo(gdb).CreateAppointment(context.Background(), appt, from, to)

	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneConversations(t *testing.T) {
	db, mock, gdb := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "conversations"`).WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewConversationRepo(gdb).PruneConversations(context.Background(), time.Now().AddDate(0, 0, -30))

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
