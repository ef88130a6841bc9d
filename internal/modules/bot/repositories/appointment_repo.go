package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

const (
	maxBookingAttempts = 3

	sqlStateSerializationFailure = "40001"
	sqlStateUniqueViolation      = "23505"
)

const conflictQuery = `SELECT EXISTS (
	SELECT 1 FROM appointments
	WHERE tenant_id = ? AND starts_at BETWEEN ? AND ?
)`

type appointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) AppointmentRepo {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) ListAppointments(ctx context.Context, tenantID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("starts_at DESC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepo) HasConflict(ctx context.Context, tenantID string, from, to time.Time) (bool, error) {
	return hasConflict(r.db.WithContext(ctx), tenantID, from, to)
}

// CreateAppointment re-checks the window and inserts inside one SERIALIZABLE
// transaction, retrying on serialization failures.
func (r *appointmentRepo) CreateAppointment(ctx context.Context, appt *models.Appointment, from, to time.Time) error {
	var err error
	for attempt := 1; attempt <= maxBookingAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			clash, err := hasConflict(tx, appt.TenantID, from, to)
			if err != nil {
				return err
			}
			if clash {
				return scheduling.ErrSlotUnavailable
			}
			return tx.Create(appt).Error
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})

		if !hasSQLState(err, sqlStateSerializationFailure) {
			break
		}
		zerolog.Ctx(ctx).Warn().
			Str("tenant_id", appt.TenantID).
			Int("attempt", attempt).
			Msg("🔁 Booking transaction hit a serialization failure, retrying")
	}

	if hasSQLState(err, sqlStateUniqueViolation) || hasSQLState(err, sqlStateSerializationFailure) {
		return scheduling.ErrSlotUnavailable
	}
	return err
}

func hasConflict(db *gorm.DB, tenantID string, from, to time.Time) (bool, error) {
	var exists bool
	if err := db.Raw(conflictQuery, tenantID, from, to).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
