// Package scheduling detects booking collisions within a tenant's slot window.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// ErrSlotUnavailable is returned by Book when another appointment starts
// inside the candidate's window.
var ErrSlotUnavailable = errors.New("slot unavailable")

// Store is the appointment persistence the checker needs. CreateAppointment
// must re-check [from, to] and insert in one atomic unit, returning
// ErrSlotUnavailable when the re-check finds a collision.
type Store interface {
	HasConflict(ctx context.Context, tenantID string, from, to time.Time) (bool, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment, from, to time.Time) error
}

// Window returns the inclusive range [at - slot, at + slot].
func Window(at time.Time, slotMinutes int) (time.Time, time.Time) {
	slot := time.Duration(slotMinutes) * time.Minute
	return at.Add(-slot), at.Add(slot)
}

// Conflicts reports whether an appointment starting at existing collides with a
// candidate start. Both window edges count as collisions.
func Conflicts(existing, candidate time.Time, slotMinutes int) bool {
	from, to := Window(candidate, slotMinutes)
	return !existing.Before(from) && !existing.After(to)
}

// Availability is the result of a conflict check.
type Availability struct {
	Available   bool      `json:"available"`
	StartsAt    time.Time `json:"starts_at"`
	SlotMinutes int       `json:"slot_minutes"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Check reports whether at is free for tenantID.
func (s *Service) Check(ctx context.Context, tenantID string, at time.Time, slotMinutes int) (Availability, error) {
	slotMinutes = normalizeSlot(slotMinutes)
	from, to := Window(at, slotMinutes)

	clash, err := s.store.HasConflict(ctx, tenantID, from, to)
	if err != nil {
		return Availability{}, fmt.Errorf("check availability: %w", err)
	}
	return Availability{Available: !clash, StartsAt: at, SlotMinutes: slotMinutes}, nil
}

// Book inserts appt if its window is still free. A collision yields ErrSlotUnavailable.
func (s *Service) Book(ctx context.Context, appt *models.Appointment, slotMinutes int) error {
	if strings.TrimSpace(appt.Customer) == "" {
		appt.Customer = models.DefaultCustomer
	}
	from, to := Window(appt.StartsAt, normalizeSlot(slotMinutes))

	if err := s.store.CreateAppointment(ctx, appt, from, to); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("book appointment: %w", err)
	}
	return nil
}

func normalizeSlot(slotMinutes int) int {
	if slotMinutes <= 0 {
		return models.DefaultSlotMinutes
	}
	return slotMinutes
}
