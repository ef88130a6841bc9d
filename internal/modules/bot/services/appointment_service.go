package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/datetime"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/scheduling"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
)

// MinStartsAtLength rejects inputs too short to name a date.
const MinStartsAtLength = 5

// ErrInvalidDate is returned when starts_at cannot be resolved to an instant.
var ErrInvalidDate = errors.New("fecha inválida")

// Export is a rendered appointment listing.
type Export struct {
	Data        []byte
	ContentType string
	FileName    string
}

type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepo
	tenants         *tenant.Resolver
	scheduler       *scheduling.Service
	dates           *datetime.Resolver
	exporter        *export.Service
	now             func() time.Time
}

func NewAppointmentService(appointmentRepo repositories.AppointmentRepo, tenants *tenant.Resolver, dates *datetime.Resolver, exporter *export.Service) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		tenants:         tenants,
		scheduler:       scheduling.NewService(appointmentRepo),
		dates:           dates,
		exporter:        exporter,
		now:             time.Now,
	}
}

// ListAppointments returns the bot's appointments, latest start first.
func (s *AppointmentService) ListAppointments(ctx context.Context, botID string) ([]models.Appointment, error) {
	appts, err := s.appointmentRepo.ListAppointments(ctx, tenant.ID(botID))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// CheckAvailability resolves startsAt and checks the bot's slot window around it.
func (s *AppointmentService) CheckAvailability(ctx context.Context, botID, startsAt string) (scheduling.Availability, error) {
	at, ok := s.dates.Resolve(ctx, startsAt)
	if !ok {
		return scheduling.Availability{}, ErrInvalidDate
	}
	cfg, err := s.tenants.Resolve(ctx, botID)
	if err != nil {
		return scheduling.Availability{}, err
	}
	return s.scheduler.Check(ctx, cfg.TenantID, at, cfg.EffectiveSlotMinutes())
}

// CreateAppointment books a slot. A collision yields scheduling.ErrSlotUnavailable.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		return nil, invalidf("customer is required")
	}
	if len(strings.TrimSpace(req.StartsAt)) < MinStartsAtLength {
		return nil, invalidf("starts_at must have at least %d characters", MinStartsAtLength)
	}

	at, ok := s.dates.Resolve(ctx, req.StartsAt)
	if !ok {
		return nil, ErrInvalidDate
	}
	cfg, err := s.tenants.Resolve(ctx, req.BotID)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		TenantID: cfg.TenantID,
		Customer: customer,
		StartsAt: at,
		Notes:    strings.TrimSpace(req.Notes),
	}
	if err := s.scheduler.Book(ctx, appt, cfg.EffectiveSlotMinutes()); err != nil {
		return nil, err
	}
	return appt, nil
}

// ExportAppointments renders the bot's appointments in format (xlsx, csv or pdf).
func (s *AppointmentService) ExportAppointments(ctx context.Context, botID, format string) (*Export, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, invalidf("%s", err.Error())
	}
	tenantID := tenant.ID(botID)
	appts, err := s.ListAppointments(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	table := export.AppointmentsTable(tenantID, appts, s.dates.Location(), s.now())
	data, contentType, err := s.exporter.Export(table, f)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		ContentType: contentType,
		FileName:    s.exporter.FileName("turnos-"+tenantID, f),
	}, nil
}
