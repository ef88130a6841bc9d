// Package nlu is the boundary to the external language model: intent
// classification, reply rendering and date resolution. Every call is bounded
// by a timeout and degrades to a deterministic value instead of failing.
package nlu

import (
	"context"
	"time"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// Intents the classifier may return.
const (
	IntentUnknown           = "unknown"
	IntentGreet             = "greet"
	IntentBye               = "bye"
	IntentAskHours          = "ask_hours"
	IntentAskAddress        = "ask_address"
	IntentAskPrice          = "ask_price"
	IntentAskStock          = "ask_stock"
	IntentAskCatalog        = "ask_catalog"
	IntentAskPayments       = "ask_payments"
	IntentCreateBooking     = "create_booking"
	IntentCheckAvailability = "check_availability"
	IntentCancelBooking     = "cancel_booking"
	IntentAskServices       = "ask_services"
)

// Slot names the classifier may return.
const (
	SlotProductName = "product_name"
	SlotDateTime    = "date_time"
	SlotCustomer    = "customer"
	SlotService     = "service"
)

var intentsByMode = map[string][]string{
	models.ModeSales: {
		IntentAskPrice, IntentAskStock, IntentAskCatalog, IntentGreet,
		IntentBye, IntentAskHours, IntentAskAddress, IntentAskPayments,
	},
	models.ModeReservations: {
		IntentCreateBooking, IntentCheckAvailability, IntentCancelBooking, IntentAskServices,
		IntentGreet, IntentBye, IntentAskHours, IntentAskAddress,
	},
}

var allowedSlots = map[string]bool{
	SlotProductName: true,
	SlotDateTime:    true,
	SlotCustomer:    true,
	SlotService:     true,
}

// Intents returns the intents the classifier may answer for mode.
func Intents(mode string) []string {
	return intentsByMode[mode]
}

// Classification is the classifier's answer.
type Classification struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots"`
}

// Unknown is the classification used whenever the delegate cannot answer.
func Unknown() Classification {
	return Classification{Intent: IntentUnknown, Slots: map[string]string{}}
}

// Slot returns a slot value or "".
func (c Classification) Slot(name string) string {
	return c.Slots[name]
}

// Facts is the only context the renderer may draw from.
type Facts struct {
	Mode     string  `json:"mode"`
	Reply    string  `json:"reply"`
	Hours    *string `json:"hours"`
	Address  *string `json:"address"`
	Payments *string `json:"payments"`
	Catalog  *string `json:"catalog"`
}

// OptionalFact maps "" to a JSON null.
func OptionalFact(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Delegate is the external natural-language collaborator.
type Delegate interface {
	// Available reports whether a model is configured at all.
	Available() bool
	Classify(ctx context.Context, message, mode string) Classification
	// Render rephrases facts.Reply; it returns fallback on any failure.
	Render(ctx context.Context, facts Facts, message, fallback string) string
	ResolveDateTime(ctx context.Context, phrase string, loc *time.Location) (string, bool)
}

// NoopDelegate is used when no language model is configured.
type NoopDelegate struct{}

func (NoopDelegate) Available() bool { return false }

func (NoopDelegate) Classify(context.Context, string, string) Classification { return Unknown() }

func (NoopDelegate) Render(_ context.Context, _ Facts, _ string, fallback string) string {
	return fallback
}

func (NoopDelegate) ResolveDateTime(context.Context, string, *time.Location) (string, bool) {
	return "", false
}
