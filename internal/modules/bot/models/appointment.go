package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCustomer is recorded when a booking arrives without a customer name.
const DefaultCustomer = "Cliente"

// Appointment is a booked slot. Created by the engine, never mutated by it.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string    `gorm:"column:tenant_id;type:text;not null;index" json:"bot_id"`
	Customer  string    `gorm:"type:text;not null" json:"customer"`
	StartsAt  time.Time `gorm:"type:timestamptz;not null;index" json:"starts_at"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate sets UUID before creating
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CreateAppointmentRequest represents appointment creation request
type CreateAppointmentRequest struct {
	BotID    string `json:"bot_id,omitempty"`
	Customer string `json:"customer"`
	StartsAt string `json:"starts_at"`
	Notes    string `json:"notes,omitempty"`
}
