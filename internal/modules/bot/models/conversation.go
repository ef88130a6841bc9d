package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is one resolved chat turn.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string    `gorm:"column:tenant_id;type:text;not null;index" json:"bot_id"`
	SessionID string    `gorm:"type:text;index" json:"session_id"`
	Message   string    `gorm:"type:text" json:"message"`
	Reply     string    `gorm:"type:text" json:"reply"`
	RuleID    *uint     `json:"rule_id,omitempty"`
	MatchKind string    `gorm:"type:text" json:"match_kind"`
	Intent    string    `gorm:"type:text" json:"intent,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name
func (Conversation) TableName() string {
	return "conversations"
}

// BeforeCreate sets UUID before creating
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
