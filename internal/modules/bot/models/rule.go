package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultRulePriority is used when a rule is created without an explicit priority.
const DefaultRulePriority = 50

// BusinessRule maps trigger phrases to a reply template for one tenant.
// Higher Priority is evaluated first.
type BusinessRule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TenantID  string         `gorm:"column:tenant_id;type:text;not null;index" json:"bot_id"`
	Mode      string         `gorm:"type:text;not null" json:"mode"`
	Condition string         `gorm:"type:text" json:"condition"`
	Triggers  datatypes.JSON `gorm:"type:jsonb" json:"triggers"`
	Action    string         `gorm:"type:text" json:"action"`
	Priority  int            `gorm:"type:integer;not null;default:50" json:"priority"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (BusinessRule) TableName() string {
	return "business_rules"
}

// RuleRequest is the create/update payload for a rule.
type RuleRequest struct {
	BotID     string   `json:"bot_id,omitempty"`
	Mode      string   `json:"mode"`
	Condition string   `json:"condition"`
	Triggers  []string `json:"triggers"`
	Action    string   `json:"action"`
	Priority  *int     `json:"priority,omitempty"`
}
