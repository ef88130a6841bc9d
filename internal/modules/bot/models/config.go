package models

import "time"

// Bot modes. Rules may also belong to ModeCommon, which is shared by both.
const (
	ModeSales        = "sales"
	ModeReservations = "reservations"
	ModeCommon       = "common"
)

const (
	DefaultMode        = ModeSales
	DefaultSlotMinutes = 30
	MinSlotMinutes     = 5
	MaxSlotMinutes     = 240
)

// BotConfig is the per-tenant bot configuration and business profile.
// Exactly one row exists per tenant.
type BotConfig struct {
	TenantID    string `gorm:"column:tenant_id;type:text;primaryKey" json:"bot_id"`
	Mode        string `gorm:"type:text;not null;default:'sales'" json:"mode"`
	SlotMinutes int    `gorm:"type:integer;not null;default:30" json:"slot_minutes"`

	// Business profile
	Name               string `gorm:"type:text" json:"name"`
	Address            string `gorm:"type:text" json:"address"`
	Hours              string `gorm:"type:text" json:"hours"`
	Phone              string `gorm:"type:text" json:"phone"`
	PaymentMethods     string `gorm:"type:text" json:"payment_methods"`
	CashDiscount       string `gorm:"type:text" json:"cash_discount"`
	ServiceList        string `gorm:"type:text" json:"service_list"`
	CancellationPolicy string `gorm:"type:text" json:"cancellation_policy"`

	// RulesSeededAt is set once the default rules were written for the tenant.
	RulesSeededAt *time.Time `gorm:"column:rules_seeded_at" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (BotConfig) TableName() string {
	return "bot_configs"
}

// NewDefaultConfig returns the row created on first access for a tenant.
func NewDefaultConfig(tenantID string) *BotConfig {
	return &BotConfig{
		TenantID:    tenantID,
		Mode:        DefaultMode,
		SlotMinutes: DefaultSlotMinutes,
	}
}

// EffectiveSlotMinutes guards against rows written before slot_minutes had a default.
func (c *BotConfig) EffectiveSlotMinutes() int {
	if c.SlotMinutes <= 0 {
		return DefaultSlotMinutes
	}
	return c.SlotMinutes
}

// Profile returns the business profile fields keyed by their placeholder names.
func (c *BotConfig) Profile() map[string]string {
	return map[string]string{
		"name":                c.Name,
		"address":             c.Address,
		"hours":               c.Hours,
		"phone":               c.Phone,
		"payment_methods":     c.PaymentMethods,
		"cash_discount":       c.CashDiscount,
		"service_list":        c.ServiceList,
		"cancellation_policy": c.CancellationPolicy,
	}
}

// UpdateConfigRequest is a partial update; nil fields are left untouched.
type UpdateConfigRequest struct {
	BotID              string  `json:"bot_id,omitempty"`
	Mode               *string `json:"mode,omitempty"`
	SlotMinutes        *int    `json:"slot_minutes,omitempty"`
	Name               *string `json:"name,omitempty"`
	Address            *string `json:"address,omitempty"`
	Hours              *string `json:"hours,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	PaymentMethods     *string `json:"payment_methods,omitempty"`
	CashDiscount       *string `json:"cash_discount,omitempty"`
	ServiceList        *string `json:"service_list,omitempty"`
	CancellationPolicy *string `json:"cancellation_policy,omitempty"`
}

// Updates converts the request into a column -> value map for the store.
func (r *UpdateConfigRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("mode", r.Mode)
	set("name", r.Name)
	set("address", r.Address)
	set("hours", r.Hours)
	set("phone", r.Phone)
	set("payment_methods", r.PaymentMethods)
	set("cash_discount", r.CashDiscount)
	set("service_list", r.ServiceList)
	set("cancellation_policy", r.CancellationPolicy)
	if r.SlotMinutes != nil {
		updates["slot_minutes"] = *r.SlotMinutes
	}
	return updates
}
