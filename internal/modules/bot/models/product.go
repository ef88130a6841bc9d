package models

import "time"

// Product is a catalog entry. The engine only reads products.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  string    `gorm:"column:tenant_id;type:text;not null;index" json:"bot_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Price     float64   `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Stock     int       `gorm:"type:integer;not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CreateProductRequest represents product creation request
type CreateProductRequest struct {
	BotID string   `json:"bot_id,omitempty"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}
