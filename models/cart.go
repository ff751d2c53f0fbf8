package models

import "time"

// CartItem is one buyer's in-progress commitment to one product. UnitPrice
// is a snapshot taken when the line was last added/updated; reads never
// re-resolve it against current tiers. The composite unique index enforces
// at most one live line per (user, product).
type CartItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID   uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	AddedAt     time.Time `json:"added_at"`
}
