package models

import "time"

// WholesalePriceTier maps a quantity range to a per-unit price for one
// product. MaxQuantity == nil means the range is unbounded above. Tiers of
// the same product must never overlap; writes go through the pricing
// validator before they reach the table.
type WholesalePriceTier struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint      `gorm:"index;not null" json:"product_id"`
	MinQuantity  int       `gorm:"not null" json:"min_quantity"`
	MaxQuantity  *int      `json:"max_quantity"`
	PricePerUnit float64   `gorm:"not null" json:"price_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// QuoteRequest is a wholesale quote submitted from the public site. It is
// stored first, then mailed to the admin and the requester.
type QuoteRequest struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName       string    `gorm:"not null" json:"company_name"`
	Email             string    `gorm:"not null" json:"email"`
	Phone             string    `json:"phone"`
	EstimatedQuantity int       `json:"estimated_quantity"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"created_at"`
}
