package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID                   uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string               `gorm:"not null" json:"name"`
	Description          string               `json:"description"`
	Grade                string               `json:"grade"`         // e.g. "PREMIUM", "STANDARD"
	CutType              string               `json:"cut_type"`      // e.g. "STRIPS", "CHUNKS"
	DryingMethod         string               `json:"drying_method"` // e.g. "SUN-DRIED", "OVEN-DRIED"
	WeightPerUnit        float64              `json:"weight_per_unit"`
	ImageURL             string               `json:"image_url"`
	RetailPrice          float64              `gorm:"not null" json:"retail_price"`
	StockQuantity        int                  `gorm:"default:0" json:"stock_quantity"`
	MinWholesaleQuantity int                  `gorm:"default:1" json:"min_wholesale_quantity"`
	Featured             bool                 `json:"featured"`
	Tiers                []WholesalePriceTier `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"wholesale_pricing"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
	DeletedAt            gorm.DeletedAt       `gorm:"index" json:"-"`
}
