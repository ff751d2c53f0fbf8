package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
	"github.com/Shalom-Shobowale/adunniTradingHub/pricing"
)

type TierInput struct {
	ProductID    uint    `json:"product_id" binding:"required"`
	MinQuantity  int     `json:"min_quantity" binding:"required,min=1"`
	MaxQuantity  *int    `json:"max_quantity"` // null = unbounded
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
}

func tierValidationStatus(err error) (int, bool) {
	switch err.(type) {
	case *pricing.OverlapError, *pricing.MalformedRangeError:
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}

// GET /admin/wholesale
func ListWholesaleTiers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tiers []models.WholesalePriceTier
		if err := db.Order("product_id asc, min_quantity asc").Find(&tiers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wholesale pricing"})
			return
		}
		c.JSON(http.StatusOK, tiers)
	}
}

// POST /admin/wholesale
//
// The overlap check runs inside the write transaction against a fresh read
// of the product's tiers, so two admins saving at once serialize on the
// table rather than both passing a stale check.
func CreateWholesaleTier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		tier := models.WholesalePriceTier{
			ProductID:    input.ProductID,
			MinQuantity:  input.MinQuantity,
			MaxQuantity:  input.MaxQuantity,
			PricePerUnit: input.PricePerUnit,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var existing []models.WholesalePriceTier
			if err := tx.Where("product_id = ?", input.ProductID).Find(&existing).Error; err != nil {
				return err
			}
			if err := pricing.ValidateTierRange(input.MinQuantity, input.MaxQuantity, existing, 0); err != nil {
				return err
			}
			return tx.Create(&tier).Error
		})
		if err != nil {
			if status, ok := tierValidationStatus(err); ok {
				c.JSON(status, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wholesale price"})
			return
		}

		c.JSON(http.StatusCreated, tier)
	}
}

// PUT /admin/wholesale/:id
func UpdateWholesaleTier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier ID"})
			return
		}

		var tier models.WholesalePriceTier
		if err := db.First(&tier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wholesale price not found"})
			return
		}

		var input TierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var existing []models.WholesalePriceTier
			if err := tx.Where("product_id = ?", tier.ProductID).Find(&existing).Error; err != nil {
				return err
			}
			// The edited tier's own range is excluded from the comparison.
			if err := pricing.ValidateTierRange(input.MinQuantity, input.MaxQuantity, existing, tier.ID); err != nil {
				return err
			}

			tier.MinQuantity = input.MinQuantity
			tier.MaxQuantity = input.MaxQuantity
			tier.PricePerUnit = input.PricePerUnit
			return tx.Save(&tier).Error
		})
		if err != nil {
			if status, ok := tierValidationStatus(err); ok {
				c.JSON(status, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wholesale price"})
			return
		}

		c.JSON(http.StatusOK, tier)
	}
}

// DELETE /admin/wholesale/:id
func DeleteWholesaleTier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.WholesalePriceTier{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wholesale price"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wholesale price not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
