package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

type UpdateProductInput struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	Grade                *string  `json:"grade"`
	CutType              *string  `json:"cut_type"`
	DryingMethod         *string  `json:"drying_method"`
	WeightPerUnit        *float64 `json:"weight_per_unit"`
	ImageURL             *string  `json:"image_url"`
	RetailPrice          *float64 `json:"retail_price" binding:"omitempty,gt=0"`
	StockQuantity        *int     `json:"stock_quantity" binding:"omitempty,min=0"`
	MinWholesaleQuantity *int     `json:"min_wholesale_quantity" binding:"omitempty,min=1"`
	Featured             *bool    `json:"featured"`
}

// UpdateProduct updates an existing product by ID. Only the provided fields
// change; cart lines keep their snapshot prices regardless.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Grade != nil {
			product.Grade = *input.Grade
		}
		if input.CutType != nil {
			product.CutType = *input.CutType
		}
		if input.DryingMethod != nil {
			product.DryingMethod = *input.DryingMethod
		}
		if input.WeightPerUnit != nil {
			product.WeightPerUnit = *input.WeightPerUnit
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.RetailPrice != nil {
			product.RetailPrice = *input.RetailPrice
		}
		if input.StockQuantity != nil {
			product.StockQuantity = *input.StockQuantity
		}
		if input.MinWholesaleQuantity != nil {
			product.MinWholesaleQuantity = *input.MinWholesaleQuantity
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
