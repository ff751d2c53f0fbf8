package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

type CreateProductInput struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Grade                string  `json:"grade"`
	CutType              string  `json:"cut_type"`
	DryingMethod         string  `json:"drying_method"`
	WeightPerUnit        float64 `json:"weight_per_unit"`
	ImageURL             string  `json:"image_url"`
	RetailPrice          float64 `json:"retail_price" binding:"required,gt=0"`
	StockQuantity        int     `json:"stock_quantity" binding:"min=0"`
	MinWholesaleQuantity int     `json:"min_wholesale_quantity" binding:"omitempty,min=1"`
	Featured             bool    `json:"featured"`
}

// CreateProduct creates a new catalog product. Images live in external
// object storage; only the URL is persisted here.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		minWholesale := input.MinWholesaleQuantity
		if minWholesale == 0 {
			minWholesale = 1
		}

		product := models.Product{
			Name:                 input.Name,
			Description:          input.Description,
			Grade:                input.Grade,
			CutType:              input.CutType,
			DryingMethod:         input.DryingMethod,
			WeightPerUnit:        input.WeightPerUnit,
			ImageURL:             input.ImageURL,
			RetailPrice:          input.RetailPrice,
			StockQuantity:        input.StockQuantity,
			MinWholesaleQuantity: minWholesale,
			Featured:             input.Featured,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
