package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/middleware"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
	"github.com/Shalom-Shobowale/adunniTradingHub/pricing"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	// Zero and negative values are accepted and remove the line.
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse is what every cart endpoint returns: the full reloaded cart
// plus its aggregates, so the client never holds stale line state.
type CartResponse struct {
	Items     []models.CartItem `json:"items"`
	CartTotal float64           `json:"cart_total"`
	CartCount int               `json:"cart_count"`
}

// CartTotal sums the snapshot unit prices, not a live re-resolution.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// CartCount is the total quantity across lines, not the line count.
func CartCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func loadCart(db *gorm.DB, userID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := db.Where("user_id = ?", userID).Order("added_at asc, id asc").Find(&items).Error
	return items, err
}

func respondWithCart(c *gin.Context, db *gorm.DB, userID string, status int) {
	items, err := loadCart(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(status, CartResponse{
		Items:     items,
		CartTotal: CartTotal(items),
		CartCount: CartCount(items),
	})
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		respondWithCart(c, db, userID, http.StatusOK)
	}
}

// POST /cart/items
//
// Merge-on-add: if a line for this product already exists, the requested
// quantity is added to it and the unit price is re-resolved at the combined
// quantity, so a wholesale buyer crossing a tier boundary by topping up gets
// the tier price on the whole line.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, wholesaleApproved, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Tiers").First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error

		newQuantity := input.Quantity
		if err == nil {
			newQuantity += item.Quantity
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if newQuantity > product.StockQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock for " + product.Name})
			return
		}

		unitPrice := pricing.ResolveUnitPrice(&product, newQuantity, wholesaleApproved)

		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{
				UserID:      userID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    newQuantity,
				UnitPrice:   unitPrice,
				AddedAt:     time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			respondWithCart(c, db, userID, http.StatusCreated)
			return
		}

		item.Quantity = newQuantity
		item.UnitPrice = unitPrice
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		respondWithCart(c, db, userID, http.StatusOK)
	}
}

// PUT /cart/items/:id
//
// A quantity of zero or less removes the line. Otherwise the unit price is
// re-resolved for the new quantity and both fields are persisted together.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, wholesaleApproved, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			respondWithCart(c, db, userID, http.StatusOK)
			return
		}

		var product models.Product
		if err := db.Preload("Tiers").First(&product, "id = ?", item.ProductID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if *input.Quantity > product.StockQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock for " + product.Name})
			return
		}

		item.Quantity = *input.Quantity
		item.UnitPrice = pricing.ResolveUnitPrice(&product, *input.Quantity, wholesaleApproved)
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		respondWithCart(c, db, userID, http.StatusOK)
	}
}

// DELETE /cart/items/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID := c.Param("id")
		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondWithCart(c, db, userID, http.StatusOK)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		respondWithCart(c, db, userID, http.StatusOK)
	}
}
