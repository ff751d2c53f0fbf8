package orderControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
	"github.com/Shalom-Shobowale/adunniTradingHub/middleware"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	PaymentMethod   string         `json:"payment_method" binding:"required"`
	ShippingAddress models.Address `json:"shipping_address" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

var errEmptyCart = errors.New("cart is empty")

type insufficientStockError struct {
	ProductName string
}

func (e *insufficientStockError) Error() string {
	return "insufficient stock for product: " + e.ProductName
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// generateOrderNumber makes a human-quotable unique reference,
// e.g. ADH20250831142501-1a2b3c4d.
func generateOrderNumber() string {
	return "ADH" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// -------- Core Logic --------

// PlaceOrder turns the buyer's cart into an order in a single transaction:
// order + item snapshots are inserted, each product's stock is decremented
// with a conditional UPDATE guarded on available stock, and the cart is
// cleared. Any line with insufficient stock fails the whole checkout; the
// transaction rolls everything back so no partial order can exist. Line
// prices come from the cart's snapshots, not a live re-resolution.
func PlaceOrder(db *gorm.DB, userID string, wholesaleApproved bool, req CreateOrderRequest, shippingFee float64) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("added_at asc, id asc").Find(&cartItems).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(cartItems) == 0 {
		return nil, errEmptyCart
	}

	orderType := models.OrderTypeRetail
	if wholesaleApproved {
		orderType = models.OrderTypeWholesale
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		var orderItems []models.OrderItem

		for _, item := range cartItems {
			// Conditional decrement: only succeeds while enough stock
			// remains, so two checkouts racing for the last units cannot
			// both win.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &insufficientStockError{ProductName: item.ProductName}
			}

			lineTotal := item.UnitPrice * float64(item.Quantity)
			subtotal += lineTotal

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  lineTotal,
			})
		}

		order = models.Order{
			OrderNumber:     generateOrderNumber(),
			UserID:          userID,
			OrderType:       orderType,
			Items:           orderItems,
			Subtotal:        subtotal,
			ShippingCost:    shippingFee,
			Total:           subtotal + shippingFee,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   req.PaymentMethod,
			ShippingAddress: req.ShippingAddress,
			CreatedAt:       time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// -------- Handlers --------

// POST /orders/create
func CreateOrderHandler(db *gorm.DB, shippingFee float64, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, wholesaleApproved, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, wholesaleApproved, req, shippingFee)
		if err != nil {
			var stockErr *insufficientStockError
			switch {
			case errors.Is(err, errEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
			default:
				log.WithError(err).WithField("user_id", userID).Error("checkout failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastOrderEvent("order_created", *order)

		c.JSON(http.StatusCreated, gin.H{
			"success":       true,
			"order_id":      order.ID,
			"order_number":  order.OrderNumber,
			"subtotal":      order.Subtotal,
			"shipping_cost": order.ShippingCost,
			"total":         order.Total,
		})
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID (admin). Accepts a numeric id or an order number.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? OR order_number = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err == nil {
			broadcastOrderEvent("status_updated", order)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /orders/:orderID/payment (admin)
//
// On a transition to "paid" the buyer gets a confirmation email. The send is
// fire-and-forget: a mail failure is logged but never undoes the status
// update.
func UpdatePaymentStatusHandler(db *gorm.DB, mail *mailer.Mailer, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		order.PaymentStatus = newStatus
		broadcastOrderEvent("payment_updated", order)

		if newStatus == models.PaymentStatusPaid {
			go func(order models.Order) {
				var profile models.Profile
				if err := db.First(&profile, "id = ?", order.UserID).Error; err != nil {
					log.WithError(err).WithField("order", order.OrderNumber).
						Error("payment email: buyer profile not found")
					return
				}
				if err := mail.SendPaymentConfirmation(profile.Email, profile.Name, order); err != nil {
					log.WithError(err).WithField("order", order.OrderNumber).
						Error("failed to send payment confirmation email")
				}
			}(order)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}
