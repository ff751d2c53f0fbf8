package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	cartControllers "github.com/Shalom-Shobowale/adunniTradingHub/controllers/cart"
	orderControllers "github.com/Shalom-Shobowale/adunniTradingHub/controllers/order"
	"github.com/Shalom-Shobowale/adunniTradingHub/middleware"
)

// SetupUserRoutes registers the buyer-facing endpoints. Requires a valid
// bearer token; anonymous callers get 401 (there is no guest cart).
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, log *logrus.Logger) {
	auth := middleware.RequireAuth(db, cfg.JWTSecret)

	cartGroup := r.Group("/cart")
	cartGroup.Use(auth)
	{
		cartGroup.GET("", cartControllers.GetCart(db))                     // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(db))          // POST /cart/items
		cartGroup.PUT("/items/:id", cartControllers.UpdateCartItem(db))    // PUT /cart/items/:id
		cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItem(db)) // DELETE /cart/items/:id
		cartGroup.DELETE("", cartControllers.ClearCart(db))                // DELETE /cart
	}

	r.POST("/orders/create", auth, orderControllers.CreateOrderHandler(db, cfg.ShippingFee, log))
	r.GET("/user/orders", auth, orderControllers.GetMyOrdersHandler(db))
}
