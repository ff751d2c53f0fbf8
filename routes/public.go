package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	orderControllers "github.com/Shalom-Shobowale/adunniTradingHub/controllers/order"
	productcontroller "github.com/Shalom-Shobowale/adunniTradingHub/controllers/product"
	wholesaleControllers "github.com/Shalom-Shobowale/adunniTradingHub/controllers/wholesale"
	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
)

// SetupPublicRoutes registers everything reachable without a token: the
// catalog, the wholesale quote form, and the order event feed.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer, log *logrus.Logger) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	r.POST("/wholesale/quote", wholesaleControllers.SubmitQuote(db, mail, log))

	// websocket endpoint for real-time order updates
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
