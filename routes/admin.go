package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	adminController "github.com/Shalom-Shobowale/adunniTradingHub/controllers/admin"
	orderControllers "github.com/Shalom-Shobowale/adunniTradingHub/controllers/order"
	productcontroller "github.com/Shalom-Shobowale/adunniTradingHub/controllers/product"
	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
	"github.com/Shalom-Shobowale/adunniTradingHub/middleware"
)

// SetupAdminRoutes registers all operator endpoints. Every route requires a
// bearer token resolving to an admin profile; anyone else gets 401/403.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, mail *mailer.Mailer, log *logrus.Logger) {
	auth := middleware.RequireAuth(db, cfg.JWTSecret)

	// ─────────── Catalog Management ───────────
	products := r.Group("/products")
	products.Use(auth, middleware.RequireAdmin)
	{
		products.POST("", productcontroller.CreateProduct(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db))
		products.DELETE("/:id", productcontroller.DeleteProduct(db))
	}

	// ─────────── Order Management ───────────
	orders := r.Group("/orders")
	orders.Use(auth, middleware.RequireAdmin)
	{
		orders.GET("", orderControllers.GetAllOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:orderID", orderControllers.UpdateOrderStatusHandler(db))
		orders.PUT("/:orderID/payment", orderControllers.UpdatePaymentStatusHandler(db, mail, log))
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(auth, middleware.RequireAdmin)
	{
		// ─────────── Buyer Management ───────────
		adminGroup.GET("/users", adminController.GetAllProfiles(db))
		adminGroup.PUT("/users/:id", adminController.ToggleWholesaleApproval(db))

		// ─────────── Wholesale Pricing ───────────
		wholesale := adminGroup.Group("/wholesale")
		{
			wholesale.GET("", adminController.ListWholesaleTiers(db))
			wholesale.POST("", adminController.CreateWholesaleTier(db))
			wholesale.PUT("/:id", adminController.UpdateWholesaleTier(db))
			wholesale.DELETE("/:id", adminController.DeleteWholesaleTier(db))
		}

		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))
	}
}
