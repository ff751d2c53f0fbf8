package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
)

// SetupRoutes is the single entry-point that wires up the public, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, mail *mailer.Mailer, log *logrus.Logger) {
	// 1️⃣ Public routes (no middleware)
	SetupPublicRoutes(r, db, mail, log)

	// 2️⃣ Buyer routes (JWT-protected): cart + checkout
	SetupUserRoutes(r, db, cfg, log)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, cfg, mail, log)
}
