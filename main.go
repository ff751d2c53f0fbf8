package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
	"github.com/Shalom-Shobowale/adunniTradingHub/routes"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	log.Info("✅ Starting Adunni Trading Hub API...")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("❌ Failed to load configuration")
	}

	db := initDatabase(cfg, log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.WholesalePriceTier{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.QuoteRequest{},
	); err != nil {
		log.WithError(err).Fatal("❌ AutoMigrate failed")
	}

	mail := mailer.New(cfg, log)

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, cfg, mail, log)

	log.Infof("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("❌ Failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("❌ DB connection failed")
	}
	return db
}
