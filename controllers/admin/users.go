package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

// GET /admin/users
func GetAllProfiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profiles []models.Profile
		if err := db.Order("created_at desc").Find(&profiles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profiles"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// PUT /admin/users/:id
//
// Toggles whether a wholesale account actually receives tiered pricing.
// Already-snapshotted cart lines keep their prices until the buyer next
// touches them.
func ToggleWholesaleApproval(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req struct {
			WholesaleApproved *bool `json:"wholesale_approved" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wholesale_approved is required"})
			return
		}

		var profile models.Profile
		if err := db.First(&profile, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		if err := db.Model(&profile).Update("wholesale_approved", *req.WholesaleApproved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		profile.WholesaleApproved = *req.WholesaleApproved

		c.JSON(http.StatusOK, profile)
	}
}
