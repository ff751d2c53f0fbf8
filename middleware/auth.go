package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID            = "user_id"
	CtxProfile           = "profile"
	CtxWholesaleApproved = "wholesale_approved"
)

// RequireAuth validates the bearer token and resolves the caller's profile.
// The token's "sub" claim is the profile id issued by the auth provider.
func RequireAuth(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var profile models.Profile
		if err := db.First(&profile, "id = ?", sub).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, profile.ID)
		c.Set(CtxProfile, profile)
		c.Set(CtxWholesaleApproved, profile.IsWholesaleApproved())

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth; rejects non-admin profiles.
func RequireAdmin(c *gin.Context) {
	profileVal, exists := c.Get(CtxProfile)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	profile := profileVal.(models.Profile)
	if profile.AccountType != models.AccountTypeAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUser pulls the authenticated identity out of the request context.
func CurrentUser(c *gin.Context) (userID string, wholesaleApproved bool, ok bool) {
	userIDVal, exists := c.Get(CtxUserID)
	if !exists {
		return "", false, false
	}
	approvedVal, _ := c.Get(CtxWholesaleApproved)
	approved, _ := approvedVal.(bool)
	return userIDVal.(string), approved, true
}
