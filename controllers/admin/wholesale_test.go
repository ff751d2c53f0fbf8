package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	"github.com/Shalom-Shobowale/adunniTradingHub/mailer"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
	"github.com/Shalom-Shobowale/adunniTradingHub/routes"
)

const testJWTSecret = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.WholesalePriceTier{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.QuoteRequest{},
	))
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	cfg := config.Config{JWTSecret: testJWTSecret, ShippingFee: 2000}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg, mailer.New(cfg, log), log)
	return r
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedAdminFixture(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&models.Profile{
		ID: "admin-1", Email: "admin@example.com", AccountType: models.AccountTypeAdmin,
	}).Error)
	require.NoError(t, db.Create(&models.Profile{
		ID: "buyer-1", Email: "buyer@example.com", AccountType: models.AccountTypeRetail,
	}).Error)

	product := models.Product{Name: "Premium Sun-Dried Ponmo", RetailPrice: 1000, StockQuantity: 100}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestWholesaleRoutesRequireAdmin(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)

	body := gin.H{"product_id": product.ID, "min_quantity": 5, "max_quantity": 20, "price_per_unit": 900}

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", bearerToken(t, "buyer-1"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTierOverlapRejection(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 5, "max_quantity": 20, "price_per_unit": 900})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// [15,30] collides with [5,20].
	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 15, "max_quantity": 30, "price_per_unit": 850})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "overlaps")

	// [21,30] and [1,4] are disjoint and accepted.
	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 21, "max_quantity": 30, "price_per_unit": 850})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 1, "max_quantity": 4, "price_per_unit": 990})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same range on a different product is fine.
	other := models.Product{Name: "Smoked Ponmo Chunks", RetailPrice: 800, StockQuantity: 40}
	require.NoError(t, db.Create(&other).Error)
	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": other.ID, "min_quantity": 15, "max_quantity": 30, "price_per_unit": 700})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUnboundedTierOverlap(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 50, "price_per_unit": 800})
	require.Equal(t, http.StatusCreated, w.Code)

	// Anything at or above 50 now collides with the open-ended tier.
	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 60, "max_quantity": 80, "price_per_unit": 750})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 10, "max_quantity": 49, "price_per_unit": 900})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTierEditExcludesItself(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 5, "max_quantity": 20, "price_per_unit": 900})
	require.Equal(t, http.StatusCreated, w.Code)

	var tier models.WholesalePriceTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tier))

	// Widening a tier's own range must not collide with itself.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/wholesale/%d", tier.ID), admin,
		gin.H{"product_id": product.ID, "min_quantity": 5, "max_quantity": 25, "price_per_unit": 880})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.WholesalePriceTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.MaxQuantity)
	assert.Equal(t, 25, *updated.MaxQuantity)
}

func TestMalformedTierRange(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 30, "max_quantity": 10, "price_per_unit": 900})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds max_quantity")
}

func TestDeleteTier(t *testing.T) {
	db := setupTestDB(t)
	product := seedAdminFixture(t, db)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/admin/wholesale", admin,
		gin.H{"product_id": product.ID, "min_quantity": 5, "max_quantity": 20, "price_per_unit": 900})
	require.Equal(t, http.StatusCreated, w.Code)
	var tier models.WholesalePriceTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tier))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/wholesale/%d", tier.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/wholesale/%d", tier.ID), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleWholesaleApproval(t *testing.T) {
	db := setupTestDB(t)
	seedAdminFixture(t, db)
	require.NoError(t, db.Create(&models.Profile{
		ID: "ws-1", Email: "ws@example.com", AccountType: models.AccountTypeWholesale,
	}).Error)
	r := setupRouter(t, db)
	admin := bearerToken(t, "admin-1")

	w := doJSON(t, r, http.MethodPut, "/admin/users/ws-1", admin,
		gin.H{"wholesale_approved": true})
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "ws-1").Error)
	assert.True(t, profile.WholesaleApproved)
	assert.True(t, profile.IsWholesaleApproved())

	// A retail account never becomes wholesale-approved in effect, even if
	// the flag is set.
	w = doJSON(t, r, http.MethodPut, "/admin/users/buyer-1", admin,
		gin.H{"wholesale_approved": true})
	require.Equal(t, http.StatusOK, w.Code)
	profile = models.Profile{}
	require.NoError(t, db.First(&profile, "id = ?", "buyer-1").Error)
	assert.False(t, profile.IsWholesaleApproved())
}
