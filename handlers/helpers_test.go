package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"
	"lezzet-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDBCounter int64

// setupTest opens a fresh in-memory database and a router with all
// routes registered.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", n)
	require.NoError(t, config.OpenDB(dsn))

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// seedUser creates a user directly in the database and returns it with
// a valid token.
func seedUser(t *testing.T, name, email string, role models.UserRole, status models.AccountStatus) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		Role:          role,
		AccountStatus: status,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

// seedRestaurant creates an approved, open restaurant with one menu item.
func seedRestaurant(t *testing.T, ownerID uint) (models.Restaurant, models.MenuItem) {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerID:      ownerID,
		Name:         "Testaurant",
		Address:      "1 Test St",
		City:         "Istanbul",
		DeliveryType: models.DeliveryAndPickup,
		Approved:     true,
		IsOpen:       true,
	}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         "Adana Kebap",
		Price:        12.99,
		IsAvailable:  true,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return restaurant, item
}

// doRequest performs a JSON request against the router.
func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
