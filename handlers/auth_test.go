package handlers_test

import (
	"net/http"
	"testing"

	"lezzet-api/config"
	"lezzet-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodPost, "/register", "", map[string]interface{}{
		"name":     "Ayse",
		"email":    "ayse@example.com",
		"password": "secret123",
		"role":     "customer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/register", "", map[string]interface{}{
			"name":     "Ayse Again",
			"email":    "ayse@example.com",
			"password": "secret123",
			"role":     "customer",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("admin role not self-registrable", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/register", "", map[string]interface{}{
			"name":     "Evil",
			"email":    "evil@example.com",
			"password": "secret123",
			"role":     "admin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login succeeds with correct password", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/login", "", map[string]interface{}{
			"email":    "ayse@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	})

	t.Run("login fails with wrong password", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/login", "", map[string]interface{}{
			"email":    "ayse@example.com",
			"password": "wrongpass",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBannedUserCannotAuthenticate(t *testing.T) {
	r := setupTest(t)
	_, token := seedUser(t, "Banned", "banned@example.com", models.RoleCustomer, models.AccountBanned)

	t.Run("login rejected", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/login", "", map[string]interface{}{
			"email":    "banned@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("existing token rejected by middleware", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/profile", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	r := setupTest(t)
	user, _ := seedUser(t, "Mehmet", "mehmet@example.com", models.RoleCustomer, models.AccountActive)

	w := doRequest(r, http.MethodPost, "/forgot-password", "", map[string]interface{}{
		"email": "mehmet@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reset models.PasswordResetToken
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&reset).Error)

	w = doRequest(r, http.MethodPost, "/resetPassword/"+reset.Token, "", map[string]interface{}{
		"password": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("token is single-use", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/resetPassword/"+reset.Token, "", map[string]interface{}{
			"password": "anothersecret",
		})
		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("new password works", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/login", "", map[string]interface{}{
			"email":    "mehmet@example.com",
			"password": "newsecret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown email still returns ok", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/forgot-password", "", map[string]interface{}{
			"email": "nobody@example.com",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
