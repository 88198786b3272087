package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"lezzet-api/config"
	"lezzet-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierRegistrationWorkflow(t *testing.T) {
	r := setupTest(t)

	owner, ownerToken := seedUser(t, "Owner", "owner@example.com", models.RoleRestaurant, models.AccountActive)
	courier, courierToken := seedUser(t, "Courier", "courier@example.com", models.RoleCourier, models.AccountActive)
	restaurant, _ := seedRestaurant(t, owner.ID)

	restaurantPath := strconv.Itoa(int(restaurant.ID))

	// NOT_REGISTERED -> PENDING
	w := doRequest(r, http.MethodPost, "/courier-requests/"+restaurantPath, courierToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var request models.CourierRequest
	require.NoError(t, config.DB.Where("courier_id = ?", courier.ID).First(&request).Error)
	assert.Equal(t, models.RequestPending, request.Status)
	requestPath := strconv.Itoa(int(request.ID))

	t.Run("duplicate request rejected while pending", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/courier-requests/"+restaurantPath, courierToken, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("courier cancel returns pair to not registered", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/courier-requests/"+requestPath, courierToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		err := config.DB.Where("courier_id = ?", courier.ID).First(&models.CourierRequest{}).Error
		assert.Error(t, err) // row deleted
	})

	// Request again and let the restaurant accept. The new row gets a
	// fresh ID, so query into a clean struct.
	w = doRequest(r, http.MethodPost, "/courier-requests/"+restaurantPath, courierToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	request = models.CourierRequest{}
	require.NoError(t, config.DB.Where("courier_id = ?", courier.ID).First(&request).Error)
	requestPath = strconv.Itoa(int(request.ID))

	w = doRequest(r, http.MethodPut, "/courier-requests/"+requestPath+"/accept", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, config.DB.First(&request, request.ID).Error)
	assert.Equal(t, models.RequestAccepted, request.Status)

	t.Run("accepted registration cannot be cancelled", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/courier-requests/"+requestPath, courierToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRejectedCourierMayRequestAgain(t *testing.T) {
	r := setupTest(t)

	owner, ownerToken := seedUser(t, "Owner", "owner@example.com", models.RoleRestaurant, models.AccountActive)
	courier, courierToken := seedUser(t, "Courier", "courier@example.com", models.RoleCourier, models.AccountActive)
	restaurant, _ := seedRestaurant(t, owner.ID)

	restaurantPath := strconv.Itoa(int(restaurant.ID))

	w := doRequest(r, http.MethodPost, "/courier-requests/"+restaurantPath, courierToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var request models.CourierRequest
	require.NoError(t, config.DB.Where("courier_id = ?", courier.ID).First(&request).Error)

	w = doRequest(r, http.MethodPut, "/courier-requests/"+strconv.Itoa(int(request.ID))+"/reject", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/courier-requests/"+restaurantPath, courierToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, config.DB.First(&request, request.ID).Error)
	assert.Equal(t, models.RequestPending, request.Status)
}
