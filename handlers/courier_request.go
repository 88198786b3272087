package handlers

import (
	"net/http"

	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"
	"lezzet-api/statemachine"

	"github.com/gin-gonic/gin"
)

// CreateCourierRequest registers a courier's interest in delivering for
// the restaurant at :restaurantId. A rejected pair may request again;
// a pending or accepted pair may not.
func CreateCourierRequest(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	restaurantID := c.Param("restaurantId")

	var restaurant models.Restaurant
	if err := config.DB.Where("approved = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var existing models.CourierRequest
	err := config.DB.Where("courier_id = ? AND restaurant_id = ?", courierID, restaurant.ID).
		First(&existing).Error
	if err != nil {
		// No row yet: NOT_REGISTERED -> PENDING
		if err := statemachine.CanTransitionRequest(models.RequestNotRegistered, models.RequestPending, "courier"); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		request := models.CourierRequest{
			CourierID:    courierID,
			RestaurantID: restaurant.ID,
			Status:       models.RequestPending,
		}
		if err := config.DB.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Registration requested", "request": request})
		return
	}

	if err := statemachine.CanTransitionRequest(existing.Status, models.RequestPending, "courier"); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "A request for this restaurant already exists",
			"status": existing.Status,
		})
		return
	}
	config.DB.Model(&existing).Update("status", models.RequestPending)
	c.JSON(http.StatusOK, gin.H{"message": "Registration requested again", "request": existing})
}

// GetMyCourierRequests lists the courier's registrations
func GetMyCourierRequests(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	var requests []models.CourierRequest
	config.DB.Preload("Restaurant").
		Where("courier_id = ?", courierID).
		Order("updated_at desc").
		Find(&requests)
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// CancelCourierRequest withdraws a pending request. The row is removed,
// returning the pair to NOT_REGISTERED.
func CancelCourierRequest(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	requestID := c.Param("id")

	var request models.CourierRequest
	if err := config.DB.First(&request, requestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if request.CourierID != courierID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This request does not belong to you"})
		return
	}

	if err := statemachine.CanTransitionRequest(request.Status, models.RequestNotRegistered, "courier"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Only pending requests can be cancelled",
			"status": request.Status,
		})
		return
	}

	config.DB.Delete(&request)
	c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
}

// GetRestaurantCourierRequests lists incoming registrations for the
// caller's restaurant.
func GetRestaurantCourierRequests(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var requests []models.CourierRequest
	query := config.DB.Preload("Courier").Where("restaurant_id = ?", restaurant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&requests)

	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// resolveCourierRequest applies a restaurant decision to the request at :id
func resolveCourierRequest(c *gin.Context, decision models.CourierRequestStatus) {
	ownerID := middleware.GetUserID(c)
	requestID := c.Param("id")

	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var request models.CourierRequest
	if err := config.DB.First(&request, requestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	if request.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This request is not for your restaurant"})
		return
	}

	if err := statemachine.CanTransitionRequest(request.Status, decision, "restaurant"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"status": request.Status,
		})
		return
	}

	config.DB.Model(&request).Update("status", decision)
	c.JSON(http.StatusOK, gin.H{"message": "Request " + string(decision), "request": request})
}

// AcceptCourierRequest approves a courier's registration
func AcceptCourierRequest(c *gin.Context) {
	resolveCourierRequest(c, models.RequestAccepted)
}

// RejectCourierRequest declines a courier's registration
func RejectCourierRequest(c *gin.Context) {
	resolveCourierRequest(c, models.RequestRejected)
}
