package handlers

import (
	"net/http"

	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"

	"github.com/gin-gonic/gin"
)

// GetRestaurantReviews returns the public reviews for a restaurant
func GetRestaurantReviews(c *gin.Context) {
	restaurantID := c.Param("id")

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var reviews []models.Review
	config.DB.Preload("Customer").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&reviews)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"rating":     restaurant.Rating,
		"count":      len(reviews),
		"reviews":    reviews,
	})
}

type CreateComplaintRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// CreateComplaint files a customer complaint against a restaurant.
// Complaints are only visible to admins.
func CreateComplaint(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	complaint := models.Complaint{
		CustomerID:   customerID,
		RestaurantID: req.RestaurantID,
		Message:      req.Message,
	}
	if err := config.DB.Create(&complaint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file complaint"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Complaint submitted", "complaint": complaint})
}
