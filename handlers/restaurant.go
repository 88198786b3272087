package handlers

import (
	"net/http"

	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name               string              `json:"name" binding:"required"`
	Cuisine            string              `json:"cuisine"`
	Address            string              `json:"address" binding:"required"`
	City               string              `json:"city" binding:"required"`
	District           string              `json:"district"`
	BusinessHoursStart string              `json:"business_hours_start"`
	BusinessHoursEnd   string              `json:"business_hours_end"`
	DeliveryType       models.DeliveryType `json:"delivery_type"`
}

// CreateRestaurant lets a restaurant-role user create their restaurant.
// It starts unapproved and stays off the public listing until an admin
// approves it.
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var existing models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a restaurant"})
		return
	}

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt := req.DeliveryType
	if dt == "" {
		dt = models.DeliveryAndPickup
	}
	if dt != models.DeliveryOnly && dt != models.PickupOnly && dt != models.DeliveryAndPickup {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_type must be DELIVERY, PICKUP or BOTH"})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:            ownerID,
		Name:               req.Name,
		Cuisine:            req.Cuisine,
		Address:            req.Address,
		City:               req.City,
		District:           req.District,
		BusinessHoursStart: req.BusinessHoursStart,
		BusinessHoursEnd:   req.BusinessHoursEnd,
		DeliveryType:       dt,
		Approved:           false,
		IsOpen:             true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant created, pending admin approval",
		"restaurant": restaurant,
	})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant updates restaurant details. Suspended owners may not
// toggle the open flag; approval is admin-only and never writable here.
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := req["is_open"]; ok && middleware.GetAccountStatus(c) == models.AccountSuspended {
		c.JSON(http.StatusForbidden, gin.H{"error": "Suspended accounts cannot change open state"})
		return
	}

	if v, ok := req["delivery_type"]; ok {
		dt, _ := v.(string)
		switch models.DeliveryType(dt) {
		case models.DeliveryOnly, models.PickupOnly, models.DeliveryAndPickup:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_type must be DELIVERY, PICKUP or BOTH"})
			return
		}
	}

	allowed := map[string]bool{
		"name": true, "cuisine": true, "address": true, "city": true, "district": true,
		"business_hours_start": true, "business_hours_end": true,
		"delivery_type": true, "is_open": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	config.DB.Model(&restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// ownedRestaurant loads the restaurant at :id and verifies the caller
// owns it.
func ownedRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	if restaurant.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return nil, false
	}
	return &restaurant, true
}

// AddMenuItem adds a new item to the restaurant's menu
func AddMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates a menu item (only by the owner)
func UpdateMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.Where("restaurant_id = ?", restaurant.ID).First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "price": true, "is_available": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.Where("restaurant_id = ?", restaurant.ID).First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
