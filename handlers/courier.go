package handlers

import (
	"net/http"

	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"
	"lezzet-api/statemachine"

	"github.com/gin-gonic/gin"
)

// acceptedRestaurantIDs returns the restaurants a courier is registered
// with (accepted requests only).
func acceptedRestaurantIDs(courierID uint) []uint {
	var ids []uint
	config.DB.Model(&models.CourierRequest{}).
		Where("courier_id = ? AND status = ?", courierID, models.RequestAccepted).
		Pluck("restaurant_id", &ids)
	return ids
}

// GetActiveOrders shows READY delivery orders with no courier yet, from
// restaurants where the courier's registration is accepted.
func GetActiveOrders(c *gin.Context) {
	courierID := middleware.GetUserID(c)

	ids := acceptedRestaurantIDs(courierID)
	if len(ids) == 0 {
		c.JSON(http.StatusOK, gin.H{"count": 0, "orders": []models.Order{}})
		return
	}

	var orders []models.Order
	config.DB.Preload("Restaurant").Preload("Customer").
		Where("status = ? AND courier_id IS NULL AND delivery_type = ? AND restaurant_id IN ?",
			models.StatusReady, models.DeliveryOnly, ids).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetMyDeliveries returns all orders assigned to the logged-in courier
func GetMyDeliveries(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Restaurant").Preload("Customer").
		Where("courier_id = ?", courierID).
		Order("updated_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AcceptOrder assigns the order to the courier and transitions
// READY -> PICKED_UP. Suspended couriers cannot take new orders.
func AcceptOrder(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	orderID := c.Param("id")

	if middleware.GetAccountStatus(c) == models.AccountSuspended {
		c.JSON(http.StatusForbidden, gin.H{"error": "Suspended accounts cannot accept orders"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.DeliveryType == models.PickupOnly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup orders are handed over at the restaurant"})
		return
	}

	// Prevent two couriers taking the same order
	if order.CourierID != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been taken by another courier"})
		return
	}

	var reg models.CourierRequest
	if err := config.DB.Where("courier_id = ? AND restaurant_id = ? AND status = ?",
		courierID, order.RestaurantID, models.RequestAccepted).First(&reg).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not registered with this restaurant"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusPickedUp, "courier"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":     models.StatusPickedUp,
		"courier_id": courierID,
	})

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusPickedUp,
		ChangedBy:  courierID,
		Note:       "Courier picked up the order",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order picked up",
		"order_id": order.ID,
		"status":   models.StatusPickedUp,
	})
}

// DeliverOrder transitions PICKED_UP -> DELIVERED
func DeliverOrder(c *gin.Context) {
	courierID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.CourierID == nil || *order.CourierID != courierID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned courier for this order"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, "courier"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", models.StatusDelivered)

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusDelivered,
		ChangedBy:  courierID,
		Note:       "Order delivered to customer",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered",
		"order_id": order.ID,
		"status":   models.StatusDelivered,
	})
}
