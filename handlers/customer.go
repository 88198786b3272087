package handlers

import (
	"net/http"
	"time"

	"lezzet-api/checkout"
	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID    uint                 `json:"restaurant_id" binding:"required"`
	DeliveryAddress string               `json:"delivery_address"`
	DeliveryType    models.DeliveryType  `json:"delivery_type" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required"`
	Tip             int                  `json:"tip"`
	Card            *checkout.Card       `json:"card"`
	Items           []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items"`
}

// PlaceOrder creates a new order (customer only). Items come from the
// request body, or from the customer's cart when the body has none.
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	if middleware.GetAccountStatus(c) == models.AccountSuspended {
		c.JSON(http.StatusForbidden, gin.H{"error": "Suspended accounts cannot place new orders"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeliveryType != models.DeliveryOnly && req.DeliveryType != models.PickupOnly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_type must be DELIVERY or PICKUP"})
		return
	}
	if req.DeliveryType == models.DeliveryOnly && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_address is required for delivery orders"})
		return
	}
	if req.PaymentMethod != models.PaymentCreditCard && req.PaymentMethod != models.PaymentCash {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be CREDIT_CARD or CASH"})
		return
	}
	if req.PaymentMethod == models.PaymentCreditCard {
		if req.Card == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Card details required for credit card payment"})
			return
		}
		if err := checkout.ValidateCard(*req.Card, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !restaurant.Approved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is not accepting orders yet"})
		return
	}
	if !restaurant.IsOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is currently closed"})
		return
	}
	if !restaurant.Supports(req.DeliveryType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant does not support " + string(req.DeliveryType)})
		return
	}

	type requested struct {
		MenuItemID uint
		Quantity   int
	}
	var wanted []requested
	for _, it := range req.Items {
		wanted = append(wanted, requested{it.MenuItemID, it.Quantity})
	}
	if len(wanted) == 0 {
		// Fall back to the server-side cart
		var cart models.Cart
		if err := config.DB.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error; err != nil || len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
			return
		}
		if cart.RestaurantID != req.RestaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart belongs to a different restaurant"})
			return
		}
		for _, it := range cart.Items {
			wanted = append(wanted, requested{it.MenuItemID, it.Quantity})
		}
	}

	var orderItems []models.OrderItem
	var lines []checkout.Line
	for _, w := range wanted {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, w.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
			return
		}
		if menuItem.RestaurantID != req.RestaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not belong to this restaurant"})
			return
		}
		if !menuItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
			return
		}
		lines = append(lines, checkout.Line{Price: menuItem.Price, Quantity: w.Quantity})
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   w.Quantity,
			Price:      menuItem.Price,
			Name:       menuItem.Name,
		})
	}

	breakdown := checkout.Compute(lines, req.DeliveryType == models.DeliveryOnly, req.Tip)

	order := models.Order{
		CustomerID:      customerID,
		RestaurantID:    req.RestaurantID,
		Status:          models.StatusPending,
		Subtotal:        breakdown.Subtotal,
		Tax:             breakdown.Tax,
		DeliveryFee:     breakdown.DeliveryFee,
		Tip:             breakdown.Tip,
		Total:           breakdown.Total,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryType:    req.DeliveryType,
		PaymentMethod:   req.PaymentMethod,
		Items:           orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPending,
		ChangedBy: customerID,
		Note:      "Order placed by customer",
	}
	config.DB.Create(&history)

	// A placed order consumes the matching cart
	var cart models.Cart
	if err := config.DB.Where("customer_id = ? AND restaurant_id = ?", customerID, req.RestaurantID).First(&cart).Error; err == nil {
		config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
		config.DB.Delete(&cart)
	}

	config.DB.Preload("Items.MenuItem").Preload("Restaurant").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Order placed successfully",
		"order":     order,
		"breakdown": breakdown,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("Restaurant").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail with history
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").
		Preload("Restaurant").
		Preload("StatusHistory").
		Preload("Courier").
		First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

type RateOrderRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RateOrder lets the customer review a delivered order, exactly once.
// The review feeds the restaurant's public rating.
func RateOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req RateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if order.Status != models.StatusDelivered {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only delivered orders can be rated"})
		return
	}
	if order.Rated {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been rated"})
		return
	}

	review := models.Review{
		CustomerID:   customerID,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has already been rated"})
		return
	}
	config.DB.Model(&order).Update("rated", true)

	// Refresh the restaurant's average rating
	var avg float64
	config.DB.Model(&models.Review{}).
		Where("restaurant_id = ?", order.RestaurantID).
		Select("AVG(rating)").Scan(&avg)
	config.DB.Model(&models.Restaurant{}).
		Where("id = ?", order.RestaurantID).
		Update("rating", avg)

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for your review", "review": review})
}
