package handlers

import (
	"net/http"

	"lezzet-api/checkout"
	"lezzet-api/config"
	"lezzet-api/middleware"
	"lezzet-api/models"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart puts a menu item into the customer's cart. The cart is
// pinned to one restaurant: adding from a different one starts over.
func AddToCart(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + item.Name + "' is not available"})
		return
	}

	var cart models.Cart
	err := config.DB.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error
	if err != nil {
		cart = models.Cart{CustomerID: customerID, RestaurantID: item.RestaurantID}
		if err := config.DB.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
	} else if cart.RestaurantID != item.RestaurantID {
		// Switching restaurants empties the basket. The update must not
		// go through the loaded struct or GORM re-saves the deleted
		// Items association.
		config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
		cart.Items = nil
		config.DB.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("restaurant_id", item.RestaurantID)
		cart.RestaurantID = item.RestaurantID
	}

	for _, existing := range cart.Items {
		if existing.MenuItemID == req.MenuItemID {
			config.DB.Model(&existing).Update("quantity", existing.Quantity+req.Quantity)
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
			return
		}
	}

	line := models.CartItem{CartID: cart.ID, MenuItemID: req.MenuItemID, Quantity: req.Quantity}
	if err := config.DB.Create(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to cart"})
}

// ShowCart returns the cart contents with a priced breakdown preview.
// The preview assumes delivery; the final amounts are fixed at order
// creation.
func ShowCart(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var cart models.Cart
	if err := config.DB.Preload("Items.MenuItem").Where("customer_id = ?", customerID).First(&cart).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "count": 0})
		return
	}

	var lines []checkout.Line
	for _, it := range cart.Items {
		lines = append(lines, checkout.Line{Price: it.MenuItem.Price, Quantity: it.Quantity})
	}
	preview := checkout.Compute(lines, true, 0)

	c.JSON(http.StatusOK, gin.H{
		"cart":        cart,
		"count":       len(cart.Items),
		"preview":     preview,
		"tip_presets": checkout.TipPresets,
	})
}

// RemoveCartItem deletes one line from the cart
func RemoveCartItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var cart models.Cart
	if err := config.DB.Where("customer_id = ?", customerID).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart is empty"})
		return
	}

	res := config.DB.Where("cart_id = ? AND id = ?", cart.ID, itemID).Delete(&models.CartItem{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

// ClearCart empties the customer's cart
func ClearCart(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var cart models.Cart
	if err := config.DB.Where("customer_id = ?", customerID).First(&cart).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Cart already empty"})
		return
	}
	config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
	config.DB.Delete(&cart)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
