package routes

import (
	"lezzet-api/handlers"
	"lezzet-api/middleware"
	"lezzet-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/forgot-password", handlers.ForgotPassword)
	r.POST("/resetPassword/:token", handlers.ResetPassword)

	r.GET("/restaurants/public", handlers.ListPublicRestaurants)
	r.GET("/restaurants/:id", handlers.GetRestaurant)
	r.GET("/restaurants/:id/menu", handlers.GetMenu)
	r.GET("/feedback/restaurant/:id", handlers.GetRestaurantReviews)
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile/update", handlers.UpdateProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/cart/add", handlers.AddToCart)
		customer.GET("/cart/showcart", handlers.ShowCart)
		customer.DELETE("/cart/remove/:itemId", handlers.RemoveCartItem)
		customer.DELETE("/cart/clear", handlers.ClearCart)

		customer.POST("/orders/create", handlers.PlaceOrder)
		customer.GET("/orders/my", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.POST("/orders/rate/:id", handlers.RateOrder)

		customer.POST("/complaints", handlers.CreateComplaint)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		// Restaurant management
		restaurant.POST("/restaurants", handlers.CreateRestaurant)
		restaurant.GET("/restaurants/my", handlers.GetMyRestaurant)
		restaurant.PUT("/restaurants/my", handlers.UpdateRestaurant)

		// Menu management
		restaurant.POST("/restaurants/:id/menu", handlers.AddMenuItem)
		restaurant.PUT("/restaurants/:id/menu/:itemId", handlers.UpdateMenuItem)
		restaurant.DELETE("/restaurants/:id/menu/:itemId", handlers.DeleteMenuItem)

		// Order management
		restaurant.GET("/orders/history/restaurant/:id", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/status/:id", handlers.UpdateOrderStatus)

		// Courier registrations
		restaurant.GET("/courier-requests/restaurant", handlers.GetRestaurantCourierRequests)
		restaurant.PUT("/courier-requests/:id/accept", handlers.AcceptCourierRequest)
		restaurant.PUT("/courier-requests/:id/reject", handlers.RejectCourierRequest)
	}

	// ── Courier routes ─────────────────────────────────────────────
	courier := r.Group("/")
	courier.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCourier))
	{
		courier.POST("/courier-requests/:restaurantId", handlers.CreateCourierRequest)
		courier.GET("/courier-requests/my", handlers.GetMyCourierRequests)
		courier.DELETE("/courier-requests/:id", handlers.CancelCourierRequest)

		courier.GET("/courier/orders/active", handlers.GetActiveOrders)
		courier.GET("/courier/orders/my", handlers.GetMyDeliveries)
		courier.PUT("/courier/orders/accept/:id", handlers.AcceptOrder)
		courier.PUT("/courier/orders/deliver/:id", handlers.DeliverOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/all-users", handlers.AdminGetAllUsers)
		admin.POST("/add-admin", handlers.AdminAddAdmin)
		admin.PUT("/update-user/:email", handlers.AdminUpdateUser)
		admin.DELETE("/delete-user/:email", handlers.AdminDeleteUser)
		admin.PUT("/approve-restaurant/:id", handlers.AdminApproveRestaurant)
		admin.PUT("/reject-restaurant/:id", handlers.AdminRejectRestaurant)
		admin.GET("/complaints", handlers.AdminGetComplaints)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
	}
}
