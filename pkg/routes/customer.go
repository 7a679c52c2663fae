package routes

import (
	"tiffinbox/pkg/controllers/customer"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers the public storefront and the
// authenticated customer API
func RegisterCustomerRoutes(router *gin.RouterGroup) {
	// Public storefront (no auth required)
	store := router.Group("/store")
	{
		store.GET("/categories", customer.GetCategories)
		store.GET("/products", customer.GetProducts)
		store.GET("/banners", customer.GetBanners)
		store.GET("/locations", customer.GetDeliveryLocations)
		store.GET("/main-categories", customer.GetMainCategories)
		store.GET("/weekly-menu", customer.GetWeeklyMenu)
	}

	customerGroup := router.Group("/customer")
	customerGroup.Use(middleware.AuthenticateToken(), middleware.AuthorizeRoles(models.RoleCustomer))
	{
		// Cart
		customerGroup.GET("/cart", customer.GetCart)
		customerGroup.PUT("/cart/items", customer.UpdateCartItem)

		// Storefront orders
		customerGroup.POST("/orders", customer.Checkout)
		customerGroup.POST("/orders/payment", customer.CreatePaymentOrder)
		customerGroup.GET("/orders", customer.MyOrders)
		customerGroup.GET("/orders/:orderId/track", customer.TrackOrder)
		customerGroup.PUT("/orders/:orderId/cancel", customer.CancelOrder)

		// Weekly orders
		customerGroup.POST("/weekly-orders", customer.WeeklyCheckout)
		customerGroup.GET("/weekly-orders", customer.MyWeeklyOrders)

		// Profile
		customerGroup.GET("/profile", customer.GetProfile)
		customerGroup.PUT("/profile", customer.UpdateProfile)
		customerGroup.POST("/device-token", customer.RegisterDeviceToken)
	}
}
