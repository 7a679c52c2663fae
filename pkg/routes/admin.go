package routes

import (
	"tiffinbox/pkg/controllers/admin"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the back-office API
func RegisterAdminRoutes(router *gin.RouterGroup) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthenticateToken(), middleware.AuthorizeRoles(models.RoleAdmin))
	{
		// Dashboard
		adminGroup.GET("/dashboard", admin.GetDashboard)

		// Storefront orders
		adminGroup.GET("/orders", admin.GetOrders)
		adminGroup.GET("/orders/:id", admin.GetOrder)
		adminGroup.POST("/orders", admin.CreateManualOrder)
		adminGroup.PUT("/orders/:id/status", admin.UpdateOrderStatus)
		adminGroup.PUT("/orders/:id/rider", admin.AssignRider)
		adminGroup.DELETE("/orders/:id/rider", admin.UnassignRider)
		adminGroup.PUT("/orders/:id/fake", admin.MarkFake)

		// Weekly orders
		adminGroup.GET("/weekly-orders", admin.GetWeeklyOrders)
		adminGroup.PUT("/weekly-orders/:id/status", admin.UpdateWeeklyOrderStatus)
		adminGroup.PUT("/weekly-orders/:id/rider", admin.AssignWeeklyRider)

		// Storefront catalog
		adminGroup.POST("/categories", admin.CreateCategory)
		adminGroup.PUT("/categories/:id", admin.UpdateCategory)
		adminGroup.DELETE("/categories/:id", admin.DeleteCategory)
		adminGroup.POST("/products", admin.CreateProduct)
		adminGroup.PUT("/products/:id", admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)

		// Weekly-menu taxonomy
		adminGroup.GET("/catalog", admin.GetCatalogTree)
		adminGroup.POST("/main-categories", admin.CreateMainCategory)
		adminGroup.PUT("/main-categories/:id", admin.UpdateMainCategory)
		adminGroup.POST("/sub-categories", admin.CreateSubCategory)
		adminGroup.POST("/meal-types", admin.CreateMealType)

		// Weekly menu and stock
		adminGroup.GET("/weekly-menu", admin.GetWeeklyMenuItems)
		adminGroup.POST("/weekly-menu", admin.CreateWeeklyMenuItem)
		adminGroup.PUT("/weekly-menu/:id", admin.UpdateWeeklyMenuItem)
		adminGroup.DELETE("/weekly-menu/:id", admin.DeleteWeeklyMenuItem)
		adminGroup.POST("/weekly-menu/:id/restock", admin.RestockMenuItem)
		adminGroup.GET("/weekly-menu/:id/stock-history", admin.GetStockHistory)

		// Delivery locations
		adminGroup.GET("/locations", admin.GetLocationPricing)
		adminGroup.POST("/locations", admin.CreateLocationPricing)
		adminGroup.PUT("/locations/:id", admin.UpdateLocationPricing)

		// Expenses
		adminGroup.GET("/expenses", admin.GetExpenses)
		adminGroup.POST("/expenses", admin.CreateExpense)
		adminGroup.DELETE("/expenses/:id", admin.DeleteExpense)

		// Banners
		adminGroup.GET("/banners", admin.GetBanners)
		adminGroup.POST("/banners", admin.CreateBanner)
		adminGroup.PUT("/banners/:id", admin.UpdateBanner)
		adminGroup.DELETE("/banners/:id", admin.DeleteBanner)

		// Accounts
		adminGroup.GET("/users", admin.GetUsers)
		adminGroup.GET("/riders", admin.GetRiders)
		adminGroup.POST("/users", admin.CreateStaff)
		adminGroup.PUT("/users/:id/active", admin.SetUserActive)
	}
}
