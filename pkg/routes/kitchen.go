package routes

import (
	"tiffinbox/pkg/controllers/kitchen"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// RegisterKitchenRoutes registers the kitchen dashboard API. Admins can see
// the same screens.
func RegisterKitchenRoutes(router *gin.RouterGroup) {
	kitchenGroup := router.Group("/kitchen")
	kitchenGroup.Use(middleware.AuthenticateToken(), middleware.AuthorizeRoles(models.RoleKitchen, models.RoleAdmin))
	{
		kitchenGroup.GET("/queue", kitchen.GetQueue)
		kitchenGroup.GET("/day-summary", kitchen.GetDaySummary)
		kitchenGroup.PUT("/orders/:id/status", kitchen.UpdateKitchenStatus)
		kitchenGroup.PUT("/weekly-orders/:id/status", kitchen.UpdateWeeklyKitchenStatus)
	}
}
