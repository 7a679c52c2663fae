package routes

import (
	"tiffinbox/pkg/controllers/rider"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// RegisterRiderRoutes registers the rider delivery API
func RegisterRiderRoutes(router *gin.RouterGroup) {
	riderGroup := router.Group("/rider")
	riderGroup.Use(middleware.AuthenticateToken(), middleware.AuthorizeRoles(models.RoleRider))
	{
		riderGroup.GET("/orders", rider.GetAssignedOrders)
		riderGroup.GET("/history", rider.GetDeliveryHistory)
		riderGroup.PUT("/orders/:id/status", rider.UpdateRiderStatus)
		riderGroup.PUT("/weekly-orders/:id/status", rider.UpdateWeeklyRiderStatus)
		riderGroup.PUT("/availability", rider.UpdateAvailability)
	}
}
