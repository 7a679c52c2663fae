package rider

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/services"
	"tiffinbox/pkg/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAssignedOrders returns what the rider is currently responsible for
func GetAssignedOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	active := []models.RiderStatus{
		models.RiderStatusAssigned,
		models.RiderStatusPickedUp,
		models.RiderStatusDelivering,
	}

	var orders []models.Order
	if err := database.DB.
		Where("rider_id = ? AND rider_status IN ?", user.ID, active).
		Preload("Items.Product").
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch assigned orders"})
		return
	}

	var weeklyOrders []models.WeeklyOrder
	if err := database.DB.
		Where("rider_id = ? AND rider_status IN ?", user.ID, active).
		Preload("Items.MenuItem").
		Order("delivery_date asc").
		Find(&weeklyOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch assigned orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":       orders,
		"weeklyOrders": weeklyOrders,
	})
}

// GetDeliveryHistory lists orders this rider has delivered
func GetDeliveryHistory(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var orders []models.Order
	if err := database.DB.
		Where("rider_id = ? AND rider_status = ?", user.ID, models.RiderStatusDelivered).
		Order("delivered_at desc").
		Limit(100).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery history"})
		return
	}

	var weeklyOrders []models.WeeklyOrder
	if err := database.DB.
		Where("rider_id = ? AND rider_status = ?", user.ID, models.RiderStatusDelivered).
		Order("delivered_at desc").
		Limit(100).
		Find(&weeklyOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch delivery history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":       orders,
		"weeklyOrders": weeklyOrders,
	})
}

// UpdateRiderStatus advances the rider track on a storefront order. Reaching
// delivered also completes the order itself and stamps the delivery time.
func UpdateRiderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		RiderStatus models.RiderStatus `json:"riderStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "riderStatus is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var order models.Order
	if err := database.DB.Where("id = ? AND rider_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found or not assigned to you"})
		return
	}

	tracks, updates, err := applyRiderMove(
		status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus},
		req.RiderStatus,
	)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update rider status"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Rider status updated",
		"riderStatus": tracks.Rider,
		"status":      tracks.Order,
	})
}

// UpdateWeeklyRiderStatus advances the rider track on a weekly order
func UpdateWeeklyRiderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		RiderStatus models.RiderStatus `json:"riderStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "riderStatus is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var order models.WeeklyOrder
	if err := database.DB.Where("id = ? AND rider_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Weekly order not found or not assigned to you"})
		return
	}

	tracks, updates, err := applyRiderMove(
		status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus},
		req.RiderStatus,
	)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update rider status"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Rider status updated",
		"riderStatus": tracks.Rider,
		"status":      tracks.Order,
	})
}

// applyRiderMove runs the rider transition plus the order-status side effects
// it drives: picked_up pushes the order out for delivery, delivered completes
// it and stamps the time.
func applyRiderMove(tracks status.Tracks, next models.RiderStatus) (status.Tracks, map[string]interface{}, error) {
	tracks, err := status.ApplyRider(tracks, next)
	if err != nil {
		return tracks, nil, err
	}

	updates := map[string]interface{}{"rider_status": tracks.Rider}

	switch tracks.Rider {
	case models.RiderStatusPickedUp:
		if tracks.Order == models.OrderStatusProcessing {
			if tracks, err = status.ApplyOrder(tracks, models.OrderStatusOutForDelivery); err == nil {
				updates["status"] = tracks.Order
			}
		}
	case models.RiderStatusDelivered:
		if tracks.Order == models.OrderStatusOutForDelivery {
			if tracks, err = status.ApplyOrder(tracks, models.OrderStatusDelivered); err == nil {
				updates["status"] = tracks.Order
				updates["delivered_at"] = time.Now()
			}
		}
	}

	return tracks, updates, nil
}

// UpdateAvailability toggles whether the rider can receive new assignments
func UpdateAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isAvailable is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	res := database.DB.Model(&models.RiderProfile{}).
		Where("user_id = ?", user.ID).
		Update("is_available", *req.IsAvailable)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update availability"})
		return
	}
	if res.RowsAffected == 0 {
		profile := models.RiderProfile{UserID: user.ID, IsAvailable: *req.IsAvailable}
		if err := database.DB.Create(&profile).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update availability"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "isAvailable": *req.IsAvailable})
}
