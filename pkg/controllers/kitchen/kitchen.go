package kitchen

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/services"
	"tiffinbox/pkg/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetQueue returns confirmed orders the kitchen still has to work through,
// oldest first. Fake orders never reach the kitchen.
func GetQueue(c *gin.Context) {
	activeOrder := []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
	}
	activeKitchen := []models.KitchenStatus{
		models.KitchenStatusNotStarted,
		models.KitchenStatusPending,
		models.KitchenStatusCooking,
		models.KitchenStatusReady,
	}

	var orders []models.Order
	if err := database.DB.
		Where("status IN ? AND kitchen_status IN ? AND is_fake = ?", activeOrder, activeKitchen, false).
		Preload("Items.Product").
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch kitchen queue"})
		return
	}

	today := time.Now().Format("2006-01-02")
	var weeklyOrders []models.WeeklyOrder
	if err := database.DB.
		Where("status IN ? AND kitchen_status IN ? AND delivery_date <= ?", activeOrder, activeKitchen, today).
		Preload("Items.MenuItem").
		Order("delivery_date asc, created_at asc").
		Find(&weeklyOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch kitchen queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":       orders,
		"weeklyOrders": weeklyOrders,
	})
}

// UpdateKitchenStatus advances the kitchen track on a storefront order
func UpdateKitchenStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		KitchenStatus models.KitchenStatus `json:"kitchenStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "kitchenStatus is required"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyKitchen(tracks, req.KitchenStatus)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{"kitchen_status": tracks.Kitchen}
	// Starting to cook moves the customer-facing status to processing
	if tracks.Kitchen == models.KitchenStatusCooking && order.Status == models.OrderStatusConfirmed {
		if tracks, err = status.ApplyOrder(tracks, models.OrderStatusProcessing); err == nil {
			updates["status"] = tracks.Order
		}
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update kitchen status"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Kitchen status updated",
		"kitchenStatus": tracks.Kitchen,
		"status":        tracks.Order,
	})
}

// UpdateWeeklyKitchenStatus advances the kitchen track on a weekly order
func UpdateWeeklyKitchenStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		KitchenStatus models.KitchenStatus `json:"kitchenStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "kitchenStatus is required"})
		return
	}

	var order models.WeeklyOrder
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Weekly order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyKitchen(tracks, req.KitchenStatus)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{"kitchen_status": tracks.Kitchen}
	if tracks.Kitchen == models.KitchenStatusCooking && order.Status == models.OrderStatusConfirmed {
		if tracks, err = status.ApplyOrder(tracks, models.OrderStatusProcessing); err == nil {
			updates["status"] = tracks.Order
		}
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update kitchen status"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Kitchen status updated",
		"kitchenStatus": tracks.Kitchen,
		"status":        tracks.Order,
	})
}

// GetDaySummary aggregates what the kitchen must cook for a date across all
// weekly orders, grouped by menu item.
func GetDaySummary(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
		return
	}

	type summaryRow struct {
		MenuItemID int    `json:"menuItemId"`
		Name       string `json:"name"`
		Total      int    `json:"total"`
	}

	var rows []summaryRow
	err := database.DB.Model(&models.WeeklyOrderItem{}).
		Select("weekly_order_items.menu_item_id, weekly_menu.name, SUM(weekly_order_items.quantity) as total").
		Joins("JOIN weekly_orders ON weekly_orders.id = weekly_order_items.weekly_order_id").
		Joins("JOIN weekly_menu ON weekly_menu.id = weekly_order_items.menu_item_id").
		Where("weekly_orders.delivery_date = ? AND weekly_orders.status NOT IN ?", dateStr,
			[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusCancelled}).
		Group("weekly_order_items.menu_item_id, weekly_menu.name").
		Order("total desc").
		Scan(&rows).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build day summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "summary": rows})
}
