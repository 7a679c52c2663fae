package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/pricing"
	"tiffinbox/pkg/services"
	"tiffinbox/pkg/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrders lists storefront orders with optional status/source/fake filters
func GetOrders(c *gin.Context) {
	query := database.DB.Model(&models.Order{}).
		Preload("Items.Product").
		Preload("Rider").
		Order("created_at desc")

	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}
	if src := c.Query("source"); src != "" {
		query = query.Where("source = ?", src)
	}
	if fake := c.Query("fake"); fake != "" {
		query = query.Where("is_fake = ?", fake == "true")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// GetOrder returns a single storefront order with its items and rider
func GetOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var order models.Order
	if err := database.DB.
		Preload("Items.Product").
		Preload("Customer").
		Preload("Rider").
		First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"displayLabel": status.DisplayLabel(order.Status, order.KitchenStatus),
	})
}

// UpdateOrderStatus moves the order status through the transition table.
// Confirming an order also opens the kitchen queue for it.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyOrder(tracks, req.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	updates := map[string]interface{}{"status": tracks.Order}
	if tracks.Order == models.OrderStatusConfirmed && order.KitchenStatus == models.KitchenStatusNotStarted {
		if tracks, err = status.ApplyKitchen(tracks, models.KitchenStatusPending); err == nil {
			updates["kitchen_status"] = tracks.Kitchen
		}
	}
	if tracks.Order == models.OrderStatusDelivered {
		updates["delivered_at"] = time.Now()
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Order status updated",
		"status":        tracks.Order,
		"kitchenStatus": tracks.Kitchen,
	})
}

// AssignRider puts an order on a rider's plate
func AssignRider(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		RiderID int `json:"riderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "riderId is required"})
		return
	}

	var rider models.User
	if err := database.DB.Where("id = ? AND role = ? AND is_active = ?", req.RiderID, models.RoleRider, true).First(&rider).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rider not found or inactive"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyRider(tracks, models.RiderStatusAssigned)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Updates(map[string]interface{}{
		"rider_id":     req.RiderID,
		"rider_status": tracks.Rider,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign rider"})
		return
	}

	go services.NotifyUser(req.RiderID, "New delivery", fmt.Sprintf("Order #%d assigned to you", order.ID), map[string]string{
		"orderId": fmt.Sprintf("%d", order.ID),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Rider assigned", "riderStatus": tracks.Rider})
}

// UnassignRider releases an assigned order back to the pool. Only allowed
// before pickup.
func UnassignRider(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyRider(tracks, models.RiderStatusNotAssigned)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Updates(map[string]interface{}{
		"rider_id":     nil,
		"rider_status": tracks.Rider,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to unassign rider"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rider unassigned"})
}

// MarkFake flags an order as fake so it is hidden from the kitchen queue and
// excluded from revenue.
func MarkFake(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		IsFake *bool `json:"isFake" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isFake is required"})
		return
	}

	res := database.DB.Model(&models.Order{}).Where("id = ?", orderID).Update("is_fake", *req.IsFake)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order flag updated", "isFake": *req.IsFake})
}

// CreateManualOrder records an order taken over the phone or a Meta channel
func CreateManualOrder(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerPhone string `json:"customerPhone" binding:"required"`
		Address       string `json:"address" binding:"required"`
		Source        string `json:"source"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
		Items         []struct {
			ProductID int `json:"productId" binding:"required"`
			Quantity  int `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "customerName, customerPhone, address, paymentMethod, and items are required"})
		return
	}

	source := models.OrderSourceManual
	if req.Source == string(models.OrderSourceMeta) {
		source = models.OrderSourceMeta
	}

	var order models.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		type line struct {
			productID int
			qty       int
			price     float64
		}
		lines := make([]line, 0, len(req.Items))
		priced := make([]pricing.LineItem, 0, len(req.Items))

		for _, it := range req.Items {
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive")
			}
			var p models.Product
			if err := tx.Where("id = ? AND is_active = ?", it.ProductID, true).First(&p).Error; err != nil {
				return fmt.Errorf("product %d not found", it.ProductID)
			}
			lines = append(lines, line{productID: p.ID, qty: it.Quantity, price: p.Price})
			priced = append(priced, pricing.LineItem{Price: p.Price, Quantity: it.Quantity})
		}

		// Manual orders carry no delivery fee
		total := pricing.ComputeTotal(priced, 0)

		order = models.Order{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Address:       req.Address,
			TotalAmount:   total,
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
			Status:        models.OrderStatusConfirmed,
			KitchenStatus: models.KitchenStatusPending,
			RiderStatus:   models.RiderStatusNotAssigned,
			Source:        source,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, l := range lines {
			if err := tx.Create(&models.OrderItem{
				OrderID:   order.ID,
				ProductID: l.productID,
				Quantity:  l.qty,
				UnitPrice: l.price,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create order", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

// GetWeeklyOrders lists weekly orders, filterable by delivery date and status
func GetWeeklyOrders(c *gin.Context) {
	query := database.DB.Model(&models.WeeklyOrder{}).
		Preload("Items.MenuItem").
		Preload("Rider").
		Order("delivery_date desc, created_at desc")

	if d := c.Query("date"); d != "" {
		query = query.Where("delivery_date = ?", d)
	}
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var orders []models.WeeklyOrder
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch weekly orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateWeeklyOrderStatus moves a weekly order through the transition table.
// Cancelling restores the stock it had reserved.
func UpdateWeeklyOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	var order models.WeeklyOrder
	if err := database.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Weekly order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyOrder(tracks, req.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": tracks.Order}
		if tracks.Order == models.OrderStatusConfirmed && order.KitchenStatus == models.KitchenStatusNotStarted {
			if tracks, err = status.ApplyKitchen(tracks, models.KitchenStatusPending); err == nil {
				updates["kitchen_status"] = tracks.Kitchen
			}
		}
		if tracks.Order == models.OrderStatusDelivered {
			updates["delivered_at"] = time.Now()
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		// Cancelled weekly orders give their stock back
		if tracks.Order == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := tx.Model(&models.WeeklyMenuItem{}).
					Where("id = ?", item.MenuItemID).
					Update("current_stock", gorm.Expr("current_stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.StockHistory{
					MenuItemID: item.MenuItemID,
					Quantity:   item.Quantity,
					Action:     models.StockActionRestore,
				}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update weekly order"})
		return
	}

	go services.NotifyOrderStatus(order.CustomerID, order.ID, status.DisplayLabel(tracks.Order, tracks.Kitchen))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Weekly order status updated",
		"status":        tracks.Order,
		"kitchenStatus": tracks.Kitchen,
	})
}

// AssignWeeklyRider assigns a rider to a weekly order
func AssignWeeklyRider(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		RiderID int `json:"riderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "riderId is required"})
		return
	}

	var rider models.User
	if err := database.DB.Where("id = ? AND role = ? AND is_active = ?", req.RiderID, models.RoleRider, true).First(&rider).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rider not found or inactive"})
		return
	}

	var order models.WeeklyOrder
	if err := database.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Weekly order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyRider(tracks, models.RiderStatusAssigned)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, status.ErrOrderNotConfirmed) {
			code = http.StatusUnprocessableEntity
		}
		c.JSON(code, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Updates(map[string]interface{}{
		"rider_id":     req.RiderID,
		"rider_status": tracks.Rider,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign rider"})
		return
	}

	go services.NotifyUser(req.RiderID, "New delivery", fmt.Sprintf("Weekly order #%d assigned to you", order.ID), map[string]string{
		"weeklyOrderId": fmt.Sprintf("%d", order.ID),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Rider assigned", "riderStatus": tracks.Rider})
}
