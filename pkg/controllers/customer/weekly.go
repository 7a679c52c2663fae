package customer

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/cutoff"
	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/pricing"
	"tiffinbox/pkg/services"
	"tiffinbox/pkg/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const orderableHorizonDays = 14

// GetMainCategories returns the weekly-menu main categories together with
// the delivery dates each one currently accepts (public)
func GetMainCategories(c *gin.Context) {
	var mains []models.MainCategory
	if err := database.DB.
		Where("is_active = ?", true).
		Preload("SubCategories", "is_active = ?", true).
		Find(&mains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch main categories"})
		return
	}

	now := time.Now()
	result := make([]gin.H, 0, len(mains))
	for _, mc := range mains {
		policy := cutoff.Policy{AdvanceDays: mc.AdvanceDays, CutoffTime: mc.OrderCutoffTime}
		dates := cutoff.OrderableDates(policy, now, orderableHorizonDays)

		formatted := make([]string, 0, len(dates))
		for _, d := range dates {
			formatted = append(formatted, d.Format("2006-01-02"))
		}

		result = append(result, gin.H{
			"mainCategory":   mc,
			"orderableDates": formatted,
		})
	}

	c.JSON(http.StatusOK, gin.H{"mainCategories": result})
}

// GetWeeklyMenu returns menu items for a main category on a given date (public)
func GetWeeklyMenu(c *gin.Context) {
	mainCategoryID, err := strconv.Atoi(c.Query("mainCategoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "mainCategoryId is required"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date is required in YYYY-MM-DD format"})
		return
	}

	var mc models.MainCategory
	if err := database.DB.Where("id = ? AND is_active = ?", mainCategoryID, true).First(&mc).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Main category not found"})
		return
	}

	policy := cutoff.Policy{AdvanceDays: mc.AdvanceDays, CutoffTime: mc.OrderCutoffTime}
	orderable := cutoff.IsOrderingAllowed(policy, time.Now(), date)

	var items []models.WeeklyMenuItem
	if err := database.DB.
		Where("main_category_id = ? AND specific_date = ?", mainCategoryID, date).
		Preload("SubCategory").
		Preload("MealType").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch weekly menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date.Format("2006-01-02"),
		"orderable": orderable,
		"items":     items,
	})
}

// WeeklyCheckout places a weekly-menu order. The cutoff rule is enforced
// server-side and every stock decrement is guarded inside the transaction,
// so stock can never go negative and a failed line aborts the whole order.
func WeeklyCheckout(c *gin.Context) {
	var req struct {
		Reference     *string `json:"reference"`
		CustomerName  string  `json:"customerName" binding:"required"`
		CustomerPhone string  `json:"customerPhone" binding:"required"`
		Address       string  `json:"address" binding:"required"`
		Location      string  `json:"location" binding:"required"`
		DeliveryDate  string  `json:"deliveryDate" binding:"required"`
		PaymentMethod string  `json:"paymentMethod" binding:"required"`
		Items         []struct {
			MenuItemID int `json:"menuItemId" binding:"required"`
			Quantity   int `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`

		PaymentDetails *struct {
			RazorpayOrderID   string `json:"razorpay_order_id"`
			RazorpayPaymentID string `json:"razorpay_payment_id"`
			RazorpaySignature string `json:"razorpay_signature"`
		} `json:"paymentDetails"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "customerName, customerPhone, address, location, deliveryDate, paymentMethod, and items are required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "deliveryDate must be YYYY-MM-DD"})
		return
	}

	if req.PaymentMethod != string(models.PaymentMethodCOD) && req.PaymentMethod != string(models.PaymentMethodOnline) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment method"})
		return
	}

	if req.Reference != nil && *req.Reference != "" {
		var existing models.WeeklyOrder
		if database.DB.Where("reference = ?", *req.Reference).Preload("Items.MenuItem").First(&existing).Error == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Order already placed", "order": existing})
			return
		}
	}

	var order models.WeeklyOrder

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Location must exist; weekly checkout itself is free delivery, but
		// the location is still the delivery zone.
		var lp models.LocationPricing
		if err := tx.Where("location = ? AND is_active = ?", req.Location, true).First(&lp).Error; err != nil {
			return fmt.Errorf("unknown delivery location %q", req.Location)
		}

		now := time.Now()
		lines := make([]pricing.LineItem, 0, len(req.Items))
		menuItems := make([]models.WeeklyMenuItem, 0, len(req.Items))

		for _, reqItem := range req.Items {
			if reqItem.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive")
			}

			var mi models.WeeklyMenuItem
			if err := tx.Preload("MainCategory").First(&mi, reqItem.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d not found", reqItem.MenuItemID)
			}

			if !mi.SpecificDate.Equal(deliveryDate) {
				return fmt.Errorf("menu item %q is not offered on %s", mi.Name, req.DeliveryDate)
			}

			policy := cutoff.Policy{AdvanceDays: mi.MainCategory.AdvanceDays, CutoffTime: mi.MainCategory.OrderCutoffTime}
			if !cutoff.IsOrderingAllowed(policy, now, deliveryDate) {
				return fmt.Errorf("ordering for %s is closed for %s", req.DeliveryDate, mi.MainCategory.Name)
			}

			if _, err := pricing.DecrementStock(mi.CurrentStock, reqItem.Quantity); err != nil {
				return fmt.Errorf("insufficient stock for %q: %d left", mi.Name, mi.CurrentStock)
			}

			lines = append(lines, pricing.LineItem{Price: mi.Price, Quantity: reqItem.Quantity})
			menuItems = append(menuItems, mi)
		}

		// Weekly checkout is always free delivery
		fee := pricing.DeliveryFee(true, &lp.DeliveryFee, 0)
		total := pricing.ComputeTotal(lines, fee)

		var paymentID *string
		if req.PaymentMethod == string(models.PaymentMethodOnline) {
			if req.PaymentDetails == nil ||
				req.PaymentDetails.RazorpayOrderID == "" ||
				req.PaymentDetails.RazorpayPaymentID == "" ||
				req.PaymentDetails.RazorpaySignature == "" {
				return fmt.Errorf("payment details are required for online payment")
			}
			if !services.VerifyPaymentSignature(req.PaymentDetails.RazorpayOrderID, req.PaymentDetails.RazorpayPaymentID, req.PaymentDetails.RazorpaySignature) {
				return fmt.Errorf("payment verification failed: invalid signature")
			}
			id := req.PaymentDetails.RazorpayPaymentID
			paymentID = &id
		}

		customerID := user.ID
		order = models.WeeklyOrder{
			Reference:     req.Reference,
			CustomerID:    &customerID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Address:       req.Address,
			Location:      req.Location,
			DeliveryDate:  deliveryDate,
			TotalAmount:   total,
			DeliveryFee:   fee,
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
			Status:        models.OrderStatusPending,
			KitchenStatus: models.KitchenStatusNotStarted,
			RiderStatus:   models.RiderStatusNotAssigned,
			PaymentID:     paymentID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i, reqItem := range req.Items {
			item := models.WeeklyOrderItem{
				WeeklyOrderID: order.ID,
				MenuItemID:    reqItem.MenuItemID,
				Quantity:      reqItem.Quantity,
				UnitPrice:     menuItems[i].Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			// Guarded decrement: zero rows affected means another order took
			// the stock between our read and this write.
			res := tx.Model(&models.WeeklyMenuItem{}).
				Where("id = ? AND current_stock >= ?", reqItem.MenuItemID, reqItem.Quantity).
				Update("current_stock", gorm.Expr("current_stock - ?", reqItem.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for %q", menuItems[i].Name)
			}

			if err := tx.Create(&models.StockHistory{
				MenuItemID: reqItem.MenuItemID,
				Quantity:   reqItem.Quantity,
				Action:     models.StockActionDeduct,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to place weekly order", "error": err.Error()})
		return
	}

	database.DB.Preload("Items.MenuItem").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Weekly order placed successfully",
		"order": gin.H{
			"id":           order.ID,
			"orderNumber":  fmt.Sprintf("#WK-%06d", order.ID),
			"deliveryDate": order.DeliveryDate.Format("2006-01-02"),
			"totalAmount":  order.TotalAmount,
			"deliveryFee":  order.DeliveryFee,
			"status":       order.Status,
			"items":        order.Items,
		},
	})
}

// MyWeeklyOrders returns the customer's weekly orders with tracking labels
func MyWeeklyOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var orders []models.WeeklyOrder
	if err := database.DB.
		Where("customer_id = ?", user.ID).
		Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch weekly orders"})
		return
	}

	result := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		result = append(result, gin.H{
			"order":        o,
			"displayLabel": status.DisplayLabel(o.Status, o.KitchenStatus),
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": result})
}
