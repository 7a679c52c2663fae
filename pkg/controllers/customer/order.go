package customer

import (
	"fmt"
	"net/http"
	"strconv"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/pricing"
	"tiffinbox/pkg/services"
	"tiffinbox/pkg/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Checkout places a storefront order from the customer's cart. Pricing,
// payment verification, order creation, and cart clearing all run in one
// transaction so a failure cannot leave partial state behind.
func Checkout(c *gin.Context) {
	var req struct {
		Reference     *string `json:"reference"` // client idempotency key
		CustomerName  string  `json:"customerName" binding:"required"`
		CustomerPhone string  `json:"customerPhone" binding:"required"`
		Address       string  `json:"address" binding:"required"`
		Location      *string `json:"location"`
		PaymentMethod string  `json:"paymentMethod" binding:"required"`

		PaymentDetails *struct {
			RazorpayOrderID   string `json:"razorpay_order_id"`
			RazorpayPaymentID string `json:"razorpay_payment_id"`
			RazorpaySignature string `json:"razorpay_signature"`
		} `json:"paymentDetails"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "customerName, customerPhone, address, and paymentMethod are required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	if req.PaymentMethod != string(models.PaymentMethodCOD) && req.PaymentMethod != string(models.PaymentMethodOnline) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment method"})
		return
	}

	// A retried submission with the same reference returns the original
	// order instead of creating a duplicate.
	if req.Reference != nil && *req.Reference != "" {
		var existing models.Order
		if database.DB.Where("reference = ?", *req.Reference).Preload("Items.Product").First(&existing).Error == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Order already placed", "order": existing})
			return
		}
	}

	var order models.Order

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("customer_id = ?", user.ID).Preload("Items.Product").First(&cart).Error; err != nil {
			return fmt.Errorf("cart not found")
		}
		if len(cart.Items) == 0 {
			return fmt.Errorf("cart is empty")
		}

		// Price from the catalog, never from the client
		lines := make([]pricing.LineItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			if !it.Product.IsActive {
				return fmt.Errorf("product %s is no longer available", it.Product.Name)
			}
			lines = append(lines, pricing.LineItem{Price: it.Product.Price, Quantity: it.Quantity})
		}

		var locationFee *float64
		if req.Location != nil && *req.Location != "" {
			var lp models.LocationPricing
			if err := tx.Where("location = ? AND is_active = ?", *req.Location, true).First(&lp).Error; err == nil {
				locationFee = &lp.DeliveryFee
			}
		}

		fee := pricing.DeliveryFee(false, locationFee, config.AppConfig.FlatDeliveryFee)
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
		order = models.Order{
			Reference:     req.Reference,
			CustomerID:    &customerID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Address:       req.Address,
			Location:      req.Location,
			TotalAmount:   total,
			DeliveryFee:   fee,
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
			Status:        models.OrderStatusPending,
			KitchenStatus: models.KitchenStatusNotStarted,
			RiderStatus:   models.RiderStatusNotAssigned,
			Source:        models.OrderSourceWebsite,
			PaymentID:     paymentID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range cart.Items {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.Product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to place order", "error": err.Error()})
		return
	}

	database.DB.Preload("Items.Product").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order": gin.H{
			"id":            order.ID,
			"orderNumber":   fmt.Sprintf("#ORD-%06d", order.ID),
			"totalAmount":   order.TotalAmount,
			"deliveryFee":   order.DeliveryFee,
			"paymentMethod": order.PaymentMethod,
			"status":        order.Status,
			"createdAt":     order.CreatedAt,
			"items":         order.Items,
		},
	})
}

// CreatePaymentOrder creates a Razorpay order for the amount the client is
// about to pay online
func CreatePaymentOrder(c *gin.Context) {
	var req struct {
		Amount  float64 `json:"amount" binding:"required"`
		Receipt string  `json:"receipt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide a positive amount and a receipt id"})
		return
	}

	body, err := services.CreateRazorpayOrder(req.Amount, "INR", req.Receipt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment order", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"razorpayOrder": body, "keyId": config.AppConfig.RazorpayKeyID})
}

// MyOrders returns the customer's storefront orders, newest first
func MyOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var orders []models.Order
	if err := database.DB.
		Where("customer_id = ?", user.ID).
		Preload("Items.Product").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// TrackOrder returns one order with its composite tracking label
func TrackOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var order models.Order
	if err := database.DB.
		Where("id = ? AND customer_id = ?", orderID, user.ID).
		Preload("Items.Product").
		Preload("Rider").
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"displayLabel": status.DisplayLabel(order.Status, order.KitchenStatus),
	})
}

// CancelOrder cancels a pending order
func CancelOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var order models.Order
	if err := database.DB.Where("id = ? AND customer_id = ?", orderID, user.ID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	tracks := status.Tracks{Order: order.Status, Kitchen: order.KitchenStatus, Rider: order.RiderStatus}
	tracks, err = status.ApplyOrder(tracks, models.OrderStatusCancelled)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Cannot cancel order while it is %s", order.Status)})
		return
	}

	if err := database.DB.Model(&order).Update("status", tracks.Order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}
