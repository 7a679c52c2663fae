package customer

import (
	"net/http"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/pricing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCart returns the customer's cart with priced line items
func GetCart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	cart, err := loadOrCreateCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	items := make([]pricing.LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, pricing.LineItem{Price: it.Product.Price, Quantity: it.Quantity})
	}
	subtotal, _ := pricing.Subtotal(items).Round(2).Float64()

	c.JSON(http.StatusOK, gin.H{
		"cart":     cart,
		"subtotal": subtotal,
	})
}

// UpdateCartItem sets the quantity of a product in the cart; zero removes it
func UpdateCartItem(c *gin.Context) {
	var req struct {
		ProductID int  `json:"productId" binding:"required"`
		Quantity  *int `json:"quantity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provide productId and a non-negative quantity"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	cart, err := loadOrCreateCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	var product models.Product
	if err := database.DB.Where("id = ? AND is_active = ?", req.ProductID, true).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if *req.Quantity == 0 {
		database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).Delete(&models.CartItem{})
	} else {
		var item models.CartItem
		err := database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{CartID: cart.ID, ProductID: req.ProductID, Quantity: *req.Quantity}
			database.DB.Create(&item)
		} else if err == nil {
			database.DB.Model(&item).Update("quantity", *req.Quantity)
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
	}

	updated, err := loadOrCreateCart(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": updated})
}

// loadOrCreateCart fetches the customer's cart, creating the row on first use
func loadOrCreateCart(customerID int) (models.Cart, error) {
	var cart models.Cart
	err := database.DB.
		Where("customer_id = ?", customerID).
		Preload("Items.Product").
		First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{CustomerID: customerID}
		if err := database.DB.Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}
