package customer

import (
	"net/http"
	"strconv"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// GetCategories returns all active storefront categories (public)
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order asc, name asc").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetProducts returns active products, optionally filtered by category (public)
func GetProducts(c *gin.Context) {
	query := database.DB.Where("is_active = ?", true).Preload("Category")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		id, err := strconv.Atoi(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid categoryId"})
			return
		}
		query = query.Where("category_id = ?", id)
	}

	var products []models.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetBanners returns active marketing banners for the storefront (public)
func GetBanners(c *gin.Context) {
	var banners []models.Banner
	if err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// GetDeliveryLocations returns active delivery locations and their fees (public)
func GetDeliveryLocations(c *gin.Context) {
	var locations []models.LocationPricing
	if err := database.DB.
		Where("is_active = ?", true).
		Order("location asc").
		Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}
