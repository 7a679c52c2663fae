package admin

import (
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/services"

	"github.com/gin-gonic/gin"
)

// GetLocationPricing lists delivery locations and their fees
func GetLocationPricing(c *gin.Context) {
	var locations []models.LocationPricing
	if err := database.DB.Order("location asc").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// CreateLocationPricing adds a delivery zone with its fee
func CreateLocationPricing(c *gin.Context) {
	var req struct {
		Location    string   `json:"location" binding:"required"`
		DeliveryFee *float64 `json:"deliveryFee" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || *req.DeliveryFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "location and a non-negative deliveryFee are required"})
		return
	}

	lp := models.LocationPricing{Location: req.Location, DeliveryFee: *req.DeliveryFee, IsActive: true}
	if err := database.DB.Create(&lp).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Location already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Location created", "location": lp})
}

// UpdateLocationPricing edits a delivery zone's fee or active flag
func UpdateLocationPricing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid location ID"})
		return
	}

	var req struct {
		DeliveryFee *float64 `json:"deliveryFee"`
		IsActive    *bool    `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.DeliveryFee != nil {
		if *req.DeliveryFee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "deliveryFee must be non-negative"})
			return
		}
		updates["delivery_fee"] = *req.DeliveryFee
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	res := database.DB.Model(&models.LocationPricing{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update location"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Location not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

// GetExpenses lists expenses, filterable by month (YYYY-MM)
func GetExpenses(c *gin.Context) {
	query := database.DB.Model(&models.Expense{}).Order("expense_date desc")

	if month := c.Query("month"); month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "month must be YYYY-MM"})
			return
		}
		end := start.AddDate(0, 1, 0)
		query = query.Where("expense_date >= ? AND expense_date < ?", start, end)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch expenses"})
		return
	}

	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "total": total})
}

// CreateExpense records a back-office expense
func CreateExpense(c *gin.Context) {
	var req struct {
		Description string  `json:"description" binding:"required"`
		Category    string  `json:"category" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
		PaidTo      string  `json:"paidTo" binding:"required"`
		ExpenseDate string  `json:"expenseDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "description, category, a positive amount, paidTo, and expenseDate are required"})
		return
	}

	date, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "expenseDate must be YYYY-MM-DD"})
		return
	}

	expense := models.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		PaidTo:      req.PaidTo,
		ExpenseDate: date,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Expense recorded", "expense": expense})
}

// DeleteExpense removes an expense record
func DeleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense ID"})
		return
	}

	res := database.DB.Delete(&models.Expense{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete expense"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// GetBanners lists all banners including inactive ones
func GetBanners(c *gin.Context) {
	var banners []models.Banner
	if err := database.DB.Order("sort_order asc").Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch banners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner uploads a banner image and records it
func CreateBanner(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	imageURL, err := uploadFormImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	}
	if imageURL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
		return
	}

	var subtitle, linkURL *string
	if s := c.PostForm("subtitle"); s != "" {
		subtitle = &s
	}
	if l := c.PostForm("linkUrl"); l != "" {
		linkURL = &l
	}
	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sortOrder", "0"))

	banner := models.Banner{
		Title:     title,
		Subtitle:  subtitle,
		ImageURL:  *imageURL,
		LinkURL:   linkURL,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if err := database.DB.Create(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Banner created", "banner": banner})
}

// UpdateBanner edits a banner's text, order, image, or active flag
func UpdateBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid banner ID"})
		return
	}

	var banner models.Banner
	if err := database.DB.First(&banner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Banner not found"})
		return
	}

	updates := map[string]interface{}{}
	if t := c.PostForm("title"); t != "" {
		updates["title"] = t
	}
	if s := c.PostForm("subtitle"); s != "" {
		updates["subtitle"] = s
	}
	if l := c.PostForm("linkUrl"); l != "" {
		updates["link_url"] = l
	}
	if so := c.PostForm("sortOrder"); so != "" {
		if v, err := strconv.Atoi(so); err == nil {
			updates["sort_order"] = v
		}
	}
	if active := c.PostForm("isActive"); active != "" {
		updates["is_active"] = active == "true"
	}

	if imageURL, err := uploadFormImage(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	} else if imageURL != nil {
		services.DeleteImage(banner.ImageURL)
		updates["image_url"] = *imageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&banner).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated", "banner": banner})
}

// DeleteBanner removes a banner and its image
func DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid banner ID"})
		return
	}

	var banner models.Banner
	if err := database.DB.First(&banner, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Banner not found"})
		return
	}

	services.DeleteImage(banner.ImageURL)
	if err := database.DB.Delete(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
