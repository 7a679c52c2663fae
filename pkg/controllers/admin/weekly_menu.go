package admin

import (
	"net/http"
	"strconv"
	"time"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetWeeklyMenuItems lists menu items, filterable by date and main category
func GetWeeklyMenuItems(c *gin.Context) {
	query := database.DB.Model(&models.WeeklyMenuItem{}).
		Preload("MainCategory").
		Preload("SubCategory").
		Preload("MealType").
		Order("specific_date asc")

	if d := c.Query("date"); d != "" {
		query = query.Where("specific_date = ?", d)
	}
	if mc := c.Query("mainCategoryId"); mc != "" {
		query = query.Where("main_category_id = ?", mc)
	}

	var items []models.WeeklyMenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateWeeklyMenuItem publishes a dish for one specific date. Stock starts
// at the stock limit.
func CreateWeeklyMenuItem(c *gin.Context) {
	name := c.PostForm("name")
	priceStr := c.PostForm("price")
	dateStr := c.PostForm("specificDate")
	mainIDStr := c.PostForm("mainCategoryId")
	subIDStr := c.PostForm("subCategoryId")
	mealIDStr := c.PostForm("mealTypeId")
	stockStr := c.PostForm("stockLimit")

	if name == "" || priceStr == "" || dateStr == "" || mainIDStr == "" || subIDStr == "" || mealIDStr == "" || stockStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, price, specificDate, mainCategoryId, subCategoryId, mealTypeId, and stockLimit are required"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a non-negative number"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "specificDate must be YYYY-MM-DD"})
		return
	}
	// No deliveries on Friday or Saturday
	if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Menu items cannot be scheduled on Friday or Saturday"})
		return
	}
	mainID, _ := strconv.Atoi(mainIDStr)
	subID, _ := strconv.Atoi(subIDStr)
	mealID, _ := strconv.Atoi(mealIDStr)
	stockLimit, err := strconv.Atoi(stockStr)
	if err != nil || stockLimit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "stockLimit must be a non-negative number"})
		return
	}

	var sc models.SubCategory
	if err := database.DB.First(&sc, subID).Error; err != nil || sc.MainCategoryID != mainID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sub category does not belong to the main category"})
		return
	}
	var mt models.MealType
	if err := database.DB.First(&mt, mealID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal type not found"})
		return
	}

	imageURL, err := uploadFormImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	}

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	item := models.WeeklyMenuItem{
		MainCategoryID: mainID,
		SubCategoryID:  subID,
		MealTypeID:     mealID,
		Name:           name,
		Description:    description,
		Price:          price,
		ImageURL:       imageURL,
		SpecificDate:   date,
		StockLimit:     stockLimit,
		CurrentStock:   stockLimit,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "A menu item already exists for this slot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

// UpdateWeeklyMenuItem edits price, name, description, or image of a menu item
func UpdateWeeklyMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item ID"})
		return
	}

	var item models.WeeklyMenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	updates := map[string]interface{}{}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if d := c.PostForm("description"); d != "" {
		updates["description"] = d
	}
	if p := c.PostForm("price"); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil && v >= 0 {
			updates["price"] = v
		}
	}

	if imageURL, err := uploadFormImage(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	} else if imageURL != nil {
		if item.ImageURL != nil {
			services.DeleteImage(*item.ImageURL)
		}
		updates["image_url"] = *imageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteWeeklyMenuItem removes a dish that has no orders against it
func DeleteWeeklyMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item ID"})
		return
	}

	var count int64
	database.DB.Model(&models.WeeklyOrderItem{}).Where("menu_item_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Menu item has orders and cannot be deleted"})
		return
	}

	var item models.WeeklyMenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	if item.ImageURL != nil {
		services.DeleteImage(*item.ImageURL)
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// RestockMenuItem adds stock back to a menu item and records the movement
func RestockMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item ID"})
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be a positive number"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WeeklyMenuItem{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"current_stock": gorm.Expr("current_stock + ?", req.Quantity),
				"stock_limit":   gorm.Expr("stock_limit + ?", req.Quantity),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&models.StockHistory{
			MenuItemID: id,
			Quantity:   req.Quantity,
			Action:     models.StockActionRestock,
		}).Error
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to restock menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item restocked"})
}

// GetStockHistory returns the stock audit trail for a menu item
func GetStockHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid menu item ID"})
		return
	}

	var history []models.StockHistory
	if err := database.DB.
		Where("menu_item_id = ?", id).
		Order("timestamp desc").
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stock history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
