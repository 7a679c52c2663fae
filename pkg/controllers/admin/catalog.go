package admin

import (
	"net/http"
	"strconv"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/services"

	"github.com/gin-gonic/gin"
)

// uploadFormImage pulls the optional "image" file out of a multipart form and
// pushes it to the bucket. Returns nil when no file was sent.
func uploadFormImage(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	url, err := services.UploadImageFromReader(src, file.Filename)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// CreateCategory adds a storefront category, with an optional image
func CreateCategory(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	imageURL, err := uploadFormImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	}

	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sortOrder", "0"))
	category := models.Category{Name: name, ImageURL: imageURL, SortOrder: sortOrder, IsActive: true}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory updates name, image, sort order, or active flag
func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	updates := map[string]interface{}{}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
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
		if category.ImageURL != nil {
			services.DeleteImage(*category.ImageURL)
		}
		updates["image_url"] = *imageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category that has no products left
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	var count int64
	database.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Category still has products"})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	if category.ImageURL != nil {
		services.DeleteImage(*category.ImageURL)
	}
	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// CreateProduct adds a catalog product, with an optional image upload
func CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	priceStr := c.PostForm("price")
	categoryIDStr := c.PostForm("categoryId")
	if name == "" || priceStr == "" || categoryIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, price, and categoryId are required"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a non-negative number"})
		return
	}
	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "categoryId must be a number"})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
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

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		CategoryID:  categoryID,
		IsVeg:       c.DefaultPostForm("isVeg", "true") == "true",
		IsActive:    true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct edits a catalog product
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
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
	if cid := c.PostForm("categoryId"); cid != "" {
		if v, err := strconv.Atoi(cid); err == nil {
			updates["category_id"] = v
		}
	}
	if veg := c.PostForm("isVeg"); veg != "" {
		updates["is_veg"] = veg == "true"
	}
	if active := c.PostForm("isActive"); active != "" {
		updates["is_active"] = active == "true"
	}

	if imageURL, err := uploadFormImage(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed", "error": err.Error()})
		return
	} else if imageURL != nil {
		if product.ImageURL != nil {
			services.DeleteImage(*product.ImageURL)
		}
		updates["image_url"] = *imageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct deactivates a product instead of deleting it, so past order
// items keep their reference.
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	res := database.DB.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
}

// CreateMainCategory adds a weekly-menu main category with its cutoff policy
func CreateMainCategory(c *gin.Context) {
	var req struct {
		Name            string `json:"name" binding:"required"`
		OrderCutoffTime string `json:"orderCutoffTime" binding:"required"`
		AdvanceDays     *int   `json:"advanceDays" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, orderCutoffTime, and advanceDays are required"})
		return
	}
	if *req.AdvanceDays < 0 || *req.AdvanceDays > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "advanceDays must be 0 or 1"})
		return
	}

	mc := models.MainCategory{
		Name:            req.Name,
		OrderCutoffTime: req.OrderCutoffTime,
		AdvanceDays:     *req.AdvanceDays,
		IsActive:        true,
	}
	if err := database.DB.Create(&mc).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Main category already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Main category created", "mainCategory": mc})
}

// UpdateMainCategory edits a main category and its cutoff policy
func UpdateMainCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid main category ID"})
		return
	}

	var req struct {
		Name            *string `json:"name"`
		OrderCutoffTime *string `json:"orderCutoffTime"`
		AdvanceDays     *int    `json:"advanceDays"`
		IsActive        *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.OrderCutoffTime != nil {
		updates["order_cutoff_time"] = *req.OrderCutoffTime
	}
	if req.AdvanceDays != nil {
		if *req.AdvanceDays < 0 || *req.AdvanceDays > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "advanceDays must be 0 or 1"})
			return
		}
		updates["advance_days"] = *req.AdvanceDays
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	res := database.DB.Model(&models.MainCategory{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update main category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Main category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Main category updated"})
}

// CreateSubCategory adds a sub category under a main category
func CreateSubCategory(c *gin.Context) {
	var req struct {
		MainCategoryID int     `json:"mainCategoryId" binding:"required"`
		Name           string  `json:"name" binding:"required"`
		FoodPlan       *string `json:"foodPlan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "mainCategoryId and name are required"})
		return
	}

	var mc models.MainCategory
	if err := database.DB.First(&mc, req.MainCategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Main category not found"})
		return
	}

	var plan *models.FoodPlan
	if req.FoodPlan != nil {
		p := models.FoodPlan(*req.FoodPlan)
		switch p {
		case models.FoodPlanRegular, models.FoodPlanDiet, models.FoodPlanPremium:
			plan = &p
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food plan"})
			return
		}
	}

	sc := models.SubCategory{
		MainCategoryID: req.MainCategoryID,
		Name:           req.Name,
		FoodPlan:       plan,
		IsActive:       true,
	}
	if err := database.DB.Create(&sc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create sub category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sub category created", "subCategory": sc})
}

// CreateMealType adds a meal slot (breakfast, lunch, dinner)
func CreateMealType(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	mt := models.MealType{Name: req.Name, IsActive: true}
	if err := database.DB.Create(&mt).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Meal type already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal type created", "mealType": mt})
}

// GetCatalogTree returns the full weekly-menu taxonomy for the admin UI
func GetCatalogTree(c *gin.Context) {
	var mains []models.MainCategory
	if err := database.DB.Preload("SubCategories").Find(&mains).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch catalog"})
		return
	}

	var mealTypes []models.MealType
	if err := database.DB.Find(&mealTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mainCategories": mains,
		"mealTypes":      mealTypes,
	})
}
