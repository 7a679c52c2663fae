package customer

import (
	"net/http"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated customer's profile
func GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

// UpdateProfile updates name, phone, and optionally the password
func UpdateProfile(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		Phone       *string `json:"phone"`
		Password    *string `json:"password"`
		NewPassword *string `json:"newPassword"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.Password == nil || utils.ComparePassword(user.Password, *req.Password) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
			return
		}
		if err := utils.CheckPasswordStrength(*req.NewPassword); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		hashed, err := utils.HashPassword(*req.NewPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		updates["password"] = hashed
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// RegisterDeviceToken stores an FCM device token for push notifications
func RegisterDeviceToken(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Platform string `json:"platform" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "token and platform are required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found."})
		return
	}

	var existing models.DeviceToken
	if database.DB.Where("token = ?", req.Token).First(&existing).Error == nil {
		// Token may move between accounts when a device logs in as someone else
		existing.UserID = user.ID
		existing.Platform = req.Platform
		existing.IsActive = true
		if err := database.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register device token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Device token registered"})
		return
	}

	token := models.DeviceToken{
		UserID:   user.ID,
		Token:    req.Token,
		Platform: req.Platform,
		IsActive: true,
	}
	if err := database.DB.Create(&token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register device token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Device token registered"})
}
