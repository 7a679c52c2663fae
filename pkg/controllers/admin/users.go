package admin

import (
	"net/http"
	"strconv"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers lists accounts, filterable by role
func GetUsers(c *gin.Context) {
	query := database.DB.Model(&models.User{}).Order("created_at desc")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Preload("RiderProfile").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetRiders lists active riders with their profiles, for the assignment UI
func GetRiders(c *gin.Context) {
	var riders []models.User
	if err := database.DB.
		Where("role = ? AND is_active = ?", models.RoleRider, true).
		Preload("RiderProfile").
		Find(&riders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch riders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"riders": riders})
}

// CreateStaff creates a kitchen, rider, or admin account
func CreateStaff(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required,email"`
		Name     string  `json:"name" binding:"required"`
		Password string  `json:"password" binding:"required"`
		Role     string  `json:"role" binding:"required"`
		Phone    *string `json:"phone"`

		VehicleType *string `json:"vehicleType"`
		VehicleNo   *string `json:"vehicleNo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email, name, password, and role are required"})
		return
	}

	role := models.Role(req.Role)
	switch role {
	case models.RoleKitchen, models.RoleRider, models.RoleAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "role must be KITCHEN, RIDER, or ADMIN"})
		return
	}

	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Email:    req.Email,
			Name:     req.Name,
			Password: hashed,
			Role:     role,
			Phone:    req.Phone,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if role == models.RoleRider {
			profile := models.RiderProfile{
				UserID:      user.ID,
				VehicleType: req.VehicleType,
				VehicleNo:   req.VehicleNo,
				IsAvailable: true,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "An account with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// SetUserActive enables or disables an account. Disabled accounts cannot
// sign in and their sessions stop passing auth.
func SetUserActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isActive is required"})
		return
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", *req.IsActive)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated", "isActive": *req.IsActive})
}
