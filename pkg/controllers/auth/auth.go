package auth

import (
	"net/http"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"
)

// CustomerSignup handles customer registration
func CustomerSignup(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Email          string  `json:"email" binding:"required,email"`
		Password       string  `json:"password" binding:"required"`
		RetypePassword string  `json:"retypePassword" binding:"required"`
		Phone          *string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, password, and retype password are required"})
		return
	}

	if req.Password != req.RetypePassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
		return
	}

	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
		Phone:    req.Phone,
		IsActive: true,
	}

	// Create user and an empty cart together
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Cart{CustomerID: user.ID}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// SignIn handles sign-in for every role. Admin accounts with 2FA enabled
// must also supply a valid TOTP code.
func SignIn(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required"`
		TOTPCode *string `json:"totpCode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := utils.ComparePassword(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account is deactivated"})
		return
	}

	if user.Role == models.RoleAdmin && user.TwoFactorEnabled {
		if req.TOTPCode == nil || *req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message":   "Two-factor code required",
				"twoFactor": true,
			})
			return
		}
		if user.TwoFactorSecret == nil || !totp.Validate(*req.TOTPCode, *user.TwoFactorSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid two-factor code"})
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// SignOut clears the auth cookie
func SignOut(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.AppConfig.CookieSecure == "true", true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// CheckAuth returns the authenticated user
func CheckAuth(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	user := userInterface.(models.User)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":               user.ID,
			"name":             user.Name,
			"email":            user.Email,
			"role":             user.Role,
			"twoFactorEnabled": user.TwoFactorEnabled,
		},
	})
}

func setAuthCookie(c *gin.Context, token string) {
	secure := config.AppConfig.CookieSecure == "true"
	// 7 days, matching the default token expiry
	c.SetCookie("token", token, 7*24*3600, "/", "", secure, true)
}
