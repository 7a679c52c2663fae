package auth

import (
	"net/http"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Generate2FASetup creates a new TOTP secret for the admin and returns the
// provisioning URI. The secret only becomes active after Enable2FA verifies
// a code against it.
func Generate2FASetup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "tiffinbox",
		AccountName: user.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate 2FA secret"})
		return
	}

	secret := key.Secret()
	if err := database.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("two_factor_secret", secret).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store 2FA secret"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"secret":     secret,
		"otpauthUrl": key.URL(),
	})
}

// Enable2FA verifies the first TOTP code and switches 2FA on
func Enable2FA(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Verification token is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var fresh models.User
	if err := database.DB.First(&fresh, user.ID).Error; err != nil || fresh.TwoFactorSecret == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Generate a 2FA secret first"})
		return
	}

	if !totp.Validate(req.Token, *fresh.TwoFactorSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification token"})
		return
	}

	if err := database.DB.Model(&fresh).Update("two_factor_enabled", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to enable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled"})
}

// Disable2FA switches 2FA off after re-checking the password
func Disable2FA(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var fresh models.User
	if err := database.DB.First(&fresh, user.ID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := utils.ComparePassword(fresh.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	err := database.DB.Model(&fresh).Updates(map[string]interface{}{
		"two_factor_enabled": false,
		"two_factor_secret":  nil,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled"})
}
