package routes

import (
	"tiffinbox/pkg/controllers/auth"
	"tiffinbox/pkg/middleware"
	"tiffinbox/pkg/models"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, sign-in, and 2FA routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", auth.CustomerSignup)
		authGroup.POST("/signin", auth.SignIn)
		authGroup.POST("/signout", auth.SignOut)
		authGroup.GET("/me", middleware.AuthenticateToken(), auth.CheckAuth)
	}

	// TOTP two-factor, admin accounts only
	twoFA := router.Group("/auth/2fa")
	twoFA.Use(middleware.AuthenticateToken(), middleware.AuthorizeRoles(models.RoleAdmin))
	{
		twoFA.POST("/setup", auth.Generate2FASetup)
		twoFA.POST("/enable", auth.Enable2FA)
		twoFA.POST("/disable", auth.Disable2FA)
	}
}
