package middleware

import (
	"net/http"
	"strings"

	"tiffinbox/pkg/database"
	"tiffinbox/pkg/models"
	"tiffinbox/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthenticateToken verifies the JWT from cookie or Authorization header and
// loads the user into the request context.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		// Check cookie first
		if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
			token = cookieToken
		}

		// If not in cookie, check Authorization header
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired."})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			}
			c.Abort()
			return
		}

		var user models.User
		query := database.DB
		if claims.Role == models.RoleCustomer {
			query = query.Preload("Cart.Items")
		} else if claims.Role == models.RoleRider {
			query = query.Preload("RiderProfile")
		}

		if err := query.First(&user, claims.ID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. User not found."})
			c.Abort()
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"message": "Account is deactivated."})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AuthorizeRoles checks that the authenticated user carries one of the
// required roles.
func AuthorizeRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInterface, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		user, ok := userInterface.(models.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Insufficient permissions."})
		c.Abort()
	}
}

// CurrentUser pulls the authenticated user out of the context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}
