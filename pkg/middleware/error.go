package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorMiddleware turns errors pushed onto the gin context into a JSON
// response. Handlers may attach a status code via err.Meta.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log.Printf("Error: %v", err.Err)

		statusCode := http.StatusInternalServerError
		if err.Meta != nil {
			if code, ok := err.Meta.(int); ok && code != 0 {
				statusCode = code
			}
		}

		message := err.Error()
		if message == "" {
			message = "Internal server error"
		}

		c.JSON(statusCode, gin.H{"message": message})
	}
}

// NotFoundHandler handles unmatched routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	}
}
