package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps responses carrying guest details out of shared caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
