package middleware

import "github.com/gin-gonic/gin"

// NoStoreMiddleware keeps clients and proxies from caching mutable note data.
func NoStoreMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
