package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apikeyAuthentication gates operator-only routes behind a shared
// Api-Token header value.
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
