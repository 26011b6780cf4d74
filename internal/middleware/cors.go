package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets the portal front end call the form endpoints from the browser.
// An empty origin list allows any origin. The download name travels in
// Content-Disposition, so it is exposed.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", HeaderRequestID}
	config.ExposeHeaders = []string{"Content-Disposition", HeaderRequestID}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
