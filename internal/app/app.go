package app

import (
	"net/http"

	"github.com/OWENATOR-3000/staffPortal/internal/config"
	"github.com/OWENATOR-3000/staffPortal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp installs the global middleware chain and every module's routes.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}

	router.Use(
		middleware.RequestContext(logger),
		middleware.AccessLog(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := router.Group("/")
	limited.Use(middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst))

	return registerModules(limited, cfg, logger)
}
