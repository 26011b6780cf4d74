package app

import (
	"github.com/OWENATOR-3000/staffPortal/internal/config"
	"github.com/OWENATOR-3000/staffPortal/internal/leaveform"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.RouterGroup,
	cfg config.Config,
	logger *zap.Logger,
) error {
	// --- Services ---
	renderer := leaveform.NewRenderer(cfg.Forms.LogoPath)
	leaveformService := leaveform.NewService(renderer, cfg.Forms.TempDir, logger)

	// --- Handlers ---
	leaveformHandler := leaveform.NewHandler(leaveformService, logger)

	// --- Routes Registration ---
	leaveform.RegisterRoutes(router, leaveformHandler)

	logger.Info("modules registered",
		zap.String("logo_path", cfg.Forms.LogoPath),
		zap.String("temp_dir", cfg.Forms.TempDir),
	)
	return nil
}
