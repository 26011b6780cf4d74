package middleware

import (
	"io"

	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/contextutil"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into the generic internal-error envelope and logs
// it with the request's logger. The panic value never reaches the client.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	base := logger.Named("http.recovery")
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log := contextutil.GetLogger(c.Request.Context(), base)
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		httpErr := apperror.ToHTTP(apperror.ErrInternal)
		response.AbortError(c, httpErr.Status, httpErr.Code, httpErr.Message)
	})
}
