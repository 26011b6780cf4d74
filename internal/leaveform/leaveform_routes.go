package leaveform

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/create-leave-form-from-scratch", handler.CreateFromScratch)
	r.POST("/create-leave-form-checklist", handler.CreateChecklist)

	forms := r.Group("/forms")
	{
		forms.GET("/:template", handler.DownloadTemplate)
	}
}
