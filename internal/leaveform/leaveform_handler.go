package leaveform

import (
	"bytes"
	"net/http"

	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/contextutil"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contentTypePDF = "application/pdf"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaveform.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveform.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) log(c *gin.Context) *zap.Logger {
	return contextutil.GetLogger(c.Request.Context(), h.logger)
}

// writeServiceError logs the full error, cause included, and sends only
// the mapped message.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	logFn := h.log(c).Warn
	if httpErr.Status >= http.StatusInternalServerError {
		logFn = h.log(c).Error
	}
	logFn("form request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindLeaveRequest(c *gin.Context) (LeaveRequest, bool) {
	var req LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).Warn("http leave form validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return LeaveRequest{}, false
	}
	return req, true
}

// CreateFromScratch renders a filled leave form and returns it as a PDF
// download.
func (h *Handler) CreateFromScratch(c *gin.Context) {
	req, ok := h.bindLeaveRequest(c)
	if !ok {
		return
	}

	form, err := h.service.CreateLeaveForm(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.sendFile(c, form)
}

// CreateChecklist renders the request onto the paper form layout.
func (h *Handler) CreateChecklist(c *gin.Context) {
	req, ok := h.bindLeaveRequest(c)
	if !ok {
		return
	}

	form, err := h.service.CreateLeaveChecklist(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.sendFile(c, form)
}

// DownloadTemplate streams a blank form.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	tpl, err := ParseTemplate(c.Param("template"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.service.WriteTemplate(c.Request.Context(), tpl, &buf); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+tpl.Filename()+`"`)
	c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
}

// sendFile streams the rendered file and deletes it afterwards.
func (h *Handler) sendFile(c *gin.Context, form RenderedForm) {
	defer removeQuietly(h.log(c), form.Path)

	c.Header("Content-Type", contentTypePDF)
	c.FileAttachment(form.Path, form.Filename)
}
