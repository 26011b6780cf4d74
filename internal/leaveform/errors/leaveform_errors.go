package leaveformerrors

import (
	"net/http"

	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"
)

var (
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Internal server error: Could not generate PDF.",
		http.StatusInternalServerError,
	)
	ErrUnknownTemplate = apperror.New(
		apperror.CodeNotFound,
		"form template not found",
		http.StatusNotFound,
	)
)

// RenderFailed wraps the cause of a failed render behind the generic
// client message.
func RenderFailed(err error) error {
	return apperror.Wrap(err, ErrRenderFailed.Code, ErrRenderFailed.Message, ErrRenderFailed.HTTPStatus)
}
