package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	EmployeeName  *string  `json:"employee_name" binding:"required"`
	NumberOfHours *float64 `json:"number_of_hours" binding:"required"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("ctx: %w", apperror.ErrNotFound)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("wrapped cause is not exposed", func(t *testing.T) {
		cause := errors.New("disk on fire")
		err := apperror.Wrap(cause, apperror.CodeInternalError, "Could not generate", http.StatusInternalServerError)
		got := apperror.ToHTTP(err)
		assert.Equal(t, "Could not generate", got.Message)
		assert.NotContains(t, got.Message, "disk")

		// still available for logs
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "disk on fire")
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, apperror.ErrInternal.Message, got.Message)
	})
}

func TestValidate(t *testing.T) {
	hours := 8.0
	name := "Jane"

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, apperror.Validate(sample{EmployeeName: &name, NumberOfHours: &hours}))
	})

	t.Run("missing string uses json name", func(t *testing.T) {
		err := apperror.Validate(sample{NumberOfHours: &hours})
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "Employee Name is required", appErr.Message)
	})

	t.Run("empty string is present", func(t *testing.T) {
		empty := ""
		assert.NoError(t, apperror.Validate(sample{EmployeeName: &empty, NumberOfHours: &hours}))
	})

	t.Run("zero hours is present", func(t *testing.T) {
		zero := 0.0
		assert.NoError(t, apperror.Validate(sample{EmployeeName: &name, NumberOfHours: &zero}))
	})

	t.Run("nil hours is missing", func(t *testing.T) {
		err := apperror.Validate(sample{EmployeeName: &name})
		assert.EqualError(t, err, "Number Of Hours is required")
	})
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	err := apperror.MapValidationError(errors.New("unexpected EOF"))
	got := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, apperror.CodeValidation, got.Code)
	assert.Equal(t, "Invalid input", got.Message)
}
