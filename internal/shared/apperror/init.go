package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validate checks structs outside of gin with the same `binding` tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonTagName)
	return v
}

// Init makes gin's validator report fields by their json names
// (e.g. `json:"employee_name"`).
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

// Validate runs the `binding` rules of v and maps the first failure like
// MapValidationError does.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return MapValidationError(err)
	}
	return nil
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
