package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New()
	// only image payloads are accepted; the builtin datauri rule checks the base64 part
	_ = v.RegisterValidation("image_datauri", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strings.HasPrefix(s, "data:image/") {
			return false
		}
		return v.Var(s, "datauri") == nil
	})
	return v
}
