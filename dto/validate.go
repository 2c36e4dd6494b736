package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"inventory-api/internal/apperr"
)

var validate = validator.New()

// Validate checks the struct tags and converts failures into the Validation
// error kind with a short field list.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return apperr.Validationf("invalid or missing fields: %s", strings.Join(fields, ", "))
	}
	return apperr.Validation("invalid request body")
}
