package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps validator.Validate as an echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New builds the validator with null-type support and the custom rules.
func New() *CustomValidator {
	v := validator.New()

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("error al registrar las reglas de validación: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
