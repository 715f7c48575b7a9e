package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("not_blank", isNotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_iso", isISODate); err != nil {
		return err
	}
	return nil
}

// isNotBlank rejects strings made only of whitespace
func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// isISODate accepts YYYY-MM-DD
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
