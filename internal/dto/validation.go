package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// RegisterCustomValidations hooks domain-aware validators into gin's binding
// engine. Called once at startup.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("balancecategory", func(fl validator.FieldLevel) bool {
		// Empty clears an assignment, anything else must be a known category.
		value := fl.Field().String()
		return value == "" || domain.Category(value).IsValid()
	})
	_ = v.RegisterValidation("entrykind", func(fl validator.FieldLevel) bool {
		kind := domain.EntryKind(fl.Field().String())
		return kind == domain.Debit || kind == domain.Credit
	})
}
