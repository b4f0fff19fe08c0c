package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates an address against the lenient contact-form email
// shape instead of the stricter built-in "email" rule, keeping the form
// validator byte-for-byte consistent with the endpoint check.
func ContactEmail(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}
