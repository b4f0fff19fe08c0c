package form

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/validation"
)

// Draft holds the user's in-progress field values.
type Draft struct {
	Name    string
	Email   string
	Message string
}

// ValidationResult maps a field name to at most one error message. An empty
// result means the draft may be submitted.
type ValidationResult map[string]string

// Valid reports whether no field has an error.
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Validator checks a draft against the shared contact schema and reports
// per-field, localized errors. Unlike the endpoint, which answers with one
// combined message, the form points at the exact field to fix.
type Validator struct {
	validate *validator.Validate
	msgs     Messages
}

// NewValidator builds a validator emitting messages in the given language.
func NewValidator(lang Language) *Validator {
	v := validator.New()
	validation.RegisterValidators(v)
	return &Validator{
		validate: v,
		msgs:     MessagesFor(lang),
	}
}

// Validate is a pure function of the draft: no side effects, identical input
// yields identical results.
func (v *Validator) Validate(d Draft) ValidationResult {
	req := domain.ContactRequest{
		Name:    d.Name,
		Email:   d.Email,
		Message: d.Message,
	}

	result := ValidationResult{}
	err := v.validate.Struct(req)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct-level failures cannot happen for ContactRequest; treat any
		// other error as all-fields-invalid rather than silently passing.
		result["name"] = v.msgs.NameError
		result["email"] = v.msgs.EmailError
		result["message"] = v.msgs.MessageError
		return result
	}

	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Name":
			result["name"] = v.msgs.NameError
		case "Email":
			result["email"] = v.msgs.EmailError
		case "Message":
			result["message"] = v.msgs.MessageError
		}
	}
	return result
}
