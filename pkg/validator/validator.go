package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts digits with the usual separators: -, (, ) and spaces.
var phonePattern = regexp.MustCompile(`^[0-9()\- ]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("contact", validateContact)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateContact accepts either an email-like value (contains "@") or a
// phone-like value (digits plus separators).
func validateContact(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	if strings.Contains(value, "@") {
		return true
	}
	return phonePattern.MatchString(value) && strings.ContainsAny(value, "0123456789")
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "contact":
				errors[field] = field + " must be an email address or a phone number"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
