package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// renderMessage maps a violation to the human-readable message the legacy
// API produced: plain prose with the surrounding quote characters already
// stripped.
func renderMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "objectid":
		return field + " contains an invalid value"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "url", "uri":
		return field + " must be a valid uri"
	case "numeric", "number":
		return field + " must be a number"
	default:
		return field + " is invalid"
	}
}
