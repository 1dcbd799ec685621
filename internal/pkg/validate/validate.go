// Package validate wraps a shared go-playground validator instance for
// request payload checks at the delivery boundary.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates tagged fields of a request payload.
func Struct(s any) error {
	return v.Struct(s)
}

// Message flattens validation errors into one human-readable message
// suitable for a bad-request response.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request payload"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, strings.ToLower(fe.Field())+" is required")
		case "email":
			parts = append(parts, "invalid email")
		case "oneof":
			parts = append(parts, strings.ToLower(fe.Field())+" must be one of: "+fe.Param())
		case "min":
			parts = append(parts, strings.ToLower(fe.Field())+" too short")
		default:
			parts = append(parts, "invalid "+strings.ToLower(fe.Field()))
		}
	}
	if len(parts) == 0 {
		return "invalid request payload"
	}
	return strings.Join(parts, "; ")
}
