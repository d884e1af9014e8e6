package booking

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validateStruct runs the tag-based rules (required, email shape, enum
// membership) and reports which fields failed. Rules the tags cannot
// express, such as trimmed name length and the amount floor, live in
// Validate itself.
func validateStruct(req BookingRequest) map[string]bool {
	err := structValidator.Struct(req)
	if err == nil {
		return nil
	}

	failed := make(map[string]bool)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}
	return failed
}
