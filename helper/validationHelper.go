package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator"
)

// ValidationMessage flattens a validator error into a single message
// naming the offending fields.
func ValidationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		fields = append(fields, strings.ToLower(fieldError.Field()))
	}
	return "invalid or missing fields: " + strings.Join(fields, ", ")
}
