// Package forms holds the per-entity form state of the admin panel: default
// values, validation tags the way the API names fields, payload builders that
// coerce UI strings into the wire format, and binding of server field errors
// back onto the form.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/utils/validation"
)

var validate = validation.NewValidator()

// BindAPIError copies an application failure's field errors into a flat
// form's error map and returns the top-level message for the toast. Errors
// that are not an *client.APIError yield a generic message and no field
// binding.
func BindAPIError(err error, fieldErrors map[string]string) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return "Something went wrong. Please try again."
	}
	for field, messages := range apiErr.FieldErrors() {
		if len(messages) > 0 {
			fieldErrors[field] = messages[0]
		}
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// optional normalizes an optional text input: surrounding whitespace dropped,
// empty string becomes absent.
func optional(s string) string {
	return strings.TrimSpace(s)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseUint(s string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// uintField and floatField render loaded values back into text inputs.
func uintField(n uint) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(n), 10)
}

func floatField(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
