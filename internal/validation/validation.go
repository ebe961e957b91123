// Package validation checks request payloads against their declared
// constraints before they reach the store.
//
// Constraints live on the request structs in internal/models as `validate`
// tags (go-playground/validator syntax). Each constrained field also carries
// a `message` tag with the human-readable text to surface; the first
// violation short-circuits and becomes a 400 response with that message.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/caretrack/wellness/internal/httperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates v and returns a ValidationFailed error describing the
// first violation, or nil if the payload is valid.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		// Non-validation failure (e.g. nil or non-struct input).
		return httperr.ValidationFailed("Invalid request payload")
	}

	first := errs[0]
	if msg := messageFor(reflect.TypeOf(v), first); msg != "" {
		return httperr.ValidationFailed(msg)
	}
	return httperr.ValidationFailed(fmt.Sprintf("Invalid value for %s", jsonName(first.Field())))
}

// messageFor resolves the `message` tag of the field behind a violation.
// The namespace looks like "InsertUser.Email" or "UpdateProfile.Profile.Name";
// the first segment is the root struct.
func messageFor(t reflect.Type, fe validator.FieldError) string {
	segments := strings.Split(fe.StructNamespace(), ".")
	if len(segments) < 2 {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var field reflect.StructField
	for _, name := range segments[1:] {
		if t.Kind() != reflect.Struct {
			return ""
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return ""
		}
		field = f
		t = f.Type
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
	}
	return field.Tag.Get("message")
}

func jsonName(field string) string {
	if field == "" {
		return "field"
	}
	return strings.ToLower(field[:1]) + field[1:]
}
