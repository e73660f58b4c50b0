package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Whitespace-only names are as good as missing.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// FieldErrors maps a request field to the reason it was rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// messenger is implemented by requests that carry their own error messages,
// keyed by "<field>.<tag>".
type messenger interface {
	validationMessages() map[string]string
}

// Validate checks req against its validate tags. It returns FieldErrors when
// a rule fails.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var messages map[string]string
	if m, ok := req.(messenger); ok {
		messages = m.validationMessages()
	}

	out := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		if msg, ok := messages[e.Field()+"."+e.Tag()]; ok {
			out[e.Field()] = msg
			continue
		}
		out[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return out
}
