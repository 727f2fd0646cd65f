package form

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Errors validation messages keyed by form field name
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

var (
	decoder  = form.NewDecoder()
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("regnum", isRegistrationNumber); err != nil {
		panic(err)
	}
	return v
}

// isRegistrationNumber accepts 10 digits with optional dashes
func isRegistrationNumber(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-':
		default:
			return false
		}
	}
	return digits == 10
}

// Decode parses the urlencoded body and query of r into v
func Decode(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	if err := decoder.Decode(v, r.Form); err != nil {
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}

// Validate runs struct tags of v, messages are keyed by field path without the struct name
func Validate(v any) (Errors, bool) {
	messages := Errors{}
	err := validate.Struct(v)
	if err == nil {
		return messages, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["_"] = err.Error()
		return messages, false
	}

	for _, fe := range validationErrors {
		messages[fieldPath(fe.Namespace())] = message(fe)
	}
	return messages, len(messages) == 0
}

func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "numeric":
		return "Enter a number"
	case "len":
		return fmt.Sprintf("Must be exactly %s digits", fe.Param())
	case "datetime":
		return "Use the YYYY-MM-DD format"
	case "regnum":
		return "Registration number has 10 digits, dashes allowed"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Add at least %s row(s)", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of %s", fe.Param())
	default:
		return "Invalid value"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
