// Package validation wires go-playground/validator for the ledger services.
// Violations are collected into plain field errors so a caller sees every
// problem with a submission at once instead of only the first.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated constraint on one named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Indonesian mobile numbers: +62/62/0 prefix followed by 8x.
var phoneIDRegex = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under JSON field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone_id", func(fl validator.FieldLevel) bool {
		return phoneIDRegex.MatchString(fl.Field().String())
	})

	return v
}

// Struct runs tag validation and returns every violation found.
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "phone_id":
		return "invalid phone number format"
	case "min":
		return "value is too short (minimum " + fe.Param() + ")"
	default:
		return "failed validation rule " + fe.Tag()
	}
}
