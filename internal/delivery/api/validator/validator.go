// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator that reports fields by their JSON name.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks struct tags on i.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe lists the failed fields as "field: rule" pairs, sorted by field.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	slices.Sort(parts)

	return strings.Join(parts, ", ")
}
