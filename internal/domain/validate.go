package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return strings.ToLower(f.Name)
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		return Subject(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return Difficulty(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateStruct runs struct-tag validation and converts failures into a
// *ValidationError. Field names follow json tags, or the lowercased Go name.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return NewValidationErrors(fields)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "ltefield":
		return "must not exceed " + fe.Param()
	case "subject":
		return "unknown subject"
	case "difficulty":
		return "unknown difficulty"
	case "dive":
		return "invalid item"
	}
	return "invalid value"
}
