package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prior-it/customers/core"
)

// MessageInvalidInput is the message of every payload validation failure. The offending field is
// reported in the error detail.
const MessageInvalidInput = "Input fields must not be null/empty"

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	})
	// Report fields by their wire name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate validates a payload and returns a core.ErrValidation failure describing the first
// offending field.
func Validate(payload any) error {
	if err := defaultValidator.Struct(payload); err != nil {
		return core.NewError(core.ErrValidation, MessageInvalidInput).WithDetail(errorDetail(err))
	}
	return nil
}

func errorDetail(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	// Strip the name of the top-level struct, e.g. "CustomerDTO.address.city" -> "address.city"
	field := fe.Namespace()
	if _, rest, found := strings.Cut(field, "."); found {
		field = rest
	}

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
