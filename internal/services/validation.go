package services

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest checks req against its validate tags and turns the first
// failure into a *ValidationError carrying the field's message tag.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return &ValidationError{Message: fieldMessage(req, fieldErrs[0])}
}

func fieldMessage(req any, fe validator.FieldError) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if msg := f.Tag.Get("message"); msg != "" {
			return msg
		}
	}
	return fe.Error()
}
