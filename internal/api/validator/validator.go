package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator wraps go-playground/validator and reports failures by json field name.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(rules ...ValidationRule) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, r := range rules {
		r.Rule(v)
	}
	return &Validator{validator: v}
}

// Struct validates s and flattens field errors into a single readable message.
func (v *Validator) Struct(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	// Drop the root struct name.
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "whole":
		return fmt.Sprintf("%s must be a whole number", field)
	case "mix_ratio":
		return fmt.Sprintf("%s must be a ratio like 1:2:4", field)
	case "binder_ratio":
		return fmt.Sprintf("%s must be a cement:sand ratio like 1:6", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
