package validator

import (
	"construction-estimator-service/internal/domain"
	"math"

	"github.com/go-playground/validator/v10"
)

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewEstimateValidationRules returns the custom tags used by the estimate and calculator DTOs.
func NewEstimateValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("whole", wholeNumberValidator),
		},
		{
			Rule: registerFn("mix_ratio", concreteRatioValidator),
		},
		{
			Rule: registerFn("binder_ratio", binderRatioValidator),
		},
	}
}

// JSON numbers decode into float64; counts must still be integral.
func wholeNumberValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return !math.IsInf(val, 0) && val == math.Trunc(val)
}

func concreteRatioValidator(fl validator.FieldLevel) bool {
	return ratioWithParts(fl, 3)
}

func binderRatioValidator(fl validator.FieldLevel) bool {
	return ratioWithParts(fl, 2)
}

func ratioWithParts(fl validator.FieldLevel, parts int) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	r, err := domain.ParseMixRatio(val)
	if err != nil {
		return false
	}
	return len(r.Parts) == parts
}
