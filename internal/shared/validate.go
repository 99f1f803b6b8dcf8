package shared

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	postalCodeRe   = regexp.MustCompile(`^[0-9A-Z\s-]{3,20}$`)
	skuRe          = regexp.MustCompile(`^[A-Z0-9_-]{3,50}$`)
	categoryCodeRe = regexp.MustCompile(`^[A-Z0-9_]{2,20}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
		return skuRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("categorycode", func(fl validator.FieldLevel) bool {
		return categoryCodeRe.MatchString(fl.Field().String())
	})
	return v
}

// Validate runs struct-tag validation on a request DTO and folds any
// failures into a single ErrValidation message.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Validationf("%s", err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return Validationf("%s", strings.Join(parts, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min", "gte":
		return fe.Field() + " is below the allowed minimum"
	case "max", "lte":
		return fe.Field() + " is above the allowed maximum"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "postalcode", "sku", "categorycode":
		return fe.Field() + " has an invalid format"
	default:
		return fe.Field() + " is invalid"
	}
}
