package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateFormat is the wire format of every date field and query parameter.
const DateFormat = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

// RegisterValidations adds the decimal tags and JSON field naming to a validator. It is applied to
// the package validator and to gin's binding engine so both report the same rules.
//
//	decimal_gt=N, decimal_gte=N, decimal_lte=N  compare against N
//	decimal_places=N                            at most N fractional digits
//	decimal_nonzero                             value is not zero
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("decimal_gt", decimalCompare(func(val, bound decimal.Decimal) bool { return val.GreaterThan(bound) }))
	_ = v.RegisterValidation("decimal_gte", decimalCompare(func(val, bound decimal.Decimal) bool { return val.GreaterThanOrEqual(bound) }))
	_ = v.RegisterValidation("decimal_lte", decimalCompare(func(val, bound decimal.Decimal) bool { return val.LessThanOrEqual(bound) }))
	_ = v.RegisterValidation("decimal_places", func(fl validator.FieldLevel) bool {
		val, ok := decimalValue(fl)
		if !ok {
			return false
		}
		var places int32
		if _, err := fmt.Sscanf(fl.Param(), "%d", &places); err != nil {
			return false
		}
		return val.Equal(val.Round(places))
	})
	_ = v.RegisterValidation("decimal_nonzero", func(fl validator.FieldLevel) bool {
		val, ok := decimalValue(fl)
		return ok && !val.IsZero()
	})
}

func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch val := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Decimal{}, false
		}
		return *val, true
	}
	return decimal.Decimal{}, false
}

func decimalCompare(cmp func(val, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val, ok := decimalValue(fl)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(val, bound)
	}
}

// Validate checks a request struct against its binding tags. Failures wrap apperrors.ErrValidation
// and list every offending field.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	return TranslateValidationError(err)
}

// TranslateValidationError turns validator output into an apperrors.ErrValidation error.
func TranslateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s failed '%s=%s'", field, fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s failed '%s'", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
}

// ParseDate parses a YYYY-MM-DD value as a UTC date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must use format YYYY-MM-DD, got '%s'", apperrors.ErrValidation, field, value)
	}
	return t, nil
}

// ParseOptionalDate parses value when it is non-nil and non-empty.
func ParseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
