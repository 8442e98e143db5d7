// Package validation runs the rule sets registered for a request before its handler.
package validation

import (
	"carpetstore/internal/apperr"
	"carpetstore/internal/i18n"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validator checks struct tags and renders failures through the message catalog.
type Validator struct {
	v       *validator.Validate
	catalog *i18n.Catalog
}

// NewValidator creates a Validator with the decimal-aware tags registered:
//
//	between=MIN MAX  inclusive range for decimals and integers
//	scale=N          at most N fractional digits, trailing zeros ignored
//
// notblank rejects whitespace-only strings and reports like required.
func NewValidator(catalog *i18n.Catalog) (*Validator, error) {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank validator: %w", err)
	}
	if err := v.RegisterValidation("between", validateBetween); err != nil {
		return nil, fmt.Errorf("register between validator: %w", err)
	}
	if err := v.RegisterValidation("scale", validateScale); err != nil {
		return nil, fmt.Errorf("register scale validator: %w", err)
	}

	return &Validator{v: v, catalog: catalog}, nil
}

// Struct validates s and returns one failure per violated field, in field order.
// Messages use the locale carried by ctx.
func (v *Validator) Struct(ctx context.Context, s any) ([]apperr.FieldFailure, error) {
	err := v.v.StructCtx(ctx, s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate %T: %w", s, err)
	}

	locale := i18n.LocaleFromContext(ctx)
	failures := make([]apperr.FieldFailure, 0, len(verrs))
	for _, fe := range verrs {
		failures = append(failures, apperr.FieldFailure{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: v.message(locale, fe),
		})
	}
	return failures, nil
}

// Failure builds a single localized failure for rules written outside struct tags.
func (v *Validator) Failure(ctx context.Context, field, tag, key, fallback string, params ...string) apperr.FieldFailure {
	locale := i18n.LocaleFromContext(ctx)
	args := append([]string{v.catalog.Field(locale, field)}, params...)
	return apperr.FieldFailure{
		Field:   field,
		Tag:     tag,
		Message: v.catalog.T(locale, key, fallback, args...),
	}
}

func (v *Validator) message(locale string, fe validator.FieldError) string {
	field := v.catalog.Field(locale, fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return v.catalog.T(locale, i18n.KeyRequired, "{0} is required", field)
	case "max":
		return v.catalog.T(locale, i18n.KeyMaxLength, "{0} cannot exceed {1} characters", field, fe.Param())
	case "between":
		lo, hi := rangeParams(fe.Param())
		return v.catalog.T(locale, i18n.KeyBetween, "{0} must be between {1} and {2}", field, lo, hi)
	case "scale":
		return v.catalog.T(locale, i18n.KeyScale, "{0} must have at most {1} decimal places", field, fe.Param())
	case "uuid":
		return v.catalog.T(locale, i18n.KeyUUID, "{0} must be a valid identifier", field)
	default:
		return v.catalog.T(locale, i18n.KeyInvalid, "{0} is invalid", field)
	}
}

// decimalValue lets tags see a decimal.Decimal as its exact string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(field reflect.Value) (decimal.Decimal, bool) {
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return d, err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	default:
		return decimal.Decimal{}, false
	}
}

func rangeParams(param string) (string, string) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		panic(fmt.Sprintf("between: expected two bounds, got %q", param))
	}
	return parts[0], parts[1]
}

func validateBetween(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl.Field())
	if !ok {
		return false
	}

	lo, hi := rangeParams(fl.Param())
	min := decimal.RequireFromString(lo)
	max := decimal.RequireFromString(hi)

	return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
}

func validateScale(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl.Field())
	if !ok {
		return false
	}

	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("scale: bad parameter %q", fl.Param()))
	}

	return value.Equal(value.Truncate(int32(places)))
}
