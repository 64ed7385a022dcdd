package validator

import (
	"fmt"
	"reflect"
	"strings"

	"go-pos-ledger/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string `json:"failed_field"`
	Tag         string `json:"tag"`
	Value       string `json:"value"`
}

var validate = validator.New()

const moneyScale = 2

// moneyLimit is the first value a decimal(10,2) column cannot hold.
var moneyLimit = decimal.New(1, 8)

// rawDecimal returns the field as stored on the struct. fl.Field() only holds
// the float64 produced by the decimal type func, which is too lossy for scale checks.
func rawDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return decimal.Decimal{}, false
	}
	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	// Rejects empty and whitespace-only strings
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Fits a decimal(10,2) column: at most 2 fractional and 8 integer digits
	validate.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := rawDecimal(fl)
		if !ok {
			return false
		}
		return d.Equal(d.Round(moneyScale)) && d.Abs().LessThan(moneyLimit)
	})

	// Money fields validate as numbers, so `gte=0` works on decimal.Decimal
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Check validates data and reports the first failure as an apperrors.ErrDomainConstraint.
func Check(data interface{}) error {
	if errs := ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", apperrors.ErrDomainConstraint, first.FailedField, first.Tag)
	}
	return nil
}
