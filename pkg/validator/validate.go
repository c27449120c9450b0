package validator

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/itsDrac/bidhub/internal/auction"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// GetValidator	returns the singleton instance of the validator
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// decimal.Decimal is validated through its float value so that
		// tags like "gt=0" work on money fields.
		validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		// "money" checks the exact decimal against what the price columns hold.
		_ = validate.RegisterValidation("money", money)
	})
	return validate
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// money reads the field from its parent struct because the custom type func
// has already turned it into a float.
func money(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		if parent.IsNil() {
			return false
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() || !field.CanInterface() {
		return false
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return auction.ValidAmount(d) == nil
}
