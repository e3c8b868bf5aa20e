package common

import (
	"reflect"
	"slices"
	"strings"

	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that knows the "txtype" tag, accepting only
// the given transaction types, and the "txstatus" tag. Field errors are
// reported under their JSON names.
func NewValidator(types []transaction.Type) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	allowed := slices.Clone(types)
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, transaction.Type(fl.Field().String()))
	})
	_ = v.RegisterValidation("txstatus", func(fl validator.FieldLevel) bool {
		return slices.Contains(transaction.Statuses, transaction.Status(fl.Field().String()))
	})
	return v
}
