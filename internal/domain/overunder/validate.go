package overunder

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var queryValidator = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("stat_type", func(fl validator.FieldLevel) bool {
		return StatType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Float64 && fl.Field().Kind() != reflect.Float32 {
			return false
		}
		value := fl.Field().Float()
		return !math.IsNaN(value) && !math.IsInf(value, 0)
	})
	return v
}

// Validate checks q without doing any I/O. The identifier rule is checked
// first so its message stays fixed regardless of the other fields.
func (q Query) Validate() error {
	if q.HasPlayerName() == q.HasPlayerID() {
		return NewValidationError(MsgExactlyOneIdentifier)
	}

	if err := queryValidator.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if crerr.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return NewValidationError(describeFieldError(fieldErrs[0], q))
		}
		return NewValidationError(err.Error())
	}

	return nil
}

func describeFieldError(fe validator.FieldError, q Query) string {
	switch fe.Tag() {
	case "stat_type":
		return invalidStatMessage(string(q.Stat))
	case "finite":
		return fmt.Sprintf("Invalid threshold %v. Must be a finite number", q.Threshold)
	default:
		return fmt.Sprintf("invalid %s: failed %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
