package employee

import (
	"reflect"
	"strings"

	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/dateformat"

	"github.com/go-playground/validator/v10"
)

// Validator checks create/update payloads and reports every violation in
// one pass, grouped by JSON field name. A nil result means the payload is
// valid.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names, not the Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dateformat only fires on non-empty values; required covers absence
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return dateformat.Valid(s)
	})

	return &Validator{validate: v}
}

func (v *Validator) ValidateCreate(req CreateEmployeeRequest) map[string][]string {
	return v.check(req)
}

func (v *Validator) ValidateUpdate(req UpdateEmployeeRequest) map[string][]string {
	return v.check(req)
}

func (v *Validator) check(payload any) map[string][]string {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	violations := apperror.FieldViolations(err)
	if violations == nil {
		violations = map[string][]string{"payload": {"Invalid input."}}
	}
	return violations
}
