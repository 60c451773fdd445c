package apperror

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// employeeId -> Employee Id, full_name -> Full Name
	s = strings.ReplaceAll(s, "_", " ")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// FieldViolations groups validator failures by field name, keyed by the
// JSON tag registered via Init. Returns nil when err carries no
// field-level information.
func FieldViolations(err error) map[string][]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	violations := make(map[string][]string, len(errs))
	for _, e := range errs {
		field := e.Field()
		name := formatFieldName(field)

		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required.", name)
		case "min", "max":
			msg = fmt.Sprintf("%s must be between 1 and %s characters.", name, e.Param())
		case "dateformat":
			msg = "Invalid date format. Please use 'dd-MMM-yyyy'."
		default:
			msg = fmt.Sprintf("%s is invalid.", name)
		}

		violations[field] = append(violations[field], msg)
	}

	return violations
}
