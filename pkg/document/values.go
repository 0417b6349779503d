package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-docgen/pkg/template"
)

const defaultCurrency = "EUR"

// dateLayout is the accepted input format for date fields; dateDisplay is
// how bound documents print them. A single input format avoids day/month
// ambiguity in values like 03/04/2026.
const (
	dateLayout  = "2006-01-02"
	dateDisplay = "02/01/2006"
)

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// formatValue parses raw per the field type and returns the display string.
// Parse failures come back as *TypeMismatchError.
func (b *Builder) formatValue(field template.Field, raw string) (string, error) {
	value := strings.TrimSpace(raw)

	switch field.Type {
	case template.FieldTypeCurrency:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return "", &TypeMismatchError{Field: field.Name, Type: field.Type, Value: value, Reason: "is not a decimal number"}
		}
		if amount.IsNegative() {
			return "", &TypeMismatchError{Field: field.Name, Type: field.Type, Value: value, Reason: "must not be negative"}
		}
		return b.currency + " " + amount.StringFixed(2), nil

	case template.FieldTypeNumber:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", &TypeMismatchError{Field: field.Name, Type: field.Type, Value: value, Reason: "is not a number"}
		}
		return strconv.FormatFloat(parsed, 'f', -1, 64), nil

	case template.FieldTypeDate:
		parsed, err := time.Parse(dateLayout, value)
		if err != nil {
			return "", &TypeMismatchError{Field: field.Name, Type: field.Type, Value: value, Reason: "is not a date (expected YYYY-MM-DD)"}
		}
		return parsed.Format(dateDisplay), nil

	case template.FieldTypeBoolean:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return "", &TypeMismatchError{Field: field.Name, Type: field.Type, Value: value, Reason: "is not a boolean"}
		}
		if parsed {
			return "Yes", nil
		}
		return "No", nil

	case template.FieldTypeEnum:
		for _, option := range field.Options {
			if option == value {
				return value, nil
			}
		}
		return "", &TypeMismatchError{
			Field: field.Name, Type: field.Type, Value: value,
			Reason: "is not one of " + strings.Join(field.Options, ", "),
		}

	default:
		// string and text pass through untouched.
		return raw, nil
	}
}
