package helpers

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// NewValidator builds a validator that reports fields by their json tag,
// so error maps line up with the payload the client actually sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// WantsJSON reports whether the client negotiated a JSON response. Form
// posts from the admin screens get redirect-with-flash instead.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := toSnake(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("The %s field is required.", field)
		case "numeric":
			errorMessages[field] = fmt.Sprintf("The %s field must be a number.", field)
		case "min":
			errorMessages[field] = fmt.Sprintf("The %s field must be at least %s characters.", field, err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("The %s field may not be greater than %s characters.", field, err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("The %s field failed %s validation.", field, err.Tag())
		}
	}
	return errorMessages
}

var cad = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

// FormatPrice renders a menu price for display, e.g. "$12.50".
func FormatPrice(amount decimal.Decimal) string {
	return cad.FormatMoneyDecimal(amount)
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
