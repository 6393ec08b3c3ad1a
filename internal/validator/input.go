package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var numberRegex = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?$`)

// normalize turns every value into its string form and makes sure each field
// with rules is present.
func normalize(input Input, rules Rules) Input {
	normalized := make(Input, len(input)+len(rules))
	for field, value := range input {
		normalized[field] = toString(value)
	}
	for field := range rules {
		if _, found := normalized[field]; !found {
			normalized[field] = ""
		}
	}
	return normalized
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		if len(v) == 0 {
			return ""
		}
		return strings.TrimSpace(v[0])
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return toString(rv.Elem().Interface())
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

// typed hands numeric fields to the engine as numbers so size rules compare
// values instead of lengths.
func typed(value any, numeric bool) any {
	s, ok := value.(string)
	if !ok || !numeric || !numberRegex.MatchString(s) {
		return value
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value
	}
	return f
}

// FieldString returns the value of the field under validation as a string.
func FieldString(fl validator.FieldLevel) string {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return field.String()
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64)
	}
	return toString(field.Interface())
}

// Truthy reports whether a form value reads as a checked checkbox.
func Truthy(value any) bool {
	switch strings.ToLower(toString(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
