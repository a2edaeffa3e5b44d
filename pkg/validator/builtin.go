package validator

import (
	"reflect"
	"strings"
)

// builtins is the check table every Validator starts from. Register merges
// custom checks on top of it at snapshot time.
var builtins = map[string]CheckFunc{
	"required": checkRequired,
	"string":   checkString,
	"number":   checkNumber,
	"bool":     checkBool,
	"min":      checkMin,
	"max":      checkMax,
	"len":      checkLen,
	"in":       checkIn,

	"email":        checkEmail,
	"url":          checkURL,
	"uuid":         checkUUID,
	"alpha":        checkAlpha,
	"alphanumeric": checkAlphanumeric,
	"phone":        checkPhone,

	"trim":     checkTrim,
	"lower":    checkLower,
	"upper":    checkUpper,
	"title":    checkTitle,
	"ucFirst":  checkUcFirst,
	"squish":   checkSquish,
	"truncate": checkTruncate,
}

// fail builds an unattributed failure; the engine fills in the field name.
func fail(message, key string, values map[string]any) *ValidationError {
	return &ValidationError{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// isBlank reports whether a value counts as missing for the required check.
// Zero numbers and false are deliberately not blank; only nil, blank
// strings, empty collections, and nil pointers are.
func isBlank(value any) bool {
	if value == nil {
		return true
	}

	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// toFloat converts any numeric value to float64 for bound comparisons.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
