package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

func checkRequired(value any, _ string) (any, error) {
	if isBlank(value) {
		return value, fail("field is required", "validation.required", nil)
	}
	return value, nil
}

func checkString(value any, _ string) (any, error) {
	if _, ok := value.(string); !ok {
		return value, fail("must be a string", "validation.string", nil)
	}
	return value, nil
}

func checkBool(value any, _ string) (any, error) {
	if _, ok := value.(bool); !ok {
		return value, fail("must be a boolean", "validation.bool", nil)
	}
	return value, nil
}

// checkMin enforces a lower bound: rune count for strings, magnitude for
// numbers, element count for slices, arrays, and maps.
func checkMin(value any, arg string) (any, error) {
	bound, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return value, fmt.Errorf("%w: min: %q", ErrInvalidArgument, arg)
	}

	switch v := value.(type) {
	case string:
		if utf8.RuneCountInString(v) < int(bound) {
			return value, fail(
				fmt.Sprintf("must be at least %v characters long", arg),
				"validation.min_length",
				map[string]any{"min": arg},
			)
		}
		return value, nil
	default:
		if f, ok := toFloat(value); ok {
			if f < bound {
				return value, fail(
					fmt.Sprintf("must be at least %v", arg),
					"validation.min",
					map[string]any{"min": arg},
				)
			}
			return value, nil
		}
		if n, ok := lengthOf(value); ok {
			if n < int(bound) {
				return value, fail(
					fmt.Sprintf("must contain at least %v items", arg),
					"validation.min_items",
					map[string]any{"min": arg},
				)
			}
			return value, nil
		}
		return value, fail("cannot measure value", "validation.min", map[string]any{"min": arg})
	}
}

// checkMax is the mirror of checkMin for upper bounds.
func checkMax(value any, arg string) (any, error) {
	bound, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return value, fmt.Errorf("%w: max: %q", ErrInvalidArgument, arg)
	}

	switch v := value.(type) {
	case string:
		if utf8.RuneCountInString(v) > int(bound) {
			return value, fail(
				fmt.Sprintf("must be at most %v characters long", arg),
				"validation.max_length",
				map[string]any{"max": arg},
			)
		}
		return value, nil
	default:
		if f, ok := toFloat(value); ok {
			if f > bound {
				return value, fail(
					fmt.Sprintf("must be at most %v", arg),
					"validation.max",
					map[string]any{"max": arg},
				)
			}
			return value, nil
		}
		if n, ok := lengthOf(value); ok {
			if n > int(bound) {
				return value, fail(
					fmt.Sprintf("must contain at most %v items", arg),
					"validation.max_items",
					map[string]any{"max": arg},
				)
			}
			return value, nil
		}
		return value, fail("cannot measure value", "validation.max", map[string]any{"max": arg})
	}
}

// checkLen enforces an exact rune count on strings and an exact element
// count on collections.
func checkLen(value any, arg string) (any, error) {
	exact, err := strconv.Atoi(arg)
	if err != nil {
		return value, fmt.Errorf("%w: len: %q", ErrInvalidArgument, arg)
	}

	if s, ok := value.(string); ok {
		if utf8.RuneCountInString(s) != exact {
			return value, fail(
				fmt.Sprintf("must be exactly %d characters long", exact),
				"validation.exact_length",
				map[string]any{"length": exact},
			)
		}
		return value, nil
	}
	if n, ok := lengthOf(value); ok {
		if n != exact {
			return value, fail(
				fmt.Sprintf("must contain exactly %d items", exact),
				"validation.exact_items",
				map[string]any{"length": exact},
			)
		}
		return value, nil
	}
	return value, fail("cannot measure value", "validation.exact_length", map[string]any{"length": exact})
}

// checkIn accepts a comma-separated allow list; the value is compared by its
// string form.
func checkIn(value any, arg string) (any, error) {
	choices := strings.Split(arg, ",")
	got := fmt.Sprint(value)
	for _, choice := range choices {
		if strings.TrimSpace(choice) == got {
			return value, nil
		}
	}
	return value, fail(
		fmt.Sprintf("must be one of: %s", arg),
		"validation.in",
		map[string]any{"choices": arg},
	)
}

func lengthOf(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	default:
		return 0, false
	}
}
