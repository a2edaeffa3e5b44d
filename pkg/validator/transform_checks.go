package validator

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formbind/pkg/sanitizer"
)

// Transform checks rewrite the value flowing down the pipeline. They apply
// to strings and pass every other type through untouched, so a rule like
// "trim|min:2" is harmless on non-string input.

func checkTrim(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.Trim(s), nil
	}
	return value, nil
}

func checkLower(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.ToLower(s), nil
	}
	return value, nil
}

func checkUpper(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.ToUpper(s), nil
	}
	return value, nil
}

func checkTitle(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.Title(s), nil
	}
	return value, nil
}

func checkUcFirst(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.UpperFirst(s), nil
	}
	return value, nil
}

func checkSquish(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		return sanitizer.CollapseWhitespace(s), nil
	}
	return value, nil
}

func checkTruncate(value any, arg string) (any, error) {
	maxLen, err := strconv.Atoi(arg)
	if err != nil {
		return value, fmt.Errorf("%w: truncate: %q", ErrInvalidArgument, arg)
	}
	if s, ok := value.(string); ok {
		return sanitizer.MaxLength(s, maxLen), nil
	}
	return value, nil
}
