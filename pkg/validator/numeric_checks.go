package validator

func checkNumber(value any, _ string) (any, error) {
	if _, ok := toFloat(value); !ok {
		return value, fail("must be a number", "validation.number", nil)
	}
	return value, nil
}
