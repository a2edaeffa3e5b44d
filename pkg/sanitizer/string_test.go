package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formbind/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Run("removes surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "John Doe", sanitizer.Trim("  John Doe\t\n"))
	})

	t.Run("leaves internal whitespace alone", func(t *testing.T) {
		assert.Equal(t, "a  b", sanitizer.Trim(" a  b "))
	})
}

func TestCaseTransforms(t *testing.T) {
	t.Run("lower", func(t *testing.T) {
		assert.Equal(t, "john", sanitizer.ToLower("JoHn"))
	})

	t.Run("upper", func(t *testing.T) {
		assert.Equal(t, "JOHN", sanitizer.ToUpper("john"))
	})

	t.Run("title cases each word", func(t *testing.T) {
		assert.Equal(t, "John Doe", sanitizer.Title("john doe"))
	})

	t.Run("upper first only touches the first rune", func(t *testing.T) {
		assert.Equal(t, "John doe", sanitizer.UpperFirst("john doe"))
		assert.Equal(t, "Ähnlich", sanitizer.UpperFirst("ähnlich"))
		assert.Equal(t, "", sanitizer.UpperFirst(""))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	t.Run("collapses runs and trims", func(t *testing.T) {
		assert.Equal(t, "a b c", sanitizer.CollapseWhitespace("  a \t b \n\n c  "))
	})

	t.Run("whitespace only becomes empty", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.CollapseWhitespace(" \t\n "))
	})
}

func TestMaxLength(t *testing.T) {
	t.Run("shorter strings pass through", func(t *testing.T) {
		assert.Equal(t, "abc", sanitizer.MaxLength("abc", 5))
	})

	t.Run("truncates by runes not bytes", func(t *testing.T) {
		assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	})

	t.Run("non-positive limit yields empty string", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
	})
}

func TestApplyAndCompose(t *testing.T) {
	t.Run("apply runs transforms in order", func(t *testing.T) {
		got := sanitizer.Apply("  JOHN  ", sanitizer.Trim, sanitizer.ToLower)
		assert.Equal(t, "john", got)
	})

	t.Run("compose builds a reusable pipeline", func(t *testing.T) {
		normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace, sanitizer.Title)
		assert.Equal(t, "John Doe", normalize("  john   doe "))
		assert.Equal(t, "Jane Doe", normalize("jane doe"))
	})

	t.Run("no transforms returns the value unchanged", func(t *testing.T) {
		assert.Equal(t, "x", sanitizer.Apply("x"))
	})
}
