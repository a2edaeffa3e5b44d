package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// International phone format with optional country code.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
)

func checkEmail(value any, _ string) (any, error) {
	failure := fail("must be a valid email address", "validation.email", nil)

	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return value, failure
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return value, failure
	}

	// mail.ParseAddress accepts forms like "Name <a@b>"; for typical web
	// input the parsed address must match the raw value and carry a dotted
	// domain.
	if addr.Address != s {
		return value, failure
	}
	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" || !strings.Contains(domain, ".") {
		return value, failure
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return value, failure
	}

	return value, nil
}

func checkURL(value any, _ string) (any, error) {
	failure := fail("must be a valid URL", "validation.url", nil)

	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return value, failure
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return value, failure
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return value, failure
	}

	return value, nil
}

func checkUUID(value any, _ string) (any, error) {
	failure := fail("must be a valid UUID", "validation.uuid", nil)

	s, ok := value.(string)
	if !ok {
		return value, failure
	}

	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 {
		return value, failure
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return value, failure
	}
	if _, err := uuid.Parse(s); err != nil {
		return value, failure
	}

	return value, nil
}

func checkAlpha(value any, _ string) (any, error) {
	s, ok := value.(string)
	if !ok || !alphaRegex.MatchString(s) {
		return value, fail("must contain only letters", "validation.alpha", nil)
	}
	return value, nil
}

func checkAlphanumeric(value any, _ string) (any, error) {
	s, ok := value.(string)
	if !ok || !alphanumericRegex.MatchString(s) {
		return value, fail("must contain only letters and digits", "validation.alphanumeric", nil)
	}
	return value, nil
}

func checkPhone(value any, _ string) (any, error) {
	s, ok := value.(string)
	if !ok || !phoneRegex.MatchString(s) {
		return value, fail("must be a valid phone number", "validation.phone", nil)
	}
	return value, nil
}
