package domain

import (
	"net/url"
	"strings"
)

// ShortCodeLength is the number of characters in a generated short code.
const ShortCodeLength = 5

// ShortLink maps a short code to the URL it redirects to.
type ShortLink struct {
	Short string
	URL   string
}

// ValidateTarget checks that raw is an absolute URL a browser can be redirected to.
func ValidateTarget(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewValidationError("url", "must not be empty")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NewValidationErrorWithValue("url", "must be an absolute URL", raw)
	}

	return nil
}
