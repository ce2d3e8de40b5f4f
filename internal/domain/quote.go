// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote is a saying attributed to a speaker.
type Quote struct {
	// ID is assigned by the board when the quote is added.
	ID string

	// Text is what was said.
	Text string

	// Speaker is who said it.
	Speaker string
}

// Attribution renders the quote the way the page displays it: "<text> - <speaker>".
func (q *Quote) Attribution() string {
	return q.Text + " - " + q.Speaker
}

// NewQuote is a quote that has not been stored yet.
type NewQuote struct {
	Text    string
	Speaker string
}

// Validate checks that both fields carry non-blank content.
func (n NewQuote) Validate() error {
	if strings.TrimSpace(n.Text) == "" {
		return NewValidationError("text", "must not be empty")
	}

	if strings.TrimSpace(n.Speaker) == "" {
		return NewValidationError("speaker", "must not be empty")
	}

	return nil
}
