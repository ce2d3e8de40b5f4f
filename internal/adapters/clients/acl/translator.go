package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// boardQuote is a quote as the board encodes it.
type boardQuote struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

type boardNewQuote struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

type boardShortenRequest struct {
	URL string `json:"url"`
}

type boardShortLink struct {
	Short string `json:"short"`
	URL   string `json:"url"`
}

// DecodeResponse decodes a JSON body and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// Translator converts one board DTO into a domain value, rejecting bad data.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice translates every item, stopping at the first failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, *translated)
	}

	return result, nil
}

func translateQuote(ext *boardQuote) (*domain.Quote, error) {
	if strings.TrimSpace(ext.ID) == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	if strings.TrimSpace(ext.Text) == "" {
		return nil, domain.NewValidationError("text", "is required")
	}

	if strings.TrimSpace(ext.Speaker) == "" {
		return nil, domain.NewValidationError("speaker", "is required")
	}

	return &domain.Quote{ID: ext.ID, Text: ext.Text, Speaker: ext.Speaker}, nil
}

func translateShortLink(ext *boardShortLink) (*domain.ShortLink, error) {
	if len(ext.Short) != domain.ShortCodeLength {
		return nil, domain.NewValidationErrorWithValue("short", "unexpected length", ext.Short)
	}

	if err := domain.ValidateTarget(ext.URL); err != nil {
		return nil, err
	}

	return &domain.ShortLink{Short: ext.Short, URL: ext.URL}, nil
}
