package page

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// QuoteElementID is the element the loaded quote is written into.
	QuoteElementID = "loadedQuote"

	// QuotePath is requested relative to the board.
	QuotePath = "/quote"

	// QuoteFailedText replaces the quote when the board answers with a non-2xx status.
	QuoteFailedText = "Quote failed to load."
)

// Getter issues a GET against the board. clients.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, path string) (*http.Response, error)
}

// quoteBody is the part of the /quote response the page renders.
type quoteBody struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// QuoteLoader fills the quote element once the page is ready.
type QuoteLoader struct {
	doc    Document
	client Getter
}

// NewQuoteLoader creates a loader writing into doc.
func NewQuoteLoader(doc Document, client Getter) *QuoteLoader {
	return &QuoteLoader{doc: doc, client: client}
}

// Load fetches one quote and renders it as "<text> - <speaker>".
//
// A non-2xx response is the only failure handled here: the element shows
// QuoteFailedText and Load returns nil. Transport and decoding errors are
// returned and leave the element untouched. Load applies no timeout of its own.
func (l *QuoteLoader) Load(ctx context.Context) error {
	holder, err := lookup(l.doc, QuoteElementID)
	if err != nil {
		return err
	}

	resp, err := l.client.Get(ctx, QuotePath)
	if err != nil {
		return fmt.Errorf("fetching quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		holder.SetText(QuoteFailedText)
		return nil
	}

	var q quoteBody
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return fmt.Errorf("decoding quote: %w", err)
	}

	holder.SetText(q.Text + " - " + q.Speaker)

	return nil
}
