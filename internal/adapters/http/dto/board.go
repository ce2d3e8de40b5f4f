package dto

import "github.com/jsamuelsen/quoteboard/internal/domain"

// QuoteResponse is a quote on the wire.
type QuoteResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// ToQuoteResponse converts a domain quote.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Text: q.Text, Speaker: q.Speaker}
}

// ToQuoteResponses converts a list, never returning nil so an empty board encodes as [].
func ToQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, ToQuoteResponse(&quotes[i]))
	}

	return out
}

// CreateQuoteRequest is the body of POST /quotes.
type CreateQuoteRequest struct {
	Text    string `json:"text"    validate:"required,notempty,max=1000"`
	Speaker string `json:"speaker" validate:"required,notempty,max=200"`
}

// ToDomain converts the request.
func (r CreateQuoteRequest) ToDomain() domain.NewQuote {
	return domain.NewQuote{Text: r.Text, Speaker: r.Speaker}
}

// ShortenRequest is the body of POST /shorten.
type ShortenRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ShortLinkResponse is a short link on the wire.
type ShortLinkResponse struct {
	Short string `json:"short"`
	URL   string `json:"url"`
}

// ToShortLinkResponse converts a domain link.
func ToShortLinkResponse(l *domain.ShortLink) ShortLinkResponse {
	return ShortLinkResponse{Short: l.Short, URL: l.URL}
}
