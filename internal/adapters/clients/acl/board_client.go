package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// BoardClient talks to a running board over HTTP.
type BoardClient struct {
	client  *clients.Client
	service string
}

// NewBoardClient wraps client. The client must not follow redirects or
// Resolve cannot see the target.
func NewBoardClient(client *clients.Client, service string) *BoardClient {
	return &BoardClient{client: client, service: service}
}

// Client returns the underlying HTTP client. It satisfies page.Getter.
func (b *BoardClient) Client() *clients.Client {
	return b.client
}

// Random fetches GET /quote.
func (b *BoardClient) Random(ctx context.Context) (*domain.Quote, error) {
	resp, err := b.client.Get(ctx, "/quote")
	if err := b.check(resp, err, "random quote", "quote", ""); err != nil {
		return nil, err
	}

	return b.decodeQuote(resp.Body)
}

// List fetches every quote.
func (b *BoardClient) List(ctx context.Context) ([]domain.Quote, error) {
	resp, err := b.client.Get(ctx, "/quotes")
	if err := b.check(resp, err, "list quotes", "quote", ""); err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[[]boardQuote](resp.Body)
	if err != nil {
		return nil, domain.NewUnavailableError(b.service, err.Error())
	}

	return TranslateSlice(*ext, translateQuote)
}

// Get fetches one quote by id.
func (b *BoardClient) Get(ctx context.Context, id string) (*domain.Quote, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "is required")
	}

	resp, err := b.client.Get(ctx, "/quotes/"+url.PathEscape(id))
	if err := b.check(resp, err, "get quote", "quote", id); err != nil {
		return nil, err
	}

	return b.decodeQuote(resp.Body)
}

// Add creates a quote. Input is validated locally before the call.
func (b *BoardClient) Add(ctx context.Context, nq domain.NewQuote) (*domain.Quote, error) {
	if err := nq.Validate(); err != nil {
		return nil, err
	}

	body, err := encode(boardNewQuote{Text: nq.Text, Speaker: nq.Speaker})
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Post(ctx, "/quotes", body)
	if err := b.check(resp, err, "add quote", "quote", ""); err != nil {
		return nil, err
	}

	return b.decodeQuote(resp.Body)
}

// Shorten registers target and returns the short link.
func (b *BoardClient) Shorten(ctx context.Context, target string) (*domain.ShortLink, error) {
	if err := domain.ValidateTarget(target); err != nil {
		return nil, err
	}

	body, err := encode(boardShortenRequest{URL: target})
	if err != nil {
		return nil, err
	}

	resp, err := b.client.Post(ctx, "/shorten", body)
	if err := b.check(resp, err, "shorten url", "short link", ""); err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[boardShortLink](resp.Body)
	if err != nil {
		return nil, domain.NewUnavailableError(b.service, err.Error())
	}

	return translateShortLink(ext)
}

// Resolve returns the URL a short code redirects to.
func (b *BoardClient) Resolve(ctx context.Context, short string) (string, error) {
	resp, err := b.client.Get(ctx, "/path/"+url.PathEscape(short))
	if err := b.check(resp, err, "resolve short url", "short link", short); err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusFound {
		return "", domain.NewUnavailableError(b.service,
			fmt.Sprintf("expected a redirect, got status %d", resp.StatusCode))
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", domain.NewUnavailableError(b.service, "redirect without Location")
	}

	return location, nil
}

// Delete removes a short code.
func (b *BoardClient) Delete(ctx context.Context, short string) error {
	resp, err := b.client.Delete(ctx, "/shorten/"+url.PathEscape(short))
	if err := b.check(resp, err, "delete short url", "short link", short); err != nil {
		return err
	}

	drain(resp)

	return nil
}

// check maps transport errors and 4xx/5xx answers, closing the body in that case.
func (b *BoardClient) check(resp *http.Response, err error, operation, entity, id string) error {
	if err != nil {
		return MapHTTPError(nil, err, b.service, operation, entity, id)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer drain(resp)

		return MapHTTPError(resp, nil, b.service, operation, entity, id)
	}

	return nil
}

func (b *BoardClient) decodeQuote(body io.ReadCloser) (*domain.Quote, error) {
	ext, err := DecodeResponse[boardQuote](body)
	if err != nil {
		return nil, domain.NewUnavailableError(b.service, err.Error())
	}

	return translateQuote(ext)
}

func encode(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	return bytes.NewReader(raw), nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
