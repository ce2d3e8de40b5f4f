// Package ports defines the interfaces the application layer depends on.
// Adapters (storage, clipboard, remote clients) implement them.
package ports

import (
	"context"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// QuoteRepository stores quotes in insertion order.
type QuoteRepository interface {
	// List returns every quote, oldest first. An empty board yields an empty slice.
	List(ctx context.Context) ([]domain.Quote, error)

	// Get returns domain.ErrNotFound when no quote has the id.
	Get(ctx context.Context, id string) (*domain.Quote, error)

	// Random picks one quote uniformly. Returns domain.ErrNotFound on an empty board.
	Random(ctx context.Context) (*domain.Quote, error)

	// Add appends q. q.ID must already be set.
	Add(ctx context.Context, q *domain.Quote) error
}

// LinkRepository maps short codes to target URLs.
type LinkRepository interface {
	// Put stores link, replacing any previous target for the same code.
	Put(ctx context.Context, link *domain.ShortLink) error

	// Resolve returns domain.ErrNotFound for unknown codes.
	Resolve(ctx context.Context, short string) (*domain.ShortLink, error)

	// Delete returns domain.ErrNotFound for unknown codes.
	Delete(ctx context.Context, short string) error
}
