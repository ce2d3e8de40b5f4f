// Package memory keeps quotes and short links in process memory.
// Contents are lost on restart.
package memory

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// QuoteStore is a mutex-guarded, insertion-ordered quote list.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	pick   func(n int) int
}

// NewQuoteStore creates a store holding initial, in order.
func NewQuoteStore(initial ...domain.Quote) *QuoteStore {
	return &QuoteStore{
		quotes: append([]domain.Quote(nil), initial...),
		pick:   rand.IntN, //nolint:gosec // quote selection needs no crypto randomness
	}
}

// List returns a copy of every quote.
func (s *QuoteStore) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]domain.Quote, 0, len(s.quotes)), s.quotes...), nil
}

// Get finds a quote by id.
func (s *QuoteStore) Get(_ context.Context, id string) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.quotes {
		if s.quotes[i].ID == id {
			q := s.quotes[i]
			return &q, nil
		}
	}

	return nil, domain.NewNotFoundError("quote", id)
}

// Random returns a uniformly chosen quote.
func (s *QuoteStore) Random(_ context.Context) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	q := s.quotes[s.pick(len(s.quotes))]

	return &q, nil
}

// Add appends q.
func (s *QuoteStore) Add(_ context.Context, q *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ID == q.ID {
			return domain.NewConflictError("quote", "id "+q.ID+" already exists")
		}
	}

	s.quotes = append(s.quotes, *q)

	return nil
}
