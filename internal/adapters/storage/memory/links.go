package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// LinkStore maps short codes to URLs.
type LinkStore struct {
	mu    sync.RWMutex
	links map[string]string
}

// NewLinkStore creates an empty link store.
func NewLinkStore() *LinkStore {
	return &LinkStore{links: make(map[string]string)}
}

func (s *LinkStore) Put(_ context.Context, link *domain.ShortLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links[link.Short] = link.URL

	return nil
}

func (s *LinkStore) Resolve(_ context.Context, short string) (*domain.ShortLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.links[short]
	if !ok {
		return nil, domain.NewNotFoundError("short link", short)
	}

	return &domain.ShortLink{Short: short, URL: target}, nil
}

func (s *LinkStore) Delete(_ context.Context, short string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[short]; !ok {
		return domain.NewNotFoundError("short link", short)
	}

	delete(s.links, short)

	return nil
}
