// Package app contains the use cases behind the HTTP routes. Services depend
// on ports, never on a concrete store.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/telemetry"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// maxParallelLookups bounds GetMany fan-out.
const maxParallelLookups = 8

// QuoteService orchestrates quote use cases.
type QuoteService struct {
	repo   ports.QuoteRepository
	newID  func() string
	logger *slog.Logger
}

// QuoteServiceConfig contains the dependencies of QuoteService.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger

	// NewID defaults to uuid.NewString.
	NewID func() string
}

// NewQuoteService panics when no repository is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &QuoteService{
		repo:   cfg.Repository,
		newID:  newID,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// Random returns one quote picked at random.
func (s *QuoteService) Random(ctx context.Context) (*domain.Quote, error) {
	q, err := s.repo.Random(ctx)
	if err != nil {
		return nil, err
	}

	telemetry.QuotesServed.WithLabelValues("random").Inc()
	s.logger.DebugContext(ctx, "served random quote", slog.String("quote_id", q.ID))

	return q, nil
}

// List returns every quote in insertion order.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	telemetry.QuotesServed.WithLabelValues("list").Add(float64(len(quotes)))

	return quotes, nil
}

// Get returns the quote with id.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	telemetry.QuotesServed.WithLabelValues("get").Inc()

	return q, nil
}

// GetMany looks up several ids concurrently. Any missing id fails the call.
func (s *QuoteService) GetMany(ctx context.Context, ids []string) ([]domain.Quote, error) {
	found, err := ParallelLimit(ctx, maxParallelLookups, ids, s.repo.Get)
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, len(found))
	for i, q := range found {
		quotes[i] = *q
	}

	telemetry.QuotesServed.WithLabelValues("get").Add(float64(len(quotes)))

	return quotes, nil
}

// Add stores a new quote under a fresh id. Text and speaker are kept exactly
// as submitted; blank ones are rejected.
func (s *QuoteService) Add(ctx context.Context, in domain.NewQuote) (*domain.Quote, error) {
	q, err := Execute(ctx, s.logger, Operation[domain.NewQuote, *domain.Quote]{
		Name: "add_quote",
		Validate: func(_ context.Context, in domain.NewQuote) error {
			return in.Validate()
		},
		Build: func(_ context.Context, in domain.NewQuote) (*domain.Quote, error) {
			return &domain.Quote{
				ID:      s.newID(),
				Text:    in.Text,
				Speaker: in.Speaker,
			}, nil
		},
		Store: s.repo.Add,
	}, in)
	if err != nil {
		return nil, err
	}

	telemetry.QuotesAdded.Inc()
	s.logger.InfoContext(ctx, "quote added",
		slog.String("quote_id", q.ID),
		slog.String("speaker", q.Speaker),
	)

	return q, nil
}
