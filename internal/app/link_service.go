package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/telemetry"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// LinkService implements the URL shortener.
type LinkService struct {
	repo   ports.LinkRepository
	newID  func() string
	logger *slog.Logger
}

// LinkServiceConfig contains the dependencies of LinkService.
type LinkServiceConfig struct {
	Repository ports.LinkRepository
	Logger     *slog.Logger

	// NewID defaults to uuid.NewString. Its first five characters become the code.
	NewID func() string
}

// NewLinkService panics when no repository is given.
func NewLinkService(cfg LinkServiceConfig) *LinkService {
	if cfg.Repository == nil {
		panic("app: LinkService requires a repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &LinkService{
		repo:   cfg.Repository,
		newID:  newID,
		logger: logger.With(slog.String("component", "app.LinkService")),
	}
}

// Shorten stores target under a new five-character code.
// A colliding code silently replaces the older mapping.
func (s *LinkService) Shorten(ctx context.Context, target string) (*domain.ShortLink, error) {
	link, err := Execute(ctx, s.logger, Operation[string, *domain.ShortLink]{
		Name: "shorten",
		Validate: func(_ context.Context, target string) error {
			return domain.ValidateTarget(target)
		},
		Build: func(_ context.Context, target string) (*domain.ShortLink, error) {
			id := s.newID()
			if len(id) < domain.ShortCodeLength {
				return nil, domain.NewValidationErrorWithValue("short", "generated id too short", id)
			}

			return &domain.ShortLink{
				Short: id[:domain.ShortCodeLength],
				URL:   strings.TrimSpace(target),
			}, nil
		},
		Store: s.repo.Put,
	}, target)
	if err != nil {
		return nil, err
	}

	telemetry.LinkEvents.WithLabelValues("created").Inc()
	s.logger.InfoContext(ctx, "link shortened",
		slog.String("short", link.Short),
		slog.String("url", link.URL),
	)

	return link, nil
}

// Resolve returns the target for short.
func (s *LinkService) Resolve(ctx context.Context, short string) (*domain.ShortLink, error) {
	link, err := s.repo.Resolve(ctx, short)
	if err != nil {
		if domain.IsNotFound(err) {
			telemetry.LinkEvents.WithLabelValues("missed").Inc()
		}

		return nil, err
	}

	telemetry.LinkEvents.WithLabelValues("redirected").Inc()

	return link, nil
}

// Delete removes short.
func (s *LinkService) Delete(ctx context.Context, short string) error {
	if err := s.repo.Delete(ctx, short); err != nil {
		if domain.IsNotFound(err) {
			telemetry.LinkEvents.WithLabelValues("missed").Inc()
		}

		return err
	}

	telemetry.LinkEvents.WithLabelValues("deleted").Inc()
	s.logger.InfoContext(ctx, "link deleted", slog.String("short", short))

	return nil
}
