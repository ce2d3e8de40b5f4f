// Package storage builds the configured quote and link repositories.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quoteboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quoteboard/internal/adapters/storage/seed"
	"github.com/jsamuelsen/quoteboard/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// Backend bundles the repositories with their lifecycle.
type Backend struct {
	Quotes ports.QuoteRepository
	Links  ports.LinkRepository

	// Checker is nil for the in-memory backend.
	Checker ports.HealthChecker

	close func() error
}

// Close releases the underlying connection pool, if any.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}

	return b.close()
}

// Open builds the backend for cfg.Driver and seeds it when empty.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var b *Backend

	switch cfg.Driver {
	case config.DriverMemory, "":
		b = &Backend{
			Quotes: memory.NewQuoteStore(),
			Links:  memory.NewLinkStore(),
		}
	case config.DriverSQLite, config.DriverPostgres:
		s, err := sqlstore.Open(ctx, sqlstore.Dialect(cfg.Driver), cfg.DSN)
		if err != nil {
			return nil, err
		}

		b = &Backend{
			Quotes:  s.Quotes(),
			Links:   s.Links(),
			Checker: s,
			close:   s.Close,
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	quotes, err := seed.Load(cfg.SeedFile)
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	n, err := seed.Apply(ctx, b.Quotes, quotes)
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "storage ready",
		slog.String("driver", cfg.Driver),
		slog.Int("seeded", n),
	)

	return b, nil
}
