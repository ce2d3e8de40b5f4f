package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// LinkRepository implements ports.LinkRepository.
type LinkRepository struct {
	store *Store
}

func (r *LinkRepository) Put(ctx context.Context, link *domain.ShortLink) error {
	_, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO short_links (short, url) VALUES (?, ?)
		 ON CONFLICT (short) DO UPDATE SET url = excluded.url`),
		link.Short, link.URL)
	if err != nil {
		return fmt.Errorf("storing short link: %w", err)
	}

	return nil
}

func (r *LinkRepository) Resolve(ctx context.Context, short string) (*domain.ShortLink, error) {
	link := domain.ShortLink{Short: short}

	err := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT url FROM short_links WHERE short = ?`), short).Scan(&link.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("short link", short)
	}

	if err != nil {
		return nil, fmt.Errorf("resolving short link: %w", err)
	}

	return &link, nil
}

func (r *LinkRepository) Delete(ctx context.Context, short string) error {
	res, err := r.store.db.ExecContext(ctx,
		r.store.rebind(`DELETE FROM short_links WHERE short = ?`), short)
	if err != nil {
		return fmt.Errorf("deleting short link: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting short link: %w", err)
	}

	if n == 0 {
		return domain.NewNotFoundError("short link", short)
	}

	return nil
}
