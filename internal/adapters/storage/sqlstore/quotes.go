package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// QuoteRepository implements ports.QuoteRepository.
type QuoteRepository struct {
	store *Store
}

func (r *QuoteRepository) List(ctx context.Context) ([]domain.Quote, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT id, text, speaker FROM quotes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	quotes := make([]domain.Quote, 0)

	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Text, &q.Speaker); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

func (r *QuoteRepository) Get(ctx context.Context, id string) (*domain.Quote, error) {
	row := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT id, text, speaker FROM quotes WHERE id = ?`), id)

	return scanQuote(row, id)
}

func (r *QuoteRepository) Random(ctx context.Context) (*domain.Quote, error) {
	row := r.store.db.QueryRowContext(ctx, `SELECT id, text, speaker FROM quotes ORDER BY RANDOM() LIMIT 1`)

	return scanQuote(row, "")
}

func (r *QuoteRepository) Add(ctx context.Context, q *domain.Quote) error {
	_, err := r.store.db.ExecContext(ctx,
		r.store.rebind(`INSERT INTO quotes (id, text, speaker) VALUES (?, ?, ?)`),
		q.ID, q.Text, q.Speaker)
	if isUniqueViolation(err) {
		return domain.NewConflictError("quote", "id "+q.ID+" already exists")
	}

	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}

	return nil
}

func scanQuote(row *sql.Row, id string) (*domain.Quote, error) {
	var q domain.Quote

	err := row.Scan(&q.ID, &q.Text, &q.Speaker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", id)
	}

	if err != nil {
		return nil, fmt.Errorf("reading quote: %w", err)
	}

	return &q, nil
}
