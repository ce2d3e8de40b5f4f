// Package seed supplies the quotes a fresh board starts with.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// File is the on-disk seed format:
//
//	quotes:
//	  - text: Bazinga, punk!
//	    speaker: Sheldon Cooper
type File struct {
	Quotes []Entry `yaml:"quotes"`
}

// Entry is one seed quote. ID is optional; a UUID is generated when empty.
type Entry struct {
	ID      string `yaml:"id"`
	Text    string `yaml:"text"`
	Speaker string `yaml:"speaker"`
}

// Defaults are used when no seed file is configured.
func Defaults() []domain.Quote {
	return []domain.Quote{
		{ID: uuid.NewString(), Text: "Bazinga, punk!", Speaker: "Sheldon Cooper"},
		{ID: uuid.NewString(), Text: "You may be from Texas but I'm from New Jearsey!", Speaker: "Leonard Hofstadter"},
	}
}

// Load reads path. An empty path yields Defaults.
func Load(path string) ([]domain.Quote, error) {
	if path == "" {
		return Defaults(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	quotes := make([]domain.Quote, 0, len(f.Quotes))

	for i, e := range f.Quotes {
		if err := (domain.NewQuote{Text: e.Text, Speaker: e.Speaker}).Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}

		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}

		quotes = append(quotes, domain.Quote{ID: id, Text: e.Text, Speaker: e.Speaker})
	}

	return quotes, nil
}

// Apply adds quotes to an empty repository. A repository that already holds
// quotes (a persistent store after a restart) is left alone.
func Apply(ctx context.Context, repo ports.QuoteRepository, quotes []domain.Quote) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking existing quotes: %w", err)
	}

	if len(existing) > 0 {
		return 0, nil
	}

	for i := range quotes {
		if err := repo.Add(ctx, &quotes[i]); err != nil {
			return i, fmt.Errorf("seeding quote %s: %w", quotes[i].ID, err)
		}
	}

	return len(quotes), nil
}
