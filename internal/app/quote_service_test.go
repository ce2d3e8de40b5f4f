package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedID(id string) func() string {
	return func() string { return id }
}

func TestNewQuoteService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Repository: mocks.NewMockQuoteRepository(t)})
	require.NotNil(t, svc)
}

func TestQuoteService_Random(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*mocks.MockQuoteRepository)
		expectedQuote *domain.Quote
		errCheck      func(error) bool
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).
					Return(&domain.Quote{ID: "q-1", Text: "Bazinga, punk!", Speaker: "Sheldon Cooper"}, nil)
			},
			expectedQuote: &domain.Quote{ID: "q-1", Text: "Bazinga, punk!", Speaker: "Sheldon Cooper"},
		},
		{
			name: "empty board",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).Return(nil, domain.NewNotFoundError("quote", ""))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "store failure",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().Random(mock.Anything).Return(nil, errors.New("disk on fire"))
			},
			errCheck: func(err error) bool { return err.Error() == "disk on fire" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockQuoteRepository(t)
			tt.setupMock(repo)

			svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

			quote, err := svc.Random(context.Background())

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedQuote, quote)
			}
		})
	}
}

func TestQuoteService_Get(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().Get(mock.Anything, "q-1").Return(&domain.Quote{ID: "q-1"}, nil)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.NewNotFoundError("quote", "missing"))

	svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

	q, err := svc.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.ID)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_List(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.Quote{{ID: "a"}, {ID: "b"}}, nil)

	svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

	quotes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
}

func TestQuoteService_GetMany(t *testing.T) {
	t.Run("keeps request order", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).
			RunAndReturn(func(_ context.Context, id string) (*domain.Quote, error) {
				return &domain.Quote{ID: id}, nil
			}).Times(3)

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

		quotes, err := svc.GetMany(context.Background(), []string{"c", "a", "b"})
		require.NoError(t, err)
		require.Len(t, quotes, 3)
		assert.Equal(t, "c", quotes[0].ID)
		assert.Equal(t, "a", quotes[1].ID)
		assert.Equal(t, "b", quotes[2].ID)
	})

	t.Run("missing id fails", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().Get(mock.Anything, "x").Return(nil, domain.NewNotFoundError("quote", "x"))

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

		_, err := svc.GetMany(context.Background(), []string{"x"})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_Add(t *testing.T) {
	t.Run("stores the quote as submitted under a new id", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().Add(mock.Anything, &domain.Quote{ID: "new-id", Text: " Be yourself. ", Speaker: "Oscar Wilde "}).
			Return(nil)

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger(), NewID: fixedID("new-id")})

		q, err := svc.Add(context.Background(), domain.NewQuote{Text: " Be yourself. ", Speaker: "Oscar Wilde "})
		require.NoError(t, err)
		assert.Equal(t, "new-id", q.ID)
	})

	t.Run("validation failure never touches the store", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

		_, err := svc.Add(context.Background(), domain.NewQuote{Text: "orphan"})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		step, ok := FailedStep(err)
		require.True(t, ok)
		assert.Equal(t, StepValidate, step)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().Add(mock.Anything, mock.Anything).Return(domain.NewConflictError("quote", "duplicate id"))

		svc := NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})

		_, err := svc.Add(context.Background(), domain.NewQuote{Text: "a", Speaker: "b"})
		assert.True(t, domain.IsConflict(err))

		step, _ := FailedStep(err)
		assert.Equal(t, StepStore, step)
	})
}
