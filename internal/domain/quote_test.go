package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Attribution(t *testing.T) {
	q := &Quote{Text: "Be yourself.", Speaker: "Oscar Wilde"}
	assert.Equal(t, "Be yourself. - Oscar Wilde", q.Attribution())
}

func TestNewQuote_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     NewQuote
		wantField string
	}{
		{name: "valid", input: NewQuote{Text: "Bazinga, punk!", Speaker: "Sheldon Cooper"}},
		{name: "blank text", input: NewQuote{Text: "  ", Speaker: "Sheldon Cooper"}, wantField: "text"},
		{name: "blank speaker", input: NewQuote{Text: "Bazinga, punk!"}, wantField: "speaker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateTarget(t *testing.T) {
	require.NoError(t, ValidateTarget("https://example.com/a?b=c"))
	assert.True(t, IsValidation(ValidateTarget("")))
	assert.True(t, IsValidation(ValidateTarget("not a url")))
	assert.True(t, IsValidation(ValidateTarget("/relative/path")))
}
