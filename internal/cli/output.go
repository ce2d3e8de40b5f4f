package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// Exit codes.
const (
	ExitGeneral     = 1
	ExitConfig      = 2
	ExitNotFound    = 4
	ExitUnavailable = 5
	ExitValidation  = 6
	ExitTimeout     = 9
)

var (
	// errQuoteFailed means the board answered /quote with a failure status.
	errQuoteFailed = errors.New("quote failed to load")

	// errConfig marks failures to load or validate settings.
	errConfig = errors.New("configuration error")
)

func exitCode(err error) int {
	switch {
	case domain.IsNotFound(err):
		return ExitNotFound
	case domain.IsValidation(err):
		return ExitValidation
	case domain.IsUnavailable(err), errors.Is(err, errQuoteFailed):
		return ExitUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeout
	case errors.Is(err, errConfig):
		return ExitConfig
	default:
		return ExitGeneral
	}
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)

	if hint := suggestion(err); hint != "" {
		yellow.Fprint(w, "Suggestion: ")
		fmt.Fprintln(w, hint)
	}
}

func suggestion(err error) string {
	switch {
	case domain.IsUnavailable(err):
		return "check that the board is running and --server points at it"
	case errors.Is(err, errConfig):
		return "check configs/<profile>.yaml and APP_* variables"
	default:
		return ""
	}
}

func printQuote(w io.Writer, q *domain.Quote) {
	fmt.Fprintln(w, q.Attribution())
	color.New(color.Faint).Fprintf(w, "  id: %s\n", q.ID)
}

func printQuotes(w io.Writer, quotes []domain.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	bold := color.New(color.Bold)

	bold.Fprintln(tw, "ID\tSPEAKER\tTEXT")

	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", q.ID, q.Speaker, q.Text)
	}

	return tw.Flush()
}

type quoteJSON struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

func writeJSON(w io.Writer, quotes []domain.Quote) error {
	out := make([]quoteJSON, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, quoteJSON{ID: q.ID, Text: q.Text, Speaker: q.Speaker})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
