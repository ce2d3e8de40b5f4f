package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/page"
)

func (s *state) quoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote the way the page renders it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			out := page.NewNode(page.QuoteElementID)
			loader := page.NewQuoteLoader(page.NewMemoryDocument(out), s.pageHTTP)

			if err := loader.Load(ctx); err != nil {
				return err
			}

			if out.Text() == page.QuoteFailedText {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), out.Text())
				return errQuoteFailed
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Text())

			return nil
		},
	}
}

func (s *state) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			quotes, err := s.board.List(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), quotes)
			}

			return printQuotes(cmd.OutOrStdout(), quotes)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func (s *state) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			q, err := s.board.Get(ctx, args[0])
			if err != nil {
				return err
			}

			printQuote(cmd.OutOrStdout(), q)

			return nil
		},
	}
}

func (s *state) addCommand() *cobra.Command {
	var nq domain.NewQuote

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a quote",
		Example: `  quotectl add --text "Bazinga, punk!" --speaker "Sheldon Cooper"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			q, err := s.board.Add(ctx, nq)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "Added: ")
			printQuote(cmd.OutOrStdout(), q)

			return nil
		},
	}

	cmd.Flags().StringVar(&nq.Text, "text", "", "Quote text")
	cmd.Flags().StringVar(&nq.Speaker, "speaker", "", "Who said it")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("speaker")

	return cmd
}
