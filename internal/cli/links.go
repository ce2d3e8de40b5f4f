package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (s *state) shortenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shorten <url>",
		Short: "Create a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			link, err := s.board.Shorten(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgCyan, color.Bold).Fprintln(out, link.Short)
			fmt.Fprintf(out, "%s/path/%s → %s\n", s.http.BaseURL(), link.Short, link.URL)

			return nil
		},
	}
}

func (s *state) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <short>",
		Short: "Print the URL a short link redirects to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			target, err := s.board.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), target)

			return nil
		},
	}
}

func (s *state) unshortenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unshorten <short>",
		Aliases: []string{"rm"},
		Short:   "Delete a short link",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			if err := s.board.Delete(ctx, args[0]); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])

			return nil
		},
	}
}
