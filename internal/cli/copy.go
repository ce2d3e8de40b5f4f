package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clipboard"
	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/page"
)

const (
	copySourceID = "quoteText"

	// Size of the tooltip in the page's stylesheet.
	tooltipWidth  = 56
	tooltipHeight = 24
)

func (s *state) copyCommand() *cobra.Command {
	var ev page.PointerEvent

	cmd := &cobra.Command{
		Use:   "copy [id]",
		Short: "Copy a quote to the clipboard",
		Long: `Copy a quote (random when no id is given) to the clipboard the way
the page does: the "copied" tooltip is shown at the pointer and hidden again
after page.copy_delay. The command returns once the tooltip has settled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := s.context(cmd)
			defer cancel()

			var (
				q   *domain.Quote
				err error
			)

			if len(args) == 1 {
				q, err = s.board.Get(ctx, args[0])
			} else {
				q, err = s.board.Random(ctx)
			}

			if err != nil {
				return err
			}

			tip := page.NewNode(page.TooltipElementID, page.ClassHidden).WithSize(tooltipWidth, tooltipHeight)
			doc := page.NewMemoryDocument(
				page.NewNode(copySourceID).WithText(q.Attribution()),
				tip,
			)

			tooltip := page.NewCopyTooltip(page.CopyTooltipConfig{
				Document:  doc,
				Clipboard: s.clipboard(),
				Delay:     s.cfg.Page.CopyDelay,
				Logger:    s.logger,
			})

			if err := tooltip.Copy(copySourceID, ev); err != nil {
				tooltip.Wait()
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprint(out, "Copied: ")
			fmt.Fprintln(out, q.Attribution())

			s.logger.Debug("tooltip shown",
				slog.String("left", tip.Style("left")),
				slog.String("top", tip.Style("top")),
				slog.Any("classes", tip.Classes()),
			)

			tooltip.Wait()

			s.logger.Debug("tooltip settled", slog.Any("classes", tip.Classes()))

			return nil
		},
	}

	cmd.Flags().Float64Var(&ev.PageX, "x", 0, "Pointer X coordinate")
	cmd.Flags().Float64Var(&ev.PageY, "y", 0, "Pointer Y coordinate")

	return cmd
}

// clipboard returns the injected clipboard or the system one, falling back
// to an in-process buffer on hosts without a clipboard utility.
func (s *state) clipboard() page.Clipboard {
	if s.opts.Clipboard != nil {
		return s.opts.Clipboard
	}

	return clipboard.Fallback{
		Primary:   clipboard.System{},
		Secondary: &clipboard.Buffer{},
		OnFallback: func(err error) {
			s.logger.Warn("system clipboard unavailable, text kept in memory only", slog.Any("error", err))
		},
	}
}
