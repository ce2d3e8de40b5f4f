// Package cli implements quotectl, the command-line client of a board.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quoteboard/internal/page"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
)

const defaultTimeout = 30 * time.Second

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Options configures the root command. Zero values fall back to the process
// streams and the system clipboard.
type Options struct {
	Build     BuildInfo
	Out       io.Writer
	Err       io.Writer
	Clipboard page.Clipboard
}

// state is what PersistentPreRunE prepares for the subcommands.
type state struct {
	opts Options

	profile  string
	server   string
	timeout  time.Duration
	logLevel string
	noColor  bool

	cfg    *config.Config
	logger *slog.Logger
	http   *clients.Client
	board  *acl.BoardClient

	// pageHTTP backs the quote loader. It never retries.
	pageHTTP *clients.Client
}

// NewRootCommand builds the quotectl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	s := &state{opts: opts}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Quote board client",
		Long: `Client for a quoteboard service. Reads, adds and copies quotes and
manages short links. Settings come from configs/<profile>.yaml and APP_*
environment variables, the same as the service.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
	}

	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	flags := root.PersistentFlags()
	flags.StringVar(&s.profile, "profile", "local", "Configuration profile to load")
	flags.StringVar(&s.server, "server", "", "Board base URL (overrides services.board.base_url)")
	flags.DurationVar(&s.timeout, "timeout", defaultTimeout, "Overall timeout for a command")
	flags.StringVar(&s.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&s.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		s.quoteCommand(),
		s.listCommand(),
		s.getCommand(),
		s.addCommand(),
		s.copyCommand(),
		s.shortenCommand(),
		s.resolveCommand(),
		s.unshortenCommand(),
		versionCommand(opts.Build),
	)

	return root
}

// Execute runs quotectl and returns the process exit code.
func Execute(ctx context.Context, opts Options, args []string) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		return exitCode(err)
	}

	return 0
}

func (s *state) setup(cmd *cobra.Command, _ []string) error {
	if s.noColor {
		color.NoColor = true
	}

	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(s.profile)
	if err != nil {
		return fmt.Errorf("%w: loading: %w", errConfig, err)
	}

	if s.server != "" {
		cfg.Services.Board.BaseURL = s.server
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	s.cfg = cfg
	s.logger = logging.NewWithWriter(&logging.Config{
		Level:   s.logLevel,
		Format:  "pretty",
		Service: "quotectl",
		Version: s.opts.Build.Version,
	}, s.opts.Err)

	boardCfg := clients.FromConfig(cfg.Services.Board, cfg.Client, s.logger)

	s.http, err = clients.New(boardCfg)
	if err != nil {
		return fmt.Errorf("creating board client: %w", err)
	}

	s.pageHTTP, err = clients.New(boardCfg.SingleShot())
	if err != nil {
		return fmt.Errorf("creating page client: %w", err)
	}

	s.board = acl.NewBoardClient(s.http, cfg.Services.Board.Name)

	return nil
}

// context bounds a command by --timeout.
func (s *state) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := s.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return context.WithTimeout(logging.WithContext(cmd.Context(), s.logger), timeout)
}

func versionCommand(b BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quotectl version %s\n", orUnknown(b.Version, "dev"))
			fmt.Fprintf(out, "Built: %s\n", orUnknown(b.BuildTime, "unknown"))
			fmt.Fprintf(out, "Git commit: %s\n", orUnknown(b.Commit, "unknown"))
		},
	}
}

func orUnknown(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
