// Package main runs quotectl, the command-line client of a quoteboard service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen/quoteboard/internal/cli"
)

// Build-time variables, injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.Options{
		Build: cli.BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime},
	}, os.Args[1:])

	stop()
	os.Exit(code)
}
