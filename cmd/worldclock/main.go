// Package main provides the entry point for the worldclock CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/worldclock/internal/cli"
	"github.com/mrz1836/worldclock/internal/signal"
)

// Set via ldflags at build time.
var (
	version = "" //nolint:gochecknoglobals // ldflags target
	commit  = "" //nolint:gochecknoglobals // ldflags target
	date    = "" //nolint:gochecknoglobals // ldflags target
)

func main() {
	h := signal.NewHandler(context.Background())

	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	h.Stop()
	os.Exit(cli.ExitCodeForError(err))
}
