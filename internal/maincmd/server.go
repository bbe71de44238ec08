package maincmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mna/mainer"

	"github.com/vesperlang/vesper/internal/assemble"
	"github.com/vesperlang/vesper/internal/config"
	"github.com/vesperlang/vesper/internal/server"
)

// runServer starts the JSON-over-TCP compile server and blocks until ctx is
// cancelled (signal) or the listener fails.
func (c *Cmd) runServer(ctx context.Context, stdio mainer.Stdio) error {
	cfg, err := config.Load()
	if err != nil {
		return printError(stdio, fmt.Errorf("loading configuration: %w", err))
	}

	srv := &server.Server{
		Addr:            cfg.ListenAddr,
		Assembler:       assemble.Assembler{Path: cfg.AssemblerPath},
		Log:             stdio.Stdout,
		AssembleTimeout: time.Duration(cfg.AssembleTimeoutSeconds) * time.Second,
	}
	fmt.Fprintf(stdio.Stdout, "vesper: listening on %s\n", cfg.ListenAddr)
	return printError(stdio, srv.ListenAndServe(ctx))
}
