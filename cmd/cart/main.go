// Command cart drives the storefront from a terminal. The cart lives in a
// single slot of the configured storage, a JSON file under DATA_DIR by default.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dwikikusuma/food-storefront/internal/bootstrap"
	"github.com/dwikikusuma/food-storefront/pkg/config"
	"github.com/dwikikusuma/food-storefront/pkg/logger"
	"github.com/dwikikusuma/food-storefront/pkg/shutdown"
)

func main() {
	cfg, cfgErr := config.Load()
	log := logger.New(logger.Options{
		Service: "cart",
		Env:     cfg.AppEnv,
		Level:   cfg.CLILogLevel,
		Output:  os.Stderr,
	})
	if cfgErr != nil {
		log.Warn("ignoring invalid config values", slog.Any("err", cfgErr))
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	c := &cli{
		in:  os.Stdin,
		out: os.Stdout,
		open: func(ctx context.Context) (*bootstrap.App, error) {
			return bootstrap.New(ctx, cfg, log)
		},
	}
	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type cli struct {
	in   io.Reader
	out  io.Writer
	open func(ctx context.Context) (*bootstrap.App, error)
}
