// Package render implements the render command.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/broady/clientgen"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/irfile"
)

type Cmd struct {
	Input    string   `arg:"" type:"existingfile" help:"IR document (.yaml, .yml or .json)."`
	Out      string   `arg:"" help:"Output directory for generated files."`
	Target   string   `help:"Output language." default:"dart" short:"t"`
	Set      []string `help:"Override a conventions value. Repeatable." placeholder:"KEY=VALUE" sep:"none"`
	Workers  int      `help:"Classes rendered at once (default: number of CPUs)." short:"j"`
	FailFast bool     `help:"Stop at the first class that fails to render."`

	Stdout io.Writer `kong:"-"`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.run(ctx, logger)
}

func (c *Cmd) run(ctx context.Context, logger *slog.Logger) error {
	out := c.Stdout
	if out == nil {
		out = os.Stdout
	}

	root, err := irfile.Load(c.Input)
	if err != nil {
		return err
	}
	overrides, err := conventions.ParseOverrides(c.Set)
	if err != nil {
		return err
	}

	g := clientgen.FromNamespace(root).
		ForTarget(c.Target).
		WithWorkers(c.Workers).
		WithOverrides(overrides).
		WithLogger(logger)
	if c.FailFast {
		g = g.FailFast()
	}

	result, err := g.ToDir(ctx, c.Out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ %d files written to %s\n", len(result.Units), c.Out)

	if err := result.Err(); err != nil {
		return fmt.Errorf("%d elements failed to render:\n%w", len(result.Failures), err)
	}
	return nil
}
