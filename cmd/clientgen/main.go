package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/clientgen/cmd/clientgen/internal/check"
	"github.com/broady/clientgen/cmd/clientgen/internal/render"
	"github.com/broady/clientgen/target"
)

type CLI struct {
	Verbose bool `help:"Log every rendered file." short:"v"`

	Render  render.Cmd `cmd:"" help:"Render client source from an IR document."`
	Check   check.Cmd  `cmd:"" help:"Load and validate an IR document without rendering."`
	Targets TargetsCmd `cmd:"" help:"List the available targets."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type TargetsCmd struct {
	Stdout io.Writer `kong:"-"`
}

func (c *TargetsCmd) Run() error {
	out := c.Stdout
	if out == nil {
		out = os.Stdout
	}
	for _, name := range target.Names() {
		t, err := target.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", name, t.FileExtension())
	}
	return nil
}

// newLogger returns a text logger on w; verbose enables debug events.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("clientgen"),
		kong.Description("Render API client source code from an IR document."),
		kong.UsageOnError(),
	)
	err := ctx.Run(newLogger(os.Stderr, cli.Verbose))
	ctx.FatalIfErrorf(err)
}
