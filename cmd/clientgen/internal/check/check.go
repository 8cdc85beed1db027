// Package check implements the check command.
package check

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/broady/clientgen/ir"
	"github.com/broady/clientgen/irfile"
)

type Cmd struct {
	Input string `arg:"" type:"existingfile" help:"IR document (.yaml, .yml or .json)."`

	Stdout io.Writer `kong:"-"`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	out := c.Stdout
	if out == nil {
		out = os.Stdout
	}

	root, err := irfile.Load(c.Input)
	if err != nil {
		return err
	}
	s := count(root)
	fmt.Fprintf(out, "✓ %d namespaces, %d classes, %d enums, %d methods\n", s.namespaces, s.classes, s.enums, s.methods)

	var errs []error
	for _, err := range root.Validate() {
		var v *ir.ValidationError
		if errors.As(err, &v) {
			logger.Warn("validation failed", slog.String("code", v.Code), slog.String("message", v.Message))
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d validation errors:\n%w", len(errs), errors.Join(errs...))
	}
	fmt.Fprintln(out, "✓ IR is valid")
	return nil
}

type stats struct {
	namespaces, classes, enums, methods int
}

func count(root *ir.Namespace) stats {
	var s stats
	root.Walk(func(ns *ir.Namespace) bool {
		s.namespaces++
		s.classes += len(ns.Classes)
		s.enums += len(ns.Enums)
		for _, c := range ns.Classes {
			s.methods += len(c.Methods)
		}
		return true
	})
	return s
}
