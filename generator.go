// Package clientgen renders API client source code from an IR tree.
//
// Create a Generator with FromNamespace and configure it with method
// chaining:
//
//	result, err := clientgen.FromNamespace(root).
//	    ForTarget("dart").
//	    WithWorkers(8).
//	    ToDir(ctx, "./client/lib")
//
// Each class and enum becomes one output unit. Without FailFast, a class that
// fails to render is recorded in Result.Failures and the rest still render.
package clientgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
	"github.com/broady/clientgen/sink"
	"github.com/broady/clientgen/target"
)

// DefaultTarget is the target used when none is selected.
const DefaultTarget = "dart"

// Generator provides a fluent API for rendering.
type Generator struct {
	root   *ir.Namespace
	cfg    Config
	logger *slog.Logger
}

// FromNamespace creates a Generator for the tree rooted at root.
func FromNamespace(root *ir.Namespace) *Generator {
	return &Generator{root: root}
}

// WithConfig replaces the whole configuration.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// ForTarget selects the output language.
func (g *Generator) ForTarget(name string) *Generator {
	g.cfg.Target = name
	return g
}

// WithWorkers bounds the number of classes rendered at once.
func (g *Generator) WithWorkers(n int) *Generator {
	g.cfg.Workers = n
	return g
}

// WithLogger sets the logger for pass events.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	return g
}

// WithOverrides adds conventions overrides. Can be called multiple times.
func (g *Generator) WithOverrides(values url.Values) *Generator {
	if g.cfg.Overrides == nil {
		g.cfg.Overrides = make(url.Values)
	}
	for k, vs := range values {
		g.cfg.Overrides[k] = append(g.cfg.Overrides[k], vs...)
	}
	return g
}

// WithIndent sets the text written per nesting level.
func (g *Generator) WithIndent(indent string) *Generator {
	g.cfg.Indent = indent
	return g
}

// FailFast aborts the pass on the first failing class.
func (g *Generator) FailFast() *Generator {
	g.cfg.FailFast = true
	return g
}

// Unit is one rendered output file.
type Unit struct {
	// Element is the namespace-qualified name of the rendered class or enum.
	Element string

	// Path is the slash-separated output path.
	Path string

	// Content is the rendered source.
	Content []byte

	// Lines is the number of rendered lines.
	Lines int
}

// Failure records a class or enum that could not be rendered.
type Failure struct {
	Element string
	Err     error
}

func (f Failure) Error() string { return f.Element + ": " + f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// Result holds the outcome of a render pass.
type Result struct {
	// Units are the rendered files in namespace walk order.
	Units []Unit

	// Failures are the elements that failed, in namespace walk order.
	Failures []Failure
}

// Err joins all failures, or returns nil if there are none.
func (r *Result) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Files returns the units keyed by path.
func (r *Result) Files() map[string][]byte {
	files := make(map[string][]byte, len(r.Units))
	for _, u := range r.Units {
		files[u.Path] = u.Content
	}
	return files
}

// ToDir renders and writes every unit below dir.
// Existing files are replaced.
func (g *Generator) ToDir(ctx context.Context, dir string) (*Result, error) {
	return g.ToSink(ctx, sink.NewDir(dir))
}

// ToSink renders and writes every unit to s. Units of failing elements are
// not written; inspect Result.Err for them.
func (g *Generator) ToSink(ctx context.Context, s sink.Sink) (*Result, error) {
	result, err := g.Render(ctx)
	if err != nil {
		return result, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config().Workers)
	for _, u := range result.Units {
		eg.Go(func() error {
			if err := s.WriteFile(ctx, u.Path, u.Content); err != nil {
				return fmt.Errorf("write %s: %w", u.Path, err)
			}
			return nil
		})
	}
	return result, eg.Wait()
}

func (g *Generator) config() Config {
	return applyConfigDefaults(g.cfg)
}

// item is one class or enum to render.
type item struct {
	name    string // namespace-qualified
	element ir.Element
	class   *ir.Class
	enum    *ir.Enum
	path    string
}

// Render renders every class and enum in memory.
//
// Configuration problems are returned as errors before anything renders.
// With FailFast, the first failure is returned as the error alongside the
// partial result.
func (g *Generator) Render(ctx context.Context) (*Result, error) {
	if g.root == nil {
		return nil, errors.New("no namespace to render")
	}
	cfg := g.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := target.Get(cfg.Target)
	if err != nil {
		return nil, err
	}
	conv, err := conventions.ApplyOverrides(t.Conventions(), cfg.Overrides)
	if err != nil {
		return nil, err
	}
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := conventions.NewEngine(conv, g.root)
	engine.Warm()
	renderer := t.NewRenderer(engine)
	items := collect(g.root, t.FileExtension())

	logger.InfoContext(ctx, "render started",
		slog.String("target", t.Name()),
		slog.Int("elements", len(items)),
		slog.Int("workers", cfg.Workers),
	)
	start := time.Now()

	units := make([]*Unit, len(items))
	failures := make([]error, len(items))
	collisions := pathCollisions(items)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, it := range items {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			var u *Unit
			err := collisions[i]
			if err == nil {
				u, err = renderItem(renderer, t.Header(), cfg.Indent, it)
			}
			if err != nil {
				failures[i] = err
				logger.WarnContext(ctx, "render failed",
					slog.String("element", it.name),
					slog.Any("error", err),
					slog.String("kind", failureKind(err)),
				)
				if cfg.FailFast {
					return Failure{Element: it.name, Err: err}
				}
				return nil
			}
			units[i] = u
			if u != nil {
				logger.DebugContext(ctx, "rendered",
					slog.String("element", u.Element),
					slog.String("path", u.Path),
					slog.Int("lines", u.Lines),
				)
			}
			return nil
		})
	}
	waitErr := eg.Wait()

	result := &Result{}
	for i, it := range items {
		switch {
		case failures[i] != nil:
			result.Failures = append(result.Failures, Failure{Element: it.name, Err: failures[i]})
		case units[i] != nil:
			result.Units = append(result.Units, *units[i])
		}
	}

	logger.InfoContext(ctx, "render finished",
		slog.Int("units", len(result.Units)),
		slog.Int("failures", len(result.Failures)),
		slog.Duration("duration", time.Since(start)),
	)

	if waitErr != nil {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		return result, waitErr
	}
	return result, nil
}

// collect lists classes then enums of every namespace in walk order.
func collect(root *ir.Namespace, ext string) []item {
	var items []item
	root.Walk(func(ns *ir.Namespace) bool {
		dir := strings.Join(ns.Segments(), "/")
		for _, c := range ns.Classes {
			items = append(items, item{name: qualify(ns, c.Name), element: c, class: c, path: unitPath(dir, c.Name, ext)})
		}
		for _, e := range ns.Enums {
			items = append(items, item{name: qualify(ns, e.Name), element: e, enum: e, path: unitPath(dir, e.Name, ext)})
		}
		return true
	})
	return items
}

func qualify(ns *ir.Namespace, name string) string {
	if ns.Name == "" {
		return name
	}
	return ns.Name + "." + name
}

func unitPath(dir, name, ext string) string {
	file := conventions.SnakeCase(name) + ext
	if dir == "" {
		return file
	}
	return dir + "/" + file
}

// pathCollisions reports every item whose path was already taken by an
// earlier item.
func pathCollisions(items []item) map[int]error {
	seen := make(map[string]string, len(items))
	collisions := make(map[int]error)
	for i, it := range items {
		if first, ok := seen[it.path]; ok {
			collisions[i] = ir.NewStructuralError(it.element, "output path "+it.path+" is already used by "+first)
			continue
		}
		seen[it.path] = it.name
	}
	return collisions
}

// renderItem renders one element. It returns a nil unit when the element
// renders nothing.
func renderItem(r target.Renderer, header, indent string, it item) (*Unit, error) {
	buf := codewriter.NewBuffer()
	var err error
	if it.class != nil {
		err = r.RenderClass(buf, it.class)
	} else {
		err = r.RenderEnum(buf, it.enum)
	}
	if err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, nil
	}

	body := buf.Render(indent)
	var sb strings.Builder
	sb.Grow(len(header) + 2 + len(body))
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	return &Unit{
		Element: it.name,
		Path:    it.path,
		Content: []byte(sb.String()),
		Lines:   buf.Len() + 2,
	}, nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ir.ErrStructural):
		return "structural"
	case errors.Is(err, ir.ErrUnsupported):
		return "unsupported"
	default:
		return "internal"
	}
}
