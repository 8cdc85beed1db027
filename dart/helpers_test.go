package dart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

func newWriter(root *ir.Namespace) *Writer {
	return NewWriter(conventions.NewEngine(Conventions(), root))
}

// lines joins expected output lines the way Buffer.Render does.
func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func renderMethod(t *testing.T, root *ir.Namespace, m *ir.Method) string {
	t.Helper()
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteMethod(buf, m))
	return buf.Render("  ")
}

func renderClass(t *testing.T, root *ir.Namespace, c *ir.Class) string {
	t.Helper()
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteClass(buf, c))
	return buf.Render("  ")
}

func methodOf(t *testing.T, c *ir.Class, kind ir.MethodKind) *ir.Method {
	t.Helper()
	methods := c.MethodsOfKind(kind)
	require.NotEmpty(t, methods, "%s has no %s method", c.Name, kind)
	return methods[0]
}
