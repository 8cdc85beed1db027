package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/clientgen/ir"
)

const document = `
namespace:
  name: api
  namespaces:
    - name: api.models
      classes:
        - name: Widget
          kind: model
          properties:
            - name: name
              type: {name: string, nullable: true}
        - name: Broken
          kind: model
          methods:
            - name: name
              kind: getter
              returns: {name: string}
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func logger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRun(t *testing.T) {
	var stdout bytes.Buffer
	out := t.TempDir()
	cmd := &Cmd{Input: writeInput(t, document), Out: out, Target: "dart", Stdout: &stdout}

	err := cmd.run(context.Background(), logger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrUnsupported)
	assert.ErrorContains(t, err, "1 elements failed to render")
	assert.Equal(t, "✓ 1 files written to "+out+"\n", stdout.String())

	data, err := os.ReadFile(filepath.Join(out, "api", "models", "widget.dart"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "  String? name;\n")
	assert.NoFileExists(t, filepath.Join(out, "api", "models", "broken.dart"))
}

func TestRun_Overrides(t *testing.T) {
	out := t.TempDir()
	cmd := &Cmd{
		Input:  writeInput(t, "namespace: {name: api, classes: [{name: Widget, properties: [{name: id, type: {name: uuid}}]}]}"),
		Out:    out,
		Target: "dart",
		Set:    []string{"synonym=uuid:String"},
		Stdout: io.Discard,
	}
	require.NoError(t, cmd.run(context.Background(), logger()))

	data, err := os.ReadFile(filepath.Join(out, "api", "widget.dart"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "  String? id;\n")
}

func TestRun_FailFast(t *testing.T) {
	cmd := &Cmd{Input: writeInput(t, document), Out: t.TempDir(), Target: "dart", FailFast: true, Stdout: io.Discard}
	err := cmd.run(context.Background(), logger())
	assert.ErrorIs(t, err, ir.ErrUnsupported)
	assert.NotContains(t, err.Error(), "elements failed")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cmd    Cmd
		errMsg string
	}{
		{"bad document", Cmd{Input: writeInput(t, "namespace: ["), Target: "dart"}, "decode yaml"},
		{"bad override", Cmd{Input: writeInput(t, document), Target: "dart", Set: []string{"novalue"}}, "expected key=value"},
		{"unknown target", Cmd{Input: writeInput(t, document), Target: "cobol"}, "unknown target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.Out = t.TempDir()
			tt.cmd.Stdout = io.Discard
			err := tt.cmd.run(context.Background(), logger())
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
