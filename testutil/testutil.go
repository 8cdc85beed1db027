// Package testutil loads txtar test archives that pair an IR document with
// the lines each rendered unit must contain.
//
// An archive looks like:
//
//	Optional comment describing the case.
//	-- input.yaml --
//	namespace:
//	  name: api
//	  ...
//	-- want/api/models/widget.dart --
//	class Widget implements AdditionalDataHolder, Parsable {
//	  String? name;
//
// The input section is named input.yaml or input.json. Every section under
// want/ names a unit path; its non-blank lines must appear in that unit in
// the given order, compared after trimming surrounding space.
package testutil

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/broady/clientgen/ir"
	"github.com/broady/clientgen/irfile"
)

const wantPrefix = "want/"

// Fixture is one parsed test archive.
type Fixture struct {
	Name    string
	Comment string
	Input   []byte
	Format  irfile.Format
	Want    map[string][]string // unit path -> expected lines
}

// LoadFixture parses the archive at file.
func LoadFixture(t testing.TB, file string) *Fixture {
	t.Helper()
	a, err := txtar.ParseFile(file)
	require.NoError(t, err, "parse %s", file)
	return newFixture(t, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)), a)
}

// ParseFixture parses an in-memory archive.
func ParseFixture(t testing.TB, name string, data []byte) *Fixture {
	t.Helper()
	return newFixture(t, name, txtar.Parse(data))
}

// Fixtures loads every archive matching pattern, sorted by file name.
func Fixtures(t testing.TB, pattern string) []*Fixture {
	t.Helper()
	files, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixtures match %s", pattern)
	sort.Strings(files)

	fixtures := make([]*Fixture, 0, len(files))
	for _, f := range files {
		fixtures = append(fixtures, LoadFixture(t, f))
	}
	return fixtures
}

func newFixture(t testing.TB, name string, a *txtar.Archive) *Fixture {
	t.Helper()
	f := &Fixture{
		Name:    name,
		Comment: strings.TrimSpace(string(a.Comment)),
		Want:    make(map[string][]string),
	}
	for _, file := range a.Files {
		switch {
		case file.Name == "input.yaml" || file.Name == "input.yml":
			f.Input, f.Format = file.Data, irfile.FormatYAML
		case file.Name == "input.json":
			f.Input, f.Format = file.Data, irfile.FormatJSON
		case strings.HasPrefix(file.Name, wantPrefix):
			unit := path.Clean(strings.TrimPrefix(file.Name, wantPrefix))
			f.Want[unit] = expectedLines(file.Data)
		default:
			t.Fatalf("fixture %s: unexpected section %q", name, file.Name)
		}
	}
	require.NotNil(t, f.Input, "fixture %s has no input section", name)
	return f
}

func expectedLines(data []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Root builds the fixture's IR tree.
func (f *Fixture) Root(t testing.TB) *ir.Namespace {
	t.Helper()
	root, err := irfile.Parse(f.Input, f.Format)
	require.NoError(t, err, "fixture %s", f.Name)
	return root
}

// Check asserts that every expected unit is present in got and contains its
// expected lines in order.
func (f *Fixture) Check(t testing.TB, got map[string][]byte) {
	t.Helper()
	units := make([]string, 0, len(f.Want))
	for unit := range f.Want {
		units = append(units, unit)
	}
	sort.Strings(units)
	for _, unit := range units {
		content, ok := got[unit]
		if !assert.True(t, ok, "fixture %s: missing unit %s", f.Name, unit) {
			continue
		}
		AssertLinesInOrder(t, string(content), f.Want[unit]...)
	}
}

// AssertLinesInOrder asserts that content contains each of lines, trimmed,
// as whole lines and in the given order.
func AssertLinesInOrder(t testing.TB, content string, lines ...string) bool {
	t.Helper()
	have := strings.Split(content, "\n")
	i := 0
	for _, want := range lines {
		want = strings.TrimSpace(want)
		found := false
		for ; i < len(have); i++ {
			if strings.TrimSpace(have[i]) == want {
				found = true
				i++
				break
			}
		}
		if !found {
			return assert.Fail(t, "line not found in order", "want line %q\nin:\n%s", want, content)
		}
	}
	return true
}
