package dart

import (
	"cmp"
	"slices"
	"strings"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// WriteClass renders a class with its imports and members. Members are
// separated by blank lines; those that render nothing are dropped.
func (w *Writer) WriteClass(out codewriter.LineWriter, c *ir.Class) error {
	if c.BaseType.IsComposed() {
		return ir.NewStructuralError(c, "composed base types are not supported")
	}
	w.writeImports(out, c)

	if err := w.writeLongDescription(out, c.Documentation, c.Deprecation, c); err != nil {
		return err
	}
	if err := w.writeDeprecation(out, c.Deprecation, c); err != nil {
		return err
	}
	declaration := "class " + conventions.FirstUpper(c.Name)
	if c.BaseType != nil {
		base, err := w.typeString(c.BaseType, c)
		if err != nil {
			return err
		}
		declaration += " extends " + w.engine.TrimNullable(base)
	}
	if len(c.Implements) > 0 {
		declaration += " implements " + strings.Join(c.Implements, ", ")
	}
	out.StartBlock(declaration + " {")

	var members []func(codewriter.LineWriter) error
	for _, p := range sorted(c.Properties, byName) {
		members = append(members, func(b codewriter.LineWriter) error { return w.WriteProperty(b, p) })
	}
	if c.Indexer != nil {
		members = append(members, func(b codewriter.LineWriter) error { return w.WriteIndexer(b, c.Indexer) })
	}
	for _, m := range orderedMethods(c.Methods) {
		members = append(members, func(b codewriter.LineWriter) error { return w.WriteMethod(b, m) })
	}

	first := true
	buf := codewriter.NewBuffer()
	for _, write := range members {
		buf.Reset()
		if err := write(buf); err != nil {
			return err
		}
		if buf.Len() == 0 {
			continue
		}
		if !first {
			out.WriteLine("")
		}
		first = false
		buf.WriteTo(out)
	}
	out.CloseBlock("}")
	return nil
}

// orderedMethods puts constructors first, then orders by name.
func orderedMethods(methods []*ir.Method) []*ir.Method {
	result := slices.Clone(methods)
	slices.SortStableFunc(result, func(a, b *ir.Method) int {
		ac, bc := a.Kind.IsConstructor(), b.Kind.IsConstructor()
		if ac != bc {
			if ac {
				return -1
			}
			return 1
		}
		if ac {
			if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// writeImports writes one import directive per distinct using, sorted.
func (w *Writer) writeImports(out codewriter.LineWriter, c *ir.Class) {
	var imports []string
	for _, u := range c.Usings {
		if u.Name == "" {
			continue
		}
		line := "import '" + u.Name + "'"
		if u.Alias != "" {
			line += " as " + u.Alias
		}
		imports = append(imports, line+";")
	}
	if len(imports) == 0 {
		return
	}
	slices.Sort(imports)
	for _, line := range slices.Compact(imports) {
		out.WriteLine(line)
	}
	out.WriteLine("")
}
