package dart

import (
	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// WriteEnum renders an enhanced enum carrying the wire value of each member.
// An enum without options renders nothing.
func (w *Writer) WriteEnum(out codewriter.LineWriter, e *ir.Enum) error {
	if len(e.Options) == 0 {
		return nil
	}
	if err := w.writeShortDescription(out, e.Documentation, e); err != nil {
		return err
	}
	if err := w.writeDeprecation(out, e.Deprecation, e); err != nil {
		return err
	}
	name := conventions.FirstUpper(e.Name)
	out.StartBlock("enum " + name + " {")
	members := w.enumMemberNames(e)
	for i, o := range e.Options {
		if err := w.writeShortDescription(out, o.Documentation, e); err != nil {
			return err
		}
		sep := ","
		if i == len(e.Options)-1 {
			sep = ";"
		}
		out.WriteLine(members[i] + "(" + dartString(o.WireName()) + ")" + sep)
	}
	out.WriteLine("const " + name + "(this.value);")
	out.WriteLine("final String value;")
	out.CloseBlock("}")
	return nil
}
