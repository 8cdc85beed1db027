package dart

import (
	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// writeShortDescription writes the one-line description of doc, if any.
func (w *Writer) writeShortDescription(out codewriter.LineWriter, doc ir.Documentation, target ir.Element) error {
	if !doc.HasDescription() {
		return nil
	}
	text, err := w.engine.Description(doc, target)
	if err != nil {
		return err
	}
	out.WriteLine(w.conv.DocCommentPrefix + text)
	return nil
}

// writeLongDescription writes the description, extra remarks, deprecation
// notes and external link of an element.
func (w *Writer) writeLongDescription(out codewriter.LineWriter, doc ir.Documentation, dep *ir.Deprecation, target ir.Element, remarks ...string) error {
	var extra []string
	for _, r := range remarks {
		if r != "" {
			extra = append(extra, r)
		}
	}
	if !doc.HasDescription() && !doc.HasLink() && len(extra) == 0 {
		return nil
	}
	prefix := w.conv.DocCommentPrefix
	if doc.HasDescription() {
		text, err := w.engine.Description(doc, target)
		if err != nil {
			return err
		}
		out.WriteLine(prefix + text)
	}
	for _, r := range extra {
		out.WriteLine(prefix + r)
	}
	if dep != nil {
		text, err := w.engine.DeprecationText(dep, target)
		if err != nil {
			return err
		}
		out.WriteLine(prefix + "@deprecated")
		out.WriteLine(prefix + text)
	}
	if doc.HasLink() {
		label := doc.Label
		if label == "" {
			label = doc.Link
		}
		out.WriteLine(prefix + `@see <a href="` + doc.Link + `">` + label + `</a>`)
	}
	return nil
}

// writeDeprecation writes the @Deprecated annotation of dep, if any.
func (w *Writer) writeDeprecation(out codewriter.LineWriter, dep *ir.Deprecation, target ir.Element) error {
	annotation, err := deprecationAnnotation(w.engine, dep, target)
	if err != nil {
		return err
	}
	if annotation != "" {
		out.WriteLine(annotation)
	}
	return nil
}

func deprecationAnnotation(e *conventions.Engine, dep *ir.Deprecation, target ir.Element) (string, error) {
	if dep == nil {
		return "", nil
	}
	text, err := e.DeprecationText(dep, target)
	if err != nil {
		return "", err
	}
	return "@Deprecated(" + dartString(text) + ")", nil
}
