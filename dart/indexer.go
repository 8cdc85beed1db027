package dart

import (
	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

const urlTemplateParamsVar = "urlTplParams"

// WriteIndexer renders an index operator returning the request builder for
// one item of a collection.
func (w *Writer) WriteIndexer(out codewriter.LineWriter, ix *ir.Indexer) error {
	c := ix.Parent
	if c == nil {
		return ir.NewStructuralError(ix, "indexer is not declared in a class")
	}
	if ix.ReturnType == nil {
		return ir.NewStructuralError(ix, "indexer has no return type")
	}
	if ix.IndexParameter == nil || ix.IndexParameter.Type == nil {
		return ir.NewStructuralError(ix, "indexer has no index parameter")
	}
	pathParameters := c.PropertyOfKind(ir.PropertyPathParameters)
	if pathParameters == nil {
		return ir.NewStructuralError(ix, "class "+c.Name+" has no path parameters property")
	}
	returnType, err := w.typeString(ix.ReturnType, ix)
	if err != nil {
		return err
	}
	returnType = w.engine.TrimNullable(returnType)
	param := ix.IndexParameter
	paramType, err := w.typeString(param.Type, ix)
	if err != nil {
		return err
	}
	paramName := conventions.FirstLower(param.Name)

	if err := w.writeLongDescription(out, ix.Documentation, ix.Deprecation, ix); err != nil {
		return err
	}
	if err := w.writeDeprecation(out, ix.Deprecation, ix); err != nil {
		return err
	}
	out.StartBlock(returnType + " operator [](" + paramType + " " + paramName + ") {")
	out.WriteLine("var " + urlTemplateParamsVar + " = Map.of(" + w.memberName(pathParameters) + ");")
	w.writePathParameterAssignments(out, urlTemplateParamsVar, []*ir.Parameter{param})
	if err := w.writeRequestBuilderBody(out, c, ix, returnType, urlTemplateParamsVar, nil); err != nil {
		return err
	}
	out.CloseBlock("}")
	return nil
}
