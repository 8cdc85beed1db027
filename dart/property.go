package dart

import (
	"strings"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

const additionalDataHolder = "AdditionalDataHolder"

// WriteProperty renders a property declaration, or the getter that stands in
// for it.
func (w *Writer) WriteProperty(out codewriter.LineWriter, p *ir.Property) error {
	c := p.Parent
	if c == nil {
		return ir.NewStructuralError(p, "property is not declared in a class")
	}
	if p.Type == nil {
		return ir.NewStructuralError(p, "property has no type")
	}
	if p.ExistsInExternalBaseType {
		return nil
	}
	if c.IsErrorDefinition() && errorClassProperties[strings.ToLower(p.Name)] {
		return nil
	}

	t := p.Type
	switch p.Kind {
	case ir.PropertyCustom, ir.PropertyQueryParameter, ir.PropertyErrorMessageOverride:
		t = t.AsNullable()
	}
	typeName, err := w.typeString(t, p)
	if err != nil {
		return err
	}
	name := w.memberName(p)

	if err := w.writeLongDescription(out, p.Documentation, p.Deprecation, p); err != nil {
		return err
	}
	if err := w.writeDeprecation(out, p.Deprecation, p); err != nil {
		return err
	}

	backingStore := c.PropertyOfKind(ir.PropertyBackingStore)
	switch {
	case p.Kind == ir.PropertyRequestBuilder:
		return w.writeRequestBuilderProperty(out, p, c, typeName, name)
	case backingStore != nil && (p.Kind == ir.PropertyCustom || p.Kind == ir.PropertyAdditionalData):
		w.writeBackedProperty(out, p, c, backingStore, typeName, name)
		return nil
	}

	if w.overrides(p, c) {
		out.WriteLine("@override")
	}
	if p.Kind == ir.PropertyQueryParameter && p.IsNameEscaped() {
		out.WriteLine(w.conv.DocCommentPrefix + "@QueryParameter('" + p.SerializationName + "')")
	}
	switch p.Kind {
	case ir.PropertyQueryParameters:
		out.WriteLine(typeName + " " + name + " = " + w.engine.TrimNullable(typeName) + "();")
	case ir.PropertyBackingStore:
		out.WriteLine(typeName + " " + name + " = BackingStoreFactorySingleton.instance.createBackingStore();")
	default:
		out.WriteLine(typeName + " " + name + ";")
	}
	return nil
}

// overrides reports whether p redefines a member of a runtime supertype.
func (w *Writer) overrides(p *ir.Property, c *ir.Class) bool {
	switch p.Kind {
	case ir.PropertyErrorMessageOverride:
		return c.IsErrorDefinition()
	case ir.PropertyAdditionalData:
		return c.ImplementsName(additionalDataHolder)
	}
	return false
}

func (w *Writer) writeRequestBuilderProperty(out codewriter.LineWriter, p *ir.Property, c *ir.Class, typeName, name string) error {
	returnType := w.engine.TrimNullable(typeName)
	out.StartBlock(returnType + " get " + name + " {")
	if err := w.writeRequestBuilderBody(out, c, p, returnType, "", nil); err != nil {
		return err
	}
	out.CloseBlock("}")
	return nil
}

// writeBackedProperty writes a getter and setter pair reading and writing the
// backing store under the property's wire name.
func (w *Writer) writeBackedProperty(out codewriter.LineWriter, p *ir.Property, c *ir.Class, store *ir.Property, typeName, name string) {
	key := dartString(p.WireName())
	backingStore := w.memberName(store)
	override := w.overrides(p, c)

	if override {
		out.WriteLine("@override")
	}
	out.StartBlock(typeName + " get " + name + " {")
	out.WriteLine("return " + backingStore + ".get<" + w.engine.TrimNullable(typeName) + ">(" + key + ");")
	out.CloseBlock("}")
	out.WriteLine("")
	if override {
		out.WriteLine("@override")
	}
	value := conventions.FirstLower(p.Name) + "Value"
	out.StartBlock("set " + name + "(" + typeName + " " + value + ") {")
	out.WriteLine(backingStore + ".set(" + key + ", " + value + ");")
	out.CloseBlock("}")
}
