package dart

import (
	"slices"
	"strings"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

const (
	mappingVar        = "mappingValue"
	resultVar         = "result"
	deserializerVar   = "deserializerMap"
	deserializerType  = "Map<String, void Function(ParseNode)>"
	emptyDeserializer = "<String, void Function(ParseNode)>{}"
	mergeDeserializer = "ParseNodeHelper.mergeDeserializersForIntersectionWrapper"
)

// isObjectProperty reports whether p holds a single instance of a class.
func isObjectProperty(p *ir.Property) bool { return p.Type.IsObject() }

// isClassTyped reports whether p refers to a class, collection or not.
func isClassTyped(p *ir.Property) bool { return p.Type.Class() != nil }

// byName orders properties by in-memory name, ordinal.
func byName(a, b *ir.Property) int { return strings.Compare(a.Name, b.Name) }

// forward puts class-typed properties before the others.
func forward(a, b *ir.Property) int {
	if x, y := isClassTyped(a), isClassTyped(b); x != y {
		if x {
			return -1
		}
		return 1
	}
	return byName(a, b)
}

// backward puts scalar properties before class-typed ones.
func backward(a, b *ir.Property) int {
	if x, y := isClassTyped(a), isClassTyped(b); x != y {
		if y {
			return -1
		}
		return 1
	}
	return byName(a, b)
}

func sorted(props []*ir.Property, cmp func(a, b *ir.Property) int) []*ir.Property {
	result := slices.Clone(props)
	slices.SortStableFunc(result, cmp)
	return result
}

func filter(props []*ir.Property, keep func(*ir.Property) bool) []*ir.Property {
	var result []*ir.Property
	for _, p := range props {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}

func notInherited(p *ir.Property) bool { return !p.ExistsInBaseType }

func notObject(p *ir.Property) bool { return !isObjectProperty(p) }

// inheritsModel reports whether serializers chain to a generated base class.
func inheritsModel(c *ir.Class) bool { return c.Inherits() && !c.IsErrorDefinition() }

// elseIf renders the prefix of the i-th branch of an if/else chain.
func elseIf(i int) string {
	if i > 0 {
		return "else if ("
	}
	return "if ("
}

// writeFactoryBody writes the body of the static factory that picks the
// concrete type from a parse node.
func (w *Writer) writeFactoryBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	parseNode := m.ParameterOfKind(ir.ParameterParseNode)
	if parseNode == nil {
		return ir.NewStructuralError(m, "factory method has no parse node parameter")
	}
	node := conventions.FirstLower(parseNode.Name)
	d := c.Discriminator

	switch d.Strategy {
	case ir.StrategyInherited, ir.StrategyUnion:
		if d.PropertyName == "" {
			return ir.NewStructuralError(c, d.Strategy.String()+" discriminator has no property name")
		}
		out.WriteLine("var " + mappingVar + " = " + node + ".getChildNode(" + dartString(d.PropertyName) + ")?.getStringValue();")
	case ir.StrategyIntersection:
		// Intersections select by shape; the value is read only when declared.
		if d.PropertyName != "" {
			out.WriteLine("var " + mappingVar + " = " + node + ".getChildNode(" + dartString(d.PropertyName) + ")?.getStringValue();")
		}
	}

	switch d.Strategy {
	case ir.StrategyInherited:
		return w.writeInheritedFactory(out, m, c)
	case ir.StrategyUnion:
		return w.writeUnionFactory(out, m, c, node)
	case ir.StrategyIntersection:
		return w.writeIntersectionFactory(out, m, c, node)
	default:
		out.WriteLine("return " + conventions.FirstUpper(c.Name) + "();")
		return nil
	}
}

func (w *Writer) writeInheritedFactory(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	out.StartBlock("return switch (" + mappingVar + ") {")
	for _, mapping := range c.Discriminator.Mappings {
		typeName, err := w.typeString(mapping.Type, m)
		if err != nil {
			return err
		}
		out.WriteLine(dartString(mapping.Key) + " => " + typeName + "(),")
	}
	out.WriteLine("_ => " + conventions.FirstUpper(c.Name) + "(),")
	out.CloseBlock("};")
	return nil
}

func (w *Writer) writeUnionFactory(out codewriter.LineWriter, m *ir.Method, c *ir.Class, node string) error {
	out.WriteLine("var " + resultVar + " = " + conventions.FirstUpper(c.Name) + "();")
	for i, p := range sorted(c.PropertiesOfKind(ir.PropertyCustom), forward) {
		var err error
		if isObjectProperty(p) {
			err = w.writeDiscriminatedAssignment(out, m, c, p, i)
		} else {
			err = w.writeProbedAssignment(out, m, p, node, i)
		}
		if err != nil {
			return err
		}
	}
	out.WriteLine("return " + resultVar + ";")
	return nil
}

// writeDiscriminatedAssignment writes the branch that constructs the member
// selected by the discriminator value, compared case-insensitively.
func (w *Writer) writeDiscriminatedAssignment(out codewriter.LineWriter, m *ir.Method, c *ir.Class, p *ir.Property, i int) error {
	mapping, ok := c.Discriminator.MappingFor(p.Type.Definition.ElementName())
	if !ok {
		return ir.NewStructuralError(p, "no discriminator value maps to "+p.Type.Definition.ElementName())
	}
	typeName, err := w.typeString(p.Type, m)
	if err != nil {
		return err
	}
	out.StartBlock(elseIf(i) + mappingVar + "?.toUpperCase() == " + dartString(strings.ToUpper(mapping.Key)) + ") {")
	out.WriteLine(resultVar + "." + w.memberName(p) + " = " + typeName + "();")
	out.CloseBlock("}")
	return nil
}

// writeProbedAssignment writes the branch that assigns a value when the
// parse node holds one of the property's exact shape, as an if-case pattern.
func (w *Writer) writeProbedAssignment(out codewriter.LineWriter, m *ir.Method, p *ir.Property, node string, i int) error {
	typeName, err := w.engine.TypeStringWith(p.Type, m, conventions.TypeOptions{OmitNullable: true})
	if err != nil {
		return err
	}
	read, err := ReadOp(w.engine, p.Type, m)
	if err != nil {
		return err
	}
	name := w.memberName(p)
	value := name + "Value"
	out.StartBlock(elseIf(i) + node + "." + read + " case " + typeName + " " + value + ") {")
	out.WriteLine(resultVar + "." + name + " = " + value + ";")
	out.CloseBlock("}")
	return nil
}

func (w *Writer) writeIntersectionFactory(out codewriter.LineWriter, m *ir.Method, c *ir.Class, node string) error {
	out.WriteLine("var " + resultVar + " = " + conventions.FirstUpper(c.Name) + "();")
	custom := c.PropertiesOfKind(ir.PropertyCustom)
	scalars := sorted(filter(custom, notObject), backward)
	for i, p := range scalars {
		if err := w.writeProbedAssignment(out, m, p, node, i); err != nil {
			return err
		}
	}
	objects := sorted(filter(custom, isObjectProperty), byName)
	if len(objects) > 0 {
		if len(scalars) > 0 {
			out.StartBlock("else {")
		}
		for _, p := range objects {
			typeName, err := w.typeString(p.Type, m)
			if err != nil {
				return err
			}
			out.WriteLine(resultVar + "." + w.memberName(p) + " = " + typeName + "();")
		}
		if len(scalars) > 0 {
			out.CloseBlock("}")
		}
	}
	out.WriteLine("return " + resultVar + ";")
	return nil
}

// writeSerializerBody writes the body of the serialize method.
func (w *Writer) writeSerializerBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	writer := "writer"
	if p := m.ParameterOfKind(ir.ParameterSerializer); p != nil {
		writer = conventions.FirstLower(p.Name)
	}

	var err error
	switch c.Discriminator.Strategy {
	case ir.StrategyUnion:
		err = w.writeUnionSerializer(out, m, c, writer)
	case ir.StrategyIntersection:
		err = w.writeIntersectionSerializer(out, m, c, writer)
	default:
		err = w.writeInheritedSerializer(out, m, c, writer)
	}
	if err != nil {
		return err
	}

	if p := c.PropertyOfKind(ir.PropertyAdditionalData); p != nil {
		out.WriteLine(writer + ".writeAdditionalData(" + w.memberName(p) + ");")
	}
	return nil
}

func (w *Writer) writeInheritedSerializer(out codewriter.LineWriter, m *ir.Method, c *ir.Class, writer string) error {
	if inheritsModel(c) {
		out.WriteLine("super." + conventions.FirstLower(m.Name) + "(" + writer + ");")
	}
	props := filter(c.PropertiesOfKind(ir.PropertyCustom), func(p *ir.Property) bool {
		return !p.ExistsInBaseType && !p.ReadOnly
	})
	for _, p := range sorted(props, byName) {
		op, err := WriteOp(w.engine, p.Type, m)
		if err != nil {
			return err
		}
		out.WriteLine(writer + "." + op + "(" + dartString(p.WireName()) + ", " + w.memberName(p) + ");")
	}
	return nil
}

// writeSetChain writes one "if set, write unkeyed" branch per property.
func (w *Writer) writeSetChain(out codewriter.LineWriter, m *ir.Method, props []*ir.Property, writer string) error {
	for i, p := range props {
		op, err := WriteOp(w.engine, p.Type, m)
		if err != nil {
			return err
		}
		name := w.memberName(p)
		out.StartBlock(elseIf(i) + name + " != null) {")
		out.WriteLine(writer + "." + op + "(null, " + name + ");")
		out.CloseBlock("}")
	}
	return nil
}

func (w *Writer) writeUnionSerializer(out codewriter.LineWriter, m *ir.Method, c *ir.Class, writer string) error {
	props := filter(c.PropertiesOfKind(ir.PropertyCustom), notInherited)
	return w.writeSetChain(out, m, sorted(props, forward), writer)
}

func (w *Writer) writeIntersectionSerializer(out codewriter.LineWriter, m *ir.Method, c *ir.Class, writer string) error {
	custom := c.PropertiesOfKind(ir.PropertyCustom)
	scalars := sorted(filter(filter(custom, notInherited), notObject), backward)
	if err := w.writeSetChain(out, m, scalars, writer); err != nil {
		return err
	}
	objects := sorted(filter(custom, isObjectProperty), byName)
	if len(objects) == 0 {
		return nil
	}
	op, err := WriteOp(w.engine, objects[0].Type, m)
	if err != nil {
		return err
	}
	args := "null, " + w.memberName(objects[0])
	if len(objects) > 1 {
		rest := make([]string, 0, len(objects)-1)
		for _, p := range objects[1:] {
			rest = append(rest, w.memberName(p))
		}
		args += ", [" + strings.Join(rest, ", ") + "]"
	}
	if len(scalars) > 0 {
		out.StartBlock("else {")
	}
	out.WriteLine(writer + "." + op + "(" + args + ");")
	if len(scalars) > 0 {
		out.CloseBlock("}")
	}
	return nil
}

// writeDeserializerBody writes the body of the method returning the
// wire name to field reader mapping.
func (w *Writer) writeDeserializerBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	switch c.Discriminator.Strategy {
	case ir.StrategyUnion:
		return w.writeUnionDeserializer(out, m, c)
	case ir.StrategyIntersection:
		return w.writeIntersectionDeserializer(out, c)
	default:
		return w.writeInheritedDeserializer(out, m, c)
	}
}

func (w *Writer) writeInheritedDeserializer(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	seed := "{};"
	if inheritsModel(c) {
		seed = "super." + conventions.FirstLower(m.Name) + "();"
	}
	out.WriteLine(deserializerType + " " + deserializerVar + " = " + seed)
	for _, p := range sorted(filter(c.PropertiesOfKind(ir.PropertyCustom), notInherited), byName) {
		read, err := ReadOp(w.engine, p.Type, m)
		if err != nil {
			return err
		}
		out.WriteLine(deserializerVar + "[" + dartString(p.WireName()) + "] = (node) => " + w.memberName(p) + " = node." + read + ";")
	}
	out.WriteLine("return " + deserializerVar + ";")
	return nil
}

func (w *Writer) writeUnionDeserializer(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	props := filter(filter(c.PropertiesOfKind(ir.PropertyCustom), notInherited), isObjectProperty)
	for i, p := range sorted(props, forward) {
		name := w.memberName(p)
		out.StartBlock(elseIf(i) + name + " != null) {")
		out.WriteLine("return " + name + "!." + conventions.FirstLower(m.Name) + "();")
		out.CloseBlock("}")
	}
	out.WriteLine("return " + emptyDeserializer + ";")
	return nil
}

func (w *Writer) writeIntersectionDeserializer(out codewriter.LineWriter, c *ir.Class) error {
	objects := sorted(filter(c.PropertiesOfKind(ir.PropertyCustom), isObjectProperty), byName)
	if len(objects) > 0 {
		names := make([]string, len(objects))
		conditions := make([]string, len(objects))
		for i, p := range objects {
			names[i] = w.memberName(p)
			conditions[i] = names[i] + " != null"
		}
		out.StartBlock("if (" + strings.Join(conditions, " || ") + ") {")
		out.WriteLine("return " + mergeDeserializer + "(" + strings.Join(names, ", ") + ");")
		out.CloseBlock("}")
	}
	out.WriteLine("return " + emptyDeserializer + ";")
	return nil
}
