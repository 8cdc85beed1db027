package dart

import (
	"cmp"
	"slices"
	"strings"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// unsupportedMethods are method kinds Dart expresses some other way.
var unsupportedMethods = map[ir.MethodKind]string{
	ir.MethodGetter:                              "getters and setters are generated on properties",
	ir.MethodSetter:                              "getters and setters are generated on properties",
	ir.MethodRequestBuilderBackwardCompatibility: "request builders are implemented by properties",
	ir.MethodErrorMessageOverride:                "the error message is implemented by a property",
	ir.MethodCommandBuilder:                      "command builders are only generated for the shell",
	ir.MethodComposedTypeMarker:                  "composed type interfaces are implemented explicitly",
}

// WriteMethod renders a method.
func (w *Writer) WriteMethod(out codewriter.LineWriter, m *ir.Method) error {
	c := m.Parent
	if c == nil {
		return ir.NewStructuralError(m, "method is not declared in a class")
	}
	if m.ReturnType == nil {
		return ir.NewStructuralError(m, "method has no return type")
	}
	if reason, ok := unsupportedMethods[m.Kind]; ok {
		return ir.NewUnsupportedError(m, m.Kind, TargetName, reason)
	}

	if err := w.writeMethodDocumentation(out, m); err != nil {
		return err
	}

	inherits := inheritsModel(c)
	if m.Kind.IsConstructor() && !inherits && c.PropertyOfKind(ir.PropertyAdditionalData) != nil {
		return w.writeInitializerListConstructor(out, m, c)
	}

	prototype, err := w.prototype(m, c, inherits)
	if err != nil {
		return err
	}
	if m.Kind == ir.MethodSerializer || m.Kind == ir.MethodDeserializer {
		out.WriteLine("@override")
	}
	out.StartBlock(prototype + " {")
	w.writeParameterGuards(out, m)
	if err := w.writeMethodBody(out, m, c); err != nil {
		return err
	}
	out.CloseBlock("}")
	return nil
}

// writeMethodBody dispatches on every method kind.
func (w *Writer) writeMethodBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	switch m.Kind {
	case ir.MethodCustom:
		out.WriteLine("return null;")
		return nil
	case ir.MethodConstructor, ir.MethodRawURLConstructor:
		return w.writeConstructorBody(out, m, c)
	case ir.MethodClientConstructor:
		if err := w.writeConstructorBody(out, m, c); err != nil {
			return err
		}
		w.writeClientConstructorBody(out, m, c)
		return nil
	case ir.MethodSerializer:
		return w.writeSerializerBody(out, m, c)
	case ir.MethodDeserializer:
		return w.writeDeserializerBody(out, m, c)
	case ir.MethodRequestGenerator:
		return w.writeRequestGeneratorBody(out, m, c)
	case ir.MethodRequestExecutor:
		return w.writeRequestExecutorBody(out, m, c)
	case ir.MethodFactory:
		return w.writeFactoryBody(out, m, c)
	case ir.MethodRawURLBuilder:
		return w.writeRawURLBuilderBody(out, m, c)
	case ir.MethodRequestBuilderWithParameters:
		return w.writeRequestBuilderWithParametersBody(out, m, c)
	case ir.MethodGetter, ir.MethodSetter, ir.MethodRequestBuilderBackwardCompatibility,
		ir.MethodErrorMessageOverride, ir.MethodCommandBuilder, ir.MethodComposedTypeMarker:
		return ir.NewUnsupportedError(m, m.Kind, TargetName, unsupportedMethods[m.Kind])
	default:
		return ir.NewStructuralError(m, "unknown method kind "+m.Kind.String())
	}
}

func (w *Writer) writeMethodDocumentation(out codewriter.LineWriter, m *ir.Method) error {
	var remarks []string
	params := slices.Clone(m.Parameters)
	slices.SortStableFunc(params, func(a, b *ir.Parameter) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	for _, p := range params {
		if !p.Documentation.HasDescription() {
			continue
		}
		text, err := w.engine.Description(p.Documentation, m)
		if err != nil {
			return err
		}
		remarks = append(remarks, "["+conventions.FirstLower(p.Name)+"] "+text)
	}
	if err := w.writeLongDescription(out, m.Documentation, m.Deprecation, m, remarks...); err != nil {
		return err
	}
	return w.writeDeprecation(out, m.Deprecation, m)
}

// parameterOrder is the position hint of each parameter kind.
func parameterOrder(k ir.ParameterKind) int {
	switch k {
	case ir.ParameterPathParameters:
		return 1
	case ir.ParameterRawURL:
		return 2
	case ir.ParameterRequestAdapter:
		return 3
	case ir.ParameterPath:
		return 4
	case ir.ParameterRequestConfiguration:
		return 5
	case ir.ParameterRequestBody:
		return 6
	case ir.ParameterSerializer:
		return 7
	case ir.ParameterBackingStore:
		return 8
	case ir.ParameterSetterValue:
		return 9
	case ir.ParameterParseNode:
		return 10
	case ir.ParameterCustom:
		return 11
	case ir.ParameterRequestBodyContentType:
		return 12
	default:
		return 13
	}
}

// orderedParameters sorts required parameters first, then by kind, then name.
func orderedParameters(params []*ir.Parameter) []*ir.Parameter {
	result := slices.Clone(params)
	slices.SortStableFunc(result, func(a, b *ir.Parameter) int {
		if a.Optional != b.Optional {
			if b.Optional {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(parameterOrder(a.Kind), parameterOrder(b.Kind)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// prototype renders the declaration line of m, without the opening brace.
func (w *Writer) prototype(m *ir.Method, c *ir.Class, inherits bool) (string, error) {
	returnType, err := w.returnType(m)
	if err != nil {
		return "", err
	}
	params, err := w.parameterList(m)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if access := w.conv.AccessModifier(m.Access); access != "" {
		b.WriteString(access + " ")
	}
	if m.IsStatic {
		b.WriteString("static ")
	}
	if returnType != "" {
		b.WriteString(returnType + " ")
	}
	b.WriteString(w.methodName(m, c))
	b.WriteString("(" + params + ")")
	if m.Kind.IsConstructor() && inherits {
		b.WriteString(w.superCall(m, c))
	}
	if m.IsAsync {
		b.WriteString(" async")
	}
	return b.String(), nil
}

// returnType renders the declared result type; constructors have none.
func (w *Writer) returnType(m *ir.Method) (string, error) {
	switch {
	case m.Kind.IsConstructor():
		return "", nil
	case m.Kind == ir.MethodDeserializer:
		return deserializerType, nil
	}
	returnType, err := w.typeString(m.ReturnType, m)
	if err != nil {
		return "", err
	}
	if m.Kind != ir.MethodRequestExecutor || !m.IsAsync {
		return returnType, nil
	}
	if w.engine.IsVoid(returnType) {
		return "Future<" + w.conv.VoidTypeName + ">", nil
	}
	if m.ReturnType.IsCollection() {
		elem, err := w.engine.TypeStringWith(m.ReturnType, m, conventions.TypeOptions{OmitCollection: true})
		if err != nil {
			return "", err
		}
		return "Future<" + w.conv.ArrayWrapper + "<" + w.engine.TrimNullable(elem) + ">" + w.conv.NullableMarker + ">", nil
	}
	return "Future<" + w.engine.TrimNullable(returnType) + w.conv.NullableMarker + ">", nil
}

// parameterList renders the parameters of m; optional ones are grouped in
// brackets as optional positional parameters.
func (w *Writer) parameterList(m *ir.Method) (string, error) {
	var required, optional []string
	for _, p := range orderedParameters(m.Parameters) {
		sig, err := w.conv.ParameterSignature(w.engine, p, m)
		if err != nil {
			return "", err
		}
		if p.Optional {
			optional = append(optional, sig)
		} else {
			required = append(required, sig)
		}
	}
	list := strings.Join(required, ", ")
	if len(optional) > 0 {
		if list != "" {
			list += ", "
		}
		list += "[" + strings.Join(optional, ", ") + "]"
	}
	return list, nil
}

// superCall renders the super constructor invocation of an inheriting class.
func (w *Writer) superCall(m *ir.Method, c *ir.Class) string {
	urlTemplate := c.PropertyOfKind(ir.PropertyURLTemplate)
	if c.Kind != ir.ClassRequestBuilder || urlTemplate == nil || urlTemplate.DefaultValue == "" {
		return " : super()"
	}
	requestAdapter := m.ParameterOfKind(ir.ParameterRequestAdapter)
	if requestAdapter == nil {
		return " : super()"
	}
	third := ""
	if p := m.ParameterOfKind(ir.ParameterPathParameters); p != nil {
		third = ", " + conventions.FirstLower(p.Name)
	} else if p := m.ParameterOfKind(ir.ParameterRawURL); p != nil {
		third = ", {RequestInformation.rawUrlKey : " + conventions.FirstLower(p.Name) + "}"
	} else if p := c.PropertyOfKind(ir.PropertyPathParameters); p != nil && p.DefaultValue != "" {
		third = ", " + p.DefaultValue
	}
	return " : super(" + conventions.FirstLower(requestAdapter.Name) + ", " + urlTemplate.DefaultValue + third + ")"
}

// writeParameterGuards rejects empty required string arguments.
func (w *Writer) writeParameterGuards(out codewriter.LineWriter, m *ir.Method) {
	params := slices.Clone(m.Parameters)
	slices.SortStableFunc(params, func(a, b *ir.Parameter) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	for _, p := range params {
		if p.Optional || p.Type == nil || p.Type.IsCollection() || !strings.EqualFold(p.Type.Name, "string") {
			continue
		}
		switch p.Kind {
		case ir.ParameterRequestAdapter, ir.ParameterPathParameters, ir.ParameterRawURL:
			continue
		}
		name := conventions.FirstLower(p.Name)
		out.WriteLine("if (" + name + ".isEmpty) throw ArgumentError.value(" + name + ", " + dartString(name) + ", \"must not be empty\");")
	}
}

// constructorAssignments returns "name = value" for every property default
// a constructor applies, ordered by kind descending then name.
func (w *Writer) constructorAssignments(m *ir.Method, c *ir.Class) ([]string, error) {
	props := filter(c.Properties, func(p *ir.Property) bool {
		return p.DefaultValue != "" && p.Kind != ir.PropertyURLTemplate && p.Kind != ir.PropertyPathParameters
	})
	slices.SortStableFunc(props, func(a, b *ir.Property) int {
		if c := cmp.Compare(b.Kind, a.Kind); c != 0 {
			return c
		}
		return byName(a, b)
	})
	var result []string
	for _, p := range props {
		value := p.DefaultValue
		if e := p.Type.Enum(); e != nil {
			typeName, err := w.typeString(p.Type, m)
			if err != nil {
				return nil, err
			}
			value = w.engine.TrimNullable(typeName) + "." + w.enumMemberFor(e, strings.Trim(value, `"'`))
		}
		result = append(result, w.memberName(p)+" = "+value)
	}
	return result, nil
}

func (w *Writer) writeConstructorBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	assignments, err := w.constructorAssignments(m, c)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		out.WriteLine(a + ";")
	}

	pathParameters := c.PropertyOfKind(ir.PropertyPathParameters)
	if c.Kind != ir.ClassRequestBuilder || pathParameters == nil || m.Kind != ir.MethodConstructor ||
		m.ParameterOfKind(ir.ParameterPathParameters) == nil {
		return nil
	}
	w.writePathParameterAssignments(out, w.memberName(pathParameters), m.ParametersOfKind(ir.ParameterPath))
	return nil
}

// writePathParameterAssignments stores each parameter into the map named
// target, skipping null and empty nullable values.
func (w *Writer) writePathParameterAssignments(out codewriter.LineWriter, target string, params []*ir.Parameter) {
	for _, p := range params {
		name := conventions.FirstLower(p.Name)
		guard := ""
		if p.Type != nil && !p.Type.IsCollection() && p.Type.Nullable {
			if strings.EqualFold(p.Type.Name, "string") {
				guard = "if (" + name + " != null && " + name + ".isNotEmpty) "
			} else {
				guard = "if (" + name + " != null) "
			}
		}
		out.WriteLine(guard + target + "[" + dartString(p.WireName()) + "] = " + name + ";")
	}
}

// writeInitializerListConstructor renders a model constructor whose defaults
// are applied in an initializer list.
func (w *Writer) writeInitializerListConstructor(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	prototype, err := w.prototype(m, c, false)
	if err != nil {
		return err
	}
	assignments, err := w.constructorAssignments(m, c)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		out.WriteLine(prototype + ";")
		return nil
	}
	out.WriteLine(prototype + " :")
	out.IncreaseIndent()
	for i, a := range assignments {
		if i == len(assignments)-1 {
			out.WriteLine(a + ";")
		} else {
			out.WriteLine(a + ",")
		}
	}
	out.DecreaseIndent()
	return nil
}

// writeClientConstructorBody registers serialization factories and applies
// the base URL of the API client.
func (w *Writer) writeClientConstructorBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) {
	requestAdapter := c.PropertyOfKind(ir.PropertyRequestAdapter)
	if requestAdapter == nil {
		return
	}
	adapter := w.memberName(requestAdapter)
	for _, s := range sortedCopy(m.SerializerModules) {
		out.WriteLine("ApiClientBuilder.registerDefaultSerializer(() => " + s + "());")
	}
	for _, s := range sortedCopy(m.DeserializerModules) {
		out.WriteLine("ApiClientBuilder.registerDefaultDeserializer(() => " + s + "());")
	}
	if m.BaseURL != "" {
		out.StartBlock("if (" + adapter + ".baseUrl == null || " + adapter + ".baseUrl!.isEmpty) {")
		out.WriteLine(adapter + ".baseUrl = " + dartString(m.BaseURL) + ";")
		out.CloseBlock("}")
		if p := c.PropertyOfKind(ir.PropertyPathParameters); p != nil {
			out.WriteLine(w.memberName(p) + `["baseurl"] = ` + adapter + ".baseUrl;")
		}
	}
	if p := m.ParameterOfKind(ir.ParameterBackingStore); p != nil {
		out.WriteLine(adapter + ".enableBackingStore(" + conventions.FirstLower(p.Name) + ");")
	}
}

func sortedCopy(s []string) []string {
	result := slices.Clone(s)
	slices.Sort(result)
	return slices.Compact(result)
}

func (w *Writer) writeRawURLBuilderBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	rawURL := m.ParameterOfKind(ir.ParameterRawURL)
	if rawURL == nil {
		return ir.NewStructuralError(m, "raw url builder has no raw url parameter")
	}
	requestAdapter := c.PropertyOfKind(ir.PropertyRequestAdapter)
	if requestAdapter == nil {
		return ir.NewStructuralError(m, "class "+c.Name+" has no request adapter property")
	}
	out.WriteLine("return " + conventions.FirstUpper(c.Name) + ".withUrl(" + conventions.FirstLower(rawURL.Name) + ", " + w.memberName(requestAdapter) + ");")
	return nil
}

func (w *Writer) writeRequestBuilderWithParametersBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	returnType, err := w.typeString(m.ReturnType, c)
	if err != nil {
		return err
	}
	return w.writeRequestBuilderBody(out, c, m, returnType, "", orderedParameters(m.ParametersOfKind(ir.ParameterPath)))
}

// writeRequestBuilderBody writes "return R(pathParameters, requestAdapter[, args]);".
// urlParams replaces the path parameters expression when set.
func (w *Writer) writeRequestBuilderBody(out codewriter.LineWriter, c *ir.Class, el ir.Element, returnType, urlParams string, pathParams []*ir.Parameter) error {
	pathParameters := c.PropertyOfKind(ir.PropertyPathParameters)
	if pathParameters == nil {
		return ir.NewStructuralError(el, "class "+c.Name+" has no path parameters property")
	}
	requestAdapter := c.PropertyOfKind(ir.PropertyRequestAdapter)
	if requestAdapter == nil {
		return ir.NewStructuralError(el, "class "+c.Name+" has no request adapter property")
	}
	if urlParams == "" {
		urlParams = w.memberName(pathParameters)
	}
	args := []string{urlParams, w.memberName(requestAdapter)}
	for _, p := range pathParams {
		name := conventions.FirstLower(p.Name)
		if p.Optional {
			args = append(args, name+" : "+name)
		} else {
			args = append(args, name)
		}
	}
	out.WriteLine("return " + returnType + "(" + strings.Join(args, ", ") + ");")
	return nil
}
