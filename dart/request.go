package dart

import (
	"strings"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

const (
	requestInfoVar      = "requestInfo"
	errorMappingVar     = "errorMapping"
	collectionResultVar = "collectionResult"
	defaultStreamType   = "application/octet-stream"
)

// requestParams are the request-shaping parameters of an HTTP-bound method.
type requestParams struct {
	body          *ir.Parameter
	contentType   *ir.Parameter
	configuration *ir.Parameter
}

func requestParamsOf(m *ir.Method) requestParams {
	return requestParams{
		body:          m.ParameterOfKind(ir.ParameterRequestBody),
		contentType:   m.ParameterOfKind(ir.ParameterRequestBodyContentType),
		configuration: m.ParameterOfKind(ir.ParameterRequestConfiguration),
	}
}

// callArguments lists the names of the present parameters in the fixed
// body, content type, configuration order.
func (rp requestParams) callArguments() string {
	var names []string
	for _, p := range []*ir.Parameter{rp.body, rp.contentType, rp.configuration} {
		if p != nil {
			names = append(names, conventions.FirstLower(p.Name))
		}
	}
	return strings.Join(names, ", ")
}

// writeRequestGeneratorBody writes the body that builds the request
// information for one HTTP operation.
func (w *Writer) writeRequestGeneratorBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	if m.HTTPMethod == "" {
		return ir.NewStructuralError(m, "request generator has no HTTP method")
	}
	pathParameters := c.PropertyOfKind(ir.PropertyPathParameters)
	if pathParameters == nil {
		return ir.NewStructuralError(m, "class "+c.Name+" has no path parameters property")
	}
	urlTemplate := c.PropertyOfKind(ir.PropertyURLTemplate)
	if urlTemplate == nil {
		return ir.NewStructuralError(m, "class "+c.Name+" has no url template property")
	}

	rp := requestParamsOf(m)
	out.WriteLine("var " + requestInfoVar + " = RequestInformation(httpMethod : HttpMethod." + strings.ToLower(string(m.HTTPMethod)) +
		", urlTemplate : " + w.memberName(urlTemplate) +
		", pathParameters : " + w.memberName(pathParameters) + ");")

	if rp.configuration != nil {
		out.WriteLine(requestInfoVar + ".configure(" + conventions.FirstLower(rp.configuration.Name) + ");")
	}
	if m.AcceptHeader != "" {
		out.WriteLine(requestInfoVar + `.headers.put("Accept", ` + dartString(m.AcceptHeader) + ");")
	}
	if rp.body != nil {
		if err := w.writeRequestBody(out, m, c, rp); err != nil {
			return err
		}
	}
	out.WriteLine("return " + requestInfoVar + ";")
	return nil
}

func (w *Writer) writeRequestBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class, rp requestParams) error {
	body := conventions.FirstLower(rp.body.Name)
	if w.engine.IsStream(rp.body.Type) {
		contentType := dartString(defaultStreamType)
		switch {
		case rp.contentType != nil:
			contentType = conventions.FirstLower(rp.contentType.Name)
		case m.RequestBodyContentType != "":
			contentType = dartString(m.RequestBodyContentType)
		}
		out.WriteLine(requestInfoVar + ".setStreamContent(" + body + ", " + contentType + ");")
		return nil
	}

	requestAdapter := c.PropertyOfKind(ir.PropertyRequestAdapter)
	if requestAdapter == nil {
		return ir.NewStructuralError(m, "class "+c.Name+" has no request adapter property to serialize the request body")
	}
	args := "(" + w.memberName(requestAdapter) + ", " + dartString(m.RequestBodyContentType) + ", " + body + ");"
	if rp.body.Type.Class() != nil || strings.EqualFold(rp.body.Type.Name, "MultipartBody") {
		out.WriteLine(requestInfoVar + ".setContentFromParsable" + args)
		return nil
	}
	suffix := ""
	if rp.body.Type.IsCollection() {
		suffix = "Collection"
	}
	out.WriteLine(requestInfoVar + ".setContentFromScalar" + suffix + args)
	return nil
}

// writeRequestExecutorBody writes the body that sends the request built by
// the sibling generator and decodes the response.
func (w *Writer) writeRequestExecutorBody(out codewriter.LineWriter, m *ir.Method, c *ir.Class) error {
	if m.HTTPMethod == "" {
		return ir.NewStructuralError(m, "request executor has no HTTP method")
	}
	var generator *ir.Method
	for _, g := range c.MethodsOfKind(ir.MethodRequestGenerator) {
		if g.HTTPMethod == m.HTTPMethod {
			generator = g
			break
		}
	}
	if generator == nil {
		return ir.NewStructuralError(m, "no request generator for "+string(m.HTTPMethod))
	}
	requestAdapter := c.PropertyOfKind(ir.PropertyRequestAdapter)
	if requestAdapter == nil {
		return ir.NewStructuralError(m, "class "+c.Name+" has no request adapter property")
	}

	rp := requestParamsOf(m)
	out.WriteLine("var " + requestInfoVar + " = " + w.methodName(generator, c) + "(" + rp.callArguments() + ");")

	errorMapping, err := w.writeErrorMapping(out, m)
	if err != nil {
		return err
	}

	send, err := w.sendOperation(m)
	if err != nil {
		return err
	}
	factory := ""
	if send.Factory != "" {
		factory = ", " + send.Factory
	}
	call := "await " + w.memberName(requestAdapter) + "." + send.Name + "(" + requestInfoVar + factory + ", " + errorMapping + ");"
	switch {
	case send.Kind == SendNoContent:
		out.WriteLine(call)
	case m.ReturnType.IsCollection():
		out.WriteLine("var " + collectionResultVar + " = " + call)
		out.WriteLine("return " + collectionResultVar + "?.toList();")
	default:
		out.WriteLine("return " + call)
	}
	return nil
}

// writeErrorMapping writes the status code to error factory map and returns
// the expression to pass to the send call.
func (w *Writer) writeErrorMapping(out codewriter.LineWriter, m *ir.Method) (string, error) {
	var entries []string
	for _, em := range m.ErrorMappings {
		if em.Type.Class() == nil {
			continue
		}
		typeName, err := w.engine.TypeStringWith(em.Type, m, conventions.TypeOptions{OmitCollection: true})
		if err != nil {
			return "", err
		}
		entries = append(entries, dartString(strings.ToUpper(em.Code))+" :  "+w.engine.TrimNullable(typeName)+".createFromDiscriminatorValue,")
	}
	if len(entries) == 0 {
		return "{}", nil
	}
	out.StartBlock("var " + errorMappingVar + " = <String, ParsableFactory<Parsable>>{")
	out.WriteLines(entries...)
	out.CloseBlock("};")
	return errorMappingVar, nil
}

// SendKind classifies how a response is decoded.
type SendKind int

const (
	SendNoContent SendKind = iota
	SendPrimitiveCollection
	SendPrimitive
	SendCollection
	SendObject
)

// SendOp is the request adapter call that decodes a response.
type SendOp struct {
	Kind    SendKind
	Name    string // e.g. "send<Widget>"
	Factory string // construction function for object kinds
}

// sendOperation selects the send call from the method's return type.
func (w *Writer) sendOperation(m *ir.Method) (SendOp, error) {
	rt := m.ReturnType
	typeName, err := w.engine.TypeStringWith(rt, m, conventions.TypeOptions{OmitCollection: true})
	if err != nil {
		return SendOp{}, err
	}
	if w.engine.IsVoid(typeName) {
		return SendOp{Kind: SendNoContent, Name: "sendNoContent"}, nil
	}
	if w.engine.IsStream(rt) || w.engine.IsPrimitive(typeName) || rt.Enum() != nil {
		if rt.IsCollection() {
			return SendOp{Kind: SendPrimitiveCollection, Name: "sendPrimitiveCollection<" + typeName + ">"}, nil
		}
		return SendOp{Kind: SendPrimitive, Name: "sendPrimitive<" + typeName + ">"}, nil
	}
	var factory string
	if rt.Class() != nil {
		factory = w.engine.TrimNullable(typeName) + ".createFromDiscriminatorValue"
	}
	if rt.IsCollection() {
		return SendOp{Kind: SendCollection, Name: "sendCollection<" + typeName + ">", Factory: factory}, nil
	}
	return SendOp{Kind: SendObject, Name: "send<" + typeName + ">", Factory: factory}, nil
}
