package dart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/internal/testfixtures"
	"github.com/broady/clientgen/ir"
)

func TestRequestGenerator(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	got := renderMethod(t, root, methodOf(t, builder, ir.MethodRequestGenerator))
	assert.Equal(t, lines(
		"RequestInformation toGetRequestInformation([RequestConfiguration? requestConfiguration]) {",
		"  var requestInfo = RequestInformation(httpMethod : HttpMethod.get, urlTemplate : urlTemplate, pathParameters : pathParameters);",
		"  requestInfo.configure(requestConfiguration);",
		`  requestInfo.headers.put("Accept", "application/json");`,
		"  return requestInfo;",
		"}",
	), got)
}

func TestRequestExecutor_Collection(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	got := renderMethod(t, root, methodOf(t, builder, ir.MethodRequestExecutor))
	assert.Equal(t, lines(
		"Future<List<Widget>?> get([RequestConfiguration? requestConfiguration]) async {",
		"  var requestInfo = toGetRequestInformation(requestConfiguration);",
		"  var errorMapping = <String, ParsableFactory<Parsable>>{",
		`    "4XX" :  ApiError.createFromDiscriminatorValue,`,
		"  };",
		"  var collectionResult = await requestAdapter.sendCollection<Widget>(requestInfo, Widget.createFromDiscriminatorValue, errorMapping);",
		"  return collectionResult?.toList();",
		"}",
	), got)
}

func TestRequestGenerator_MissingPathParameters(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	builder.Properties = filter(builder.Properties, func(p *ir.Property) bool {
		return p.Kind != ir.PropertyPathParameters
	})
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), methodOf(t, builder, ir.MethodRequestGenerator))
	require.ErrorIs(t, err, ir.ErrStructural)
	assert.ErrorContains(t, err, "path parameters")

	var se *ir.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "WidgetsRequestBuilder.toGetRequestInformation", se.Element)
}

func TestRequestGenerator_MissingURLTemplate(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	builder.Properties = filter(builder.Properties, func(p *ir.Property) bool {
		return p.Kind != ir.PropertyURLTemplate
	})
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), methodOf(t, builder, ir.MethodRequestGenerator))
	assert.ErrorIs(t, err, ir.ErrStructural)
}

func TestRequestGenerator_MissingHTTPMethod(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	m := methodOf(t, builder, ir.MethodRequestGenerator)
	m.HTTPMethod = ""
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), m)
	assert.ErrorIs(t, err, ir.ErrStructural)
}

func TestRequestExecutor_NoMatchingGenerator(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	methodOf(t, builder, ir.MethodRequestGenerator).HTTPMethod = ir.HTTPPost
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), methodOf(t, builder, ir.MethodRequestExecutor))
	require.ErrorIs(t, err, ir.ErrStructural)
	assert.ErrorContains(t, err, "no request generator for GET")
}

func TestRequestExecutor_MissingRequestAdapter(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	builder.Properties = filter(builder.Properties, func(p *ir.Property) bool {
		return p.Kind != ir.PropertyRequestAdapter
	})
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), methodOf(t, builder, ir.MethodRequestExecutor))
	assert.ErrorIs(t, err, ir.ErrStructural)
}

// postPair adds a POST generator and executor taking body.
func postPair(builder *ir.Class, body *ir.Parameter, contentType string, returnType *ir.TypeRef, extra ...*ir.Parameter) (gen, exec *ir.Method) {
	params := func() []*ir.Parameter {
		b := *body
		ps := []*ir.Parameter{&b}
		for _, p := range extra {
			c := *p
			ps = append(ps, &c)
		}
		return ps
	}
	gen = builder.AddMethod(&ir.Method{
		Name:                   "toPostRequestInformation",
		Kind:                   ir.MethodRequestGenerator,
		HTTPMethod:             ir.HTTPPost,
		RequestBodyContentType: contentType,
		ReturnType:             ir.Primitive("RequestInformation"),
		Parameters:             params(),
	})
	exec = builder.AddMethod(&ir.Method{
		Name:                   "post",
		Kind:                   ir.MethodRequestExecutor,
		HTTPMethod:             ir.HTTPPost,
		RequestBodyContentType: contentType,
		IsAsync:                true,
		ReturnType:             returnType,
		Parameters:             params(),
	})
	return gen, exec
}

func TestRequestBody(t *testing.T) {
	tests := []struct {
		name        string
		body        func(widget *ir.Class) *ir.TypeRef
		contentType string
		extra       []*ir.Parameter
		want        string
	}{
		{
			name:        "parsable",
			body:        func(w *ir.Class) *ir.TypeRef { return ir.Ref(w) },
			contentType: "application/json",
			want:        `  requestInfo.setContentFromParsable(requestAdapter, "application/json", body);`,
		},
		{
			name:        "multipart",
			body:        func(*ir.Class) *ir.TypeRef { return ir.Primitive("MultipartBody") },
			contentType: "multipart/form-data",
			want:        `  requestInfo.setContentFromParsable(requestAdapter, "multipart/form-data", body);`,
		},
		{
			name:        "scalar",
			body:        func(*ir.Class) *ir.TypeRef { return ir.Primitive("string") },
			contentType: "text/plain",
			want:        `  requestInfo.setContentFromScalar(requestAdapter, "text/plain", body);`,
		},
		{
			name:        "scalar collection",
			body:        func(*ir.Class) *ir.TypeRef { return ir.Primitive("string").AsCollection(ir.CollectionArray) },
			contentType: "application/json",
			want:        `  requestInfo.setContentFromScalarCollection(requestAdapter, "application/json", body);`,
		},
		{
			name:        "stream with static content type",
			body:        func(*ir.Class) *ir.TypeRef { return ir.Primitive("stream") },
			contentType: "image/png",
			want:        `  requestInfo.setStreamContent(body, "image/png");`,
		},
		{
			name: "stream with content type parameter",
			body: func(*ir.Class) *ir.TypeRef { return ir.Primitive("stream") },
			extra: []*ir.Parameter{{
				Name: "contentType",
				Kind: ir.ParameterRequestBodyContentType,
				Type: ir.Primitive("string"),
			}},
			want: `  requestInfo.setStreamContent(body, contentType);`,
		},
		{
			name: "stream without content type",
			body: func(*ir.Class) *ir.TypeRef { return ir.Primitive("stream") },
			want: `  requestInfo.setStreamContent(body, "application/octet-stream");`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, builder, widget := testfixtures.Widgets()
			body := &ir.Parameter{Name: "body", Kind: ir.ParameterRequestBody, Type: tt.body(widget)}
			gen, _ := postPair(builder, body, tt.contentType, ir.Primitive("void"), tt.extra...)
			got := renderMethod(t, root, gen)
			assert.Contains(t, got, tt.want+"\n")
		})
	}
}

func TestRequestBody_MissingRequestAdapter(t *testing.T) {
	root, builder, widget := testfixtures.Widgets()
	builder.Properties = filter(builder.Properties, func(p *ir.Property) bool {
		return p.Kind != ir.PropertyRequestAdapter
	})
	body := &ir.Parameter{Name: "body", Kind: ir.ParameterRequestBody, Type: ir.Ref(widget)}
	gen, _ := postPair(builder, body, "application/json", ir.Primitive("void"))
	err := newWriter(root).WriteMethod(codewriter.NewBuffer(), gen)
	assert.ErrorIs(t, err, ir.ErrStructural)
}

func TestRequestExecutor_NoContent(t *testing.T) {
	root, builder, widget := testfixtures.Widgets()
	body := &ir.Parameter{Name: "body", Kind: ir.ParameterRequestBody, Type: ir.Ref(widget)}
	contentType := &ir.Parameter{Name: "contentType", Kind: ir.ParameterRequestBodyContentType, Type: ir.Primitive("string")}
	config := &ir.Parameter{
		Name:     "requestConfiguration",
		Kind:     ir.ParameterRequestConfiguration,
		Type:     ir.Primitive("RequestConfiguration"),
		Optional: true,
	}
	_, exec := postPair(builder, body, "application/json", ir.Primitive("void"), config, contentType)
	got := renderMethod(t, root, exec)
	assert.Equal(t, lines(
		"Future<void> post(Widget body, String contentType, [RequestConfiguration? requestConfiguration]) async {",
		`  if (contentType.isEmpty) throw ArgumentError.value(contentType, "contentType", "must not be empty");`,
		"  var requestInfo = toPostRequestInformation(body, contentType, requestConfiguration);",
		"  await requestAdapter.sendNoContent(requestInfo, {});",
		"}",
	), got)
}

func TestSendOperation(t *testing.T) {
	root, builder, widget := testfixtures.Widgets()
	color := root.AddEnum(&ir.Enum{Name: "Color", Options: []ir.EnumOption{{Name: "Red"}}})
	tests := []struct {
		name    string
		rt      *ir.TypeRef
		kind    SendKind
		op      string
		factory string
	}{
		{"void", ir.Primitive("void"), SendNoContent, "sendNoContent", ""},
		{"primitive", ir.Primitive("string"), SendPrimitive, "sendPrimitive<String>", ""},
		{"primitive collection", ir.Primitive("int64").AsCollection(ir.CollectionArray), SendPrimitiveCollection, "sendPrimitiveCollection<int>", ""},
		{"enum", ir.Ref(color), SendPrimitive, "sendPrimitive<Color>", ""},
		{"enum collection", ir.Ref(color).AsCollection(ir.CollectionComplex), SendPrimitiveCollection, "sendPrimitiveCollection<Color>", ""},
		{"stream", ir.Primitive("stream"), SendPrimitive, "sendPrimitive<Stream>", ""},
		{"object", ir.Ref(widget), SendObject, "send<Widget>", "Widget.createFromDiscriminatorValue"},
		{"object collection", ir.Ref(widget).AsCollection(ir.CollectionArray), SendCollection, "sendCollection<Widget>", "Widget.createFromDiscriminatorValue"},
	}
	w := newWriter(root)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := builder.AddMethod(&ir.Method{Name: "x", Kind: ir.MethodRequestExecutor, ReturnType: tt.rt})
			got, err := w.sendOperation(m)
			require.NoError(t, err)
			assert.Equal(t, SendOp{Kind: tt.kind, Name: tt.op, Factory: tt.factory}, got)
		})
	}
}
