package dart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/internal/testfixtures"
	"github.com/broady/clientgen/ir"
)

func TestWriteClass_Model(t *testing.T) {
	root, c := testfixtures.Plain()
	c.Implements = []string{"Parsable"}
	assert.Equal(t, lines(
		"class Plain implements Parsable {",
		"  String? alpha;",
		"",
		"  String? zeta;",
		"",
		"  static Plain createFromDiscriminatorValue(ParseNode parseNode) {",
		"    return Plain();",
		"  }",
		"",
		"  @override",
		"  Map<String, void Function(ParseNode)> getFieldDeserializers() {",
		"    Map<String, void Function(ParseNode)> deserializerMap = {};",
		`    deserializerMap["alpha"] = (node) => alpha = node.getStringValue();`,
		`    deserializerMap["zeta"] = (node) => zeta = node.getStringValue();`,
		"    return deserializerMap;",
		"  }",
		"",
		"  @override",
		"  void serialize(SerializationWriter writer) {",
		`    writer.writeStringValue("alpha", alpha);`,
		`    writer.writeStringValue("zeta", zeta);`,
		"  }",
		"}",
	), renderClass(t, root, c))
}

func TestWriteClass_ReservedMemberNames(t *testing.T) {
	t.Run("escaped", func(t *testing.T) {
		root, models := testfixtures.Root()
		c := testfixtures.Model(models, "Holder", testfixtures.Prop("class", testfixtures.String()))
		testfixtures.Serializer(c)
		got := renderClass(t, root, c)
		assert.Contains(t, got, "  String? classEscaped;\n")
		assert.Contains(t, got, `    writer.writeStringValue("class", classEscaped);`)
	})

	t.Run("escaped name taken", func(t *testing.T) {
		root, models := testfixtures.Root()
		c := testfixtures.Model(models, "Holder",
			testfixtures.Prop("class", testfixtures.String()),
			testfixtures.Prop("classEscaped", testfixtures.String()),
		)
		testfixtures.Serializer(c)
		testfixtures.Deserializer(c)
		got := renderClass(t, root, c)
		assert.Equal(t, 1, strings.Count(got, "String? classEscaped;"))
		assert.Equal(t, 1, strings.Count(got, "String? class;"))
		assert.Contains(t, got, `deserializerMap["class"] = (node) => class = node.getStringValue();`)
		assert.Contains(t, got, `deserializerMap["classEscaped"] = (node) => classEscaped = node.getStringValue();`)
		assert.Contains(t, got, `writer.writeStringValue("class", class);`)
		assert.Contains(t, got, `writer.writeStringValue("classEscaped", classEscaped);`)
	})
}

func TestWriteClass_HeaderAndImports(t *testing.T) {
	root, _, cat := testfixtures.Inherited()
	cat.Implements = []string{"Parsable", "AdditionalDataHolder"}
	cat.Usings = []ir.Using{
		{Name: "package:kiota_abstractions/kiota_abstractions.dart"},
		{Name: "animal.dart", Alias: "base"},
		{Name: "package:kiota_abstractions/kiota_abstractions.dart"},
	}
	cat.Documentation = ir.Documentation{Description: "A cat."}
	got := renderClass(t, root, cat)
	assert.Contains(t, got, lines(
		"import 'animal.dart' as base;",
		"import 'package:kiota_abstractions/kiota_abstractions.dart';",
		"",
		"/// A cat.",
		"class Cat extends Animal implements Parsable, AdditionalDataHolder {",
	))
}

func TestWriteClass_ConstructorsFirst(t *testing.T) {
	root, c := testfixtures.Plain()
	c.AddMethod(&ir.Method{Name: "constructor", Kind: ir.MethodConstructor, ReturnType: ir.Primitive("void")})
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteClass(buf, c))
	assert.Contains(t, buf.Render("  "), "  String? zeta;\n\n  Plain() {\n  }\n\n  static Plain createFromDiscriminatorValue")
}

func TestWriteClass_ComposedProperty(t *testing.T) {
	root, c := testfixtures.Plain()
	c.AddProperty(testfixtures.Prop("Either", &ir.TypeRef{
		Name:     "either",
		Composed: ir.ComposedUnion,
		Types:    []*ir.TypeRef{ir.Primitive("string"), ir.Primitive("integer")},
	}))
	err := newWriter(root).WriteClass(codewriter.NewBuffer(), c)
	assert.ErrorIs(t, err, ir.ErrStructural)
}

func TestWriteProperty(t *testing.T) {
	root, builder, widget := testfixtures.Widgets()
	item := testfixtures.RequestBuilder(root, "WidgetItemRequestBuilder", "{+baseurl}/widgets/{id}")
	apiError := root.Namespaces[0].FindClass("ApiError")
	holder := testfixtures.Model(root, "Holder")
	holder.Implements = []string{"AdditionalDataHolder"}

	tests := []struct {
		name string
		prop *ir.Property
		in   *ir.Class
		want string
	}{
		{
			name: "custom is nullable",
			prop: testfixtures.Prop("Size", ir.Primitive("int64")),
			in:   widget,
			want: "int? size;\n",
		},
		{
			name: "object never takes the marker",
			prop: testfixtures.Prop("Owner", ir.Ref(widget)),
			in:   widget,
			want: "Widget owner;\n",
		},
		{
			name: "reserved word",
			prop: testfixtures.Prop("Class", ir.Primitive("string")),
			in:   widget,
			want: "String? classEscaped;\n",
		},
		{
			name: "private",
			prop: &ir.Property{Name: "cache", Kind: ir.PropertyCustom, Access: ir.AccessPrivate, Type: ir.Primitive("string")},
			in:   widget,
			want: "String? _cache;\n",
		},
		{
			name: "external base",
			prop: &ir.Property{Name: "inherited", Kind: ir.PropertyCustom, Type: ir.Primitive("string"), ExistsInExternalBaseType: true},
			in:   widget,
			want: "",
		},
		{
			name: "error class redeclaring the exception message",
			prop: testfixtures.Prop("Message", ir.Primitive("string")),
			in:   apiError,
			want: "",
		},
		{
			name: "error message override",
			prop: &ir.Property{Name: "primaryErrorMessage", Kind: ir.PropertyErrorMessageOverride, Type: ir.Primitive("string")},
			in:   apiError,
			want: lines("@override", "String? primaryErrorMessage;"),
		},
		{
			name: "additional data holder",
			prop: &ir.Property{Name: "additionalData", Kind: ir.PropertyAdditionalData, Type: ir.Primitive("Map<String, Object?>")},
			in:   holder,
			want: lines("@override", "Map<String, Object?> additionalData;"),
		},
		{
			name: "escaped query parameter",
			prop: &ir.Property{Name: "select", SerializationName: "%24select", Kind: ir.PropertyQueryParameter, Type: ir.Primitive("string")},
			in:   widget,
			want: lines("/// @QueryParameter('%24select')", "String? select;"),
		},
		{
			name: "query parameters",
			prop: &ir.Property{Name: "queryParameters", Kind: ir.PropertyQueryParameters, Type: ir.Primitive("GetQueryParameters")},
			in:   widget,
			want: "GetQueryParameters queryParameters = GetQueryParameters();\n",
		},
		{
			name: "request builder",
			prop: &ir.Property{Name: "item", Kind: ir.PropertyRequestBuilder, Type: ir.Ref(item)},
			in:   builder,
			want: lines(
				"WidgetItemRequestBuilder get item {",
				"  return WidgetItemRequestBuilder(pathParameters, requestAdapter);",
				"}",
			),
		},
		{
			name: "documented",
			prop: &ir.Property{
				Name:          "name",
				Kind:          ir.PropertyCustom,
				Type:          ir.Primitive("string"),
				Documentation: ir.Documentation{Description: "The display name."},
			},
			in:   widget,
			want: lines("/// The display name.", "String? name;"),
		},
	}
	w := newWriter(root)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.AddProperty(tt.prop)
			buf := codewriter.NewBuffer()
			require.NoError(t, w.WriteProperty(buf, tt.prop))
			assert.Equal(t, tt.want, buf.Render("  "))
		})
	}
}

func TestWriteProperty_RequestBuilderWithoutPathParameters(t *testing.T) {
	root, _ := testfixtures.Root()
	c := root.AddClass(&ir.Class{Name: "Loose", Kind: ir.ClassRequestBuilder})
	p := c.AddProperty(&ir.Property{Name: "item", Kind: ir.PropertyRequestBuilder, Type: ir.Ref(c)})
	err := newWriter(root).WriteProperty(codewriter.NewBuffer(), p)
	assert.ErrorIs(t, err, ir.ErrStructural)
}

func TestWriteProperty_BackingStore(t *testing.T) {
	root, models := testfixtures.Root()
	c := testfixtures.Model(models, "Stored")
	store := c.AddProperty(&ir.Property{Name: "backingStore", Kind: ir.PropertyBackingStore, Type: ir.Primitive("BackingStore")})
	name := c.AddProperty(testfixtures.Prop("DisplayName", ir.Primitive("string")))
	name.SerializationName = "display_name"
	w := newWriter(root)

	buf := codewriter.NewBuffer()
	require.NoError(t, w.WriteProperty(buf, store))
	assert.Equal(t, "BackingStore backingStore = BackingStoreFactorySingleton.instance.createBackingStore();\n", buf.Render("  "))

	buf.Reset()
	require.NoError(t, w.WriteProperty(buf, name))
	assert.Equal(t, lines(
		"String? get displayName {",
		`  return backingStore.get<String>("display_name");`,
		"}",
		"",
		"set displayName(String? displayNameValue) {",
		`  backingStore.set("display_name", displayNameValue);`,
		"}",
	), buf.Render("  "))
}

func TestWriteEnum(t *testing.T) {
	root, models := testfixtures.Root()
	e := models.AddEnum(&ir.Enum{
		Name:          "color",
		Documentation: ir.Documentation{Description: "Paint colors."},
		Options: []ir.EnumOption{
			{Name: "RED_ALERT", SerializationName: "red_alert"},
			{Name: "BLUE", SerializationName: "blue", Documentation: ir.Documentation{Description: "Sky."}},
			{Name: "index"},
			{Name: "class"},
		},
	})
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteEnum(buf, e))
	assert.Equal(t, lines(
		"/// Paint colors.",
		"enum Color {",
		`  redAlert("red_alert"),`,
		"  /// Sky.",
		`  blue("blue"),`,
		`  indexEscaped("index"),`,
		`  classEscaped("class");`,
		"  const Color(this.value);",
		"  final String value;",
		"}",
	), buf.Render("  "))
}

func TestWriteEnum_NoOptions(t *testing.T) {
	root, models := testfixtures.Root()
	e := models.AddEnum(&ir.Enum{Name: "Empty"})
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteEnum(buf, e))
	assert.Zero(t, buf.Len())
}

func TestWriteIndexer(t *testing.T) {
	root, builder, _ := testfixtures.Widgets()
	item := testfixtures.RequestBuilder(root, "WidgetItemRequestBuilder", "{+baseurl}/widgets/{id}")
	ix := builder.SetIndexer(&ir.Indexer{
		Name:       "indexer",
		ReturnType: ir.Ref(item),
		IndexParameter: &ir.Parameter{
			Name:              "position",
			Kind:              ir.ParameterPath,
			Type:              testfixtures.String(),
			SerializationName: "widget%2Did",
		},
	})
	buf := codewriter.NewBuffer()
	require.NoError(t, newWriter(root).WriteIndexer(buf, ix))
	assert.Equal(t, lines(
		"WidgetItemRequestBuilder operator [](String? position) {",
		"  var urlTplParams = Map.of(pathParameters);",
		`  if (position != null && position.isNotEmpty) urlTplParams["widget%2Did"] = position;`,
		"  return WidgetItemRequestBuilder(urlTplParams, requestAdapter);",
		"}",
	), buf.Render("  "))
}

func TestWriteIndexer_MissingIndexParameter(t *testing.T) {
	root, builder, widget := testfixtures.Widgets()
	ix := builder.SetIndexer(&ir.Indexer{Name: "indexer", ReturnType: ir.Ref(widget)})
	err := newWriter(root).WriteIndexer(codewriter.NewBuffer(), ix)
	assert.ErrorIs(t, err, ir.ErrStructural)
}
