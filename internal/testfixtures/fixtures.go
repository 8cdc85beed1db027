// Package testfixtures builds IR trees shared by the writer and generator
// tests.
package testfixtures

import "github.com/broady/clientgen/ir"

// Root returns an "api" namespace with an "api.models" child.
func Root() (root, models *ir.Namespace) {
	root = &ir.Namespace{Name: "api"}
	models = root.AddNamespace(&ir.Namespace{Name: "api.models"})
	return root, models
}

// Model adds a model class with the given custom properties to ns.
func Model(ns *ir.Namespace, name string, props ...*ir.Property) *ir.Class {
	c := ns.AddClass(&ir.Class{Name: name, Kind: ir.ClassModel})
	for _, p := range props {
		c.AddProperty(p)
	}
	return c
}

// Prop returns a custom property whose wire name is the lower-cased first
// letter of name.
func Prop(name string, t *ir.TypeRef) *ir.Property {
	wire := name
	if wire != "" {
		wire = string(wire[0]|0x20) + wire[1:]
	}
	return &ir.Property{Name: name, SerializationName: wire, Kind: ir.PropertyCustom, Type: t}
}

// String returns a nullable string type reference.
func String() *ir.TypeRef { return &ir.TypeRef{Name: "string", Nullable: true} }

// Serializer adds the serialization method of c.
func Serializer(c *ir.Class) *ir.Method {
	return c.AddMethod(&ir.Method{
		Name:       "serialize",
		Kind:       ir.MethodSerializer,
		ReturnType: ir.Primitive("void"),
		Parameters: []*ir.Parameter{{Name: "writer", Kind: ir.ParameterSerializer, Type: ir.Primitive("ISerializationWriter")}},
	})
}

// Deserializer adds the field deserializers method of c.
func Deserializer(c *ir.Class) *ir.Method {
	return c.AddMethod(&ir.Method{
		Name:       "getFieldDeserializers",
		Kind:       ir.MethodDeserializer,
		ReturnType: ir.Primitive("void"),
	})
}

// Factory adds the static discriminator factory of c.
func Factory(c *ir.Class) *ir.Method {
	return c.AddMethod(&ir.Method{
		Name:       "createFromDiscriminatorValue",
		Kind:       ir.MethodFactory,
		IsStatic:   true,
		ReturnType: ir.Ref(c),
		Parameters: []*ir.Parameter{{Name: "parseNode", Kind: ir.ParameterParseNode, Type: ir.Primitive("IParseNode")}},
	})
}

// Pets adds Cat and Dog models to ns.
func Pets(ns *ir.Namespace) (cat, dog *ir.Class) {
	cat = Model(ns, "Cat", Prop("Meows", &ir.TypeRef{Name: "boolean", Nullable: true}))
	dog = Model(ns, "Dog", Prop("Barks", &ir.TypeRef{Name: "boolean", Nullable: true}))
	return cat, dog
}

// Plain returns a model with properties Zeta and Alpha and no discriminator.
func Plain() (*ir.Namespace, *ir.Class) {
	root, models := Root()
	c := Model(models, "Plain", Prop("Zeta", String()), Prop("Alpha", String()))
	Serializer(c)
	Deserializer(c)
	Factory(c)
	return root, c
}

// Union returns a union wrapper over Cat and Dog keyed "cat" and "dog".
func Union() (*ir.Namespace, *ir.Class) {
	root, models := Root()
	cat, dog := Pets(models)
	c := Model(models, "Pet",
		Prop("Dog", ir.Ref(dog)),
		Prop("Cat", ir.Ref(cat)),
		Prop("Label", String()),
	)
	c.Discriminator = ir.DiscriminatorInfo{
		PropertyName: "@odata.type",
		Strategy:     ir.StrategyUnion,
		Mappings: []ir.DiscriminatorMapping{
			{Key: "cat", Type: ir.Ref(cat)},
			{Key: "dog", Type: ir.Ref(dog)},
		},
	}
	Serializer(c)
	Deserializer(c)
	Factory(c)
	return root, c
}

// Intersection returns an intersection wrapper with a scalar alternate name
// and object constituents cat and dog.
func Intersection() (*ir.Namespace, *ir.Class) {
	root, models := Root()
	cat, dog := Pets(models)
	c := Model(models, "Hybrid",
		Prop("dog", ir.Ref(dog)),
		Prop("name", String()),
		Prop("cat", ir.Ref(cat)),
	)
	c.Discriminator = ir.DiscriminatorInfo{Strategy: ir.StrategyIntersection}
	Serializer(c)
	Deserializer(c)
	Factory(c)
	return root, c
}

// Inherited returns an Animal base with Cat and Dog subtypes selected by the
// "@odata.type" property.
func Inherited() (root *ir.Namespace, base, cat *ir.Class) {
	root, models := Root()
	base = Model(models, "Animal", Prop("Name", String()))
	cat = Model(models, "Cat", Prop("Meows", &ir.TypeRef{Name: "boolean", Nullable: true}))
	cat.BaseType = ir.Ref(base)
	dog := Model(models, "Dog")
	dog.BaseType = ir.Ref(base)
	base.Discriminator = ir.DiscriminatorInfo{
		PropertyName: "@odata.type",
		Strategy:     ir.StrategyInherited,
		Mappings: []ir.DiscriminatorMapping{
			{Key: "#api.cat", Type: ir.Ref(cat)},
			{Key: "#api.dog", Type: ir.Ref(dog)},
		},
	}
	for _, c := range []*ir.Class{base, cat, dog} {
		Serializer(c)
		Deserializer(c)
		Factory(c)
	}
	return root, base, cat
}

// RequestBuilder adds a request builder with the path parameters, url
// template and request adapter properties.
func RequestBuilder(ns *ir.Namespace, name, urlTemplate string) *ir.Class {
	c := ns.AddClass(&ir.Class{Name: name, Kind: ir.ClassRequestBuilder})
	c.AddProperty(&ir.Property{Name: "pathParameters", Kind: ir.PropertyPathParameters, Type: ir.Primitive("Map<String, dynamic>")})
	c.AddProperty(&ir.Property{Name: "urlTemplate", Kind: ir.PropertyURLTemplate, Type: ir.Primitive("string"), DefaultValue: `"` + urlTemplate + `"`})
	c.AddProperty(&ir.Property{Name: "requestAdapter", Kind: ir.PropertyRequestAdapter, Type: ir.Primitive("RequestAdapter")})
	return c
}

// Widgets returns a "/widgets" request builder whose GET executor returns a
// collection of Widget and maps 4XX responses to an error model.
func Widgets() (root *ir.Namespace, builder, widget *ir.Class) {
	root, models := Root()
	widget = Model(models, "Widget", Prop("Id", String()))
	apiError := models.AddClass(&ir.Class{Name: "ApiError", Kind: ir.ClassErrorDefinition})

	builder = RequestBuilder(root, "WidgetsRequestBuilder", "{+baseurl}/widgets")
	config := func() *ir.Parameter {
		return &ir.Parameter{
			Name:     "requestConfiguration",
			Kind:     ir.ParameterRequestConfiguration,
			Type:     ir.Primitive("WidgetsRequestBuilderGetRequestConfiguration"),
			Optional: true,
		}
	}
	builder.AddMethod(&ir.Method{
		Name:         "toGetRequestInformation",
		Kind:         ir.MethodRequestGenerator,
		HTTPMethod:   ir.HTTPGet,
		AcceptHeader: "application/json",
		ReturnType:   ir.Primitive("RequestInformation"),
		Parameters:   []*ir.Parameter{config()},
	})
	builder.AddMethod(&ir.Method{
		Name:          "get",
		Kind:          ir.MethodRequestExecutor,
		HTTPMethod:    ir.HTTPGet,
		IsAsync:       true,
		ReturnType:    ir.Ref(widget).AsCollection(ir.CollectionComplex),
		ErrorMappings: []ir.ErrorMapping{{Code: "4XX", Type: ir.Ref(apiError)}, {Code: "5XX", Type: ir.Primitive("string")}},
		Parameters:    []*ir.Parameter{config()},
	})
	return root, builder, widget
}
