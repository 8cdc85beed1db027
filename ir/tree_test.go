package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_Walk(t *testing.T) {
	root := &Namespace{Name: "api"}
	models := root.AddNamespace(&Namespace{Name: "api.models"})
	models.AddNamespace(&Namespace{Name: "api.models.shared"})
	root.AddNamespace(&Namespace{Name: "api.users"})

	var visited []string
	root.Walk(func(ns *Namespace) bool {
		visited = append(visited, ns.Name)
		return true
	})
	assert.Equal(t, []string{"api", "api.models", "api.models.shared", "api.users"}, visited)

	visited = nil
	root.Walk(func(ns *Namespace) bool {
		visited = append(visited, ns.Name)
		return ns.Name != "api.models"
	})
	assert.Equal(t, []string{"api", "api.models"}, visited)

	assert.Len(t, root.Descendants(), 3)
	assert.Same(t, root, models.Namespaces[0].Root())
}

func TestNamespace_Segments(t *testing.T) {
	ns := &Namespace{Name: "api..models."}
	assert.Equal(t, []string{"api", "models"}, ns.Segments())
	assert.Equal(t, "models", ns.LastSegment())
	assert.Equal(t, "", (&Namespace{}).LastSegment())
}

func TestNamespace_Find(t *testing.T) {
	root := &Namespace{Name: "api"}
	c := root.AddClass(&Class{Name: "Widget"})
	e := root.AddEnum(&Enum{Name: "Color"})

	assert.Same(t, c, root.FindClass("Widget"))
	assert.Nil(t, root.FindClass("Color"))
	assert.Same(t, e, root.FindEnum("Color"))
	assert.Same(t, root, c.EnclosingNamespace())
}

func TestClass_Members(t *testing.T) {
	c := &Class{Name: "Widget", Implements: []string{"AdditionalDataHolder"}}
	a := c.AddProperty(&Property{Name: "additionalData", Kind: PropertyAdditionalData})
	c.AddProperty(&Property{Name: "name", Kind: PropertyCustom})
	c.AddProperty(&Property{Name: "size", Kind: PropertyCustom})
	m := c.AddMethod(&Method{
		Name:       "serialize",
		Kind:       MethodSerializer,
		Parameters: []*Parameter{{Name: "writer", Kind: ParameterSerializer}},
	})

	assert.Same(t, a, c.PropertyOfKind(PropertyAdditionalData))
	assert.Nil(t, c.PropertyOfKind(PropertyBackingStore))
	assert.Len(t, c.PropertiesOfKind(PropertyCustom), 2)
	assert.Equal(t, []*Method{m}, c.MethodsOfKind(MethodSerializer))
	assert.Same(t, m, m.Parameters[0].Parent)
	assert.Same(t, m.Parameters[0], m.ParameterOfKind(ParameterSerializer))
	assert.True(t, c.ImplementsName("AdditionalDataHolder"))
	assert.False(t, c.Inherits())
	assert.Same(t, c, m.EnclosingClass())
}

func TestWireNames(t *testing.T) {
	p := &Property{Name: "displayName"}
	assert.Equal(t, "displayName", p.WireName())
	assert.False(t, p.IsNameEscaped())

	p.SerializationName = "display_name"
	assert.Equal(t, "display_name", p.WireName())
	assert.True(t, p.IsNameEscaped())

	assert.Equal(t, "item-id", (&Parameter{Name: "itemId", SerializationName: "item-id"}).WireName())
	assert.Equal(t, "red", EnumOption{Name: "red"}.WireName())
}

func TestTypeRef(t *testing.T) {
	c := &Class{Name: "Widget"}
	e := &Enum{Name: "Color"}

	ref := Ref(c)
	assert.Equal(t, "Widget", ref.Name)
	assert.Same(t, c, ref.Class())
	assert.Nil(t, ref.Enum())
	assert.True(t, ref.IsObject())

	list := ref.AsCollection(CollectionArray)
	assert.True(t, list.IsCollection())
	assert.False(t, list.IsObject())
	assert.False(t, ref.IsCollection(), "AsCollection copies")

	nullable := Ref(e).AsNullable()
	assert.True(t, nullable.Nullable)
	assert.Same(t, e, nullable.Enum())

	var nilRef *TypeRef
	assert.False(t, nilRef.IsComposed())
	assert.Nil(t, nilRef.Class())
	assert.True(t, (&TypeRef{Composed: ComposedUnion}).IsComposed())
}

func TestDiscriminatorInfo_MappingFor(t *testing.T) {
	cat := &Class{Name: "Cat"}
	d := DiscriminatorInfo{Mappings: []DiscriminatorMapping{
		{Key: "nothing"},
		{Key: "#api.cat", Type: Ref(cat)},
	}}
	m, ok := d.MappingFor("cat")
	require.True(t, ok)
	assert.Equal(t, "#api.cat", m.Key)

	_, ok = d.MappingFor("dog")
	assert.False(t, ok)
}
