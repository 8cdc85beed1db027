package ir

import "strings"

// Class is a model, request builder, error definition or other generated type.
type Class struct {
	// Name is the type identifier.
	Name string

	// Kind is the class role.
	Kind ClassKind

	// Parent is the declaring namespace (lookup only).
	Parent *Namespace

	// BaseType is the inherited type, or nil.
	BaseType *TypeRef

	// Implements contains implemented capability names (e.g. "Parsable").
	Implements []string

	// Usings contains the imports visible to the class body.
	Usings []Using

	// Properties contains class properties in declaration order.
	Properties []*Property

	// Methods contains class methods in declaration order.
	Methods []*Method

	// Indexer is the optional indexer of a request builder.
	Indexer *Indexer

	// Discriminator carries polymorphism metadata for model classes.
	Discriminator DiscriminatorInfo

	// Documentation for this class.
	Documentation Documentation

	// Deprecation is set when the class is deprecated.
	Deprecation *Deprecation
}

// ElementName returns the class name.
func (c *Class) ElementName() string { return c.Name }

// EnclosingClass returns c.
func (c *Class) EnclosingClass() *Class { return c }

// EnclosingNamespace returns the declaring namespace.
func (c *Class) EnclosingNamespace() *Namespace { return c.Parent }

func (*Class) sealed() {}

// IsErrorDefinition reports whether the class is raised as an API exception.
func (c *Class) IsErrorDefinition() bool { return c.Kind == ClassErrorDefinition }

// Inherits reports whether the class extends a base type.
func (c *Class) Inherits() bool { return c.BaseType != nil }

// ImplementsName reports whether the class implements the named capability.
func (c *Class) ImplementsName(name string) bool {
	for _, i := range c.Implements {
		if i == name {
			return true
		}
	}
	return false
}

// PropertyOfKind returns the first property of the given kind, or nil.
func (c *Class) PropertyOfKind(kind PropertyKind) *Property {
	for _, p := range c.Properties {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// PropertiesOfKind returns the properties of the given kind in declaration order.
func (c *Class) PropertiesOfKind(kind PropertyKind) []*Property {
	var result []*Property
	for _, p := range c.Properties {
		if p.Kind == kind {
			result = append(result, p)
		}
	}
	return result
}

// MethodsOfKind returns the methods of the given kind in declaration order.
func (c *Class) MethodsOfKind(kind MethodKind) []*Method {
	var result []*Method
	for _, m := range c.Methods {
		if m.Kind == kind {
			result = append(result, m)
		}
	}
	return result
}

// AddProperty appends a property and links its parent.
func (c *Class) AddProperty(p *Property) *Property {
	p.Parent = c
	c.Properties = append(c.Properties, p)
	return p
}

// AddMethod appends a method and links its parent and its parameters.
func (c *Class) AddMethod(m *Method) *Method {
	m.Parent = c
	for _, p := range m.Parameters {
		p.Parent = m
	}
	c.Methods = append(c.Methods, m)
	return m
}

// SetIndexer sets the indexer and links its parent.
func (c *Class) SetIndexer(i *Indexer) *Indexer {
	i.Parent = c
	c.Indexer = i
	return i
}

// Using is an import visible to a class body.
type Using struct {
	// Name is the imported module or namespace name.
	Name string

	// Alias is the import alias; empty when the import is unaliased.
	Alias string

	// Declaration links the imported definition, if any.
	Declaration *TypeRef

	// External marks imports of runtime libraries.
	External bool
}

// DiscriminatorInfo describes how a model class picks its concrete shape.
type DiscriminatorInfo struct {
	// PropertyName is the wire property carrying the discriminator value.
	PropertyName string

	// Strategy selects the polymorphism strategy.
	Strategy Strategy

	// Mappings maps wire values to concrete types, in declaration order.
	// Keys are unique case-insensitively.
	Mappings []DiscriminatorMapping
}

// DiscriminatorMapping binds one discriminator wire value to a type.
type DiscriminatorMapping struct {
	// Key is the discriminator wire value.
	Key string

	// Type is the concrete type selected by Key.
	Type *TypeRef
}

// MappingFor returns the first mapping whose type name equals typeName
// case-insensitively.
func (d DiscriminatorInfo) MappingFor(typeName string) (DiscriminatorMapping, bool) {
	for _, m := range d.Mappings {
		if m.Type != nil && strings.EqualFold(m.Type.Name, typeName) {
			return m, true
		}
	}
	return DiscriminatorMapping{}, false
}
