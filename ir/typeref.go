package ir

// Definition is a named type declared in the IR tree: a *Class or an *Enum.
type Definition interface {
	Element

	sealed()
}

// TypeRef is a reference to a type from a property, parameter, return value or
// discriminator mapping. It never owns the definition it points at.
type TypeRef struct {
	// Name is the semantic type name: a primitive tag ("string", "int64",
	// "binary"), a definition name, or an external type name.
	Name string

	// Definition links the referenced Class or Enum.
	// Nil for primitives and external types.
	Definition Definition

	// Collection selects the collection wrapper.
	Collection CollectionKind

	// Nullable marks the reference as accepting null.
	Nullable bool

	// ActionOf marks a callable taking the referenced type.
	ActionOf bool

	// External marks a type provided by a runtime library.
	External bool

	// Generics contains generic type-parameter values, in order.
	Generics []*TypeRef

	// Composed marks a union or intersection of Types. Writers reject these.
	Composed ComposedKind

	// Types contains the members of a composed reference.
	Types []*TypeRef
}

// IsCollection reports whether the reference is wrapped in a collection.
func (t *TypeRef) IsCollection() bool { return t != nil && t.Collection != CollectionNone }

// IsComposed reports whether the reference is a union or intersection.
func (t *TypeRef) IsComposed() bool { return t != nil && t.Composed != ComposedNone }

// Class returns the referenced class, or nil.
func (t *TypeRef) Class() *Class {
	if t == nil {
		return nil
	}
	c, _ := t.Definition.(*Class)
	return c
}

// Enum returns the referenced enum, or nil.
func (t *TypeRef) Enum() *Enum {
	if t == nil {
		return nil
	}
	e, _ := t.Definition.(*Enum)
	return e
}

// IsObject reports whether the reference points at a class and is not a collection.
func (t *TypeRef) IsObject() bool { return t.Class() != nil && !t.IsCollection() }

// Ref returns a reference to a definition.
func Ref(def Definition) *TypeRef {
	return &TypeRef{Name: def.ElementName(), Definition: def}
}

// Primitive returns a reference to a primitive or external type name.
func Primitive(name string) *TypeRef {
	return &TypeRef{Name: name}
}

// AsNullable returns a copy of t marked nullable.
func (t *TypeRef) AsNullable() *TypeRef {
	c := *t
	c.Nullable = true
	return &c
}

// AsCollection returns a copy of t wrapped in the given collection kind.
func (t *TypeRef) AsCollection(kind CollectionKind) *TypeRef {
	c := *t
	c.Collection = kind
	return &c
}
