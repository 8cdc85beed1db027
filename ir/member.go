package ir

// Method is a class method. HTTP-bound methods carry a verb and request metadata.
type Method struct {
	// Name is the method identifier.
	Name string

	// Kind is the method role.
	Kind MethodKind

	// Parent is the declaring class (lookup only).
	Parent *Class

	// ReturnType is the method result type.
	ReturnType *TypeRef

	// Parameters contains parameters in declaration order.
	Parameters []*Parameter

	// Access is the method visibility.
	Access Access

	// IsAsync marks methods rendered with an async body.
	IsAsync bool

	// IsStatic marks methods rendered as static members.
	IsStatic bool

	// HTTPMethod is the HTTP verb. Empty when the method is not HTTP-bound.
	HTTPMethod HTTPMethod

	// AcceptHeader is the Accept header value, if any.
	AcceptHeader string

	// RequestBodyContentType is the static request body content type.
	RequestBodyContentType string

	// ErrorMappings maps response status codes ("4XX", "404") to error types.
	ErrorMappings []ErrorMapping

	// BaseURL is the default base URL set by client constructors.
	BaseURL string

	// SerializerModules lists serialization writer factories registered by
	// client constructors.
	SerializerModules []string

	// DeserializerModules lists parse node factories registered by client
	// constructors.
	DeserializerModules []string

	// Documentation for this method.
	Documentation Documentation

	// Deprecation is set when the method is deprecated.
	Deprecation *Deprecation
}

// ElementName returns the method name.
func (m *Method) ElementName() string { return m.Name }

// EnclosingClass returns the declaring class.
func (m *Method) EnclosingClass() *Class { return m.Parent }

// EnclosingNamespace returns the declaring class's namespace.
func (m *Method) EnclosingNamespace() *Namespace {
	if m.Parent == nil {
		return nil
	}
	return m.Parent.Parent
}

// ParameterOfKind returns the first parameter of the given kind, or nil.
func (m *Method) ParameterOfKind(kind ParameterKind) *Parameter {
	for _, p := range m.Parameters {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

// ParametersOfKind returns parameters of the given kind in declaration order.
func (m *Method) ParametersOfKind(kind ParameterKind) []*Parameter {
	var result []*Parameter
	for _, p := range m.Parameters {
		if p.Kind == kind {
			result = append(result, p)
		}
	}
	return result
}

// ErrorMapping binds a response status code pattern to an error type.
type ErrorMapping struct {
	// Code is the status code or range ("4XX").
	Code string

	// Type is the error type decoded for that status.
	Type *TypeRef
}

// Parameter is a method parameter.
type Parameter struct {
	// Name is the parameter identifier.
	Name string

	// Kind is the parameter role.
	Kind ParameterKind

	// Parent is the declaring method (lookup only).
	Parent *Method

	// Type is the parameter type.
	Type *TypeRef

	// Optional marks parameters that may be omitted.
	Optional bool

	// DefaultValue is a target-language literal used when omitted.
	DefaultValue string

	// SerializationName is the wire name for path and query parameters.
	SerializationName string

	// Documentation for this parameter.
	Documentation Documentation

	// Deprecation is set when the parameter is deprecated.
	Deprecation *Deprecation
}

// WireName returns SerializationName, falling back to Name.
func (p *Parameter) WireName() string {
	if p.SerializationName != "" {
		return p.SerializationName
	}
	return p.Name
}

// Property is a class property.
type Property struct {
	// Name is the in-memory property name.
	Name string

	// SerializationName is the wire name when it differs from Name.
	SerializationName string

	// Kind is the property role.
	Kind PropertyKind

	// Parent is the declaring class (lookup only).
	Parent *Class

	// Type is the property type.
	Type *TypeRef

	// DefaultValue is a target-language literal assigned by constructors.
	DefaultValue string

	// Access is the property visibility.
	Access Access

	// ExistsInBaseType marks properties redeclared from a generated base type.
	ExistsInBaseType bool

	// ExistsInExternalBaseType marks properties inherited from a runtime base type.
	ExistsInExternalBaseType bool

	// ReadOnly marks properties never written by serializers.
	ReadOnly bool

	// Documentation for this property.
	Documentation Documentation

	// Deprecation is set when the property is deprecated.
	Deprecation *Deprecation
}

// ElementName returns the property name.
func (p *Property) ElementName() string { return p.Name }

// EnclosingClass returns the declaring class.
func (p *Property) EnclosingClass() *Class { return p.Parent }

// EnclosingNamespace returns the declaring class's namespace.
func (p *Property) EnclosingNamespace() *Namespace {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Parent
}

// WireName returns SerializationName, falling back to Name.
func (p *Property) WireName() string {
	if p.SerializationName != "" {
		return p.SerializationName
	}
	return p.Name
}

// IsNameEscaped reports whether the wire name differs from the in-memory name.
func (p *Property) IsNameEscaped() bool {
	return p.SerializationName != "" && p.SerializationName != p.Name
}

// Indexer is a request builder's positional accessor (e.g. items[id]).
type Indexer struct {
	// Name is the indexer identifier.
	Name string

	// Parent is the declaring class (lookup only).
	Parent *Class

	// ReturnType is the request builder returned for an index.
	ReturnType *TypeRef

	// IndexParameter is the index parameter.
	IndexParameter *Parameter

	// Documentation for this indexer.
	Documentation Documentation

	// Deprecation is set when the indexer is deprecated.
	Deprecation *Deprecation
}

// ElementName returns the indexer name.
func (i *Indexer) ElementName() string { return i.Name }

// EnclosingClass returns the declaring class.
func (i *Indexer) EnclosingClass() *Class { return i.Parent }

// EnclosingNamespace returns the declaring class's namespace.
func (i *Indexer) EnclosingNamespace() *Namespace {
	if i.Parent == nil {
		return nil
	}
	return i.Parent.Parent
}

// Enum is an enumeration of wire string values.
type Enum struct {
	// Name is the type identifier.
	Name string

	// Parent is the declaring namespace (lookup only).
	Parent *Namespace

	// Options contains the enum members in declaration order.
	Options []EnumOption

	// Flags marks enums whose values combine.
	Flags bool

	// Documentation for this type.
	Documentation Documentation

	// Deprecation is set when the enum is deprecated.
	Deprecation *Deprecation
}

// ElementName returns the enum name.
func (e *Enum) ElementName() string { return e.Name }

// EnclosingClass returns nil.
func (e *Enum) EnclosingClass() *Class { return nil }

// EnclosingNamespace returns the declaring namespace.
func (e *Enum) EnclosingNamespace() *Namespace { return e.Parent }

func (*Enum) sealed() {}

// EnumOption is a single enum member.
type EnumOption struct {
	// Name is the member name as described upstream.
	Name string

	// SerializationName is the wire value when it differs from Name.
	SerializationName string

	// Documentation for this member.
	Documentation Documentation
}

// WireName returns SerializationName, falling back to Name.
func (o EnumOption) WireName() string {
	if o.SerializationName != "" {
		return o.SerializationName
	}
	return o.Name
}
