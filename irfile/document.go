// Package irfile loads IR trees from YAML or JSON documents.
//
// A document describes one root namespace. Type references name their
// definitions; Load links them to the declared classes and enums once the
// whole tree is known.
package irfile

import (
	"github.com/broady/clientgen/ir"
)

// Document is the top-level shape of an IR file.
type Document struct {
	Namespace Namespace `yaml:"namespace" json:"namespace"`
}

// Namespace mirrors ir.Namespace.
type Namespace struct {
	Name       string      `yaml:"name" json:"name"`
	Namespaces []Namespace `yaml:"namespaces,omitempty" json:"namespaces,omitempty"`
	Classes    []Class     `yaml:"classes,omitempty" json:"classes,omitempty"`
	Enums      []Enum      `yaml:"enums,omitempty" json:"enums,omitempty"`
}

// Class mirrors ir.Class.
type Class struct {
	Name          string         `yaml:"name" json:"name"`
	Kind          ir.ClassKind   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Base          *Type          `yaml:"base,omitempty" json:"base,omitempty"`
	Implements    []string       `yaml:"implements,omitempty" json:"implements,omitempty"`
	Usings        []Using        `yaml:"usings,omitempty" json:"usings,omitempty"`
	Properties    []Property     `yaml:"properties,omitempty" json:"properties,omitempty"`
	Methods       []Method       `yaml:"methods,omitempty" json:"methods,omitempty"`
	Indexer       *Indexer       `yaml:"indexer,omitempty" json:"indexer,omitempty"`
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	Documentation `yaml:",inline" json:",inline"`
	Deprecation   *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// Using mirrors ir.Using.
type Using struct {
	Name        string `yaml:"name" json:"name"`
	Alias       string `yaml:"alias,omitempty" json:"alias,omitempty"`
	Declaration *Type  `yaml:"declaration,omitempty" json:"declaration,omitempty"`
	External    bool   `yaml:"external,omitempty" json:"external,omitempty"`
}

// Property mirrors ir.Property.
type Property struct {
	Name                     string          `yaml:"name" json:"name"`
	SerializationName        string          `yaml:"serializationName,omitempty" json:"serializationName,omitempty"`
	Kind                     ir.PropertyKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Type                     *Type           `yaml:"type" json:"type"`
	DefaultValue             string          `yaml:"default,omitempty" json:"default,omitempty"`
	Access                   ir.Access       `yaml:"access,omitempty" json:"access,omitempty"`
	ExistsInBaseType         bool            `yaml:"existsInBaseType,omitempty" json:"existsInBaseType,omitempty"`
	ExistsInExternalBaseType bool            `yaml:"existsInExternalBaseType,omitempty" json:"existsInExternalBaseType,omitempty"`
	ReadOnly                 bool            `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Documentation            `yaml:",inline" json:",inline"`
	Deprecation              *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// Method mirrors ir.Method.
type Method struct {
	Name                   string          `yaml:"name" json:"name"`
	Kind                   ir.MethodKind   `yaml:"kind,omitempty" json:"kind,omitempty"`
	ReturnType             *Type           `yaml:"returns" json:"returns"`
	Parameters             []Parameter     `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Access                 ir.Access       `yaml:"access,omitempty" json:"access,omitempty"`
	Async                  bool            `yaml:"async,omitempty" json:"async,omitempty"`
	Static                 bool            `yaml:"static,omitempty" json:"static,omitempty"`
	HTTPMethod             ir.HTTPMethod   `yaml:"httpMethod,omitempty" json:"httpMethod,omitempty"`
	AcceptHeader           string          `yaml:"accept,omitempty" json:"accept,omitempty"`
	RequestBodyContentType string          `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	ErrorMappings          []ErrorMapping  `yaml:"errors,omitempty" json:"errors,omitempty"`
	BaseURL                string          `yaml:"baseUrl,omitempty" json:"baseUrl,omitempty"`
	SerializerModules      []string        `yaml:"serializers,omitempty" json:"serializers,omitempty"`
	DeserializerModules    []string        `yaml:"deserializers,omitempty" json:"deserializers,omitempty"`
	Documentation          `yaml:",inline" json:",inline"`
	Deprecation            *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// ErrorMapping mirrors ir.ErrorMapping.
type ErrorMapping struct {
	Code string `yaml:"code" json:"code"`
	Type *Type  `yaml:"type" json:"type"`
}

// Parameter mirrors ir.Parameter.
type Parameter struct {
	Name              string           `yaml:"name" json:"name"`
	Kind              ir.ParameterKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Type              *Type            `yaml:"type" json:"type"`
	Optional          bool             `yaml:"optional,omitempty" json:"optional,omitempty"`
	DefaultValue      string           `yaml:"default,omitempty" json:"default,omitempty"`
	SerializationName string           `yaml:"serializationName,omitempty" json:"serializationName,omitempty"`
	Documentation     `yaml:",inline" json:",inline"`
	Deprecation       *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// Indexer mirrors ir.Indexer.
type Indexer struct {
	Name           string     `yaml:"name" json:"name"`
	ReturnType     *Type      `yaml:"returns" json:"returns"`
	IndexParameter *Parameter `yaml:"parameter" json:"parameter"`
	Documentation  `yaml:",inline" json:",inline"`
	Deprecation    *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// Discriminator mirrors ir.DiscriminatorInfo.
type Discriminator struct {
	PropertyName string        `yaml:"property,omitempty" json:"property,omitempty"`
	Strategy     ir.Strategy   `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Mappings     []TypeMapping `yaml:"mappings,omitempty" json:"mappings,omitempty"`
}

// TypeMapping binds a discriminator value to a type.
type TypeMapping struct {
	Key  string `yaml:"key" json:"key"`
	Type *Type  `yaml:"type" json:"type"`
}

// Enum mirrors ir.Enum.
type Enum struct {
	Name          string   `yaml:"name" json:"name"`
	Options       []Option `yaml:"options,omitempty" json:"options,omitempty"`
	Flags         bool     `yaml:"flags,omitempty" json:"flags,omitempty"`
	Documentation `yaml:",inline" json:",inline"`
	Deprecation   *Deprecation `yaml:"deprecation,omitempty" json:"deprecation,omitempty"`
}

// Option mirrors ir.EnumOption.
type Option struct {
	Name              string `yaml:"name" json:"name"`
	SerializationName string `yaml:"serializationName,omitempty" json:"serializationName,omitempty"`
	Description       string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Documentation is embedded by every documented element.
type Documentation struct {
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Link        string           `yaml:"link,omitempty" json:"link,omitempty"`
	Label       string           `yaml:"label,omitempty" json:"label,omitempty"`
	References  map[string]*Type `yaml:"references,omitempty" json:"references,omitempty"`
}

// Deprecation mirrors ir.Deprecation. Dates use the 2006-01-02 layout.
type Deprecation struct {
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string           `yaml:"version,omitempty" json:"version,omitempty"`
	Date        string           `yaml:"date,omitempty" json:"date,omitempty"`
	RemovalDate string           `yaml:"removalDate,omitempty" json:"removalDate,omitempty"`
	References  map[string]*Type `yaml:"references,omitempty" json:"references,omitempty"`
}

// Type is a by-name type reference.
type Type struct {
	Name       string            `yaml:"name" json:"name"`
	Collection ir.CollectionKind `yaml:"collection,omitempty" json:"collection,omitempty"`
	Nullable   bool              `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ActionOf   bool              `yaml:"actionOf,omitempty" json:"actionOf,omitempty"`
	External   bool              `yaml:"external,omitempty" json:"external,omitempty"`
	Generics   []*Type           `yaml:"generics,omitempty" json:"generics,omitempty"`
	Composed   ir.ComposedKind   `yaml:"composed,omitempty" json:"composed,omitempty"`
	Types      []*Type           `yaml:"types,omitempty" json:"types,omitempty"`
}
