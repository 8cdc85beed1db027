package ir

import (
	"fmt"
	"strings"
)

// ClassKind identifies the role a class plays in the generated client.
type ClassKind int

const (
	ClassCustom               ClassKind = iota
	ClassModel                          // Serializable model type
	ClassRequestBuilder                 // Fluent request builder bound to a URL template
	ClassErrorDefinition                // Model raised as an API exception
	ClassRequestConfiguration           // Per-request options holder
	ClassQueryParameters                // Query parameter holder
	ClassBarrel                         // Re-export unit
	classKindCount
)

var classKindNames = [...]string{
	ClassCustom:               "custom",
	ClassModel:                "model",
	ClassRequestBuilder:       "requestBuilder",
	ClassErrorDefinition:      "errorDefinition",
	ClassRequestConfiguration: "requestConfiguration",
	ClassQueryParameters:      "queryParameters",
	ClassBarrel:               "barrel",
}

// String returns the string representation of the class kind.
func (k ClassKind) String() string { return kindName(classKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k ClassKind) MarshalText() ([]byte, error) { return marshalKind(classKindNames[:], int(k), "class") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ClassKind) UnmarshalText(text []byte) error {
	return unmarshalKind(classKindNames[:], text, "class", (*int)(k))
}

// MethodKind identifies the semantic role of a method. Writers dispatch on it
// with a switch that names every kind.
type MethodKind int

const (
	MethodCustom MethodKind = iota
	MethodConstructor
	MethodClientConstructor
	MethodRawURLConstructor
	MethodSerializer
	MethodDeserializer
	MethodRequestGenerator
	MethodRequestExecutor
	MethodFactory
	MethodRawURLBuilder
	MethodRequestBuilderWithParameters
	MethodGetter
	MethodSetter
	MethodRequestBuilderBackwardCompatibility
	MethodErrorMessageOverride
	MethodCommandBuilder
	MethodComposedTypeMarker
	methodKindCount
)

var methodKindNames = [...]string{
	MethodCustom:                              "custom",
	MethodConstructor:                         "constructor",
	MethodClientConstructor:                   "clientConstructor",
	MethodRawURLConstructor:                   "rawUrlConstructor",
	MethodSerializer:                          "serializer",
	MethodDeserializer:                        "deserializer",
	MethodRequestGenerator:                    "requestGenerator",
	MethodRequestExecutor:                     "requestExecutor",
	MethodFactory:                             "factory",
	MethodRawURLBuilder:                       "rawUrlBuilder",
	MethodRequestBuilderWithParameters:        "requestBuilderWithParameters",
	MethodGetter:                              "getter",
	MethodSetter:                              "setter",
	MethodRequestBuilderBackwardCompatibility: "requestBuilderBackwardCompatibility",
	MethodErrorMessageOverride:                "errorMessageOverride",
	MethodCommandBuilder:                      "commandBuilder",
	MethodComposedTypeMarker:                  "composedTypeMarker",
}

// MethodKinds returns every defined method kind in declaration order.
func MethodKinds() []MethodKind {
	kinds := make([]MethodKind, 0, methodKindCount)
	for k := MethodKind(0); k < methodKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the string representation of the method kind.
func (k MethodKind) String() string { return kindName(methodKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k MethodKind) MarshalText() ([]byte, error) {
	return marshalKind(methodKindNames[:], int(k), "method")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MethodKind) UnmarshalText(text []byte) error {
	return unmarshalKind(methodKindNames[:], text, "method", (*int)(k))
}

// IsConstructor reports whether the kind renders as a constructor.
func (k MethodKind) IsConstructor() bool {
	return k == MethodConstructor || k == MethodClientConstructor || k == MethodRawURLConstructor
}

// PropertyKind identifies the semantic role of a property.
type PropertyKind int

const (
	PropertyCustom PropertyKind = iota
	PropertyRequestBuilder
	PropertyAdditionalData
	PropertyBackingStore
	PropertyRequestAdapter
	PropertyPathParameters
	PropertyURLTemplate
	PropertyQueryParameter
	PropertyQueryParameters
	PropertyHeaders
	PropertyOptions
	PropertyErrorMessageOverride
	propertyKindCount
)

var propertyKindNames = [...]string{
	PropertyCustom:               "custom",
	PropertyRequestBuilder:       "requestBuilder",
	PropertyAdditionalData:       "additionalData",
	PropertyBackingStore:         "backingStore",
	PropertyRequestAdapter:       "requestAdapter",
	PropertyPathParameters:       "pathParameters",
	PropertyURLTemplate:          "urlTemplate",
	PropertyQueryParameter:       "queryParameter",
	PropertyQueryParameters:      "queryParameters",
	PropertyHeaders:              "headers",
	PropertyOptions:              "options",
	PropertyErrorMessageOverride: "errorMessageOverride",
}

// String returns the string representation of the property kind.
func (k PropertyKind) String() string { return kindName(propertyKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k PropertyKind) MarshalText() ([]byte, error) {
	return marshalKind(propertyKindNames[:], int(k), "property")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PropertyKind) UnmarshalText(text []byte) error {
	return unmarshalKind(propertyKindNames[:], text, "property", (*int)(k))
}

// ParameterKind identifies the semantic role of a method parameter.
type ParameterKind int

const (
	ParameterCustom ParameterKind = iota
	ParameterRequestAdapter
	ParameterPathParameters
	ParameterRawURL
	ParameterPath
	ParameterRequestBody
	ParameterRequestBodyContentType
	ParameterRequestConfiguration
	ParameterSerializer
	ParameterBackingStore
	ParameterSetterValue
	ParameterParseNode
	ParameterQueryParameter
	ParameterHeaders
	ParameterOptions
	parameterKindCount
)

var parameterKindNames = [...]string{
	ParameterCustom:                 "custom",
	ParameterRequestAdapter:         "requestAdapter",
	ParameterPathParameters:         "pathParameters",
	ParameterRawURL:                 "rawUrl",
	ParameterPath:                   "path",
	ParameterRequestBody:            "requestBody",
	ParameterRequestBodyContentType: "requestBodyContentType",
	ParameterRequestConfiguration:   "requestConfiguration",
	ParameterSerializer:             "serializer",
	ParameterBackingStore:           "backingStore",
	ParameterSetterValue:            "setterValue",
	ParameterParseNode:              "parseNode",
	ParameterQueryParameter:         "queryParameter",
	ParameterHeaders:                "headers",
	ParameterOptions:                "options",
}

// String returns the string representation of the parameter kind.
func (k ParameterKind) String() string { return kindName(parameterKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k ParameterKind) MarshalText() ([]byte, error) {
	return marshalKind(parameterKindNames[:], int(k), "parameter")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ParameterKind) UnmarshalText(text []byte) error {
	return unmarshalKind(parameterKindNames[:], text, "parameter", (*int)(k))
}

// CollectionKind selects the collection wrapper of a type reference.
type CollectionKind int

const (
	CollectionNone    CollectionKind = iota
	CollectionArray                  // Fixed-size sequence
	CollectionComplex                // Lazily produced sequence
	collectionKindCount
)

var collectionKindNames = [...]string{
	CollectionNone:    "none",
	CollectionArray:   "array",
	CollectionComplex: "complex",
}

// String returns the string representation of the collection kind.
func (k CollectionKind) String() string { return kindName(collectionKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k CollectionKind) MarshalText() ([]byte, error) {
	return marshalKind(collectionKindNames[:], int(k), "collection")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CollectionKind) UnmarshalText(text []byte) error {
	return unmarshalKind(collectionKindNames[:], text, "collection", (*int)(k))
}

// Strategy selects how a model class resolves its concrete shape from the wire.
// A class carries exactly one strategy, so at most one is ever active.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyInherited
	StrategyUnion
	StrategyIntersection
	strategyCount
)

var strategyNames = [...]string{
	StrategyNone:         "none",
	StrategyInherited:    "inherited",
	StrategyUnion:        "union",
	StrategyIntersection: "intersection",
}

// String returns the string representation of the strategy.
func (s Strategy) String() string { return kindName(strategyNames[:], int(s)) }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return marshalKind(strategyNames[:], int(s), "strategy")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	return unmarshalKind(strategyNames[:], text, "strategy", (*int)(s))
}

// ComposedKind marks a type reference as a composition of several types.
// Composed references are eliminated upstream; one reaching a writer is a
// structural violation.
type ComposedKind int

const (
	ComposedNone ComposedKind = iota
	ComposedUnion
	ComposedIntersection
	composedKindCount
)

var composedKindNames = [...]string{
	ComposedNone:         "none",
	ComposedUnion:        "union",
	ComposedIntersection: "intersection",
}

// String returns the string representation of the composed kind.
func (k ComposedKind) String() string { return kindName(composedKindNames[:], int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k ComposedKind) MarshalText() ([]byte, error) {
	return marshalKind(composedKindNames[:], int(k), "composed")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ComposedKind) UnmarshalText(text []byte) error {
	return unmarshalKind(composedKindNames[:], text, "composed", (*int)(k))
}

// Access is the visibility of a class member.
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessPrivate
	accessCount
)

var accessNames = [...]string{
	AccessPublic:    "public",
	AccessProtected: "protected",
	AccessPrivate:   "private",
}

// String returns the string representation of the access level.
func (a Access) String() string { return kindName(accessNames[:], int(a)) }

// MarshalText implements encoding.TextMarshaler.
func (a Access) MarshalText() ([]byte, error) { return marshalKind(accessNames[:], int(a), "access") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Access) UnmarshalText(text []byte) error {
	return unmarshalKind(accessNames[:], text, "access", (*int)(a))
}

// HTTPMethod is an HTTP verb. The zero value means the method is not HTTP-bound.
type HTTPMethod string

const (
	HTTPGet     HTTPMethod = "GET"
	HTTPPost    HTTPMethod = "POST"
	HTTPPut     HTTPMethod = "PUT"
	HTTPPatch   HTTPMethod = "PATCH"
	HTTPDelete  HTTPMethod = "DELETE"
	HTTPHead    HTTPMethod = "HEAD"
	HTTPOptions HTTPMethod = "OPTIONS"
	HTTPTrace   HTTPMethod = "TRACE"
	HTTPConnect HTTPMethod = "CONNECT"
)

// UnmarshalText implements encoding.TextUnmarshaler. Verbs are case-insensitive.
func (m *HTTPMethod) UnmarshalText(text []byte) error {
	v := HTTPMethod(strings.ToUpper(string(text)))
	switch v {
	case "", HTTPGet, HTTPPost, HTTPPut, HTTPPatch, HTTPDelete, HTTPHead, HTTPOptions, HTTPTrace, HTTPConnect:
		*m = v
		return nil
	default:
		return fmt.Errorf("unknown http method: %q", string(text))
	}
}

func kindName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

func marshalKind(names []string, i int, what string) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("unknown %s kind: %d", what, i)
	}
	return []byte(names[i]), nil
}

// unmarshalKind matches names case-insensitively; an empty value selects the zero kind.
func unmarshalKind(names []string, text []byte, what string, dst *int) error {
	s := string(text)
	if s == "" {
		*dst = 0
		return nil
	}
	for i, name := range names {
		if strings.EqualFold(name, s) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s kind: %q", what, s)
}
