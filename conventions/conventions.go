// Package conventions holds the per-target conventions value and the type
// convention engine that maps IR type references to target type expressions.
package conventions

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/broady/clientgen/ir"
)

var (
	validate        = validator.New()
	overrideDecoder = newOverrideDecoder()
)

func newOverrideDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// AccessModifierFunc renders the keyword for an access level. It may return "".
type AccessModifierFunc func(ir.Access) string

// ParameterSignatureFunc renders one parameter of a method prototype.
type ParameterSignatureFunc func(e *Engine, p *ir.Parameter, target ir.Element) (string, error)

// Conventions describes how a target language spells types and members.
// Target-specific behavior is data here plus the two renderer functions.
type Conventions struct {
	// Target is the target identifier (e.g. "dart").
	Target string `validate:"required"`

	// StreamTypeName is the IR name of raw byte streams.
	StreamTypeName string `validate:"required"`

	// VoidTypeName is the rendered name of the empty return type.
	VoidTypeName string `validate:"required"`

	// DocCommentPrefix starts every documentation line (e.g. "/// ").
	DocCommentPrefix string `validate:"required"`

	// NullableMarker is appended to nullable primitive and enum types.
	NullableMarker string `validate:"required,len=1"`

	// NullableTypes lists translated type names (lowercase) that take the
	// nullable marker.
	NullableTypes []string `validate:"dive,required,lowercase"`

	// PrimitiveTypes lists translated type names (lowercase) that are read
	// and written as primitive values in addition to NullableTypes.
	PrimitiveTypes []string `validate:"dive,required,lowercase"`

	// PrimitiveSynonyms maps lowercase IR type names to target type names.
	PrimitiveSynonyms map[string]string `validate:"required,dive,keys,required,lowercase,endkeys,required"`

	// ContainsSynonyms maps lowercase substrings to a target type name. They
	// apply when no exact synonym matches, in key order.
	ContainsSynonyms map[string]string `validate:"dive,keys,required,lowercase,endkeys,required"`

	// FallbackTypeName replaces empty type names.
	FallbackTypeName string `validate:"required"`

	// ByteSequenceTypeName is the translated name of binary payloads.
	ByteSequenceTypeName string `validate:"required"`

	// StringTypeName is the translated name of strings.
	StringTypeName string `validate:"required"`

	// ArrayWrapper wraps fixed-size collections (e.g. "List").
	ArrayWrapper string `validate:"required"`

	// LazyWrapper wraps lazily produced collections (e.g. "Iterable").
	LazyWrapper string `validate:"required"`

	// ActionWrapper wraps callable references (e.g. "Function").
	ActionWrapper string `validate:"required"`

	// ReferencePrefix and ReferenceSuffix surround type references in
	// documentation text.
	ReferencePrefix string
	ReferenceSuffix string

	// ReservedWords are identifiers that must be escaped.
	ReservedWords []string

	// EscapeSuffix is appended to reserved identifiers.
	EscapeSuffix string `validate:"required"`

	// AccessModifier renders access keywords.
	AccessModifier AccessModifierFunc `validate:"required"`

	// ParameterSignature renders a parameter declaration.
	ParameterSignature ParameterSignatureFunc `validate:"required"`
}

// Validate checks that every required field is set.
func (c *Conventions) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid %s conventions: %w", c.Target, err)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Conventions) Clone() *Conventions {
	result := *c
	result.NullableTypes = slices.Clone(c.NullableTypes)
	result.PrimitiveTypes = slices.Clone(c.PrimitiveTypes)
	result.PrimitiveSynonyms = maps.Clone(c.PrimitiveSynonyms)
	result.ContainsSynonyms = maps.Clone(c.ContainsSynonyms)
	result.ReservedWords = slices.Clone(c.ReservedWords)
	return &result
}

// Overrides are user-supplied replacements for conventions values.
// They are decoded from key=value pairs such as those given to --set.
type Overrides struct {
	StreamTypeName   string   `schema:"streamTypeName"`
	VoidTypeName     string   `schema:"voidTypeName"`
	DocCommentPrefix string   `schema:"docCommentPrefix"`
	NullableMarker   string   `schema:"nullableMarker"`
	Synonyms         []string `schema:"synonym"` // "from:to"
}

// ApplyOverrides returns a copy of c with the overrides in values applied.
// Unknown keys and malformed synonyms are errors. The result is validated.
func ApplyOverrides(c *Conventions, values url.Values) (*Conventions, error) {
	result := c.Clone()
	if len(values) == 0 {
		return result, nil
	}

	var o Overrides
	if err := overrideDecoder.Decode(&o, values); err != nil {
		return nil, fmt.Errorf("decode overrides: %w", err)
	}

	if o.StreamTypeName != "" {
		result.StreamTypeName = o.StreamTypeName
	}
	if o.VoidTypeName != "" {
		result.VoidTypeName = o.VoidTypeName
	}
	if o.DocCommentPrefix != "" {
		result.DocCommentPrefix = o.DocCommentPrefix
	}
	if o.NullableMarker != "" {
		result.NullableMarker = o.NullableMarker
	}
	if len(o.Synonyms) > 0 && result.PrimitiveSynonyms == nil {
		result.PrimitiveSynonyms = make(map[string]string)
	}
	for _, s := range o.Synonyms {
		from, to, ok := strings.Cut(s, ":")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid synonym %q: expected from:to", s)
		}
		result.PrimitiveSynonyms[lower(from)] = to
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseOverrides parses "key=value" pairs into url.Values.
func ParseOverrides(pairs []string) (url.Values, error) {
	values := make(url.Values)
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", p)
		}
		values.Add(k, v)
	}
	return values, nil
}
