package conventions

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/broady/clientgen/ir"
)

// invariant lowercasing, independent of the host locale.
var lowerCaser = cases.Lower(language.Und)

func lower(s string) string { return lowerCaser.String(s) }

// TypeOptions trims parts of a rendered type expression.
// The zero value renders everything.
type TypeOptions struct {
	OmitCollection bool // Drop the collection wrapper
	OmitNullable   bool // Drop the nullable marker
	OmitAction     bool // Drop the callable wrapper
}

// Engine is the type convention engine for one render pass.
//
// An Engine only reads the IR tree and is safe for concurrent use once
// constructed. The namespace segment table is computed on first use; call
// Warm before fanning out to keep the computation off the parallel path.
type Engine struct {
	conv     *Conventions
	nullable map[string]bool
	prims    map[string]bool
	reserved map[string]bool
	contains []string // ContainsSynonyms keys, sorted
	segments func() map[string]bool
}

// NewEngine creates an engine for conv over the tree rooted at root.
// root may be nil, in which case no namespace segments are reserved.
func NewEngine(conv *Conventions, root *ir.Namespace) *Engine {
	e := &Engine{
		conv:     conv,
		nullable: toSet(conv.NullableTypes),
		prims:    toSet(conv.PrimitiveTypes),
		reserved: make(map[string]bool, len(conv.ReservedWords)),
	}
	for _, w := range conv.ReservedWords {
		e.reserved[w] = true
	}
	for k := range conv.ContainsSynonyms {
		e.contains = append(e.contains, k)
	}
	slices.Sort(e.contains)
	e.segments = sync.OnceValue(func() map[string]bool {
		return namespaceSegments(root)
	})
	return e
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[lower(n)] = true
	}
	return set
}

// namespaceSegments collects every dot-separated segment of every namespace
// below root, lowercased.
func namespaceSegments(root *ir.Namespace) map[string]bool {
	set := map[string]bool{"keyvaluepair": true}
	if root == nil {
		return set
	}
	for _, ns := range root.Descendants() {
		for _, s := range ns.Segments() {
			set[lower(s)] = true
		}
	}
	return set
}

// Conventions returns the conventions the engine renders with.
func (e *Engine) Conventions() *Conventions { return e.conv }

// Warm computes the namespace segment table.
func (e *Engine) Warm() { e.segments() }

// IsNamespaceSegment reports whether name collides with a namespace segment.
func (e *Engine) IsNamespaceSegment(name string) bool {
	return e.segments()[lower(name)]
}

// TypeString renders t as seen from target with every part included.
func (e *Engine) TypeString(t *ir.TypeRef, target ir.Element) (string, error) {
	return e.TypeStringWith(t, target, TypeOptions{})
}

// TypeStringWith renders t as seen from target.
// Composed references are structural violations: they must have been
// replaced by wrapper classes before rendering.
func (e *Engine) TypeStringWith(t *ir.TypeRef, target ir.Element, opts TypeOptions) (string, error) {
	if t == nil {
		return "", ir.NewStructuralError(target, "missing type reference")
	}
	if t.IsComposed() {
		return "", ir.NewStructuralError(target,
			"the "+t.Composed.String()+" type "+t.Name+" should have been replaced by a wrapper class before rendering")
	}

	typeName := e.Translate(t)
	if alias := typeAlias(t, target); alias != "" {
		typeName = alias + "." + typeName
	} else if q := e.qualifier(t, target); q != "" {
		typeName = q + "." + typeName
	}

	nullableSuffix := ""
	if !opts.OmitNullable && e.takesNullableMarker(t, typeName) {
		nullableSuffix = e.conv.NullableMarker
	}

	collectionPrefix, collectionSuffix := "", ""
	if !opts.OmitCollection {
		switch t.Collection {
		case ir.CollectionArray:
			collectionPrefix, collectionSuffix = e.conv.ArrayWrapper+"<", ">"
		case ir.CollectionComplex:
			collectionPrefix, collectionSuffix = e.conv.LazyWrapper+"<", ">"
		}
	}

	generics := ""
	if len(t.Generics) > 0 {
		params := make([]string, 0, len(t.Generics))
		for _, g := range t.Generics {
			s, err := e.TypeStringWith(g, target, TypeOptions{OmitCollection: opts.OmitCollection})
			if err != nil {
				return "", err
			}
			params = append(params, s)
		}
		generics = "<" + strings.Join(params, ", ") + ">"
	}

	if t.ActionOf && !opts.OmitAction {
		return e.conv.ActionWrapper + "(" + collectionPrefix + typeName + generics + nullableSuffix + collectionSuffix + ")", nil
	}
	return collectionPrefix + typeName + generics + collectionSuffix + nullableSuffix, nil
}

func (e *Engine) takesNullableMarker(t *ir.TypeRef, typeName string) bool {
	return t.Nullable && (e.nullable[lower(typeName)] || t.Enum() != nil)
}

// Translate maps the semantic name of t to the target type name, without
// qualification, wrappers or markers.
func (e *Engine) Translate(t *ir.TypeRef) string {
	if t.Definition != nil {
		return e.fallback(FirstUpper(t.Definition.ElementName()))
	}
	return e.TranslateName(t.Name)
}

// TranslateName maps an IR type name through the synonym tables.
func (e *Engine) TranslateName(name string) string {
	l := lower(name)
	if s, ok := e.conv.PrimitiveSynonyms[l]; ok {
		return s
	}
	for _, k := range e.contains {
		if strings.Contains(l, k) {
			return e.conv.ContainsSynonyms[k]
		}
	}
	return e.fallback(FirstUpper(name))
}

func (e *Engine) fallback(name string) string {
	if name == "" {
		return e.conv.FallbackTypeName
	}
	return name
}

// IsPrimitive reports whether a rendered type name is read and written as a
// primitive value. A trailing nullable marker or "[]" suffix is ignored.
func (e *Engine) IsPrimitive(typeName string) bool {
	if typeName == "" {
		return false
	}
	typeName = strings.TrimSuffix(typeName, "[]")
	typeName = lower(strings.TrimRight(typeName, e.conv.NullableMarker))
	return e.prims[typeName] || e.nullable[typeName]
}

// IsVoid reports whether a rendered type name is the void type.
func (e *Engine) IsVoid(typeName string) bool {
	return strings.EqualFold(typeName, e.conv.VoidTypeName)
}

// IsStream reports whether t is the raw stream type.
func (e *Engine) IsStream(t *ir.TypeRef) bool {
	return t != nil && t.Definition == nil && strings.EqualFold(t.Name, e.conv.StreamTypeName)
}

// TrimNullable removes a trailing nullable marker.
func (e *Engine) TrimNullable(typeName string) string {
	return strings.TrimSuffix(typeName, e.conv.NullableMarker)
}

// typeAlias returns the import alias under which the class enclosing target
// sees the definition of t, or "".
func typeAlias(t *ir.TypeRef, target ir.Element) string {
	if t.Definition == nil || target == nil {
		return ""
	}
	c := target.EnclosingClass()
	if c == nil {
		return ""
	}
	for _, u := range c.Usings {
		if !u.External && u.Alias != "" && u.Declaration != nil && u.Declaration.Definition == t.Definition {
			return u.Alias
		}
	}
	return ""
}

// qualifier returns the namespace segment that disambiguates a definition
// whose name collides with a namespace segment, or "".
func (e *Engine) qualifier(t *ir.TypeRef, target ir.Element) string {
	if t.Definition == nil || target == nil || !e.IsNamespaceSegment(t.Definition.ElementName()) {
		return ""
	}
	defNS := t.Definition.EnclosingNamespace()
	targetNS := target.EnclosingNamespace()
	if defNS == nil || targetNS == nil || strings.EqualFold(defNS.Name, targetNS.Name) {
		return ""
	}
	return defNS.LastSegment()
}
