package ir

import "strings"

// Element is any IR node that can request a type to be rendered.
type Element interface {
	// ElementName returns the node's declared name.
	ElementName() string

	// EnclosingClass returns the class whose usings apply to the node.
	// Classes return themselves; enums and namespaces return nil.
	EnclosingClass() *Class

	// EnclosingNamespace returns the closest namespace containing the node.
	EnclosingNamespace() *Namespace
}

// Namespace owns child namespaces, classes and enums.
// The tree is built once upstream and never mutated while rendering.
type Namespace struct {
	// Name is the dot-separated namespace name (e.g. "graph.models").
	Name string

	// Parent is a lookup-only back reference. Nil for the root.
	Parent *Namespace

	// Namespaces contains child namespaces.
	Namespaces []*Namespace

	// Classes contains classes declared in this namespace.
	Classes []*Class

	// Enums contains enums declared in this namespace.
	Enums []*Enum
}

// ElementName returns the namespace name.
func (n *Namespace) ElementName() string { return n.Name }

// EnclosingClass returns nil.
func (n *Namespace) EnclosingClass() *Class { return nil }

// EnclosingNamespace returns n.
func (n *Namespace) EnclosingNamespace() *Namespace { return n }

// Root walks parent links to the root namespace.
func (n *Namespace) Root() *Namespace {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Segments returns the non-empty dot-separated segments of the name.
func (n *Namespace) Segments() []string {
	parts := strings.Split(n.Name, ".")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// LastSegment returns the final segment of the name, or "".
func (n *Namespace) LastSegment() string {
	segments := n.Segments()
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// AddNamespace appends a child namespace and links its parent.
func (n *Namespace) AddNamespace(child *Namespace) *Namespace {
	child.Parent = n
	n.Namespaces = append(n.Namespaces, child)
	return child
}

// AddClass appends a class and links its parent.
func (n *Namespace) AddClass(c *Class) *Class {
	c.Parent = n
	n.Classes = append(n.Classes, c)
	return c
}

// AddEnum appends an enum and links its parent.
func (n *Namespace) AddEnum(e *Enum) *Enum {
	e.Parent = n
	n.Enums = append(n.Enums, e)
	return e
}

// Walk visits n and all descendant namespaces depth-first in declaration order.
// Walking stops early when fn returns false.
func (n *Namespace) Walk(fn func(*Namespace) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Namespaces {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Descendants returns all namespaces below n, depth-first, excluding n.
func (n *Namespace) Descendants() []*Namespace {
	var result []*Namespace
	for _, child := range n.Namespaces {
		result = append(result, child)
		result = append(result, child.Descendants()...)
	}
	return result
}

// FindClass looks up a class by name in n only. Returns nil if not found.
func (n *Namespace) FindClass(name string) *Class {
	for _, c := range n.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindEnum looks up an enum by name in n only. Returns nil if not found.
func (n *Namespace) FindEnum(name string) *Enum {
	for _, e := range n.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}
