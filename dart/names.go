package dart

import (
	"strings"

	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// memberName returns the identifier of a property, as declared and as
// referenced from method bodies.
func (w *Writer) memberName(p *ir.Property) string {
	name := conventions.CamelCase(p.Name)
	if c := p.Parent; c != nil && w.engine.IsReserved(name) {
		name = w.escapedMembers(c)[p]
	} else {
		name = w.engine.Escape(name, nil)
	}
	return accessPrefix(p.Access) + name
}

// escapedMembers returns the identifiers of the properties of c whose names
// are reserved. A property keeps its reserved name when the escaped form is
// already taken by another member.
func (w *Writer) escapedMembers(c *ir.Class) map[*ir.Property]string {
	if names, ok := w.members.Load(c); ok {
		return names.(map[*ir.Property]string)
	}
	used := make(map[string]bool, len(c.Properties))
	var reserved []*ir.Property
	for _, p := range c.Properties {
		name := conventions.CamelCase(p.Name)
		if w.engine.IsReserved(name) {
			reserved = append(reserved, p)
			continue
		}
		used[name] = true
	}
	names := make(map[*ir.Property]string, len(reserved))
	for _, p := range sorted(reserved, byName) {
		name := w.engine.Escape(conventions.CamelCase(p.Name), used)
		used[name] = true
		names[p] = name
	}
	actual, _ := w.members.LoadOrStore(c, names)
	return actual.(map[*ir.Property]string)
}

// methodName returns the identifier a method is declared and called with.
func (w *Writer) methodName(m *ir.Method, c *ir.Class) string {
	switch m.Kind {
	case ir.MethodRawURLConstructor:
		return conventions.FirstUpper(c.Name) + ".withUrl"
	case ir.MethodConstructor, ir.MethodClientConstructor:
		return conventions.FirstUpper(c.Name)
	}
	return accessPrefix(m.Access) + conventions.FirstLower(m.Name)
}

// correctedEnumName normalizes an enum option name: separated words become
// camel case and all-caps names are lowered.
func correctedEnumName(name string) string {
	if strings.ContainsRune(name, '_') {
		return conventions.CamelCase(strings.ToLower(name))
	}
	for _, r := range name {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return name
		}
	}
	return strings.ToLower(name)
}

func isIllegalEnumMember(name string) bool {
	return strings.EqualFold(name, "string") || strings.EqualFold(name, "index")
}

// enumMemberNames returns the member identifiers of e, in option order.
// Reserved and illegal names are escaped; a name already taken falls back
// to the option's original name.
func (w *Writer) enumMemberNames(e *ir.Enum) []string {
	used := make(map[string]bool, len(e.Options))
	names := make([]string, len(e.Options))
	for i, o := range e.Options {
		name := correctedEnumName(o.Name)
		if w.engine.IsReserved(name) || isIllegalEnumMember(name) {
			name += w.conv.EscapeSuffix
		}
		if used[name] {
			name = o.Name
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// enumMemberFor returns the member identifier matching value, compared
// against option names and wire values case-insensitively.
func (w *Writer) enumMemberFor(e *ir.Enum, value string) string {
	names := w.enumMemberNames(e)
	for i, o := range e.Options {
		if strings.EqualFold(o.Name, value) || strings.EqualFold(o.WireName(), value) {
			return names[i]
		}
	}
	return correctedEnumName(value)
}
