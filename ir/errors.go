package ir

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two fatal failure kinds of a render.
var (
	// ErrStructural indicates the IR is missing a shape the writers require.
	// It points at an upstream normalization bug; the render must abort.
	ErrStructural = errors.New("structural invariant violation")

	// ErrUnsupported indicates a construct the selected target does not render.
	// Callers may skip or report it but retrying cannot succeed.
	ErrUnsupported = errors.New("unsupported construct")
)

// StructuralError reports a required IR shape that is absent or malformed.
type StructuralError struct {
	Element string // Qualified element name (e.g. "Users.get")
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(ErrStructural.Error())
	if e.Element != "" {
		b.WriteString(" in ")
		b.WriteString(e.Element)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrStructural.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// NewStructuralError creates a StructuralError for element.
func NewStructuralError(element Element, message string) *StructuralError {
	return &StructuralError{Element: QualifiedName(element), Message: message}
}

// UnsupportedError reports a method or property kind the target cannot render.
type UnsupportedError struct {
	Element string // Qualified element name
	Kind    string // The offending kind (e.g. "getter")
	Target  string // Target identifier (e.g. "dart")
	Message string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrUnsupported.Error())
	if e.Kind != "" {
		b.WriteString(" ")
		b.WriteString(e.Kind)
	}
	if e.Element != "" {
		b.WriteString(" in ")
		b.WriteString(e.Element)
	}
	if e.Target != "" {
		b.WriteString(" for target ")
		b.WriteString(e.Target)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// NewUnsupportedError creates an UnsupportedError for element.
func NewUnsupportedError(element Element, kind fmt.Stringer, target, message string) *UnsupportedError {
	return &UnsupportedError{
		Element: QualifiedName(element),
		Kind:    kind.String(),
		Target:  target,
		Message: message,
	}
}

// QualifiedName returns "Class.member" for members, the plain name for
// classes and enums, and "" for nil.
func QualifiedName(element Element) string {
	if element == nil {
		return ""
	}
	name := element.ElementName()
	if c := element.EnclosingClass(); c != nil && Element(c) != element {
		return c.Name + "." + name
	}
	return name
}
