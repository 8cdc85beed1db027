package ir

import (
	"sort"
	"strings"
	"time"
)

// Documentation holds the descriptive text attached to an element.
type Documentation struct {
	// Description is the element description. It may contain {Key}
	// placeholders bound in TypeReferences.
	Description string

	// Link is an external documentation URL.
	Link string

	// Label is the display text for Link.
	Label string

	// TypeReferences binds description placeholders to types.
	TypeReferences map[string]*TypeRef
}

// IsZero reports whether the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Description == "" && d.Link == ""
}

// HasDescription reports whether a description is present.
func (d Documentation) HasDescription() bool {
	return strings.TrimSpace(d.Description) != ""
}

// HasLink reports whether an external documentation link is present.
func (d Documentation) HasLink() bool { return d.Link != "" }

// Render returns the description with every {Key} placeholder replaced by
// prefix + resolve(type) + suffix. Unbound placeholders are left as is.
func (d Documentation) Render(resolve func(*TypeRef) (string, error), prefix, suffix string) (string, error) {
	text := strings.TrimSpace(d.Description)
	if len(d.TypeReferences) == 0 {
		return text, nil
	}
	// Substitute in a fixed order so output does not depend on map iteration.
	keys := make([]string, 0, len(d.TypeReferences))
	for k := range d.TypeReferences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		placeholder := "{" + k + "}"
		if !strings.Contains(text, placeholder) {
			continue
		}
		name, err := resolve(d.TypeReferences[k])
		if err != nil {
			return "", err
		}
		text = strings.ReplaceAll(text, placeholder, prefix+name+suffix)
	}
	return text, nil
}

// Deprecation describes a deprecated element.
type Deprecation struct {
	// Description explains the deprecation. It may contain {Key}
	// placeholders bound in TypeReferences.
	Description string

	// Version is the version that deprecated the element.
	Version string

	// Date is the deprecation date.
	Date *time.Time

	// RemovalDate is the planned removal date.
	RemovalDate *time.Time

	// TypeReferences binds description placeholders to types.
	TypeReferences map[string]*TypeRef
}

// Text returns the deprecation description as Documentation so placeholders
// render the same way.
func (d *Deprecation) Text() Documentation {
	return Documentation{Description: d.Description, TypeReferences: d.TypeReferences}
}
