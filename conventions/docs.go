package conventions

import (
	"github.com/broady/clientgen/ir"
)

const dateLayout = "2006-01-02"

// Description renders doc's description with type placeholders resolved as
// seen from target.
func (e *Engine) Description(doc ir.Documentation, target ir.Element) (string, error) {
	return doc.Render(func(t *ir.TypeRef) (string, error) {
		return e.TypeString(t, target)
	}, e.conv.ReferencePrefix, e.conv.ReferenceSuffix)
}

// DeprecationText renders the deprecation message of d, followed by the
// version, date and removal date when present. It returns "" for nil.
func (e *Engine) DeprecationText(d *ir.Deprecation, target ir.Element) (string, error) {
	if d == nil {
		return "", nil
	}
	text, err := d.Text().Render(func(t *ir.TypeRef) (string, error) {
		return e.TypeString(t, target)
	}, "", "")
	if err != nil {
		return "", err
	}
	if d.Version != "" {
		text += " as of " + d.Version
	}
	if d.Date != nil {
		text += " on " + d.Date.Format(dateLayout)
	}
	if d.RemovalDate != nil {
		text += " and will be removed " + d.RemovalDate.Format(dateLayout)
	}
	return text, nil
}
