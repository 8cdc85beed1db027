package irfile

import (
	"errors"
	"fmt"
	"time"

	"github.com/broady/clientgen/ir"
)

const dateLayout = "2006-01-02"

// Build converts doc into an IR tree.
//
// Building runs in two passes. The first declares every namespace, class and
// enum; the second fills members and links type references. A reference
// resolves, in order, to the definition with that qualified name
// ("api.models.Widget"), to the definition with that name in the referring
// namespace, or to the only definition with that name anywhere in the tree.
// Names matching no definition stay primitive or external references; names
// matching several definitions in other namespaces are errors.
//
// All problems are reported together.
func Build(doc *Document) (*ir.Namespace, error) {
	b := &builder{
		qualified: make(map[string]ir.Definition),
		global:    make(map[string][]ir.Definition),
	}
	root := b.declare(&doc.Namespace)
	b.fill(root, &doc.Namespace)
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return root, nil
}

type builder struct {
	qualified map[string]ir.Definition
	global    map[string][]ir.Definition
	errs      []error
}

func (b *builder) errorf(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

func (b *builder) register(ns *ir.Namespace, def ir.Definition) {
	key := ns.Name + "." + def.ElementName()
	if _, ok := b.qualified[key]; ok {
		b.errorf("duplicate type %s", key)
		return
	}
	b.qualified[key] = def
	b.global[def.ElementName()] = append(b.global[def.ElementName()], def)
}

func (b *builder) declare(doc *Namespace) *ir.Namespace {
	ns := &ir.Namespace{Name: doc.Name}
	for _, cd := range doc.Classes {
		c := ns.AddClass(&ir.Class{Name: cd.Name, Kind: cd.Kind, Implements: cd.Implements})
		b.register(ns, c)
	}
	for _, ed := range doc.Enums {
		e := ns.AddEnum(&ir.Enum{Name: ed.Name, Flags: ed.Flags})
		b.register(ns, e)
	}
	for i := range doc.Namespaces {
		ns.AddNamespace(b.declare(&doc.Namespaces[i]))
	}
	return ns
}

func (b *builder) fill(ns *ir.Namespace, doc *Namespace) {
	for i := range doc.Classes {
		b.fillClass(ns.Classes[i], &doc.Classes[i])
	}
	for i := range doc.Enums {
		b.fillEnum(ns.Enums[i], &doc.Enums[i])
	}
	for i := range doc.Namespaces {
		b.fill(ns.Namespaces[i], &doc.Namespaces[i])
	}
}

func (b *builder) fillClass(c *ir.Class, doc *Class) {
	ns := c.Parent
	where := "class " + ns.Name + "." + c.Name

	c.BaseType = b.resolve(doc.Base, ns, where)
	for _, u := range doc.Usings {
		c.Usings = append(c.Usings, ir.Using{
			Name:        u.Name,
			Alias:       u.Alias,
			Declaration: b.resolve(u.Declaration, ns, where),
			External:    u.External,
		})
	}
	c.Documentation = b.documentation(doc.Documentation, ns, where)
	c.Deprecation = b.deprecation(doc.Deprecation, ns, where)

	if d := doc.Discriminator; d != nil {
		c.Discriminator = ir.DiscriminatorInfo{PropertyName: d.PropertyName, Strategy: d.Strategy}
		for _, m := range d.Mappings {
			c.Discriminator.Mappings = append(c.Discriminator.Mappings, ir.DiscriminatorMapping{
				Key:  m.Key,
				Type: b.resolve(m.Type, ns, where+" discriminator "+m.Key),
			})
		}
	}

	for _, pd := range doc.Properties {
		pwhere := "property " + c.Name + "." + pd.Name
		c.AddProperty(&ir.Property{
			Name:                     pd.Name,
			SerializationName:        pd.SerializationName,
			Kind:                     pd.Kind,
			Type:                     b.resolve(pd.Type, ns, pwhere),
			DefaultValue:             pd.DefaultValue,
			Access:                   pd.Access,
			ExistsInBaseType:         pd.ExistsInBaseType,
			ExistsInExternalBaseType: pd.ExistsInExternalBaseType,
			ReadOnly:                 pd.ReadOnly,
			Documentation:            b.documentation(pd.Documentation, ns, pwhere),
			Deprecation:              b.deprecation(pd.Deprecation, ns, pwhere),
		})
	}

	for _, md := range doc.Methods {
		mwhere := "method " + c.Name + "." + md.Name
		m := &ir.Method{
			Name:                   md.Name,
			Kind:                   md.Kind,
			ReturnType:             b.resolve(md.ReturnType, ns, mwhere),
			Access:                 md.Access,
			IsAsync:                md.Async,
			IsStatic:               md.Static,
			HTTPMethod:             md.HTTPMethod,
			AcceptHeader:           md.AcceptHeader,
			RequestBodyContentType: md.RequestBodyContentType,
			BaseURL:                md.BaseURL,
			SerializerModules:      md.SerializerModules,
			DeserializerModules:    md.DeserializerModules,
			Documentation:          b.documentation(md.Documentation, ns, mwhere),
			Deprecation:            b.deprecation(md.Deprecation, ns, mwhere),
		}
		for _, em := range md.ErrorMappings {
			m.ErrorMappings = append(m.ErrorMappings, ir.ErrorMapping{
				Code: em.Code,
				Type: b.resolve(em.Type, ns, mwhere+" error "+em.Code),
			})
		}
		for i := range md.Parameters {
			m.Parameters = append(m.Parameters, b.parameter(&md.Parameters[i], ns, mwhere))
		}
		c.AddMethod(m)
	}

	if id := doc.Indexer; id != nil {
		iwhere := "indexer " + c.Name + "." + id.Name
		i := &ir.Indexer{
			Name:          id.Name,
			ReturnType:    b.resolve(id.ReturnType, ns, iwhere),
			Documentation: b.documentation(id.Documentation, ns, iwhere),
			Deprecation:   b.deprecation(id.Deprecation, ns, iwhere),
		}
		if id.IndexParameter != nil {
			i.IndexParameter = b.parameter(id.IndexParameter, ns, iwhere)
		}
		c.SetIndexer(i)
	}
}

func (b *builder) parameter(doc *Parameter, ns *ir.Namespace, where string) *ir.Parameter {
	where += " parameter " + doc.Name
	return &ir.Parameter{
		Name:              doc.Name,
		Kind:              doc.Kind,
		Type:              b.resolve(doc.Type, ns, where),
		Optional:          doc.Optional,
		DefaultValue:      doc.DefaultValue,
		SerializationName: doc.SerializationName,
		Documentation:     b.documentation(doc.Documentation, ns, where),
		Deprecation:       b.deprecation(doc.Deprecation, ns, where),
	}
}

func (b *builder) fillEnum(e *ir.Enum, doc *Enum) {
	where := "enum " + e.Parent.Name + "." + e.Name
	for _, o := range doc.Options {
		e.Options = append(e.Options, ir.EnumOption{
			Name:              o.Name,
			SerializationName: o.SerializationName,
			Documentation:     ir.Documentation{Description: o.Description},
		})
	}
	e.Documentation = b.documentation(doc.Documentation, e.Parent, where)
	e.Deprecation = b.deprecation(doc.Deprecation, e.Parent, where)
}

func (b *builder) documentation(doc Documentation, ns *ir.Namespace, where string) ir.Documentation {
	return ir.Documentation{
		Description:    doc.Description,
		Link:           doc.Link,
		Label:          doc.Label,
		TypeReferences: b.references(doc.References, ns, where),
	}
}

func (b *builder) deprecation(doc *Deprecation, ns *ir.Namespace, where string) *ir.Deprecation {
	if doc == nil {
		return nil
	}
	d := &ir.Deprecation{
		Description:    doc.Description,
		Version:        doc.Version,
		TypeReferences: b.references(doc.References, ns, where),
	}
	d.Date = b.date(doc.Date, where+" deprecation date")
	d.RemovalDate = b.date(doc.RemovalDate, where+" removal date")
	return d
}

func (b *builder) date(s, where string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		b.errorf("%s: %w", where, err)
		return nil
	}
	return &t
}

func (b *builder) references(refs map[string]*Type, ns *ir.Namespace, where string) map[string]*ir.TypeRef {
	if len(refs) == 0 {
		return nil
	}
	result := make(map[string]*ir.TypeRef, len(refs))
	for k, t := range refs {
		result[k] = b.resolve(t, ns, where+" reference "+k)
	}
	return result
}

// resolve converts a by-name reference into an ir.TypeRef seen from ns.
func (b *builder) resolve(t *Type, ns *ir.Namespace, where string) *ir.TypeRef {
	if t == nil {
		return nil
	}
	ref := &ir.TypeRef{
		Name:       t.Name,
		Collection: t.Collection,
		Nullable:   t.Nullable,
		ActionOf:   t.ActionOf,
		External:   t.External,
		Composed:   t.Composed,
	}
	for _, g := range t.Generics {
		ref.Generics = append(ref.Generics, b.resolve(g, ns, where))
	}
	for _, m := range t.Types {
		ref.Types = append(ref.Types, b.resolve(m, ns, where))
	}
	if t.External || t.Composed != ir.ComposedNone {
		return ref
	}
	def, err := b.lookup(t.Name, ns)
	if err != nil {
		b.errorf("%s: %w", where, err)
		return ref
	}
	if def != nil {
		ref.Definition = def
		ref.Name = def.ElementName()
	}
	return ref
}

func (b *builder) lookup(name string, ns *ir.Namespace) (ir.Definition, error) {
	if def, ok := b.qualified[name]; ok {
		return def, nil
	}
	if def, ok := b.qualified[ns.Name+"."+name]; ok {
		return def, nil
	}
	switch defs := b.global[name]; len(defs) {
	case 0:
		return nil, nil
	case 1:
		return defs[0], nil
	default:
		return nil, fmt.Errorf("ambiguous type reference %q: declared in %d namespaces", name, len(defs))
	}
}
