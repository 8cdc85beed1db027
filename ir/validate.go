package ir

import "strings"

// ValidationError represents an IR diagnostic found by Validate.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the tree rooted at n for shapes the writers will reject.
// Returns all validation errors found (not just the first).
// Rendering does not call Validate; writers report the same problems as
// fatal errors for the class they occur in.
func (n *Namespace) Validate() []error {
	var errs []*ValidationError

	n.Walk(func(ns *Namespace) bool {
		errs = append(errs, validateNamespace(ns)...)
		return true
	})

	var result []error
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}

func validateNamespace(ns *Namespace) []*ValidationError {
	var errs []*ValidationError

	names := make(map[string]bool)
	for _, child := range ns.Namespaces {
		if child.Parent != ns {
			errs = append(errs, &ValidationError{
				Code:    "dangling_parent",
				Message: "namespace " + child.Name + " is not linked to its parent " + ns.Name,
			})
		}
	}
	for _, e := range ns.Enums {
		if names[e.Name] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate type name: " + e.Name + " (namespace: " + ns.Name + ")",
			})
		}
		names[e.Name] = true
		if e.Parent != ns {
			errs = append(errs, &ValidationError{
				Code:    "dangling_parent",
				Message: "enum " + e.Name + " is not linked to namespace " + ns.Name,
			})
		}
	}
	for _, c := range ns.Classes {
		if names[c.Name] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate type name: " + c.Name + " (namespace: " + ns.Name + ")",
			})
		}
		names[c.Name] = true
		if c.Parent != ns {
			errs = append(errs, &ValidationError{
				Code:    "dangling_parent",
				Message: "class " + c.Name + " is not linked to namespace " + ns.Name,
			})
		}
		errs = append(errs, validateClass(c)...)
	}
	return errs
}

func validateClass(c *Class) []*ValidationError {
	var errs []*ValidationError

	errs = append(errs, validateDiscriminator(c)...)

	for _, p := range c.Properties {
		if p.Parent != c {
			errs = append(errs, &ValidationError{
				Code:    "dangling_parent",
				Message: "property " + c.Name + "." + p.Name + " is not linked to its class",
			})
		}
		errs = append(errs, validateTypeRef(p.Type, "property "+c.Name+"."+p.Name)...)
	}

	for _, m := range c.Methods {
		context := "method " + c.Name + "." + m.Name
		if m.Parent != c {
			errs = append(errs, &ValidationError{
				Code:    "dangling_parent",
				Message: context + " is not linked to its class",
			})
		}
		if m.ReturnType == nil {
			errs = append(errs, &ValidationError{
				Code:    "missing_return_type",
				Message: context + " has no return type",
			})
		}
		errs = append(errs, validateTypeRef(m.ReturnType, context+" return")...)
		if (m.Kind == MethodRequestExecutor || m.Kind == MethodRequestGenerator) && m.HTTPMethod == "" {
			errs = append(errs, &ValidationError{
				Code:    "missing_http_method",
				Message: context + " is HTTP-bound but has no HTTP method",
			})
		}
		for _, p := range m.Parameters {
			errs = append(errs, validateTypeRef(p.Type, context+" parameter "+p.Name)...)
		}
	}

	if c.Indexer != nil && c.Indexer.IndexParameter == nil {
		errs = append(errs, &ValidationError{
			Code:    "missing_index_parameter",
			Message: "indexer " + c.Name + "." + c.Indexer.Name + " has no index parameter",
		})
	}

	return errs
}

func validateDiscriminator(c *Class) []*ValidationError {
	var errs []*ValidationError
	d := c.Discriminator

	if (d.Strategy == StrategyInherited || d.Strategy == StrategyUnion) && d.PropertyName == "" {
		errs = append(errs, &ValidationError{
			Code:    "missing_discriminator_property",
			Message: "class " + c.Name + " uses the " + d.Strategy.String() + " strategy without a discriminator property",
		})
	}

	keys := make(map[string]bool)
	for _, m := range d.Mappings {
		folded := strings.ToLower(m.Key)
		if keys[folded] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_discriminator_key",
				Message: "class " + c.Name + " maps discriminator value " + m.Key + " more than once",
			})
		}
		keys[folded] = true
		if m.Type == nil {
			errs = append(errs, &ValidationError{
				Code:    "missing_mapping_type",
				Message: "class " + c.Name + " maps discriminator value " + m.Key + " to no type",
			})
		}
	}
	return errs
}

// validateTypeRef recursively walks a type reference looking for composed
// types, which must be eliminated before rendering.
func validateTypeRef(t *TypeRef, context string) []*ValidationError {
	if t == nil {
		return nil
	}
	var errs []*ValidationError
	if t.IsComposed() {
		errs = append(errs, &ValidationError{
			Code:    "composed_type",
			Message: context + " uses " + t.Composed.String() + " type " + t.Name,
		})
	}
	for _, g := range t.Generics {
		errs = append(errs, validateTypeRef(g, context)...)
	}
	return errs
}
