package ir

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralError(t *testing.T) {
	c := &Class{Name: "Users"}
	m := c.AddMethod(&Method{Name: "get"})

	err := fmt.Errorf("render: %w", NewStructuralError(m, "missing request adapter"))
	require.ErrorIs(t, err, ErrStructural)
	assert.NotErrorIs(t, err, ErrUnsupported)

	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Users.get", se.Element)
	assert.Equal(t, "structural invariant violation in Users.get: missing request adapter", se.Error())
}

func TestUnsupportedError(t *testing.T) {
	c := &Class{Name: "Users"}
	m := c.AddMethod(&Method{Name: "name", Kind: MethodGetter})

	err := NewUnsupportedError(m, m.Kind, "dart", "properties render as fields")
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, "getter", err.Kind)
	assert.Equal(t,
		"unsupported construct getter in Users.name for target dart: properties render as fields",
		err.Error())
}

func TestQualifiedName(t *testing.T) {
	root := &Namespace{Name: "api"}
	c := root.AddClass(&Class{Name: "Widget"})
	p := c.AddProperty(&Property{Name: "id"})

	assert.Equal(t, "", QualifiedName(nil))
	assert.Equal(t, "api", QualifiedName(root))
	assert.Equal(t, "Widget", QualifiedName(c))
	assert.Equal(t, "Widget.id", QualifiedName(p))
	assert.Equal(t, "structural invariant violation", (&StructuralError{}).Error())
}
