package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentation_Render(t *testing.T) {
	widget := &Class{Name: "Widget"}
	doc := Documentation{
		Description:    " Gets a {Item}; {Unbound} stays. ",
		TypeReferences: map[string]*TypeRef{"Item": Ref(widget), "Other": Primitive("string")},
	}
	got, err := doc.Render(func(t *TypeRef) (string, error) { return t.Name, nil }, "[", "]")
	require.NoError(t, err)
	assert.Equal(t, "Gets a [Widget]; {Unbound} stays.", got)

	boom := errors.New("boom")
	_, err = doc.Render(func(*TypeRef) (string, error) { return "", boom }, "", "")
	assert.ErrorIs(t, err, boom)

	assert.True(t, Documentation{}.IsZero())
	assert.False(t, Documentation{Description: "  "}.HasDescription())
	assert.True(t, Documentation{Link: "https://example.com"}.HasLink())
}
