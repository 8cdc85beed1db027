package dart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broady/clientgen/internal/testfixtures"
	"github.com/broady/clientgen/ir"
)

func TestCorrectedEnumName(t *testing.T) {
	tests := map[string]string{
		"RED_ALERT": "redAlert",
		"red_alert": "redAlert",
		"BLUE":      "blue",
		"V2":        "v2",
		"Blue":      "Blue",
		"lightBlue": "lightBlue",
	}
	for in, want := range tests {
		assert.Equal(t, want, correctedEnumName(in), in)
	}
}

func TestEnumMemberFor(t *testing.T) {
	root, models := testfixtures.Root()
	e := models.AddEnum(&ir.Enum{Name: "Status", Options: []ir.EnumOption{
		{Name: "IN_PROGRESS", SerializationName: "in-progress"},
		{Name: "default"},
	}})
	w := newWriter(root)
	assert.Equal(t, "inProgress", w.enumMemberFor(e, "in-progress"))
	assert.Equal(t, "inProgress", w.enumMemberFor(e, "in_progress"))
	assert.Equal(t, "defaultEscaped", w.enumMemberFor(e, "DEFAULT"))
	assert.Equal(t, "unknown", w.enumMemberFor(e, "UNKNOWN"))
}

func TestMethodName(t *testing.T) {
	_, models := testfixtures.Root()
	c := testfixtures.Model(models, "Widget")
	w := newWriter(nil)
	assert.Equal(t, "Widget", w.methodName(&ir.Method{Kind: ir.MethodConstructor}, c))
	assert.Equal(t, "Widget.withUrl", w.methodName(&ir.Method{Kind: ir.MethodRawURLConstructor}, c))
	assert.Equal(t, "_helper", w.methodName(&ir.Method{Name: "Helper", Access: ir.AccessPrivate}, c))
	assert.Equal(t, "serialize", w.methodName(&ir.Method{Name: "Serialize", Kind: ir.MethodSerializer}, c))
}

func TestDartString(t *testing.T) {
	assert.Equal(t, `"plain"`, dartString("plain"))
	assert.Equal(t, `"say \"hi\" \$name\n"`, dartString("say \"hi\" $name\n"))
	assert.Equal(t, `"a\\b"`, dartString(`a\b`))
}
