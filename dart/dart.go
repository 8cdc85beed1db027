// Package dart renders IR classes and enums as Dart source for the Kiota
// Dart runtime libraries.
package dart

import (
	"strings"
	"sync"

	"github.com/broady/clientgen/codewriter"
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// TargetName is the target identifier of this package.
const TargetName = "dart"

const (
	// Header starts every generated file.
	Header = "// auto generated"

	// FileExtension is the extension of generated files.
	FileExtension = ".dart"
)

// Dart reserved words and built-in identifiers.
var reservedWords = []string{
	"abstract", "as", "assert", "async", "await", "base", "break", "case",
	"catch", "class", "const", "continue", "covariant", "default", "deferred",
	"do", "dynamic", "else", "enum", "export", "extends", "extension",
	"external", "factory", "false", "final", "finally", "for", "Function",
	"get", "hide", "if", "implements", "import", "in", "interface", "is",
	"late", "library", "mixin", "new", "null", "of", "on", "operator", "part",
	"required", "rethrow", "return", "sealed", "set", "show", "static",
	"super", "switch", "sync", "this", "throw", "true", "try", "type",
	"typedef", "var", "void", "when", "with", "while", "yield",
}

// errorClassProperties are members of the runtime ApiException that error
// definitions must not redeclare.
var errorClassProperties = map[string]bool{
	"message":         true,
	"statuscode":      true,
	"responseheaders": true,
	"innerexceptions": true,
}

// Conventions returns the Dart conventions.
func Conventions() *conventions.Conventions {
	return &conventions.Conventions{
		Target:           TargetName,
		StreamTypeName:   "stream",
		VoidTypeName:     "void",
		DocCommentPrefix: "/// ",
		NullableMarker:   "?",
		NullableTypes:    []string{"int", "bool", "double", "string", "datetime", "dateonly", "timeonly"},
		PrimitiveTypes:   []string{"string", "dateonly", "timeonly", "datetime", "duration"},
		PrimitiveSynonyms: map[string]string{
			"integer":              "int",
			"sbyte":                "int",
			"byte":                 "int",
			"int64":                "int",
			"boolean":              "bool",
			"string":               "String",
			"double":               "double",
			"float":                "double",
			"decimal":              "double",
			"object":               "object",
			"void":                 "void",
			"binary":               "Iterable<int>",
			"base64":               "Iterable<int>",
			"base64url":            "Iterable<int>",
			"datetimeoffset":       "DateTime",
			"iparsenode":           "ParseNode",
			"iserializationwriter": "SerializationWriter",
		},
		ContainsSynonyms: map[string]string{
			"requestconfiguration": "RequestConfiguration",
		},
		FallbackTypeName:     "Object",
		ByteSequenceTypeName: "Iterable<int>",
		StringTypeName:       "String",
		ArrayWrapper:         "List",
		LazyWrapper:          "Iterable",
		ActionWrapper:        "Function",
		ReferencePrefix:      "[",
		ReferenceSuffix:      "]",
		ReservedWords:        reservedWords,
		EscapeSuffix:         "Escaped",
		AccessModifier:       accessModifier,
		ParameterSignature:   parameterSignature,
	}
}

// Dart has no access keywords; privacy is a name prefix.
func accessModifier(ir.Access) string { return "" }

func accessPrefix(a ir.Access) string {
	if a == ir.AccessPrivate {
		return "_"
	}
	return ""
}

// parameterSignature renders "[@Deprecated(...) ]Type name[ = default]".
func parameterSignature(e *conventions.Engine, p *ir.Parameter, target ir.Element) (string, error) {
	typeName, err := e.TypeStringWith(p.Type, target, conventions.TypeOptions{OmitNullable: !p.Optional})
	if err != nil {
		return "", err
	}
	if p.Kind == ir.ParameterRequestConfiguration && !strings.HasSuffix(typeName, e.Conventions().NullableMarker) {
		typeName += e.Conventions().NullableMarker
	}
	var defaultValue string
	switch {
	case p.DefaultValue != "":
		defaultValue = " = " + p.DefaultValue
	case p.Optional && strings.EqualFold(e.TrimNullable(typeName), e.Conventions().StringTypeName):
		defaultValue = ` = ""`
	}
	deprecation, err := deprecationAnnotation(e, p.Deprecation, target)
	if err != nil {
		return "", err
	}
	if deprecation != "" {
		deprecation += " "
	}
	return deprecation + typeName + " " + conventions.FirstLower(p.Name) + defaultValue, nil
}

// Writer renders classes and enums.
type Writer struct {
	engine *conventions.Engine
	conv   *conventions.Conventions

	// members caches escapedMembers per class.
	members sync.Map
}

// NewWriter creates a Writer using engine.
func NewWriter(engine *conventions.Engine) *Writer {
	return &Writer{engine: engine, conv: engine.Conventions()}
}

// RenderClass renders c into out.
func (w *Writer) RenderClass(out codewriter.LineWriter, c *ir.Class) error {
	return w.WriteClass(out, c)
}

// RenderEnum renders e into out.
func (w *Writer) RenderEnum(out codewriter.LineWriter, e *ir.Enum) error {
	return w.WriteEnum(out, e)
}

// typeString is a shorthand for the engine's TypeString.
func (w *Writer) typeString(t *ir.TypeRef, target ir.Element) (string, error) {
	return w.engine.TypeString(t, target)
}

// dartString quotes s as a double-quoted Dart string literal.
func dartString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\', '$':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
