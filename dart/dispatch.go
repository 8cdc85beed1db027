package dart

import (
	"github.com/broady/clientgen/conventions"
	"github.com/broady/clientgen/ir"
)

// OpKind classifies a type shape for serialization. The read and write paths
// share the classification, so a shape always maps to a mirrored pair of
// operations.
type OpKind int

const (
	OpPrimitiveCollection OpKind = iota
	OpEnumCollection
	OpObjectCollection
	OpEnum
	OpByteArray
	OpString
	OpPrimitive
	OpObject
)

var opKindNames = [...]string{
	OpPrimitiveCollection: "primitiveCollection",
	OpEnumCollection:      "enumCollection",
	OpObjectCollection:    "objectCollection",
	OpEnum:                "enum",
	OpByteArray:           "byteArray",
	OpString:              "string",
	OpPrimitive:           "primitive",
	OpObject:              "object",
}

// String returns the name of the operation kind.
func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opKindNames) {
		return "Unknown"
	}
	return opKindNames[k]
}

// IsCollection reports whether the kind reads or writes a collection.
func (k OpKind) IsCollection() bool {
	return k == OpPrimitiveCollection || k == OpEnumCollection || k == OpObjectCollection
}

// SerializationOp is the operation that reads or writes one value.
type SerializationOp struct {
	Kind OpKind

	// TypeName is the element type, without collection wrapper or nullable
	// marker.
	TypeName string

	// Factory is the construction-from-wire-data function for object kinds.
	Factory string
}

// classify selects the operation for t, checking the decision table in order.
func classify(e *conventions.Engine, t *ir.TypeRef, target ir.Element) (SerializationOp, error) {
	typeName, err := e.TypeStringWith(t, target, conventions.TypeOptions{OmitCollection: true})
	if err != nil {
		return SerializationOp{}, err
	}
	bare := e.TrimNullable(typeName)
	factory := bare + ".createFromDiscriminatorValue"

	if t.IsCollection() {
		switch {
		case t.Definition == nil:
			return SerializationOp{Kind: OpPrimitiveCollection, TypeName: typeName}, nil
		case t.Enum() != nil:
			return SerializationOp{Kind: OpEnumCollection, TypeName: bare}, nil
		default:
			return SerializationOp{Kind: OpObjectCollection, TypeName: typeName, Factory: factory}, nil
		}
	}
	if t.Enum() != nil {
		return SerializationOp{Kind: OpEnum, TypeName: bare}, nil
	}

	conv := e.Conventions()
	switch {
	case t.Definition != nil:
		return SerializationOp{Kind: OpObject, TypeName: bare, Factory: factory}, nil
	case bare == conv.ByteSequenceTypeName:
		return SerializationOp{Kind: OpByteArray, TypeName: bare}, nil
	case bare == conv.StringTypeName:
		return SerializationOp{Kind: OpString, TypeName: bare}, nil
	case e.IsPrimitive(bare):
		return SerializationOp{Kind: OpPrimitive, TypeName: bare}, nil
	default:
		return SerializationOp{Kind: OpObject, TypeName: bare, Factory: factory}, nil
	}
}

// ReadOp returns the parse node call that reads a value of type t, e.g.
// "getStringValue()" or "getObjectValue<Widget>(Widget.createFromDiscriminatorValue)".
func ReadOp(e *conventions.Engine, t *ir.TypeRef, target ir.Element) (string, error) {
	op, err := classify(e, t, target)
	if err != nil {
		return "", err
	}
	return op.Read(), nil
}

// WriteOp returns the serialization writer method that writes a value of
// type t, e.g. "writeStringValue" or "writeObjectValue<Widget>".
func WriteOp(e *conventions.Engine, t *ir.TypeRef, target ir.Element) (string, error) {
	op, err := classify(e, t, target)
	if err != nil {
		return "", err
	}
	return op.Write(false), nil
}

// Read renders the read call.
func (op SerializationOp) Read() string {
	switch op.Kind {
	case OpPrimitiveCollection:
		return "getCollectionOfPrimitiveValues<" + op.TypeName + ">()"
	case OpEnumCollection:
		return "getCollectionOfEnumValues<" + op.TypeName + ">()"
	case OpObjectCollection:
		return "getCollectionOfObjectValues<" + op.TypeName + ">(" + op.Factory + ")"
	case OpEnum:
		return "getEnumValue<" + op.TypeName + ">()"
	case OpByteArray:
		return "getByteArrayValue()"
	case OpString:
		return "getStringValue()"
	case OpPrimitive:
		return "get" + conventions.FirstUpper(op.TypeName) + "Value()"
	default:
		return "getObjectValue<" + op.TypeName + ">(" + op.Factory + ")"
	}
}

// Write renders the write method name. nullable qualifies object type
// arguments with the nullable marker.
func (op SerializationOp) Write(nullable bool) string {
	switch op.Kind {
	case OpPrimitiveCollection:
		return "writeCollectionOfPrimitiveValues<" + op.TypeName + ">"
	case OpEnumCollection:
		return "writeCollectionOfEnumValues<" + op.TypeName + ">"
	case OpObjectCollection:
		return "writeCollectionOfObjectValues<" + op.TypeName + ">"
	case OpEnum:
		return "writeEnumValue<" + op.TypeName + ">"
	case OpByteArray:
		return "writeByteArrayValue"
	case OpString:
		return "writeStringValue"
	case OpPrimitive:
		return "write" + conventions.FirstUpper(op.TypeName) + "Value"
	default:
		suffix := ""
		if nullable {
			suffix = "?"
		}
		return "writeObjectValue<" + op.TypeName + suffix + ">"
	}
}
