// Package typesig renders nested logical-type descriptors into their
// canonical textual signatures.
package typesig

import (
	"fmt"
	"strings"
)

// Kind identifies the base kind of a logical type.
type Kind int

const (
	Unknown Kind = iota
	Boolean
	TinyInt
	SmallInt
	Integer
	BigInt
	UTinyInt
	USmallInt
	UInteger
	UBigInt
	HugeInt
	UHugeInt
	Float
	Double
	Decimal
	Varchar
	Blob
	Bit
	Date
	Time
	TimeTZ
	Timestamp
	TimestampS
	TimestampMS
	TimestampNS
	TimestampTZ
	Interval
	UUID
	Enum
	List
	Array
	Map
	Struct
	Union
	Any
	SQLNull
)

var kindNames = map[Kind]string{
	Boolean:     "BOOLEAN",
	TinyInt:     "TINYINT",
	SmallInt:    "SMALLINT",
	Integer:     "INTEGER",
	BigInt:      "BIGINT",
	UTinyInt:    "UTINYINT",
	USmallInt:   "USMALLINT",
	UInteger:    "UINTEGER",
	UBigInt:     "UBIGINT",
	HugeInt:     "HUGEINT",
	UHugeInt:    "UHUGEINT",
	Float:       "FLOAT",
	Double:      "DOUBLE",
	Decimal:     "DECIMAL",
	Varchar:     "VARCHAR",
	Blob:        "BLOB",
	Bit:         "BIT",
	Date:        "DATE",
	Time:        "TIME",
	TimeTZ:      "TIME_TZ",
	Timestamp:   "TIMESTAMP",
	TimestampS:  "TIMESTAMP_S",
	TimestampMS: "TIMESTAMP_MS",
	TimestampNS: "TIMESTAMP_NS",
	TimestampTZ: "TIMESTAMP_TZ",
	Interval:    "INTERVAL",
	UUID:        "UUID",
	Enum:        "ENUM",
	List:        "LIST",
	Array:       "ARRAY",
	Map:         "MAP",
	Struct:      "STRUCT",
	Union:       "UNION",
	Any:         "ANY",
	SQLNull:     "SQLNULL",
}

// String returns the base name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Field is a named member of a STRUCT or UNION type.
type Field struct {
	Name string
	Type *Type
}

// Type is a logical type descriptor. Only the fields relevant to its
// Kind are populated; types are acyclic by construction.
type Type struct {
	Kind  Kind
	Width uint8   // DECIMAL precision
	Scale uint8   // DECIMAL scale
	Child *Type   // LIST / ARRAY element type
	Size  int     // ARRAY length
	Key   *Type   // MAP key type
	Value *Type   // MAP value type
	Fields []Field // STRUCT / UNION members, in declared order
	Values []string // ENUM dictionary values, in declared order
}

// enumPreviewLimit caps how many ENUM values appear in a signature.
const enumPreviewLimit = 10

// Simple returns a descriptor for a non-parameterized type.
func Simple(k Kind) *Type {
	return &Type{Kind: k}
}

// DecimalOf returns a DECIMAL descriptor with the given width and scale.
func DecimalOf(width, scale uint8) *Type {
	return &Type{Kind: Decimal, Width: width, Scale: scale}
}

// ListOf returns a LIST descriptor with the given element type.
func ListOf(child *Type) *Type {
	return &Type{Kind: List, Child: child}
}

// ArrayOf returns a fixed-size ARRAY descriptor.
func ArrayOf(child *Type, size int) *Type {
	return &Type{Kind: Array, Child: child, Size: size}
}

// MapOf returns a MAP descriptor.
func MapOf(key, value *Type) *Type {
	return &Type{Kind: Map, Key: key, Value: value}
}

// StructOf returns a STRUCT descriptor with fields in declared order.
func StructOf(fields ...Field) *Type {
	return &Type{Kind: Struct, Fields: fields}
}

// UnionOf returns a UNION descriptor with members in declared order.
func UnionOf(members ...Field) *Type {
	return &Type{Kind: Union, Fields: members}
}

// EnumOf returns an ENUM descriptor over the given dictionary values.
func EnumOf(values ...string) *Type {
	return &Type{Kind: Enum, Values: values}
}

// Serialize renders a type descriptor into its canonical signature.
// It is total: nil or unrecognized descriptors render their base name.
func Serialize(t *Type) string {
	if t == nil {
		return Unknown.String()
	}

	switch t.Kind {
	case Decimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Width, t.Scale)
	case List:
		return Serialize(t.Child) + "[]"
	case Array:
		return fmt.Sprintf("%s[%d]", Serialize(t.Child), t.Size)
	case Map:
		return fmt.Sprintf("MAP(%s, %s)", Serialize(t.Key), Serialize(t.Value))
	case Struct:
		return serializeMembers("STRUCT(", t.Fields)
	case Union:
		return serializeMembers("UNION(", t.Fields)
	case Enum:
		var sb strings.Builder
		sb.WriteString("ENUM(")
		for i, v := range t.Values {
			if i >= enumPreviewLimit {
				fmt.Fprintf(&sb, ", ... +%d more", len(t.Values)-enumPreviewLimit)
				break
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "'%s'", v)
		}
		sb.WriteString(")")
		return sb.String()
	default:
		return t.Kind.String()
	}
}

// String implements fmt.Stringer.
func (t *Type) String() string {
	return Serialize(t)
}

func serializeMembers(prefix string, fields []Field) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(" ")
		sb.WriteString(Serialize(f.Type))
	}
	sb.WriteString(")")
	return sb.String()
}
