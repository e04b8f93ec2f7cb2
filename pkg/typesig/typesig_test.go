package typesig

import (
	"fmt"
	"testing"
)

func TestSerializeSimple(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{Simple(Integer), "INTEGER"},
		{Simple(Varchar), "VARCHAR"},
		{Simple(TimestampTZ), "TIMESTAMP_TZ"},
		{Simple(Boolean), "BOOLEAN"},
		{nil, "UNKNOWN"},
		{Simple(Kind(1000)), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := Serialize(tt.typ); got != tt.want {
			t.Errorf("Serialize(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestSerializeDecimal(t *testing.T) {
	if got := Serialize(DecimalOf(18, 3)); got != "DECIMAL(18,3)" {
		t.Errorf("got %q, want DECIMAL(18,3)", got)
	}
}

func TestSerializeList(t *testing.T) {
	if got := Serialize(ListOf(Simple(Integer))); got != "INTEGER[]" {
		t.Errorf("got %q, want INTEGER[]", got)
	}
	nested := ListOf(ListOf(Simple(Varchar)))
	if got := Serialize(nested); got != "VARCHAR[][]" {
		t.Errorf("got %q, want VARCHAR[][]", got)
	}
}

func TestSerializeArray(t *testing.T) {
	if got := Serialize(ArrayOf(Simple(Double), 3)); got != "DOUBLE[3]" {
		t.Errorf("got %q, want DOUBLE[3]", got)
	}
}

func TestSerializeMap(t *testing.T) {
	if got := Serialize(MapOf(Simple(Varchar), Simple(Integer))); got != "MAP(VARCHAR, INTEGER)" {
		t.Errorf("got %q, want MAP(VARCHAR, INTEGER)", got)
	}
}

func TestSerializeStruct(t *testing.T) {
	typ := StructOf(
		Field{Name: "id", Type: Simple(BigInt)},
		Field{Name: "tags", Type: ListOf(Simple(Varchar))},
	)
	want := "STRUCT(id BIGINT, tags VARCHAR[])"
	if got := Serialize(typ); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeUnion(t *testing.T) {
	typ := UnionOf(
		Field{Name: "num", Type: Simple(Integer)},
		Field{Name: "str", Type: Simple(Varchar)},
	)
	want := "UNION(num INTEGER, str VARCHAR)"
	if got := Serialize(typ); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeEnum(t *testing.T) {
	if got := Serialize(EnumOf("a", "b", "c")); got != "ENUM('a', 'b', 'c')" {
		t.Errorf("got %q, want ENUM('a', 'b', 'c')", got)
	}
}

func TestSerializeEnumCapped(t *testing.T) {
	values := make([]string, 14)
	for i := range values {
		values[i] = fmt.Sprintf("v%d", i)
	}
	got := Serialize(EnumOf(values...))
	want := "ENUM('v0', 'v1', 'v2', 'v3', 'v4', 'v5', 'v6', 'v7', 'v8', 'v9', ... +4 more)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeDeeplyNested(t *testing.T) {
	typ := MapOf(
		Simple(Varchar),
		StructOf(
			Field{Name: "points", Type: ArrayOf(DecimalOf(10, 2), 4)},
			Field{Name: "mode", Type: EnumOf("on", "off")},
		),
	)
	want := "MAP(VARCHAR, STRUCT(points DECIMAL(10,2)[4], mode ENUM('on', 'off')))"
	if got := Serialize(typ); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
