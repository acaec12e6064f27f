package bcbc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAsTypeNullary(t *testing.T) {
	cases := []struct {
		v    Value
		want Type
	}{
		{MakeUnit(), UnitType},
		{MakeBool(true), BoolType},
		{MakeU8(1), U8Type},
		{MakeU64(1), U64Type},
		{MakeString("x"), StringType},
		{MakeBytes([]byte("x")), BytesType},
	}
	for _, c := range cases {
		if got := c.v.AsType(); !got.Equal(c.want) {
			t.Fatalf("%+v.AsType() = %+v, want %+v", c.v, got, c.want)
		}
	}
}

func TestAsTypeOption(t *testing.T) {
	none := MakeNone(StringType)
	if got := none.AsType(); !got.Equal(NewOptionType(StringType)) {
		t.Fatalf("None.AsType() = %+v", got)
	}
	some := MakeSome(BoolType, MakeBool(true))
	if got := some.AsType(); !got.Equal(NewOptionType(BoolType)) {
		t.Fatalf("Some.AsType() = %+v", got)
	}
}

func TestAsTypeList(t *testing.T) {
	v := MakeList(StringType, []Value{MakeString("a"), MakeString("b")})
	if got := v.AsType(); !got.Equal(NewListType(StringType)) {
		t.Fatalf("List.AsType() = %+v", got)
	}
}

func TestAsTypeMap(t *testing.T) {
	v := MakeMap(U64Type, StringType, []MapEntry{{Key: MakeU64(1), Val: MakeString("a")}})
	if got := v.AsType(); !got.Equal(NewMapType(U64Type, StringType)) {
		t.Fatalf("Map.AsType() = %+v", got)
	}
}

func TestAsTypeTuple(t *testing.T) {
	v := MakeTuple(MakeU64(1), MakeBool(false), MakeString("x"))
	want := NewTupleType(U64Type, BoolType, StringType)
	if got := v.AsType(); !got.Equal(want) {
		t.Fatalf("Tuple.AsType() = %+v, want %+v", got, want)
	}
}

func TestAsTypeNominal(t *testing.T) {
	id, err := StdTypeID(0x01, 0x5f50)
	if err != nil {
		t.Fatalf("StdTypeID: %v", err)
	}
	cenum := MakeCEnum(id, 11)
	if got := cenum.AsType(); !got.Equal(NewCEnumType(id)) {
		t.Fatalf("CEnum.AsType() = %+v", got)
	}
	alias := MakeAlias(id, MakeBytes([]byte{0xff}))
	if got := alias.AsType(); !got.Equal(NewAliasType(id)) {
		t.Fatalf("Alias.AsType() = %+v", got)
	}
	strct := MakeStruct(id, []Value{MakeU64(1)})
	if got := strct.AsType(); !got.Equal(NewStructType(id)) {
		t.Fatalf("Struct.AsType() = %+v", got)
	}
}

func TestTypeEqual(t *testing.T) {
	a := NewListType(NewOptionType(U64Type))
	b := NewListType(NewOptionType(U64Type))
	if !a.Equal(b) {
		t.Fatalf("structurally identical Types should compare equal")
	}
	c := NewListType(NewOptionType(U32Type))
	if a.Equal(c) {
		t.Fatalf("Types differing in a nested Elem should not compare equal")
	}
}

// TestTypeTreeDiff diffs whole Type trees with go-cmp instead of Equal, so a
// mismatch inside deeply nested Tuple/Map elements is reported pointing at
// the exact field instead of just the booleans Equal returns.
func TestTypeTreeDiff(t *testing.T) {
	id, err := StdTypeID(0x01, 0x5f50)
	if err != nil {
		t.Fatalf("StdTypeID: %v", err)
	}
	want := NewTupleType(
		NewMapType(U64Type, NewListType(StringType)),
		NewOptionType(NewStructType(id)),
		BytesType,
	)
	got := NewTupleType(
		NewMapType(U64Type, NewListType(StringType)),
		NewOptionType(NewStructType(id)),
		BytesType,
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Type tree mismatch (-want +got):\n%s", diff)
	}
}
