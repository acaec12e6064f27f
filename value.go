package bcbc

import "math"

// MapEntry is one insertion-ordered (key, value) pair of a Value's Map
// payload. Duplicate keys are permitted and preserved: the codec is
// order-sensitive and never dedupes or sorts entries.
type MapEntry struct {
	Key Value
	Val Value
}

// Value is the typed inhabitant Decode produces and Encode consumes. Like
// Type, it is one tagged struct rather than one Go type per variant; Kind
// selects which fields are meaningful. The zero Value has Kind TagUnknown,
// not TagUnit, and Encode rejects it — use MakeUnit() to build a Unit.
type Value struct {
	Kind Tag

	B    bool
	U8v  uint8
	U16v uint16
	U32v uint32
	U64v uint64
	I8v  int8
	I16v int16
	I32v int32
	I64v int64
	F16v uint16 // raw bit pattern, no NaN normalisation
	F32v uint32
	F64v uint64

	Str   string // String payload; always well-formed UTF-8
	Bytes []byte // Bytes payload; arbitrary

	ElemType *Type // Option/List element type
	Opt      *Value
	Elems    []Value // List/Tuple/Struct elements

	KeyType *Type
	ValType *Type
	Entries []MapEntry

	ID      TypeId // Alias/CEnum/Enum/Struct nominal identifier
	Variant uint64 // CEnum/Enum discriminant
	Inner   *Value // Alias/Enum payload

	TypeVal   *Type
	TypeIDVal TypeId
}

// MakeUnit, MakeBool and the per-width scalar constructors build the
// nullary and scalar Value variants.
func MakeUnit() Value        { return Value{Kind: TagUnit} }
func MakeBool(b bool) Value  { return Value{Kind: TagBool, B: b} }
func MakeU8(v uint8) Value   { return Value{Kind: TagU8, U8v: v} }
func MakeU16(v uint16) Value { return Value{Kind: TagU16, U16v: v} }
func MakeU32(v uint32) Value { return Value{Kind: TagU32, U32v: v} }
func MakeU64(v uint64) Value { return Value{Kind: TagU64, U64v: v} }
func MakeI8(v int8) Value    { return Value{Kind: TagI8, I8v: v} }
func MakeI16(v int16) Value  { return Value{Kind: TagI16, I16v: v} }
func MakeI32(v int32) Value  { return Value{Kind: TagI32, I32v: v} }
func MakeI64(v int64) Value  { return Value{Kind: TagI64, I64v: v} }

// MakeF16Bits, MakeF32Bits, MakeF64Bits build float Values from a raw bit
// pattern — BCBC never normalises NaN payloads, so bit-exact construction
// is the primitive; MakeF32/MakeF64 are float32/float64 conveniences.
func MakeF16Bits(bits uint16) Value { return Value{Kind: TagF16, F16v: bits} }
func MakeF32Bits(bits uint32) Value { return Value{Kind: TagF32, F32v: bits} }
func MakeF64Bits(bits uint64) Value { return Value{Kind: TagF64, F64v: bits} }
func MakeF32(f float32) Value       { return MakeF32Bits(math.Float32bits(f)) }
func MakeF64(f float64) Value       { return MakeF64Bits(math.Float64bits(f)) }

// MakeString and MakeBytes build the String/Bytes Values. s must already be
// valid UTF-8: Encode takes this as a precondition and writes the bytes
// without checking them.
func MakeString(s string) Value { return Value{Kind: TagString, Str: s} }
func MakeBytes(b []byte) Value  { return Value{Kind: TagBytes, Bytes: b} }

// MakeNone and MakeSome build an Option(t) Value: MakeNone carries no
// payload, MakeSome wraps v.
func MakeNone(t Type) Value { return Value{Kind: TagOption, ElemType: &t} }
func MakeSome(t Type, v Value) Value {
	return Value{Kind: TagOption, ElemType: &t, Opt: &v}
}

// MakeList builds List(t, items).
func MakeList(t Type, items []Value) Value {
	return Value{Kind: TagList, ElemType: &t, Elems: items}
}

// MakeMap builds Map((tk, tv), entries).
func MakeMap(tk, tv Type, entries []MapEntry) Value {
	return Value{Kind: TagMap, KeyType: &tk, ValType: &tv, Entries: entries}
}

// MakeTuple builds Tuple(items...).
func MakeTuple(items ...Value) Value { return Value{Kind: TagTuple, Elems: items} }

// MakeAlias builds Alias(id, v).
func MakeAlias(id TypeId, v Value) Value { return Value{Kind: TagAlias, ID: id, Inner: &v} }

// MakeCEnum builds CEnum(id, variant).
func MakeCEnum(id TypeId, variant uint64) Value {
	return Value{Kind: TagCEnum, ID: id, Variant: variant}
}

// MakeEnum builds Enum(id, variant, payload).
func MakeEnum(id TypeId, variant uint64, payload Value) Value {
	return Value{Kind: TagEnum, ID: id, Variant: variant, Inner: &payload}
}

// MakeStruct builds Struct(id, fields).
func MakeStruct(id TypeId, fields []Value) Value {
	return Value{Kind: TagStruct, ID: id, Elems: fields}
}

// MakeTypeValue and MakeTypeIDValue build the two first-class Values that
// carry a Type or TypeId as their own payload.
func MakeTypeValue(t Type) Value      { return Value{Kind: TagType, TypeVal: &t} }
func MakeTypeIDValue(id TypeId) Value { return Value{Kind: TagTypeId, TypeIDVal: id} }

// AsType returns the Type that structurally describes v.
func (v Value) AsType() Type {
	switch v.Kind {
	case TagOption:
		return Type{Kind: TagOption, Elem: v.ElemType}
	case TagList:
		return Type{Kind: TagList, Elem: v.ElemType}
	case TagMap:
		return Type{Kind: TagMap, Key: v.KeyType, Val: v.ValType}
	case TagTuple:
		elems := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.AsType()
		}
		return Type{Kind: TagTuple, Elems: elems}
	case TagAlias:
		return Type{Kind: TagAlias, ID: v.ID}
	case TagCEnum:
		return Type{Kind: TagCEnum, ID: v.ID}
	case TagEnum:
		return Type{Kind: TagEnum, ID: v.ID}
	case TagStruct:
		return Type{Kind: TagStruct, ID: v.ID}
	default:
		// Unit, Bool, all scalar widths, String, Bytes, Type, TypeId: the
		// Tag alone identifies the type, with no carried payload.
		return Type{Kind: v.Kind}
	}
}
