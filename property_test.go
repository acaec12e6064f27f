package bcbc

import (
	"testing"

	"pgregory.net/rapid"
)

// genScalarValue draws one of the nullary/scalar Value kinds — the subset
// whose Go representation rapid can generate directly without recursive
// generator wiring. Container/nominal variants are covered by the fixed
// golden-vector and explicit round-trip tests in codec_test.go instead.
func genScalarValue(t *rapid.T) Value {
	switch rapid.IntRange(0, 13).Draw(t, "scalarKind") {
	case 0:
		return MakeUnit()
	case 1:
		return MakeBool(rapid.Bool().Draw(t, "b"))
	case 2:
		return MakeU8(rapid.Uint8().Draw(t, "u8"))
	case 3:
		return MakeU16(rapid.Uint16().Draw(t, "u16"))
	case 4:
		return MakeU32(rapid.Uint32().Draw(t, "u32"))
	case 5:
		return MakeU64(rapid.Uint64().Draw(t, "u64"))
	case 6:
		return MakeI8(rapid.Int8().Draw(t, "i8"))
	case 7:
		return MakeI16(rapid.Int16().Draw(t, "i16"))
	case 8:
		return MakeI32(rapid.Int32().Draw(t, "i32"))
	case 9:
		return MakeI64(rapid.Int64().Draw(t, "i64"))
	case 10:
		return MakeF16Bits(rapid.Uint16().Draw(t, "f16bits"))
	case 11:
		return MakeF32Bits(rapid.Uint32().Draw(t, "f32bits"))
	case 12:
		return MakeF64Bits(rapid.Uint64().Draw(t, "f64bits"))
	default:
		return MakeString(rapid.String().Draw(t, "s"))
	}
}

// scalarPayloadEqual compares the payload field genScalarValue's Kind
// actually populates, so TestPropertyRoundTrip catches a wrong-value
// round-trip (e.g. a U64/I64 decoding to the wrong magnitude) and not just a
// wrong Kind or structural Type.
func scalarPayloadEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TagUnit:
		return true
	case TagBool:
		return a.B == b.B
	case TagU8:
		return a.U8v == b.U8v
	case TagU16:
		return a.U16v == b.U16v
	case TagU32:
		return a.U32v == b.U32v
	case TagU64:
		return a.U64v == b.U64v
	case TagI8:
		return a.I8v == b.I8v
	case TagI16:
		return a.I16v == b.I16v
	case TagI32:
		return a.I32v == b.I32v
	case TagI64:
		return a.I64v == b.I64v
	case TagF16:
		return a.F16v == b.F16v
	case TagF32:
		return a.F32v == b.F32v
	case TagF64:
		return a.F64v == b.F64v
	case TagString:
		return a.Str == b.Str
	default:
		return false
	}
}

// TestPropertyRoundTrip is property 1: for any Value v,
// decode(encode(v)) succeeds and equals v.
func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genScalarValue(t)
		got, err := Decode(v.Encode())
		if err != nil {
			t.Fatalf("Decode(Encode(%+v)): %v", v, err)
		}
		if !scalarPayloadEqual(got, v) {
			t.Fatalf("payload mismatch after round-trip: got %+v want %+v", got, v)
		}
		if !got.AsType().Equal(v.AsType()) {
			t.Fatalf("type mismatch after round-trip: got %+v want %+v", got.AsType(), v.AsType())
		}
	})
}

// TestPropertyCanonicality is property 2: encode(decode(b))
// equals b for every b decode accepts.
func TestPropertyCanonicality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genScalarValue(t)
		enc := v.Encode()
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if string(got.Encode()) != string(enc) {
			t.Fatalf("canonicality violated for %+v", v)
		}
	})
}

// TestPropertyTypeRecovery is property 4, restricted to the
// nullary/scalar Values genScalarValue produces: v.AsType() always equals
// Type{Kind: v.Kind} for these since none carry a type-bearing payload.
func TestPropertyTypeRecovery(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genScalarValue(t)
		want := Type{Kind: v.Kind}
		if !v.AsType().Equal(want) {
			t.Fatalf("AsType mismatch: got %+v want %+v", v.AsType(), want)
		}
	})
}

// TestPropertyNoPanicOnRandomBytes is property 3, exercised
// here with rapid-generated byte slices (complementing FuzzDecode's
// native-fuzzer corpus in nopanic_test.go with rapid's shrinking).
func TestPropertyNoPanicOnRandomBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "b")
		_, _ = Decode(b)
	})
}
