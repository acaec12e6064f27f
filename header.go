package bcbc

// Every encoded value starts with one header byte split into a 4-bit high
// nibble (H4, the family) and a 4-bit low nibble (L4, the width class):
//
//	header = (h4 << 4) | l4
//
// This folds a kind and a width class into one byte, the way a length and a
// code are folded into one packed word in other bit-packed wire formats.
const (
	h4Mask = 0x0f
	l4Mask = 0x0f
)

// H4 selects the major family of a header byte. Values 0x0..0x7 are the
// eight "numeric" families N1..N8 (the bytevar byte-length class for the
// scalar that follows); the rest select a container/compound family whose
// L4 nibble is an extvar length/quantity class instead of a scalar kind.
type H4 uint8

const (
	N1 H4 = iota
	N2
	N3
	N4
	N5
	N6
	N7
	N8
	HString
	HBytes
	HList
	HMap
	HTuple
	HCEnum
	HEnum
	HStruct
)

func (h H4) String() string {
	switch h {
	case N1:
		return "N1"
	case N2:
		return "N2"
	case N3:
		return "N3"
	case N4:
		return "N4"
	case N5:
		return "N5"
	case N6:
		return "N6"
	case N7:
		return "N7"
	case N8:
		return "N8"
	case HString:
		return "String"
	case HBytes:
		return "Bytes"
	case HList:
		return "List"
	case HMap:
		return "Map"
	case HTuple:
		return "Tuple"
	case HCEnum:
		return "CEnum"
	case HEnum:
		return "Enum"
	case HStruct:
		return "Struct"
	default:
		return "H4(invalid)"
	}
}

// IsNumeric reports whether h is one of the eight bytevar-length families
// N1..N8 (as opposed to a container/compound family).
func (h H4) IsNumeric() bool { return h <= N8 }

// H4FromBytevarLen returns the Nk family for a byte count k in 1..=8.
func H4FromBytevarLen(k int) (H4, error) {
	if k < 1 || k > 8 {
		return 0, &FatalError{Kind: ErrNToH4, N: k}
	}
	return H4(k - 1), nil
}

// ToBytevarLen returns the byte count (1..=8) that h's family denotes.
// h must be numeric (IsNumeric); otherwise this is a programmer error.
func (h H4) ToBytevarLen() (int, error) {
	if !h.IsNumeric() {
		return 0, &FatalError{Kind: ErrH4ToN, H4: h}
	}
	return int(h) + 1, nil
}

// L4 refines H4: for a numeric H4 (N1..N8) it names the scalar kind stored
// in that many bytes; for a container/compound H4 it is instead an extvar
// length/quantity class (see extvar.go), with the top four codes shared
// between the two interpretations (aliased below as EXT8..EXT64).
type L4 uint8

const (
	L4U8 L4 = iota
	L4U16
	L4U32
	L4U64
	L4I8
	L4P16
	L4P32
	L4P64
	L4N16
	L4N32
	L4N64
	L4F16
	L4F32
	L4F64
	L4EXT1
	L4EXT2
)

// Aliases: when H4 is a container/compound family, these L4 codes select
// an extvar trailing-byte-count class instead of a scalar kind. They share
// bit patterns with F32/F64/EXT1/EXT2 by construction.
const (
	EXT8  = L4F32
	EXT16 = L4F64
	EXT32 = L4EXT1
	EXT64 = L4EXT2
)

func (l L4) String() string {
	switch l {
	case L4U8:
		return "U8"
	case L4U16:
		return "U16"
	case L4U32:
		return "U32"
	case L4U64:
		return "U64"
	case L4I8:
		return "I8"
	case L4P16:
		return "P16"
	case L4P32:
		return "P32"
	case L4P64:
		return "P64"
	case L4N16:
		return "N16"
	case L4N32:
		return "N32"
	case L4N64:
		return "N64"
	case L4F16:
		return "F16"
	case L4F32:
		return "F32"
	case L4F64:
		return "F64"
	case L4EXT1:
		return "EXT1"
	case L4EXT2:
		return "EXT2"
	default:
		return "L4(invalid)"
	}
}

// Ext1 is the secondary enumeration carried in the high nibble whenever
// L4 == EXT1: it covers the nullary-like Value variants that would
// otherwise waste a full numeric-family slot.
type Ext1 uint8

const (
	Ext1Unit Ext1 = iota
	Ext1False
	Ext1True
	Ext1None
	Ext1Some
	Ext1Alias
	Ext1Type
	Ext1TypeId
)

func (e Ext1) String() string {
	switch e {
	case Ext1Unit:
		return "Unit"
	case Ext1False:
		return "False"
	case Ext1True:
		return "True"
	case Ext1None:
		return "None"
	case Ext1Some:
		return "Some"
	case Ext1Alias:
		return "Alias"
	case Ext1Type:
		return "Type"
	case Ext1TypeId:
		return "TypeId"
	default:
		return "Ext1(invalid)"
	}
}

// Tag is the one-byte major discriminator for an encoded Type.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagUnit
	TagBool
	TagU8
	TagU16
	TagU32
	TagU64
	TagI8
	TagI16
	TagI32
	TagI64
	TagF16
	TagF32
	TagF64
	TagString
	TagBytes
	TagOption
	TagList
	TagMap
	TagTuple
	TagAlias
	TagCEnum
	TagEnum
	TagStruct
	TagType
	TagTypeId
)

func (t Tag) String() string {
	switch t {
	case TagUnknown:
		return "Unknown"
	case TagUnit:
		return "Unit"
	case TagBool:
		return "Bool"
	case TagU8:
		return "U8"
	case TagU16:
		return "U16"
	case TagU32:
		return "U32"
	case TagU64:
		return "U64"
	case TagI8:
		return "I8"
	case TagI16:
		return "I16"
	case TagI32:
		return "I32"
	case TagI64:
		return "I64"
	case TagF16:
		return "F16"
	case TagF32:
		return "F32"
	case TagF64:
		return "F64"
	case TagString:
		return "String"
	case TagBytes:
		return "Bytes"
	case TagOption:
		return "Option"
	case TagList:
		return "List"
	case TagMap:
		return "Map"
	case TagTuple:
		return "Tuple"
	case TagAlias:
		return "Alias"
	case TagCEnum:
		return "CEnum"
	case TagEnum:
		return "Enum"
	case TagStruct:
		return "Struct"
	case TagType:
		return "Type"
	case TagTypeId:
		return "TypeId"
	default:
		return "Tag(invalid)"
	}
}

// ToH4L4 splits a header byte into its (H4, L4) nibbles. It is total over
// the byte range: nibble values always fit in 0x0..0xf by construction, so
// this never fails, but it is still a distinct step from FromH4L4's
// error-free counterpart for symmetry.
func ToH4L4(b byte) (H4, L4) {
	return H4(b >> 4), L4(b & l4Mask)
}

// FromH4L4 packs an (H4, L4) pair back into a header byte.
func FromH4L4(h H4, l L4) byte {
	return byte(h&h4Mask)<<4 | byte(l&l4Mask)
}

// H4FromExt1 maps an Ext1 symbol to the H4 (Nk) it rides on: the symbol's
// numeric value IS the H4 nibble when L4 == EXT1.
func H4FromExt1(e Ext1) H4 {
	return H4(e)
}

// ToExt1 recovers the Ext1 symbol carried by a numeric H4 when paired with
// L4EXT1. Fails if h is not numeric or not a valid Ext1 code (only 0..7 of
// the eight N1..N8 slots are assigned; none currently are invalid since
// H4's numeric range is exactly 0..7, but the check future-proofs callers
// passing a raw nibble).
func (h H4) ToExt1() (Ext1, error) {
	if h > N8 {
		return 0, &FatalError{Kind: ErrH4ToExt1, H4: h}
	}
	return Ext1(h), nil
}
