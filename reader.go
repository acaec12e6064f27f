package bcbc

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"
)

// errInvalidUTF8 is wrapped as the Cause of an *InputError with Kind
// ErrUtf8 when a String payload's bytes are not well-formed UTF-8.
var errInvalidUTF8 = errors.New("bcbc: invalid utf-8 sequence")

// reader is the cursor-driven recursive-descent decoder . It
// advances strictly forward over an Input and never panics: every access
// goes through readByte/readSlice/leakSlice, which turn out-of-range
// access into a typed *InputError instead.
// maxNestingDepth bounds recursive Type/Value descent ('s
// "bounded recursion depth" no-panic note): Go's goroutine stack grows on
// demand but a stack overflow is a fatal, unrecoverable runtime error, not
// a panic recover() can catch, so adversarially deep input must be
// rejected as an ordinary InputError well before reaching that limit.
const maxNestingDepth = 1000

type reader struct {
	in    Input
	pos   int
	depth int
}

func newReader(in Input) *reader { return &reader{in: in} }

// enter increments the recursion depth, failing once maxNestingDepth is
// exceeded; leave must be deferred by every caller of enter.
func (r *reader) enter() error {
	r.depth++
	if r.depth > maxNestingDepth {
		return &InputError{Kind: ErrTooDeep, N: maxNestingDepth}
	}
	return nil
}

func (r *reader) leave() { r.depth-- }

func (r *reader) remaining() int { return r.in.Len() - r.pos }

func (r *reader) readByte() (byte, error) {
	b, ok := r.in.ByteAt(r.pos)
	if !ok {
		return 0, &InputError{Kind: ErrTooShort, Rest: r.remaining(), Expected: 1}
	}
	r.pos++
	return b, nil
}

// readSlice reads exactly n bytes starting at the cursor, copying nothing
// beyond what Input.Slice itself returns (may alias the caller's buffer).
func (r *reader) readSlice(n int) ([]byte, error) {
	if n < 0 {
		return nil, &FatalError{Kind: ErrFromSize, N: n}
	}
	end := r.pos + n
	if end < r.pos {
		return nil, &InputError{Kind: ErrTooLongReadLen, N: n}
	}
	b, ok := r.in.Slice(r.pos, end)
	if !ok {
		return nil, &InputError{Kind: ErrTooShort, Rest: r.remaining(), Expected: n}
	}
	r.pos = end
	return b, nil
}

// leakSlice is readSlice's counterpart for payloads the decoded Value
// retains past this read (String/Bytes contents): it asks Input for the
// underlying storage of the claimed range rather than a read-only view.
func (r *reader) leakSlice(n int) ([]byte, error) {
	if n < 0 {
		return nil, &FatalError{Kind: ErrFromSize, N: n}
	}
	end := r.pos + n
	if end < r.pos {
		return nil, &InputError{Kind: ErrTooLongReadLen, N: n}
	}
	b, ok := r.in.Leak(r.pos, end)
	if !ok {
		return nil, &InputError{Kind: ErrTooShort, Rest: r.remaining(), Expected: n}
	}
	r.pos = end
	return b, nil
}

// readBytevarUnsigned reads the h4-indicated number of trailing bytes and
// decodes them as an unsigned urange value of nlen bytes' declared width,
// rejecting any non-canonical or over-wide encoding.
func readBytevarUnsigned[T uint8 | uint16 | uint32 | uint64](r *reader, h4 H4, nlen int) (T, error) {
	k, err := h4.ToBytevarLen()
	if err != nil {
		return 0, err
	}
	buf, err := r.readSlice(k)
	if err != nil {
		return 0, err
	}
	u := decodeUrange(buf)
	if err := checkUrangeLen(k, nlen, u); err != nil {
		return 0, err
	}
	return T(u), nil
}

// readBytevarSigned mirrors readBytevarUnsigned for the sign-split signed
// policy (widths >= 16 bits): neg names which of Pk/Nk the header carried.
func readBytevarSigned(r *reader, h4 H4, nlen int, widthBits uint, neg bool) (int64, error) {
	k, err := h4.ToBytevarLen()
	if err != nil {
		return 0, err
	}
	buf, err := r.readSlice(k)
	if err != nil {
		return 0, err
	}
	u := decodeUrange(buf)
	if err := checkUrangeLen(k, nlen, u); err != nil {
		return 0, err
	}
	if err := checkSignedRange(neg, u, widthBits); err != nil {
		return 0, err
	}
	return joinSign(neg, u), nil
}

// readBytevarFloat mirrors readBytevarUnsigned for the left-aligned
// frange float policy.
func readBytevarFloat(r *reader, h4 H4, widthBytes int) (uint64, error) {
	k, err := h4.ToBytevarLen()
	if err != nil {
		return 0, err
	}
	buf, err := r.readSlice(k)
	if err != nil {
		return 0, err
	}
	bits := decodeFrange(buf, widthBytes)
	if err := checkFrangeLen(k, widthBytes, bits); err != nil {
		return 0, err
	}
	return bits, nil
}

// readExtvarQuantity reads the l4-indicated extvar trailing bytes (if any)
// and rejects any non-canonical choice of l4 for the decoded quantity.
func (r *reader) readExtvarQuantity(l4 L4) (uint64, error) {
	n := extvarTrailingLen(l4)
	buf, err := r.readSlice(n)
	if err != nil {
		return 0, err
	}
	u := extvarDecode(l4, buf)
	if err := checkExtvarCanonical(l4, u); err != nil {
		return 0, err
	}
	return u, nil
}

// readSizeQuantity is readExtvarQuantity additionally bounded by MaxLen
// (the extszvar variant names), used for every length-like
// field: String/Bytes/List/Map/Tuple/Struct counts.
func (r *reader) readSizeQuantity(l4 L4) (int, error) {
	u, err := r.readExtvarQuantity(l4)
	if err != nil {
		return 0, err
	}
	return checkSize(u)
}

// readValue is the top-level recursive procedure `val` from :
// read one header byte, split it, and dispatch on whether H4 names a
// numeric (bytevar scalar) or container/compound family.
func (r *reader) readValue() (Value, error) {
	if err := r.enter(); err != nil {
		return Value{}, err
	}
	defer r.leave()
	hb, err := r.readByte()
	if err != nil {
		return Value{}, err
	}
	h4, l4 := ToH4L4(hb)
	if h4.IsNumeric() {
		return r.readScalarValue(h4, l4)
	}
	return r.readContainerValue(h4, l4)
}

func (r *reader) readScalarValue(h4 H4, l4 L4) (Value, error) {
	switch l4 {
	case L4U8:
		v, err := readBytevarUnsigned[uint8](r, h4, 1)
		if err != nil {
			return Value{}, err
		}
		return MakeU8(v), nil
	case L4U16:
		v, err := readBytevarUnsigned[uint16](r, h4, 2)
		if err != nil {
			return Value{}, err
		}
		return MakeU16(v), nil
	case L4U32:
		v, err := readBytevarUnsigned[uint32](r, h4, 4)
		if err != nil {
			return Value{}, err
		}
		return MakeU32(v), nil
	case L4U64:
		v, err := readBytevarUnsigned[uint64](r, h4, 8)
		if err != nil {
			return Value{}, err
		}
		return MakeU64(v), nil
	case L4I8:
		v, err := readBytevarUnsigned[uint8](r, h4, 1)
		if err != nil {
			return Value{}, err
		}
		return MakeI8(int8(v)), nil
	case L4P16:
		v, err := readBytevarSigned(r, h4, 2, 16, false)
		if err != nil {
			return Value{}, err
		}
		return MakeI16(int16(v)), nil
	case L4N16:
		v, err := readBytevarSigned(r, h4, 2, 16, true)
		if err != nil {
			return Value{}, err
		}
		return MakeI16(int16(v)), nil
	case L4P32:
		v, err := readBytevarSigned(r, h4, 4, 32, false)
		if err != nil {
			return Value{}, err
		}
		return MakeI32(int32(v)), nil
	case L4N32:
		v, err := readBytevarSigned(r, h4, 4, 32, true)
		if err != nil {
			return Value{}, err
		}
		return MakeI32(int32(v)), nil
	case L4P64:
		v, err := readBytevarSigned(r, h4, 8, 64, false)
		if err != nil {
			return Value{}, err
		}
		return MakeI64(v), nil
	case L4N64:
		v, err := readBytevarSigned(r, h4, 8, 64, true)
		if err != nil {
			return Value{}, err
		}
		return MakeI64(v), nil
	case L4F16:
		bits, err := readBytevarFloat(r, h4, 2)
		if err != nil {
			return Value{}, err
		}
		return MakeF16Bits(uint16(bits)), nil
	case L4F32:
		bits, err := readBytevarFloat(r, h4, 4)
		if err != nil {
			return Value{}, err
		}
		return MakeF32Bits(uint32(bits)), nil
	case L4F64:
		bits, err := readBytevarFloat(r, h4, 8)
		if err != nil {
			return Value{}, err
		}
		return MakeF64Bits(bits), nil
	case L4EXT1:
		return r.readExt1Value(h4)
	case L4EXT2:
		return Value{}, &InputError{Kind: ErrExt2NotImplemented}
	default:
		return Value{}, &FatalError{Kind: ErrL4, Byte: byte(l4)}
	}
}

func (r *reader) readExt1Value(h4 H4) (Value, error) {
	e, err := h4.ToExt1()
	if err != nil {
		return Value{}, err
	}
	switch e {
	case Ext1Unit:
		return MakeUnit(), nil
	case Ext1False:
		return MakeBool(false), nil
	case Ext1True:
		return MakeBool(true), nil
	case Ext1None:
		t, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		return MakeNone(t), nil
	case Ext1Some:
		t, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		v, err := r.readValue()
		if err != nil {
			return Value{}, err
		}
		return MakeSome(t, v), nil
	case Ext1Alias:
		id, err := r.readTypeId()
		if err != nil {
			return Value{}, err
		}
		v, err := r.readValue()
		if err != nil {
			return Value{}, err
		}
		return MakeAlias(id, v), nil
	case Ext1Type:
		t, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		return MakeTypeValue(t), nil
	case Ext1TypeId:
		id, err := r.readTypeId()
		if err != nil {
			return Value{}, err
		}
		return MakeTypeIDValue(id), nil
	default:
		return Value{}, &FatalError{Kind: ErrExt1, Byte: byte(e)}
	}
}

func (r *reader) readContainerValue(h4 H4, l4 L4) (Value, error) {
	switch h4 {
	case HString:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		b, err := r.leakSlice(n)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(b) {
			return Value{}, &InputError{Kind: ErrUtf8, Cause: errInvalidUTF8}
		}
		return MakeString(string(b)), nil
	case HBytes:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		b, err := r.leakSlice(n)
		if err != nil {
			return Value{}, err
		}
		return MakeBytes(b), nil
	case HList:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		elemType, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, n)
		for i := range items {
			items[i], err = r.readValue()
			if err != nil {
				return Value{}, err
			}
		}
		return MakeList(elemType, items), nil
	case HMap:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		kt, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		vt, err := r.readType()
		if err != nil {
			return Value{}, err
		}
		entries := make([]MapEntry, n)
		for i := range entries {
			entries[i].Key, err = r.readValue()
			if err != nil {
				return Value{}, err
			}
			entries[i].Val, err = r.readValue()
			if err != nil {
				return Value{}, err
			}
		}
		return MakeMap(kt, vt, entries), nil
	case HTuple:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, n)
		for i := range items {
			items[i], err = r.readValue()
			if err != nil {
				return Value{}, err
			}
		}
		return MakeTuple(items...), nil
	case HCEnum:
		variant, err := r.readExtvarQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		id, err := r.readTypeId()
		if err != nil {
			return Value{}, err
		}
		return MakeCEnum(id, variant), nil
	case HEnum:
		variant, err := r.readExtvarQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		id, err := r.readTypeId()
		if err != nil {
			return Value{}, err
		}
		payload, err := r.readValue()
		if err != nil {
			return Value{}, err
		}
		return MakeEnum(id, variant, payload), nil
	case HStruct:
		n, err := r.readSizeQuantity(l4)
		if err != nil {
			return Value{}, err
		}
		id, err := r.readTypeId()
		if err != nil {
			return Value{}, err
		}
		fields := make([]Value, n)
		for i := range fields {
			fields[i], err = r.readValue()
			if err != nil {
				return Value{}, err
			}
		}
		return MakeStruct(id, fields), nil
	default:
		return Value{}, &FatalError{Kind: ErrH4, Byte: FromH4L4(h4, l4)}
	}
}

// readType is a tag-dispatched recursive descent using the Tag byte as the
// discriminator , independent of the H4/L4 header
// split used for Values.
func (r *reader) readType() (Type, error) {
	if err := r.enter(); err != nil {
		return Type{}, err
	}
	defer r.leave()
	tb, err := r.readByte()
	if err != nil {
		return Type{}, err
	}
	tag := Tag(tb)
	switch tag {
	case TagOption, TagList:
		elem, err := r.readType()
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: tag, Elem: &elem}, nil
	case TagMap:
		key, err := r.readType()
		if err != nil {
			return Type{}, err
		}
		val, err := r.readType()
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: tag, Key: &key, Val: &val}, nil
	case TagTuple:
		arity, err := r.readByte()
		if err != nil {
			return Type{}, err
		}
		elems := make([]Type, arity)
		for i := range elems {
			elems[i], err = r.readType()
			if err != nil {
				return Type{}, err
			}
		}
		return Type{Kind: tag, Elems: elems}, nil
	case TagAlias, TagCEnum, TagEnum, TagStruct:
		id, err := r.readTypeId()
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: tag, ID: id}, nil
	case TagUnknown, TagUnit, TagBool, TagU8, TagU16, TagU32, TagU64,
		TagI8, TagI16, TagI32, TagI64, TagF16, TagF32, TagF64,
		TagString, TagBytes, TagType, TagTypeId:
		return Type{Kind: tag}, nil
	default:
		return Type{}, &InputError{Kind: ErrTag, Byte: tb}
	}
}

// readTypeId reads one TypeId: h8 0x00 means Anonymous, 0xff means a
// 7-byte Hash follows, anything else is a Std schema byte followed by a
// big-endian u16 id.
func (r *reader) readTypeId() (TypeId, error) {
	h8, err := r.readByte()
	if err != nil {
		return TypeId{}, err
	}
	switch h8 {
	case schemaAnonymous:
		return AnonymousTypeID, nil
	case schemaHash:
		buf, err := r.readSlice(7)
		if err != nil {
			return TypeId{}, err
		}
		var hash [7]byte
		copy(hash[:], buf)
		return HashTypeID(hash), nil
	default:
		buf, err := r.readSlice(2)
		if err != nil {
			return TypeId{}, err
		}
		return TypeId{Kind: TypeIdStd, Schema: h8, Id: binary.BigEndian.Uint16(buf)}, nil
	}
}

// Decode decodes exactly one Value from b, asserting the input is fully
// consumed. It is DecodeFrom(NewSliceInput(b)) shortened for the common case
// of a caller holding a plain byte slice.
func Decode(b []byte) (Value, error) {
	return DecodeFrom(NewSliceInput(b))
}

// DecodeFirstValue decodes one Value from the front of b and returns
// whatever bytes remain, letting the caller decode a stream of values. It is
// DecodeFirstValueFrom(NewSliceInput(b)) shortened the same way Decode is.
func DecodeFirstValue(b []byte) (Value, []byte, error) {
	return DecodeFirstValueFrom(NewSliceInput(b))
}

// DecodeFrom decodes exactly one Value from an arbitrary Input, asserting
// the input is fully consumed. Per §6, the reader is parameterised over the
// Input boundary rather than a concrete byte slice: a caller holding a
// SharedInput (e.g. several decodes fanned out over one refcounted
// allocation) calls this directly instead of copying into a slice first.
func DecodeFrom(in Input) (Value, error) {
	v, rest, err := DecodeFirstValueFrom(in)
	if err != nil {
		return Value{}, err
	}
	if len(rest) != 0 {
		return Value{}, &InputError{Kind: ErrTooLong, Rest: len(rest)}
	}
	return v, nil
}

// DecodeFirstValueFrom decodes one Value from the front of in and returns
// whatever bytes remain (read via in.Slice, so they alias in's own backing
// storage rather than a copy), letting the caller decode a stream of values
// off any Input implementation.
func DecodeFirstValueFrom(in Input) (Value, []byte, error) {
	r := newReader(in)
	v, err := r.readValue()
	if err != nil {
		return Value{}, nil, err
	}
	rest, _ := in.Slice(r.pos, in.Len())
	return v, rest, nil
}
