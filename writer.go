package bcbc

import "encoding/binary"

// writer is the recursive-descent encoder, mirroring reader's structure
// : for each Value variant it emits the header plus any
// length/type/id metadata, then recurses into children. It performs no
// reordering and never allocates more than the encoded length demands.
type writer struct {
	out   Output
	depth int
}

func newWriter(out Output) *writer { return &writer{out: out} }

// enter/leave mirror reader's recursion-depth guard (reader.go) so a
// pathologically self-nested Value built by a caller cannot drive Encode
// into a stack overflow either.
func (w *writer) enter() error {
	w.depth++
	if w.depth > maxNestingDepth {
		return &FatalError{Kind: ErrTooDeepFatal, N: maxNestingDepth}
	}
	return nil
}

func (w *writer) leave() { w.depth-- }

func (w *writer) writeByte(b byte) error { return w.out.WriteByte(b) }

func (w *writer) writeBytes(b []byte) error {
	_, err := w.out.Write(b)
	return err
}

// writeBytevarUnsigned emits an Nk header (l4 fixed, k chosen minimally for
// v) followed by v's k trailing big-endian bytes.
func writeBytevarUnsigned[T uint8 | uint16 | uint32 | uint64](w *writer, l4 L4, v T) error {
	u := uint64(v)
	k := bytevarULen(u)
	h4, err := H4FromBytevarLen(k)
	if err != nil {
		return err
	}
	if err := w.writeByte(FromH4L4(h4, l4)); err != nil {
		return err
	}
	buf := urangeBuf(u)
	return w.writeBytes(buf[8-k:])
}

// writeBytevarSigned splits v into (isNegative, magnitude) and emits the
// Pk/Nk header its sign selects, followed by the magnitude's minimal
// trailing bytes.
func writeBytevarSigned(w *writer, v int64, posL4, negL4 L4) error {
	neg, mag := splitSign(v)
	l4 := posL4
	if neg {
		l4 = negL4
	}
	k := bytevarULen(mag)
	h4, err := H4FromBytevarLen(k)
	if err != nil {
		return err
	}
	if err := w.writeByte(FromH4L4(h4, l4)); err != nil {
		return err
	}
	buf := urangeBuf(mag)
	return w.writeBytes(buf[8-k:])
}

func (w *writer) writeI8(v int8) error {
	return writeBytevarUnsigned[uint8](w, L4I8, uint8(v))
}

// writeBytevarFloat left-aligns bits into an Fk header with k chosen
// minimally per the frange policy.
func writeBytevarFloat(w *writer, l4 L4, bits uint64, widthBytes int) error {
	k, buf := encodeFrange(bits, widthBytes)
	h4, err := H4FromBytevarLen(k)
	if err != nil {
		return err
	}
	if err := w.writeByte(FromH4L4(h4, l4)); err != nil {
		return err
	}
	return w.writeBytes(buf[:k])
}

// writeExt1Header emits the (Nk, EXT1) header naming Ext1 symbol e.
func (w *writer) writeExt1Header(e Ext1) error {
	return w.writeByte(FromH4L4(H4FromExt1(e), L4EXT1))
}

// writeHeaderWithExtvar emits h4's header byte with an extvar-encoded u,
// inline in L4 when u < 12, else in an EXT8/16/32/64 trailing field.
func (w *writer) writeHeaderWithExtvar(h4 H4, u uint64) error {
	l4, trailingLen := extvarEncode(u)
	if err := w.writeByte(FromH4L4(h4, l4)); err != nil {
		return err
	}
	if trailingLen == 0 {
		return nil
	}
	buf := urangeBuf(u)
	return w.writeBytes(buf[8-trailingLen:])
}

// writeSize is writeHeaderWithExtvar for a length-like field (the
// extszvar variant names): it additionally rejects any n
// exceeding MaxLen as a fatal precondition violation rather than a
// malformed-input condition, since n here always originates from a Go
// slice length the caller already constructed.
func (w *writer) writeSize(h4 H4, n int) error {
	u, err := sizeToU64(n)
	if err != nil {
		return err
	}
	if u > MaxLen {
		return &FatalError{Kind: ErrLenTooLarge, N: n}
	}
	return w.writeHeaderWithExtvar(h4, u)
}

// writeType emits t's Tag byte followed by any child Types or TypeId it
// carries, independent of the Value header's H4/L4 split.
func (w *writer) writeType(t Type) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	if err := w.writeByte(byte(t.Kind)); err != nil {
		return err
	}
	switch t.Kind {
	case TagOption, TagList:
		return w.writeType(*t.Elem)
	case TagMap:
		if err := w.writeType(*t.Key); err != nil {
			return err
		}
		return w.writeType(*t.Val)
	case TagTuple:
		if len(t.Elems) > 255 {
			return &FatalError{Kind: ErrLenTooLarge, N: len(t.Elems)}
		}
		if err := w.writeByte(byte(len(t.Elems))); err != nil {
			return err
		}
		for _, e := range t.Elems {
			if err := w.writeType(e); err != nil {
				return err
			}
		}
		return nil
	case TagAlias, TagCEnum, TagEnum, TagStruct:
		return w.writeTypeId(t.ID)
	default:
		return nil
	}
}

// writeTypeId emits id's h8 byte, followed by a 7-byte hash (Hash) or a
// big-endian u16 id (Std); Anonymous carries nothing further.
func (w *writer) writeTypeId(id TypeId) error {
	if err := w.writeByte(id.h8()); err != nil {
		return err
	}
	switch id.Kind {
	case TypeIdAnonymous:
		return nil
	case TypeIdHash:
		return w.writeBytes(id.Hash[:])
	default:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], id.Id)
		return w.writeBytes(buf[:])
	}
}

// writeValue dispatches on v.Kind, mirroring reader.readValue's structure
// in reverse.
func (w *writer) writeValue(v Value) error {
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	switch v.Kind {
	case TagUnit:
		return w.writeExt1Header(Ext1Unit)
	case TagBool:
		if v.B {
			return w.writeExt1Header(Ext1True)
		}
		return w.writeExt1Header(Ext1False)
	case TagU8:
		return writeBytevarUnsigned[uint8](w, L4U8, v.U8v)
	case TagU16:
		return writeBytevarUnsigned[uint16](w, L4U16, v.U16v)
	case TagU32:
		return writeBytevarUnsigned[uint32](w, L4U32, v.U32v)
	case TagU64:
		return writeBytevarUnsigned[uint64](w, L4U64, v.U64v)
	case TagI8:
		return w.writeI8(v.I8v)
	case TagI16:
		return writeBytevarSigned(w, int64(v.I16v), L4P16, L4N16)
	case TagI32:
		return writeBytevarSigned(w, int64(v.I32v), L4P32, L4N32)
	case TagI64:
		return writeBytevarSigned(w, v.I64v, L4P64, L4N64)
	case TagF16:
		return writeBytevarFloat(w, L4F16, uint64(v.F16v), 2)
	case TagF32:
		return writeBytevarFloat(w, L4F32, uint64(v.F32v), 4)
	case TagF64:
		return writeBytevarFloat(w, L4F64, v.F64v, 8)
	case TagString:
		b := []byte(v.Str)
		if err := w.writeSize(HString, len(b)); err != nil {
			return err
		}
		return w.writeBytes(b)
	case TagBytes:
		if err := w.writeSize(HBytes, len(v.Bytes)); err != nil {
			return err
		}
		return w.writeBytes(v.Bytes)
	case TagOption:
		if v.Opt == nil {
			if err := w.writeExt1Header(Ext1None); err != nil {
				return err
			}
			return w.writeType(*v.ElemType)
		}
		if err := w.writeExt1Header(Ext1Some); err != nil {
			return err
		}
		if err := w.writeType(*v.ElemType); err != nil {
			return err
		}
		return w.writeValue(*v.Opt)
	case TagList:
		if err := w.writeSize(HList, len(v.Elems)); err != nil {
			return err
		}
		if err := w.writeType(*v.ElemType); err != nil {
			return err
		}
		for _, e := range v.Elems {
			if err := w.writeValue(e); err != nil {
				return err
			}
		}
		return nil
	case TagMap:
		if err := w.writeSize(HMap, len(v.Entries)); err != nil {
			return err
		}
		if err := w.writeType(*v.KeyType); err != nil {
			return err
		}
		if err := w.writeType(*v.ValType); err != nil {
			return err
		}
		for _, ent := range v.Entries {
			if err := w.writeValue(ent.Key); err != nil {
				return err
			}
			if err := w.writeValue(ent.Val); err != nil {
				return err
			}
		}
		return nil
	case TagTuple:
		if err := w.writeSize(HTuple, len(v.Elems)); err != nil {
			return err
		}
		for _, e := range v.Elems {
			if err := w.writeValue(e); err != nil {
				return err
			}
		}
		return nil
	case TagAlias:
		if err := w.writeExt1Header(Ext1Alias); err != nil {
			return err
		}
		if err := w.writeTypeId(v.ID); err != nil {
			return err
		}
		return w.writeValue(*v.Inner)
	case TagCEnum:
		if err := w.writeHeaderWithExtvar(HCEnum, v.Variant); err != nil {
			return err
		}
		return w.writeTypeId(v.ID)
	case TagEnum:
		if err := w.writeHeaderWithExtvar(HEnum, v.Variant); err != nil {
			return err
		}
		if err := w.writeTypeId(v.ID); err != nil {
			return err
		}
		return w.writeValue(*v.Inner)
	case TagStruct:
		if err := w.writeSize(HStruct, len(v.Elems)); err != nil {
			return err
		}
		if err := w.writeTypeId(v.ID); err != nil {
			return err
		}
		for _, e := range v.Elems {
			if err := w.writeValue(e); err != nil {
				return err
			}
		}
		return nil
	case TagType:
		if err := w.writeExt1Header(Ext1Type); err != nil {
			return err
		}
		return w.writeType(*v.TypeVal)
	case TagTypeId:
		if err := w.writeExt1Header(Ext1TypeId); err != nil {
			return err
		}
		return w.writeTypeId(v.TypeIDVal)
	default:
		return &FatalError{Kind: ErrH4, Byte: byte(v.Kind)}
	}
}

// Encode produces the canonical encoding of v into a fresh buffer. Per
// , encoding is total on well-formed Values; the only failure
// modes are the defensive preconditions (a Tuple Type's arity over 255, a
// length too large to represent, nesting deeper than maxNestingDepth) that
// indicate a bug in the caller rather
// than a malformed value, so Encode panics rather than returning an error.
// Callers that want to handle those preconditions themselves should use
// EncodeTo directly.
func (v Value) Encode() []byte {
	out := NewByteSliceOutput(16)
	if err := v.EncodeTo(out); err != nil {
		panic(err)
	}
	return out.Finalize()
}

// EncodeTo writes v's canonical encoding to out, returning any fatal
// precondition violation instead of panicking.
func (v Value) EncodeTo(out Output) error {
	return newWriter(out).writeValue(v)
}
