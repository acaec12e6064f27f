package bcbc

import "math"

// extvar is the length-minimised quantity codec : values
// below 12 ride inline in the L4 nibble; larger ones use the smallest of a
// 1/2/4/8-byte trailing field, selected by the EXT8/16/32/64 L4 aliases
// defined in header.go.
const extvarInlineLimit = 12

// MaxLen is the size ceiling extszvar enforces on any length-carrying
// field (String/Bytes/List/Map/Tuple/Struct counts). CEnum/Enum variant
// indices are not lengths and may be any u64. The ceiling is
// implementation-defined; see DESIGN.md for the choice.
const MaxLen = 1<<32 - 1

// extvarEncode returns the L4 nibble and the number of trailing bytes
// (0/1/2/4/8) needed to encode u canonically; the caller writes that many
// low-order big-endian bytes of u.
func extvarEncode(u uint64) (l4 L4, trailingLen int) {
	switch {
	case u < extvarInlineLimit:
		return L4(u), 0
	case u <= math.MaxUint8:
		return EXT8, 1
	case u <= math.MaxUint16:
		return EXT16, 2
	case u <= math.MaxUint32:
		return EXT32, 4
	default:
		return EXT64, 8
	}
}

// extvarExpectedL4 is the L4 a canonical encoder would have chosen for u;
// the decoder compares this against the L4 it actually saw.
func extvarExpectedL4(u uint64) L4 {
	l4, _ := extvarEncode(u)
	return l4
}

// extvarTrailingLen returns how many trailing bytes follow a header whose
// L4 is l4: 0 for an inline quantity, else 1/2/4/8 for EXT8/16/32/64.
func extvarTrailingLen(l4 L4) int {
	switch l4 {
	case EXT8:
		return 1
	case EXT16:
		return 2
	case EXT32:
		return 4
	case EXT64:
		return 8
	default:
		return 0
	}
}

// extvarDecode reconstructs u from l4 and, if l4 names an EXT class, its
// big-endian trailing bytes (already read by the caller, exactly
// extvarTrailingLen(l4) long).
func extvarDecode(l4 L4, trailing []byte) uint64 {
	if len(trailing) == 0 {
		return uint64(l4)
	}
	return decodeUrange(trailing)
}

// checkExtvarCanonical rejects any (l4, u) pair that extvarEncode would not
// itself have produced for u.
func checkExtvarCanonical(l4 L4, u uint64) error {
	if expected := extvarExpectedL4(u); l4 != expected {
		return &InputError{Kind: ErrExtvarTooLong, L4: l4, ExpectedL4: expected, U: u}
	}
	return nil
}

// checkSize applies the extszvar size ceiling and converts to a platform
// int, the unit the rest of the codec (slice lengths, Go's append) uses.
func checkSize(u uint64) (int, error) {
	if u > MaxLen {
		return 0, &InputError{Kind: ErrTooLongLen, N: int(u)}
	}
	n := int(u)
	if uint64(n) != u {
		return 0, &FatalError{Kind: ErrToSize, U64: u}
	}
	return n, nil
}

// sizeToU64 converts a platform int length (already validated to be
// non-negative by its Go slice origin) to u64 for encoding.
func sizeToU64(n int) (uint64, error) {
	if n < 0 {
		return 0, &FatalError{Kind: ErrFromSize, N: n}
	}
	return uint64(n), nil
}
