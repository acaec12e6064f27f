package bcbc

import "encoding/binary"

// bytevar is the length-minimised scalar codec: every Uk/Ik/Fk value is
// emitted with the fewest bytes that losslessly represent it, with the
// count itself carried in the header's H4 nibble. Unsigned and
// signed-magnitude values are right-aligned (urange); floats are
// left-aligned (frange). This file generalises the per-width fan a
// C-style macro or hand-duplicated per-width accessor set would otherwise
// need into a handful of functions that take the byte or bit width as an
// ordinary argument.

// bytevarULen returns the canonical urange length (1..=8 bytes) for u: the
// number of bytes from the first non-zero byte to the end, minimum 1.
func bytevarULen(u uint64) int {
	if u == 0 {
		return 1
	}
	n := 0
	for u != 0 {
		u >>= 8
		n++
	}
	return n
}

// urangeBuf returns u's full 8-byte big-endian representation, used both to
// build the canonical trailing slice and as error-report context.
func urangeBuf(u uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	return buf[:]
}

// encodeUrange returns the canonical length k for u; the caller writes
// urangeBuf(u)[8-k:].
func encodeUrange(u uint64) int {
	return bytevarULen(u)
}

// decodeUrange reconstructs a u64 from its k trailing big-endian bytes.
func decodeUrange(b []byte) uint64 {
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:])
}

// checkUrangeLen validates a decoded urange read of k bytes against the
// scalar slot's byte width nlen and the value's own canonical length.
func checkUrangeLen(k, nlen int, u uint64) error {
	if k > nlen {
		return &InputError{Kind: ErrBytevarLongerThanType, Len: k, NLen: nlen, Buf: urangeBuf(u)}
	}
	if exp := bytevarULen(u); k != exp {
		return &InputError{Kind: ErrBytevarLongerThanExpected, Len: k, NLen: nlen, ExpLen: exp, Buf: urangeBuf(u)}
	}
	return nil
}

// bytevarFLen returns the canonical frange length (1..=8) for a float's raw
// bit pattern already left-aligned in an 8-byte buffer.
func bytevarFLen(buf [8]byte) int {
	for i := 7; i >= 0; i-- {
		if buf[i] != 0 {
			return i + 1
		}
	}
	return 1
}

// encodeFrange left-aligns a widthBytes-wide raw bit pattern into an 8-byte
// buffer and returns the canonical leading length; the caller writes
// buf[:k].
func encodeFrange(bits uint64, widthBytes int) (k int, buf [8]byte) {
	shift := uint((8 - widthBytes) * 8)
	binary.BigEndian.PutUint64(buf[:], bits<<shift)
	return bytevarFLen(buf), buf
}

// decodeFrange reconstructs a widthBytes-wide raw bit pattern from its k
// leading big-endian bytes.
func decodeFrange(b []byte, widthBytes int) uint64 {
	var buf [8]byte
	copy(buf[:len(b)], b)
	shift := uint((8 - widthBytes) * 8)
	return binary.BigEndian.Uint64(buf[:]) >> shift
}

// checkFrangeLen validates a decoded frange read of k leading bytes against
// the scalar slot's byte width widthBytes and the value's own canonical
// length, mirroring checkUrangeLen's two-stage check for the float policy.
func checkFrangeLen(k, widthBytes int, bits uint64) error {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], bits<<uint((8-widthBytes)*8))
	if k > widthBytes {
		return &InputError{Kind: ErrBytevarLongerThanType, Len: k, NLen: widthBytes, Buf: full[:]}
	}
	if exp := bytevarFLen(full); k != exp {
		return &InputError{Kind: ErrBytevarLongerThanExpected, Len: k, NLen: widthBytes, ExpLen: exp, Buf: full[:]}
	}
	return nil
}

// splitSign splits a widthBits-wide signed integer (already sign-extended
// into an int64) into the (isNegative, magnitude) pair the P/N-split policy
// stores. Relies on Go's wraparound two's-complement negation, which gives
// the correct unsigned magnitude even for the widest negative value.
func splitSign(i int64) (neg bool, mag uint64) {
	if i < 0 {
		return true, uint64(-i)
	}
	return false, uint64(i)
}

// checkSignedRange validates a decoded sign/magnitude pair against the
// scalar width in bits, signed bytevar policy: a
// negative-zero encoding is forbidden, and the magnitude must fit the
// signed width on either side of zero.
func checkSignedRange(neg bool, mag uint64, widthBits uint) error {
	maxPos := uint64(1)<<(widthBits-1) - 1
	maxNegMag := uint64(1) << (widthBits - 1)
	if neg {
		if mag == 0 {
			return &InputError{Kind: ErrBytevarNegZero, Buf: urangeBuf(mag)}
		}
		if mag > maxNegMag {
			return &InputError{Kind: ErrBytevarIntSign, Buf: urangeBuf(mag)}
		}
	} else if mag > maxPos {
		return &InputError{Kind: ErrBytevarIntSign, Buf: urangeBuf(mag)}
	}
	return nil
}

// joinSign reconstructs a signed int64 from a validated (isNegative,
// magnitude) pair.
func joinSign(neg bool, mag uint64) int64 {
	if neg {
		return -int64(mag)
	}
	return int64(mag)
}
