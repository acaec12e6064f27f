package bcbc

import "testing"

func TestBytevarULenMinimal(t *testing.T) {
	cases := []struct {
		u    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
		{1 << 32, 5},
		{^uint64(0), 8},
	}
	for _, c := range cases {
		if got := bytevarULen(c.u); got != c.want {
			t.Errorf("bytevarULen(%d) = %d, want %d", c.u, got, c.want)
		}
	}
}

func TestUrangeEncodeDecodeRoundTrip(t *testing.T) {
	for _, u := range []uint64{0, 1, 255, 256, 1 << 20, ^uint64(0)} {
		k := encodeUrange(u)
		buf := urangeBuf(u)
		got := decodeUrange(buf[8-k:])
		if got != u {
			t.Fatalf("decodeUrange(encodeUrange(%d)) = %d", u, got)
		}
	}
}

func TestCheckUrangeLen(t *testing.T) {
	// U16 slot (nlen=2): value 1 must be written in exactly 1 byte.
	if err := checkUrangeLen(1, 2, 1); err != nil {
		t.Fatalf("k=exp should pass: %v", err)
	}
	if err := checkUrangeLen(2, 2, 1); err == nil {
		t.Fatalf("k=2 > canonical 1 should fail as LongerThanExpected")
	} else if ie, ok := err.(*InputError); !ok || ie.Kind != ErrBytevarLongerThanExpected {
		t.Fatalf("wrong error kind: %v", err)
	}
	if err := checkUrangeLen(3, 2, 1); err == nil {
		t.Fatalf("k=3 > nlen=2 should fail as LongerThanType")
	} else if ie, ok := err.(*InputError); !ok || ie.Kind != ErrBytevarLongerThanType {
		t.Fatalf("wrong error kind: %v", err)
	}
}

func TestSplitJoinSign(t *testing.T) {
	for _, i := range []int64{0, 1, -1, 32767, -32768, 1 << 40, -(1 << 40)} {
		neg, mag := splitSign(i)
		if got := joinSign(neg, mag); got != i {
			t.Fatalf("joinSign(splitSign(%d)) = %d", i, got)
		}
	}
}

func TestCheckSignedRangeNegZero(t *testing.T) {
	if err := checkSignedRange(true, 0, 16); err == nil {
		t.Fatalf("expected BytevarNegZero for neg magnitude 0")
	} else if ie, ok := err.(*InputError); !ok || ie.Kind != ErrBytevarNegZero {
		t.Fatalf("wrong error kind: %v", err)
	}
}

func TestCheckSignedRangeOverflow(t *testing.T) {
	// 16-bit signed: max positive magnitude is 32767.
	if err := checkSignedRange(false, 32768, 16); err == nil {
		t.Fatalf("expected BytevarIntSign for positive magnitude overflow")
	}
	// max negative magnitude is 32768.
	if err := checkSignedRange(true, 32769, 16); err == nil {
		t.Fatalf("expected BytevarIntSign for negative magnitude overflow")
	}
	if err := checkSignedRange(true, 32768, 16); err != nil {
		t.Fatalf("magnitude 32768 (i.e. -32768) should be valid at width 16: %v", err)
	}
}

func TestFrangeRoundTrip(t *testing.T) {
	for _, bits := range []uint64{0, 1, 0x3ff0000000000000, ^uint64(0)} {
		k, buf := encodeFrange(bits, 8)
		got := decodeFrange(buf[:k], 8)
		if got != bits {
			t.Fatalf("decodeFrange(encodeFrange(%x)) = %x", bits, got)
		}
	}
}
