package bcbc

import "testing"

func TestExtvarEncodeInline(t *testing.T) {
	for u := uint64(0); u < extvarInlineLimit; u++ {
		l4, n := extvarEncode(u)
		if n != 0 {
			t.Fatalf("u=%d should be inline, got trailingLen=%d", u, n)
		}
		if uint64(l4) != u {
			t.Fatalf("u=%d inline l4 = %d, want %d", u, l4, u)
		}
	}
}

func TestExtvarEncodeClasses(t *testing.T) {
	cases := []struct {
		u       uint64
		wantL4  L4
		wantLen int
	}{
		{12, EXT8, 1},
		{255, EXT8, 1},
		{256, EXT16, 2},
		{65535, EXT16, 2},
		{65536, EXT32, 4},
		{1 << 32, EXT64, 8},
	}
	for _, c := range cases {
		l4, n := extvarEncode(c.u)
		if l4 != c.wantL4 || n != c.wantLen {
			t.Fatalf("extvarEncode(%d) = (%s, %d), want (%s, %d)", c.u, l4, n, c.wantL4, c.wantLen)
		}
	}
}

func TestExtvarDecodeRoundTrip(t *testing.T) {
	for _, u := range []uint64{0, 5, 11, 12, 255, 256, 65535, 65536, 1 << 32, ^uint64(0)} {
		l4, n := extvarEncode(u)
		buf := urangeBuf(u)
		got := extvarDecode(l4, buf[8-n:])
		if got != u {
			t.Fatalf("extvarDecode(extvarEncode(%d)) = %d", u, got)
		}
	}
}

func TestCheckExtvarCanonicalRejectsNonMinimal(t *testing.T) {
	// the codec: decode(hex "8c 00") -> ExtvarTooLong{l4: EXT8, expected_l4: 0, u: 0}
	if err := checkExtvarCanonical(EXT8, 0); err == nil {
		t.Fatalf("expected ExtvarTooLong for u=0 encoded as EXT8")
	} else if ie, ok := err.(*InputError); !ok || ie.Kind != ErrExtvarTooLong {
		t.Fatalf("wrong error kind: %v", err)
	} else if ie.ExpectedL4 != L4(0) {
		t.Fatalf("expected_l4 = %s, want inline 0", ie.ExpectedL4)
	}
}

func TestCheckSizeRejectsOverMaxLen(t *testing.T) {
	if _, err := checkSize(MaxLen); err != nil {
		t.Fatalf("MaxLen itself should be accepted: %v", err)
	}
	if _, err := checkSize(MaxLen + 1); err == nil {
		t.Fatalf("expected TooLongLen for MaxLen+1")
	}
}
