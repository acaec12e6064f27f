package bcbc

import "testing"

func TestToH4L4FromH4L4RoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		h4, l4 := ToH4L4(byte(b))
		if got := FromH4L4(h4, l4); got != byte(b) {
			t.Fatalf("byte 0x%02x: FromH4L4(ToH4L4(b)) = 0x%02x", b, got)
		}
	}
}

func TestH4BytevarLenRoundTrip(t *testing.T) {
	for k := 1; k <= 8; k++ {
		h4, err := H4FromBytevarLen(k)
		if err != nil {
			t.Fatalf("FromBytevarLen(%d): %v", k, err)
		}
		got, err := h4.ToBytevarLen()
		if err != nil {
			t.Fatalf("ToBytevarLen(%s): %v", h4, err)
		}
		if got != k {
			t.Fatalf("ToBytevarLen(FromBytevarLen(%d)) = %d", k, got)
		}
	}
	if _, err := H4FromBytevarLen(0); err == nil {
		t.Fatalf("expected error for k=0")
	}
	if _, err := H4FromBytevarLen(9); err == nil {
		t.Fatalf("expected error for k=9")
	}
}

func TestH4Ext1RoundTrip(t *testing.T) {
	for e := Ext1Unit; e <= Ext1TypeId; e++ {
		h4 := H4FromExt1(e)
		got, err := h4.ToExt1()
		if err != nil {
			t.Fatalf("ToExt1(%s): %v", h4, err)
		}
		if got != e {
			t.Fatalf("ToExt1(FromExt1(%s)) = %s", e, got)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	for h := N1; h <= N8; h++ {
		if !h.IsNumeric() {
			t.Fatalf("%s should be numeric", h)
		}
	}
	for _, h := range []H4{HString, HBytes, HList, HMap, HTuple, HCEnum, HEnum, HStruct} {
		if h.IsNumeric() {
			t.Fatalf("%s should not be numeric", h)
		}
	}
}
