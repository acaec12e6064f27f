package bcbc

import (
	"hash/maphash"
	"testing"
)

func TestStdTypeIDRejectsReservedSchema(t *testing.T) {
	if _, err := StdTypeID(0x00, 1); err == nil {
		t.Fatalf("expected rejection of schema 0x00")
	}
	if _, err := StdTypeID(0xff, 1); err == nil {
		t.Fatalf("expected rejection of schema 0xff")
	}
	id, err := StdTypeID(0x01, 0x5f50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Kind != TypeIdStd || id.Schema != 0x01 || id.Id != 0x5f50 {
		t.Fatalf("unexpected TypeId: %+v", id)
	}
}

func TestAnonymousTypeIDh8(t *testing.T) {
	if AnonymousTypeID.h8() != schemaAnonymous {
		t.Fatalf("Anonymous h8 = 0x%02x, want 0x00", AnonymousTypeID.h8())
	}
}

func TestHashTypeIDh8(t *testing.T) {
	id := HashTypeID([7]byte{1, 2, 3, 4, 5, 6, 7})
	if id.h8() != schemaHash {
		t.Fatalf("Hash h8 = 0x%02x, want 0xff", id.h8())
	}
}

func TestHashTypeIDFromNameStable(t *testing.T) {
	seed := maphash.MakeSeed()
	a := HashTypeIDFromName(seed, "example.Widget")
	b := HashTypeIDFromName(seed, "example.Widget")
	if a != b {
		t.Fatalf("same seed+name should produce identical TypeId: %+v vs %+v", a, b)
	}
	c := HashTypeIDFromName(seed, "example.Gadget")
	if a == c {
		t.Fatalf("different names should (almost certainly) differ: %+v", a)
	}
}
