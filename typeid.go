package bcbc

import "hash/maphash"

// TypeIdKind discriminates the three TypeId variants.
type TypeIdKind uint8

const (
	TypeIdAnonymous TypeIdKind = iota
	TypeIdStd
	TypeIdHash
)

const (
	schemaAnonymous = 0x00
	schemaHash      = 0xff
)

// TypeId identifies a nominal type (Alias/Enum/CEnum/Struct) on the wire.
// It is one of three shapes: Anonymous (a single reserved byte), Std (a
// reserved-excluded schema byte plus a 16-bit id), or Hash (a 7-byte
// fingerprint). Construct with StdTypeID/HashTypeID
// or use AnonymousTypeID; the zero value is AnonymousTypeID.
type TypeId struct {
	Kind   TypeIdKind
	Schema uint8
	Id     uint16
	Hash   [7]byte
}

// AnonymousTypeID is the single Anonymous TypeId value.
var AnonymousTypeID = TypeId{Kind: TypeIdAnonymous}

// StdTypeID constructs a Std{schema, id} TypeId. schema must not be 0x00 or
// 0xff: those bytes are reserved for Anonymous and Hash respectively.
func StdTypeID(schema uint8, id uint16) (TypeId, error) {
	if schema == schemaAnonymous || schema == schemaHash {
		return TypeId{}, &FatalError{Kind: ErrReservedSchema, Byte: schema}
	}
	return TypeId{Kind: TypeIdStd, Schema: schema, Id: id}, nil
}

// HashTypeID constructs a Hash{7 bytes} TypeId from a raw fingerprint.
func HashTypeID(hash [7]byte) TypeId {
	return TypeId{Kind: TypeIdHash, Hash: hash}
}

// HashTypeIDFromName derives a Hash TypeId from an arbitrary name, for
// callers that want an identifier without registering a Std schema. The
// result depends on seed: the same seed and name give the same TypeId, but
// a maphash.Seed exists only within one process, so ids derived in
// different processes differ.
// the codec leaves the hashing scheme unspecified (an Open Question, see
// DESIGN.md); this uses a seeded hash/maphash digest truncated to 7 bytes.
func HashTypeIDFromName(seed maphash.Seed, name string) TypeId {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.WriteString(name)
	sum := h.Sum64()
	var out [7]byte
	for i := range out {
		out[i] = byte(sum >> (8 * uint(i)))
	}
	return HashTypeID(out)
}

// h8 returns the TypeId's leading wire byte : 0x00 for
// Anonymous, 0xff for Hash, or the schema byte for Std.
func (id TypeId) h8() uint8 {
	switch id.Kind {
	case TypeIdAnonymous:
		return schemaAnonymous
	case TypeIdHash:
		return schemaHash
	default:
		return id.Schema
	}
}

func (id TypeId) String() string {
	switch id.Kind {
	case TypeIdAnonymous:
		return "Anonymous"
	case TypeIdStd:
		return "Std{schema:0x" + hexByte(id.Schema) + "}"
	case TypeIdHash:
		return "Hash{...}"
	default:
		return "TypeId(invalid)"
	}
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
