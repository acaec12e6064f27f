// Package bcbc implements BCBC, a self-describing binary codec for a closed
// algebraic value universe: scalars, strings and byte blobs, options,
// homogeneous lists and maps, heterogeneous tuples, transparent aliases,
// C-style and payload-carrying enums, structs, and first-class type and
// type-identifier values.
//
// # Overview
//
// Every encoded value starts with a one-byte header split into a 4-bit high
// nibble (H4, the kind/length family) and a 4-bit low nibble (L4, the width
// class). Integers, floats and lengths are stored in a length-minimised
// form (see numeric.go and extvar.go): the encoder always picks the fewest
// trailing/leading bytes that losslessly represent the value, and the
// decoder rejects any non-minimal encoding.
//
// # When to Use BCBC
//
// BCBC is a payload format for schema-typed systems where the encoded form
// is persisted or transmitted and must round-trip bit-exactly for any
// admitted value — RPC payloads, on-disk records, snapshot formats.
//
// # When NOT to Use BCBC
//
// BCBC is not a schema-evolution or versioning format: it has no mechanism
// for adding or removing fields across versions, no checksumming, and no
// random access into an encoded value. It is also not a format for
// streaming across frame boundaries — each call to Decode consumes exactly
// one value from a single buffer.
//
// # Basic Usage
//
//	v := bcbc.MakeU64(24393)
//	enc := v.Encode()
//	got, err := bcbc.Decode(enc)
//	if err != nil {
//	    // err is either an *InputError (bad bytes) or a *FatalError (bug)
//	}
//	_ = got
//
// # Canonicality
//
// Encode always produces the shortest valid encoding for a value; Decode
// rejects any input that Encode would not itself have produced (non-minimal
// bytevar/extvar, negative-zero magnitudes, unused extension slots). This
// makes Encode(Decode(b)) == b for every b that Decode accepts.
package bcbc
