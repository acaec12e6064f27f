package bcbc

// Schema is the collaborator capability names: a type outside
// the core codec that knows how to present itself as a Value and recover
// itself from one. The core never calls it directly — it exists so user
// types can round-trip through Encode/Decode via the identity contract:
// encoding a Value produced by Serialize must survive Decode/Deserialize
// unchanged, modulo whatever invariants the implementing type enforces
// itself.
type Schema interface {
	// SchemaID returns the TypeId this type identifies itself with on the
	// wire, stable across encode/decode round-trips.
	SchemaID() TypeId
	// Serialize returns the Value this receiver is represented as.
	Serialize() Value
}

// Deserializer is the dual of Schema: given a previously decoded Value, it
// recovers a T. Go has no stable way to express a "static" deserialize
// method the way a const ID/associated function can be named in a trait,
// so this is a plain function value instead of a second interface method.
type Deserializer[T any] func(Value) (T, error)

// RoundTrip encodes s, decodes the result, and reconstructs a T via
// deserialize — the identity contract describes, expressed
// as a single call for tests and callers that just want to exercise it.
func RoundTrip[T Schema](s T, deserialize Deserializer[T]) (T, error) {
	var zero T
	encoded := s.Serialize().Encode()
	v, err := Decode(encoded)
	if err != nil {
		return zero, err
	}
	return deserialize(v)
}
