package bcbc

// Type is the recursive structural type of a Value. It is a single tagged
// struct rather than one Go type per variant: a discriminant plus the
// payload fields any variant might need, with recursive children held by
// pointer or slice ("boxed/indirect children") rather than an
// interface-with-N-structs encoding. Kind selects which of
// Elem/Key/Val/Elems/ID is meaningful; the zero Type is Type{Kind:
// TagUnknown}.
type Type struct {
	Kind  Tag
	Elem  *Type  // Option/List element type
	Key   *Type  // Map key type
	Val   *Type  // Map value type
	Elems []Type // Tuple element types, in order
	ID    TypeId // Alias/CEnum/Enum/Struct nominal identifier
}

// Nullary Type constants: every variant without a carried payload.
var (
	UnknownType = Type{Kind: TagUnknown}
	UnitType    = Type{Kind: TagUnit}
	BoolType    = Type{Kind: TagBool}
	U8Type      = Type{Kind: TagU8}
	U16Type     = Type{Kind: TagU16}
	U32Type     = Type{Kind: TagU32}
	U64Type     = Type{Kind: TagU64}
	I8Type      = Type{Kind: TagI8}
	I16Type     = Type{Kind: TagI16}
	I32Type     = Type{Kind: TagI32}
	I64Type     = Type{Kind: TagI64}
	F16Type     = Type{Kind: TagF16}
	F32Type     = Type{Kind: TagF32}
	F64Type     = Type{Kind: TagF64}
	StringType  = Type{Kind: TagString}
	BytesType   = Type{Kind: TagBytes}
	FirstType   = Type{Kind: TagType}   // Value::Type's own type
	TypeIdType  = Type{Kind: TagTypeId} // Value::TypeId's own type
)

// NewOptionType builds Option(t).
func NewOptionType(t Type) Type { return Type{Kind: TagOption, Elem: &t} }

// NewListType builds List(t).
func NewListType(t Type) Type { return Type{Kind: TagList, Elem: &t} }

// NewMapType builds Map(tk, tv).
func NewMapType(tk, tv Type) Type { return Type{Kind: TagMap, Key: &tk, Val: &tv} }

// NewTupleType builds Tuple(elems...). Per , a tuple's arity
// must fit one byte (<=255 elements); callers violating this hit a
// FatalError at encode time rather than here, since an over-long tuple
// Type is still a constructible (if unencodable) value.
func NewTupleType(elems ...Type) Type { return Type{Kind: TagTuple, Elems: elems} }

// NewAliasType, NewCEnumType, NewEnumType, NewStructType build the four
// nominal Type variants, each carrying only a TypeId.
func NewAliasType(id TypeId) Type  { return Type{Kind: TagAlias, ID: id} }
func NewCEnumType(id TypeId) Type  { return Type{Kind: TagCEnum, ID: id} }
func NewEnumType(id TypeId) Type   { return Type{Kind: TagEnum, ID: id} }
func NewStructType(id TypeId) Type { return Type{Kind: TagStruct, ID: id} }

// Equal reports whether t and other describe the same structural type.
// Type has no natural Go == (it holds pointers and slices), so this
// recursive comparison stands in for the derived PartialEq the original
// Rust enum has.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TagOption, TagList:
		return t.Elem.Equal(*other.Elem)
	case TagMap:
		return t.Key.Equal(*other.Key) && t.Val.Equal(*other.Val)
	case TagTuple:
		if len(t.Elems) != len(other.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case TagAlias, TagCEnum, TagEnum, TagStruct:
		return t.ID == other.ID
	default:
		return true
	}
}
