package bcbc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ValueToJSON renders v as an indented JSON document for cmd/bcbcfmt's
// inspection output. The mapping follows the codec's own Kind-tagged shape
// directly — a "kind" discriminator plus whichever of value/valueBits/
// elemType/keyType/valType/entries/elems/fields/id/variant that Kind
// carries — rather than
// a generic reflection dump, so the JSON stays a faithful (if verbose)
// picture of the decoded Value tree.
func ValueToJSON(v Value) ([]byte, error) {
	node, err := valueToNode(v)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(node, "", "  ")
}

// ValueFromJSON parses a document produced by ValueToJSON back into a
// Value, so cmd/bcbcfmt's encode subcommand can round-trip an edited dump.
func ValueFromJSON(b []byte) (Value, error) {
	var node map[string]any
	if err := json.Unmarshal(b, &node); err != nil {
		return Value{}, fmt.Errorf("bcbc: invalid JSON value document: %w", err)
	}
	return nodeToValue(node)
}

func valueToNode(v Value) (map[string]any, error) {
	n := map[string]any{"kind": v.Kind.String()}
	switch v.Kind {
	case TagUnit:
		// no payload
	case TagBool:
		n["value"] = v.B
	case TagU8:
		n["value"] = v.U8v
	case TagU16:
		n["value"] = v.U16v
	case TagU32:
		n["value"] = v.U32v
	case TagU64:
		n["value"] = v.U64v
	case TagI8:
		n["value"] = v.I8v
	case TagI16:
		n["value"] = v.I16v
	case TagI32:
		n["value"] = v.I32v
	case TagI64:
		n["value"] = v.I64v
	case TagF16:
		n["valueBits"] = v.F16v
	case TagF32:
		n["valueBits"] = v.F32v
	case TagF64:
		n["valueBits"] = v.F64v
	case TagString:
		n["value"] = v.Str
	case TagBytes:
		n["value"] = base64.StdEncoding.EncodeToString(v.Bytes)
	case TagOption:
		elemType, err := typeToNode(*v.ElemType)
		if err != nil {
			return nil, err
		}
		n["elemType"] = elemType
		if v.Opt != nil {
			inner, err := valueToNode(*v.Opt)
			if err != nil {
				return nil, err
			}
			n["value"] = inner
		}
	case TagList:
		elemType, err := typeToNode(*v.ElemType)
		if err != nil {
			return nil, err
		}
		n["elemType"] = elemType
		elems, err := valuesToNodes(v.Elems)
		if err != nil {
			return nil, err
		}
		n["elems"] = elems
	case TagMap:
		keyType, err := typeToNode(*v.KeyType)
		if err != nil {
			return nil, err
		}
		valType, err := typeToNode(*v.ValType)
		if err != nil {
			return nil, err
		}
		n["keyType"] = keyType
		n["valType"] = valType
		entries := make([]map[string]any, len(v.Entries))
		for i, e := range v.Entries {
			key, err := valueToNode(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := valueToNode(e.Val)
			if err != nil {
				return nil, err
			}
			entries[i] = map[string]any{"key": key, "val": val}
		}
		n["entries"] = entries
	case TagTuple:
		elems, err := valuesToNodes(v.Elems)
		if err != nil {
			return nil, err
		}
		n["elems"] = elems
	case TagAlias:
		id, err := typeIdToNode(v.ID)
		if err != nil {
			return nil, err
		}
		inner, err := valueToNode(*v.Inner)
		if err != nil {
			return nil, err
		}
		n["id"] = id
		n["value"] = inner
	case TagCEnum:
		id, err := typeIdToNode(v.ID)
		if err != nil {
			return nil, err
		}
		n["id"] = id
		n["variant"] = v.Variant
	case TagEnum:
		id, err := typeIdToNode(v.ID)
		if err != nil {
			return nil, err
		}
		inner, err := valueToNode(*v.Inner)
		if err != nil {
			return nil, err
		}
		n["id"] = id
		n["variant"] = v.Variant
		n["value"] = inner
	case TagStruct:
		id, err := typeIdToNode(v.ID)
		if err != nil {
			return nil, err
		}
		fields, err := valuesToNodes(v.Elems)
		if err != nil {
			return nil, err
		}
		n["id"] = id
		n["fields"] = fields
	case TagType:
		t, err := typeToNode(*v.TypeVal)
		if err != nil {
			return nil, err
		}
		n["value"] = t
	case TagTypeId:
		id, err := typeIdToNode(v.TypeIDVal)
		if err != nil {
			return nil, err
		}
		n["value"] = id
	default:
		return nil, &FatalError{Kind: ErrH4, Byte: byte(v.Kind)}
	}
	return n, nil
}

func valuesToNodes(vs []Value) ([]map[string]any, error) {
	out := make([]map[string]any, len(vs))
	for i, e := range vs {
		node, err := valueToNode(e)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

func typeToNode(t Type) (map[string]any, error) {
	n := map[string]any{"kind": t.Kind.String()}
	switch t.Kind {
	case TagOption, TagList:
		elem, err := typeToNode(*t.Elem)
		if err != nil {
			return nil, err
		}
		n["elem"] = elem
	case TagMap:
		key, err := typeToNode(*t.Key)
		if err != nil {
			return nil, err
		}
		val, err := typeToNode(*t.Val)
		if err != nil {
			return nil, err
		}
		n["key"] = key
		n["val"] = val
	case TagTuple:
		elems := make([]map[string]any, len(t.Elems))
		for i, e := range t.Elems {
			node, err := typeToNode(e)
			if err != nil {
				return nil, err
			}
			elems[i] = node
		}
		n["elems"] = elems
	case TagAlias, TagCEnum, TagEnum, TagStruct:
		id, err := typeIdToNode(t.ID)
		if err != nil {
			return nil, err
		}
		n["id"] = id
	}
	return n, nil
}

func typeIdToNode(id TypeId) (map[string]any, error) {
	switch id.Kind {
	case TypeIdAnonymous:
		return map[string]any{"kind": "Anonymous"}, nil
	case TypeIdStd:
		return map[string]any{"kind": "Std", "schema": id.Schema, "id": id.Id}, nil
	case TypeIdHash:
		return map[string]any{"kind": "Hash", "hash": base64.StdEncoding.EncodeToString(id.Hash[:])}, nil
	default:
		return nil, &FatalError{Kind: ErrH4, Byte: byte(id.Kind)}
	}
}

func nodeKind(n map[string]any) (string, error) {
	k, ok := n["kind"].(string)
	if !ok {
		return "", fmt.Errorf("bcbc: JSON value node missing string \"kind\"")
	}
	return k, nil
}

func nodeToValue(n map[string]any) (Value, error) {
	kind, err := nodeKind(n)
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case "Unit":
		return MakeUnit(), nil
	case "Bool":
		b, _ := n["value"].(bool)
		return MakeBool(b), nil
	case "U8":
		u, err := nodeNumber(n, "value")
		return MakeU8(uint8(u)), err
	case "U16":
		u, err := nodeNumber(n, "value")
		return MakeU16(uint16(u)), err
	case "U32":
		u, err := nodeNumber(n, "value")
		return MakeU32(uint32(u)), err
	case "U64":
		u, err := nodeNumber(n, "value")
		return MakeU64(uint64(u)), err
	case "I8":
		i, err := nodeNumber(n, "value")
		return MakeI8(int8(i)), err
	case "I16":
		i, err := nodeNumber(n, "value")
		return MakeI16(int16(i)), err
	case "I32":
		i, err := nodeNumber(n, "value")
		return MakeI32(int32(i)), err
	case "I64":
		i, err := nodeNumber(n, "value")
		return MakeI64(int64(i)), err
	case "F16":
		u, err := nodeNumber(n, "valueBits")
		return MakeF16Bits(uint16(u)), err
	case "F32":
		u, err := nodeNumber(n, "valueBits")
		return MakeF32Bits(uint32(u)), err
	case "F64":
		u, err := nodeNumber(n, "valueBits")
		return MakeF64Bits(uint64(u)), err
	case "String":
		s, _ := n["value"].(string)
		return MakeString(s), nil
	case "Bytes":
		s, _ := n["value"].(string)
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Value{}, fmt.Errorf("bcbc: invalid base64 Bytes payload: %w", err)
		}
		return MakeBytes(b), nil
	case "Option":
		elemType, err := nodeToType(nodeMap(n, "elemType"))
		if err != nil {
			return Value{}, err
		}
		inner, ok := n["value"]
		if !ok {
			return MakeNone(elemType), nil
		}
		innerV, err := nodeToValue(inner.(map[string]any))
		if err != nil {
			return Value{}, err
		}
		return MakeSome(elemType, innerV), nil
	case "List":
		elemType, err := nodeToType(nodeMap(n, "elemType"))
		if err != nil {
			return Value{}, err
		}
		items, err := nodesToValues(n["elems"])
		if err != nil {
			return Value{}, err
		}
		return MakeList(elemType, items), nil
	case "Map":
		keyType, err := nodeToType(nodeMap(n, "keyType"))
		if err != nil {
			return Value{}, err
		}
		valType, err := nodeToType(nodeMap(n, "valType"))
		if err != nil {
			return Value{}, err
		}
		rawEntries, _ := n["entries"].([]any)
		entries := make([]MapEntry, len(rawEntries))
		for i, re := range rawEntries {
			em, ok := re.(map[string]any)
			if !ok {
				return Value{}, fmt.Errorf("bcbc: Map entry %d is not an object", i)
			}
			key, err := nodeToValue(em["key"].(map[string]any))
			if err != nil {
				return Value{}, err
			}
			val, err := nodeToValue(em["val"].(map[string]any))
			if err != nil {
				return Value{}, err
			}
			entries[i] = MapEntry{Key: key, Val: val}
		}
		return MakeMap(keyType, valType, entries), nil
	case "Tuple":
		items, err := nodesToValues(n["elems"])
		if err != nil {
			return Value{}, err
		}
		return MakeTuple(items...), nil
	case "Alias":
		id, err := nodeToTypeId(nodeMap(n, "id"))
		if err != nil {
			return Value{}, err
		}
		inner, err := nodeToValue(n["value"].(map[string]any))
		if err != nil {
			return Value{}, err
		}
		return MakeAlias(id, inner), nil
	case "CEnum":
		id, err := nodeToTypeId(nodeMap(n, "id"))
		if err != nil {
			return Value{}, err
		}
		variant, err := nodeNumber(n, "variant")
		return MakeCEnum(id, uint64(variant)), err
	case "Enum":
		id, err := nodeToTypeId(nodeMap(n, "id"))
		if err != nil {
			return Value{}, err
		}
		variant, err := nodeNumber(n, "variant")
		if err != nil {
			return Value{}, err
		}
		inner, err := nodeToValue(n["value"].(map[string]any))
		if err != nil {
			return Value{}, err
		}
		return MakeEnum(id, uint64(variant), inner), nil
	case "Struct":
		id, err := nodeToTypeId(nodeMap(n, "id"))
		if err != nil {
			return Value{}, err
		}
		fields, err := nodesToValues(n["fields"])
		if err != nil {
			return Value{}, err
		}
		return MakeStruct(id, fields), nil
	case "Type":
		t, err := nodeToType(n["value"].(map[string]any))
		if err != nil {
			return Value{}, err
		}
		return MakeTypeValue(t), nil
	case "TypeId":
		id, err := nodeToTypeId(n["value"].(map[string]any))
		if err != nil {
			return Value{}, err
		}
		return MakeTypeIDValue(id), nil
	default:
		return Value{}, fmt.Errorf("bcbc: unknown JSON value kind %q", kind)
	}
}

func nodesToValues(raw any) ([]Value, error) {
	items, _ := raw.([]any)
	out := make([]Value, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("bcbc: element %d is not an object", i)
		}
		v, err := nodeToValue(m)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func nodeToType(n map[string]any) (Type, error) {
	if n == nil {
		return Type{}, fmt.Errorf("bcbc: missing Type node")
	}
	kind, err := nodeKind(n)
	if err != nil {
		return Type{}, err
	}
	for tag := TagUnknown; tag <= TagTypeId; tag++ {
		if tag.String() != kind {
			continue
		}
		switch tag {
		case TagOption, TagList:
			elem, err := nodeToType(nodeMap(n, "elem"))
			if err != nil {
				return Type{}, err
			}
			return Type{Kind: tag, Elem: &elem}, nil
		case TagMap:
			key, err := nodeToType(nodeMap(n, "key"))
			if err != nil {
				return Type{}, err
			}
			val, err := nodeToType(nodeMap(n, "val"))
			if err != nil {
				return Type{}, err
			}
			return Type{Kind: tag, Key: &key, Val: &val}, nil
		case TagTuple:
			raw, _ := n["elems"].([]any)
			elems := make([]Type, len(raw))
			for i, re := range raw {
				m, ok := re.(map[string]any)
				if !ok {
					return Type{}, fmt.Errorf("bcbc: Tuple Type element %d is not an object", i)
				}
				et, err := nodeToType(m)
				if err != nil {
					return Type{}, err
				}
				elems[i] = et
			}
			return Type{Kind: tag, Elems: elems}, nil
		case TagAlias, TagCEnum, TagEnum, TagStruct:
			id, err := nodeToTypeId(nodeMap(n, "id"))
			if err != nil {
				return Type{}, err
			}
			return Type{Kind: tag, ID: id}, nil
		default:
			return Type{Kind: tag}, nil
		}
	}
	return Type{}, fmt.Errorf("bcbc: unknown JSON type kind %q", kind)
}

func nodeToTypeId(n map[string]any) (TypeId, error) {
	if n == nil {
		return TypeId{}, fmt.Errorf("bcbc: missing TypeId node")
	}
	kind, err := nodeKind(n)
	if err != nil {
		return TypeId{}, err
	}
	switch kind {
	case "Anonymous":
		return AnonymousTypeID, nil
	case "Std":
		schema, err := nodeNumber(n, "schema")
		if err != nil {
			return TypeId{}, err
		}
		id, err := nodeNumber(n, "id")
		if err != nil {
			return TypeId{}, err
		}
		return StdTypeID(uint8(schema), uint16(id))
	case "Hash":
		s, _ := n["hash"].(string)
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil || len(raw) != 7 {
			return TypeId{}, fmt.Errorf("bcbc: TypeId Hash must be 7 raw bytes, base64-encoded")
		}
		var h [7]byte
		copy(h[:], raw)
		return HashTypeID(h), nil
	default:
		return TypeId{}, fmt.Errorf("bcbc: unknown JSON TypeId kind %q", kind)
	}
}

func nodeMap(n map[string]any, key string) map[string]any {
	m, _ := n[key].(map[string]any)
	return m
}

func nodeNumber(n map[string]any, key string) (float64, error) {
	f, ok := n[key].(float64)
	if !ok {
		return 0, fmt.Errorf("bcbc: JSON value node missing numeric %q", key)
	}
	return f, nil
}
