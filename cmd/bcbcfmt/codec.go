package main

import "github.com/stackinspector/bcbc"

func bcbcDecode(b []byte) (bcbc.Value, error) {
	return bcbc.Decode(b)
}

func bcbcDecodeFirstValue(b []byte) (bcbc.Value, []byte, error) {
	return bcbc.DecodeFirstValue(b)
}

func bcbcEncode(v bcbc.Value) ([]byte, error) {
	out := bcbc.NewByteSliceOutput(16)
	if err := v.EncodeTo(out); err != nil {
		return nil, err
	}
	return out.Finalize(), nil
}

func bcbcValueToJSON(v bcbc.Value) ([]byte, error) {
	return bcbc.ValueToJSON(v)
}

func bcbcValueFromJSON(b []byte) (bcbc.Value, error) {
	return bcbc.ValueFromJSON(b)
}
