package variant

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Kind identifies the active representation of a Value.
type Kind int

const (
	KindInt Kind = iota
	KindText
	KindBytes
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged value holding exactly one of a signed
// 64-bit integer, a text string, or a byte buffer. The zero Value is
// an integer zero; there is no separate uninitialized state.
type Value struct {
	kind Kind
	i    int64
	s    string
	b    []byte
}

// Int returns a Value holding i.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Text returns a Value holding s. The text is not validated; syntax is
// only checked when the Value is parsed.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Bytes returns a Value holding a copy of b.
func Bytes(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)

	return Value{kind: KindBytes, b: buf}
}

// Kind reports the active representation.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer payload.
// Returns ErrTypeMismatch unless the Value holds an integer.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, KindInt)
	}

	return v.i, nil
}

// AsText returns the text payload.
// Returns ErrTypeMismatch unless the Value holds text.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, KindText)
	}

	return v.s, nil
}

// AsBytes returns a copy of the byte payload.
// Returns ErrTypeMismatch unless the Value holds bytes.
func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, KindBytes)
	}

	out := make([]byte, len(v.b))
	copy(out, v.b)

	return out, nil
}

// String returns a display form for any kind: integers as canonical
// decimal, text as is, bytes as lowercase hex text. It is the total
// counterpart of the strict accessors and never fails.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return v.s
	case KindBytes:
		return encodeHex(v.b)
	default:
		return ""
	}
}

// Buffer returns a raw byte form for any kind: integers as 8 big-endian
// bytes, text as its UTF-8 bytes, bytes as a copy of the payload.
// Like String, it is total and never fails.
func (v Value) Buffer() []byte {
	switch v.kind {
	case KindInt:
		out := make([]byte, 8)
		binary.BigEndian.PutUint64(out, uint64(v.i))

		return out
	case KindText:
		return []byte(v.s)
	case KindBytes:
		out := make([]byte, len(v.b))
		copy(out, v.b)

		return out
	default:
		return nil
	}
}
