// Package variant provides a closed tagged value type over integers,
// text, and byte buffers, with conversions between them.
//
// A [Value] holds exactly one of a signed 64-bit integer, a text
// string, or a byte buffer. Values are immutable: every conversion
// returns a new Value or a fresh payload, and byte payloads are copied
// on construction and on access so a Value never aliases caller memory.
//
// # Usage
//
// Construct a Value with one of the total constructors and convert it
// explicitly:
//
//	v, err := variant.FromHexText("0a1bff")   // bytes value
//	hex, err := v.HexText()                   // back to "0a1bff"
//
//	n, err := variant.Text("0x2a").ParseInt(8, false)
//
// The As* accessors are strict and return [ErrTypeMismatch] when the
// active kind does not match:
//
//	_, err := variant.Int(5).AsText() // ErrTypeMismatch
//
// The permissive coercions of every kind to a display string and to a
// raw byte form are available as the explicitly named [Value.String]
// and [Value.Buffer]; they are total and never fail.
//
// # Integer grammar
//
// [Value.ParseInt] consumes the whole text or fails; there is no
// partial-parse success. The accepted grammar is optional surrounding
// whitespace, an optional + or - sign, and either decimal digits or a
// "0x" / "0b" prefix followed by hexadecimal / binary digits.
package variant
