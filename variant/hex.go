package variant

import (
	"encoding/hex"
	"fmt"
)

// FromHexText decodes s as hex text into a bytes Value. Pairs of hex
// digits become bytes in order; upper- and lowercase digits are both
// accepted. The empty string decodes to an empty bytes Value.
// Returns ErrInvalidEncoding if the length is odd or any character is
// not a hex digit.
func FromHexText(s string) (Value, error) {
	if len(s)%2 != 0 {
		return Value{}, fmt.Errorf("%w: odd length %d", ErrInvalidEncoding, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return Value{kind: KindBytes, b: b}, nil
}

// HexText encodes the byte payload as hex text: two lowercase digits
// per byte, most-significant nibble first, so the result is exactly
// twice the payload length. An empty payload encodes to the empty
// string. Returns ErrTypeMismatch unless the Value holds bytes.
func (v Value) HexText() (string, error) {
	if v.kind != KindBytes {
		return "", fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, KindBytes)
	}

	return encodeHex(v.b), nil
}

func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
