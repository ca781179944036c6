package variant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInt interprets the text payload as an integer literal of the
// requested width and signedness and returns the parsed integer Value.
//
// The accepted grammar is optional surrounding whitespace, an optional
// + or - sign, and either decimal digits or a "0x" / "0b" prefix
// followed by hexadecimal / binary digits. The whole text must match;
// trailing or embedded characters outside the grammar are ErrSyntax,
// never a truncated parse.
//
// bits must be 8, 16, 32, or 64; anything else is ErrBitSize. Values
// outside the representable range of the requested width and
// signedness are ErrRange. The payload is a signed 64-bit integer, so
// unsigned 64-bit values above math.MaxInt64 are also ErrRange.
//
// Returns ErrTypeMismatch unless the Value holds text.
func (v Value) ParseInt(bits int, signed bool) (Value, error) {
	if v.kind != KindText {
		return Value{}, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, KindText)
	}

	switch bits {
	case 8, 16, 32, 64:
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrBitSize, bits)
	}

	body := strings.TrimSpace(v.s)

	neg := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(body, "0x"):
		base, body = 16, body[2:]
	case strings.HasPrefix(body, "0b"):
		base, body = 2, body[2:]
	}

	magnitude, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("%w: %q does not fit %d bits", ErrRange, v.s, bits)
		}

		return Value{}, fmt.Errorf("%w: %q", ErrSyntax, v.s)
	}

	if signed {
		maxPos := uint64(1)<<(bits-1) - 1
		if neg {
			if magnitude > maxPos+1 {
				return Value{}, fmt.Errorf("%w: %q does not fit signed %d bits", ErrRange, v.s, bits)
			}
			// Negation wraps correctly for the minimum value of each width.
			return Int(-int64(magnitude)), nil
		}

		if magnitude > maxPos {
			return Value{}, fmt.Errorf("%w: %q does not fit signed %d bits", ErrRange, v.s, bits)
		}

		return Int(int64(magnitude)), nil
	}

	if neg && magnitude != 0 {
		return Value{}, fmt.Errorf("%w: %q is negative but unsigned requested", ErrRange, v.s)
	}

	maxVal := uint64(math.MaxUint64) >> (64 - bits)
	if magnitude > maxVal || magnitude > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %q does not fit unsigned %d bits", ErrRange, v.s, bits)
	}

	return Int(int64(magnitude)), nil
}
