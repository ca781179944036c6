package variant

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexRoundTripBytes(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff},
		{0x00, 0x11, 0x22, 0xee, 0xff},
		{0xde, 0xad, 0xbe, 0xef},
	}
	for _, in := range inputs {
		s, err := Bytes(in).HexText()
		if err != nil {
			t.Fatalf("HexText(%v): %v", in, err)
		}
		if len(s) != 2*len(in) {
			t.Errorf("HexText(%v) length = %d, want %d", in, len(s), 2*len(in))
		}

		v, err := FromHexText(s)
		if err != nil {
			t.Fatalf("FromHexText(%q): %v", s, err)
		}
		got, err := v.AsBytes()
		if err != nil {
			t.Fatalf("AsBytes: %v", err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("round trip of %v = %v", in, got)
		}
	}
}

func TestHexRoundTripText(t *testing.T) {
	tests := []struct {
		in   string
		want string // case-normalized form
	}{
		{"", ""},
		{"00", "00"},
		{"deadbeef", "deadbeef"},
		{"DEADBEEF", "deadbeef"},
		{"A1b2C3", "a1b2c3"},
	}
	for _, tt := range tests {
		v, err := FromHexText(tt.in)
		if err != nil {
			t.Fatalf("FromHexText(%q): %v", tt.in, err)
		}
		got, err := v.HexText()
		if err != nil {
			t.Fatalf("HexText: %v", err)
		}
		if got != tt.want {
			t.Errorf("round trip of %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexIdempotence(t *testing.T) {
	v, err := FromHexText("0a1bff")
	if err != nil {
		t.Fatalf("FromHexText: %v", err)
	}

	// A second round trip must be a no-op.
	s1, _ := v.HexText()
	v2, err := FromHexText(s1)
	if err != nil {
		t.Fatalf("second FromHexText: %v", err)
	}
	s2, _ := v2.HexText()
	if s1 != s2 {
		t.Errorf("second round trip changed result: %q vs %q", s1, s2)
	}
}

func TestFromHexTextOddLength(t *testing.T) {
	for _, in := range []string{"a", "abc", "0"} {
		if _, err := FromHexText(in); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("FromHexText(%q) err = %v, want ErrInvalidEncoding", in, err)
		}
	}
}

func TestFromHexTextInvalidDigit(t *testing.T) {
	for _, in := range []string{"zz", "0g", "  ", "0x", "12 4"} {
		if _, err := FromHexText(in); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("FromHexText(%q) err = %v, want ErrInvalidEncoding", in, err)
		}
	}
}

func TestFromHexTextEmpty(t *testing.T) {
	v, err := FromHexText("")
	if err != nil {
		t.Fatalf("FromHexText(\"\"): %v", err)
	}
	if v.Kind() != KindBytes {
		t.Errorf("kind = %v, want %v", v.Kind(), KindBytes)
	}
	b, err := v.AsBytes()
	if err != nil || len(b) != 0 {
		t.Errorf("AsBytes = %v, %v, want empty", b, err)
	}
}

func TestHexTextTypeMismatch(t *testing.T) {
	if _, err := Int(1).HexText(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Int.HexText() err = %v, want ErrTypeMismatch", err)
	}
	if _, err := Text("00").HexText(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Text.HexText() err = %v, want ErrTypeMismatch", err)
	}
}
