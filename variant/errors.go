package variant

import "errors"

// Errors returned by conversions and accessors.
var (
	ErrTypeMismatch    = errors.New("variant: type mismatch")
	ErrInvalidEncoding = errors.New("variant: invalid hex encoding")
	ErrSyntax          = errors.New("variant: invalid integer syntax")
	ErrRange           = errors.New("variant: integer out of range")
	ErrBitSize         = errors.New("variant: unsupported bit size")
)
