package lzy

import (
	"errors"
	"fmt"
)

// Kind classifies codec failures. The set is closed.
type Kind uint8

const (
	KindEmptyInput       Kind = iota + 1 // decode of a zero-length payload
	KindInvalidEncoding                  // no lead byte anywhere in the payload
	KindInvalidCodePoint                 // decoded value is a surrogate or > MaxRune
	KindOverflow                         // continuation would push the value past MaxRune
	KindInvalidInput                     // malformed UTF-8, unpaired surrogate or invalid rune on encode
	KindTooLarge                         // payload exceeds the configured limit

	minKind = KindEmptyInput
	maxKind = KindTooLarge
)

// Sentinel errors. *Error unwraps to the one matching its Kind.
var (
	ErrEmptyInput       = errors.New("lzy: empty input")
	ErrInvalidEncoding  = errors.New("lzy: invalid encoding")
	ErrInvalidCodePoint = errors.New("lzy: invalid code point")
	ErrOverflow         = errors.New("lzy: code point overflow")
	ErrInvalidInput     = errors.New("lzy: invalid input")
	ErrTooLarge         = errors.New("lzy: payload too large")
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidEncoding:
		return "invalid_encoding"
	case KindInvalidCodePoint:
		return "invalid_code_point"
	case KindOverflow:
		return "overflow"
	case KindInvalidInput:
		return "invalid_input"
	case KindTooLarge:
		return "too_large"
	}
	return fmt.Sprintf("kind_%d", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	case KindInvalidCodePoint:
		return ErrInvalidCodePoint
	case KindOverflow:
		return ErrOverflow
	case KindInvalidInput:
		return ErrInvalidInput
	case KindTooLarge:
		return ErrTooLarge
	}
	return nil
}

// Error is returned by every failing operation.
//
// Offset is the position of the failure in the input: a byte index for
// decoding and for UTF-8 input, a rune index for Encode, a code unit index
// for UTF-16 input. For KindTooLarge it holds the configured limit and Size
// the actual input length. Value is the offending code point or accumulator
// when there is one. Offset is -1 when the position is unknown.
type Error struct {
	Kind   Kind
	Offset int
	Value  rune
	Size   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "lzy: empty input"
	case KindInvalidEncoding:
		return "lzy: invalid encoding: no lead byte"
	case KindInvalidCodePoint:
		return fmt.Sprintf("lzy: invalid code point %#x at offset %d", e.Value, e.Offset)
	case KindOverflow:
		return fmt.Sprintf("lzy: overflow at offset %d (accumulator %#x)", e.Offset, e.Value)
	case KindInvalidInput:
		if e.Value != 0 {
			return fmt.Sprintf("lzy: invalid input %#x at offset %d", e.Value, e.Offset)
		}
		if e.Offset < 0 {
			return "lzy: invalid input"
		}
		return fmt.Sprintf("lzy: invalid input at offset %d", e.Offset)
	case KindTooLarge:
		return fmt.Sprintf("lzy: payload too large: %d > %d", e.Size, e.Offset)
	default:
		return fmt.Sprintf("lzy: %s at offset %d", e.Kind, e.Offset)
	}
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.Kind >= minKind && e.Kind <= maxKind {
		return e.Kind
	}
	return 0
}
