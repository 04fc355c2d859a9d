// Package lzy implements LZY, a variable-length byte encoding for Unicode
// code points. Every unit starts with a lead byte (bit 7 clear) followed by
// zero, one or two continuation bytes (bit 7 set), each carrying 7 bits,
// most-significant chunk first:
//
//	r < 0x80           0xxxxxxx
//	r < 0x4000         0xxxxxxx 1xxxxxxx
//	r <= 0x10FFFF      0xxxxxxx 1xxxxxxx 1xxxxxxx
//
// A unit ends where the next lead byte begins, so the stream needs no length
// prefix and a decoder dropped into the middle of it resynchronizes on the
// first lead byte it sees.
//
// Components:
//   - Primitives: Encode ([]rune -> []byte) and Decode ([]byte -> []rune).
//   - Adapters: UTF-16 code units ([]uint16), UTF-8 bytes and Go strings.
//   - Codec: the same operations with Options (size limits, lenient encode,
//     Logger, Hooks). Package-level functions use a silent, strict Codec.
//
// All operations are pure and safe for concurrent use. Failures are *Error
// values carrying a Kind; match them with errors.Is against ErrEmptyInput,
// ErrInvalidEncoding, ErrInvalidCodePoint, ErrOverflow, ErrInvalidInput and
// ErrTooLarge, or use KindOf.
package lzy
