package lzy

import (
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeUTF16 encodes a sequence of UTF-16 code units. A high surrogate
// followed by a low surrogate is combined into one code point; any other
// surrogate fails with KindInvalidInput at its unit index.
func EncodeUTF16(units []uint16) ([]byte, error) {
	return encodeUTF16(units, true)
}

// DecodeUTF16 decodes b into UTF-16 code units, splitting code points above
// U+FFFF into surrogate pairs.
func DecodeUTF16(b []byte) ([]uint16, error) {
	start, err := resync(b)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, 0, countUnits(b[start:]))
	err = accumulate(b, start, func(r rune) { out = utf16.AppendRune(out, r) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeUTF8 encodes UTF-8 text. Malformed UTF-8, including encoded
// surrogates, fails with KindInvalidInput at its byte offset.
func EncodeUTF8(p []byte) ([]byte, error) {
	return encodeUTF8(p, true)
}

// DecodeUTF8 decodes b into UTF-8 bytes.
func DecodeUTF8(b []byte) ([]byte, error) {
	start, err := resync(b)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(b)-start)
	err = accumulate(b, start, func(r rune) { out = utf8.AppendRune(out, r) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeString is EncodeUTF8 for a string.
func EncodeString(s string) ([]byte, error) {
	return encodeString(s, true)
}

// DecodeString is DecodeUTF8 returning a string.
func DecodeString(b []byte) (string, error) {
	p, err := DecodeUTF8(b)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

// encodeUTF16 pairs surrogates the way UTF-16 does. With strict unset an
// unpaired surrogate is passed through as its raw value.
func encodeUTF16(units []uint16, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(units)*2)
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if isHighSurrogate(r) && i+1 < len(units) && isLowSurrogate(rune(units[i+1])) {
				r = utf16.DecodeRune(r, rune(units[i+1]))
				i++
			} else if strict {
				return nil, &Error{Kind: KindInvalidInput, Offset: i, Value: r}
			}
		}
		out = AppendRune(out, r)
	}
	return out, nil
}

// encodeUTF8 rejects malformed sequences, or with strict unset replaces
// them with U+FFFD.
func encodeUTF8(p []byte, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 && strict {
			return nil, &Error{Kind: KindInvalidInput, Offset: i}
		}
		out = AppendRune(out, r)
		i += size
	}
	return out, nil
}

func encodeString(s string, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 && strict {
			return nil, &Error{Kind: KindInvalidInput, Offset: i}
		}
		out = AppendRune(out, r)
		i += size
	}
	return out, nil
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r < 0xDC00 }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }
