package lzy

const (
	// MaxRune is the largest code point LZY carries.
	MaxRune = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	contBit  = 0x80
	payload7 = 0x7F

	// largest accumulator that can still take one more 7-bit chunk
	// without leaving the code point range.
	maxPrefix = MaxRune >> 7

	// largest value whose three byte form still starts with a lead byte.
	maxRaw = 1<<21 - 1
)

// ValidRune reports whether r is a Unicode scalar value: in [0, MaxRune]
// and outside the surrogate range.
func ValidRune(r rune) bool {
	return (r >= 0 && r < surrogateMin) || (r > surrogateMax && r <= MaxRune)
}

// EncodedLen returns the number of bytes AppendRune writes for r.
func EncodedLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x4000:
		return 2
	default:
		return 3
	}
}

// AppendRune appends the LZY encoding of r to dst. It does not validate r.
// Surrogates and values in (MaxRune, 0x1FFFFF] produce bytes Decode rejects.
// Negative values and values above 0x1FFFFF do not fit the format: their
// bytes may decode to unrelated code points without error.
func AppendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x4000:
		return append(dst, byte(r>>7), contBit|byte(r&payload7))
	default:
		return append(dst,
			byte(r>>14),
			contBit|byte((r>>7)&payload7),
			contBit|byte(r&payload7))
	}
}

// Encode returns the LZY encoding of rs. Every rune must satisfy ValidRune;
// the first one that does not fails the call with KindInvalidInput and its
// index as Offset.
func Encode(rs []rune) ([]byte, error) {
	return encodeRunes(rs, true)
}

// Decode returns the code points encoded in b.
//
// Leading continuation bytes are skipped until the first lead byte. Decode
// fails with KindEmptyInput for an empty b, KindInvalidEncoding when b holds
// no lead byte, KindOverflow when a unit grows past MaxRune and
// KindInvalidCodePoint when a unit decodes to a surrogate.
func Decode(b []byte) ([]rune, error) {
	start, err := resync(b)
	if err != nil {
		return nil, err
	}
	out := make([]rune, 0, countUnits(b[start:]))
	err = accumulate(b, start, func(r rune) { out = append(out, r) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

func encodeRunes(rs []rune, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(rs)+len(rs)/2)
	for i, r := range rs {
		if !ValidRune(r) && (strict || r < 0 || r > maxRaw) {
			return nil, &Error{Kind: KindInvalidInput, Offset: i, Value: r}
		}
		out = AppendRune(out, r)
	}
	return out, nil
}

// resync returns the index of the first lead byte in b. Everything before
// it is garbage from a truncated or misaligned stream.
func resync(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, &Error{Kind: KindEmptyInput}
	}
	for i, c := range b {
		if c&contBit == 0 {
			return i, nil
		}
	}
	return 0, &Error{Kind: KindInvalidEncoding, Offset: len(b)}
}

// accumulate decodes b[start:], which must begin with a lead byte, and
// hands every completed code point to emit in order. Each lead byte closes
// the unit before it; there is no other end-of-unit marker.
func accumulate(b []byte, start int, emit func(rune)) error {
	var (
		acc  rune
		unit = start
	)
	for i := start; i < len(b); i++ {
		c := b[i]
		if c&contBit == 0 {
			if i > start {
				if !ValidRune(acc) {
					return &Error{Kind: KindInvalidCodePoint, Offset: unit, Value: acc}
				}
				emit(acc)
			}
			acc, unit = rune(c), i
			continue
		}
		if acc > maxPrefix {
			return &Error{Kind: KindOverflow, Offset: i, Value: acc}
		}
		acc = acc<<7 | rune(c&payload7)
	}
	if !ValidRune(acc) {
		return &Error{Kind: KindInvalidCodePoint, Offset: unit, Value: acc}
	}
	emit(acc)
	return nil
}

// countUnits returns the number of lead bytes in b.
func countUnits(b []byte) int {
	n := 0
	for _, c := range b {
		if c&contBit == 0 {
			n++
		}
	}
	return n
}

// CountRunes returns the number of units in b without validating them. For
// well-formed input this is the number of code points Decode returns; leading
// continuation bytes are not counted.
func CountRunes(b []byte) int { return countUnits(b) }
