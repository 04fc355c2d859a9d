package codec

import "github.com/unkn0wn-root/lzy"

// Text codecs below map the empty value to an empty payload and back.
// lzy.Decode itself rejects empty input; a stored empty string is not an
// error here.

// String encodes Go strings as LZY. Invalid UTF-8 is rejected unless the
// wrapped lzy.Codec is lenient. The zero value is ready to use.
type String struct {
	Codec *lzy.Codec // nil => strict codec without limits
}

var _ Codec[string] = String{}

func (c String) Encode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return use(c.Codec).EncodeString(s)
}

func (c String) Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	return use(c.Codec).DecodeString(b)
}

// UTF8 encodes UTF-8 byte slices as LZY.
type UTF8 struct {
	Codec *lzy.Codec
}

var _ Codec[[]byte] = UTF8{}

func (c UTF8) Encode(p []byte) ([]byte, error) {
	if len(p) == 0 {
		return []byte{}, nil
	}
	return use(c.Codec).EncodeUTF8(p)
}

func (c UTF8) Decode(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil
	}
	return use(c.Codec).DecodeUTF8(b)
}

// UTF16 encodes UTF-16 code unit slices as LZY.
type UTF16 struct {
	Codec *lzy.Codec
}

var _ Codec[[]uint16] = UTF16{}

func (c UTF16) Encode(units []uint16) ([]byte, error) {
	if len(units) == 0 {
		return []byte{}, nil
	}
	return use(c.Codec).EncodeUTF16(units)
}

func (c UTF16) Decode(b []byte) ([]uint16, error) {
	if len(b) == 0 {
		return []uint16{}, nil
	}
	return use(c.Codec).DecodeUTF16(b)
}

// Runes encodes code point slices as LZY.
type Runes struct {
	Codec *lzy.Codec
}

var _ Codec[[]rune] = Runes{}

func (c Runes) Encode(rs []rune) ([]byte, error) {
	if len(rs) == 0 {
		return []byte{}, nil
	}
	return use(c.Codec).Encode(rs)
}

func (c Runes) Decode(b []byte) ([]rune, error) {
	if len(b) == 0 {
		return []rune{}, nil
	}
	return use(c.Codec).Decode(b)
}
