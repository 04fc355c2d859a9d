package codec

import (
	"golang.org/x/text/encoding"

	"github.com/unkn0wn-root/lzy"
)

// Charset transcodes text in any golang.org/x/text encoding to and from
// LZY. Encode takes bytes in Encoding and returns LZY; Decode returns bytes
// in Encoding.
//
// x/text decoders substitute U+FFFD for malformed input rather than
// failing, so Encode only rejects what survives that step. Decode fails if
// a code point has no representation in Encoding. Transcoding failures are
// *lzy.Error of KindInvalidInput; x/text does not report where they
// happened, so Offset is -1.
type Charset struct {
	Encoding encoding.Encoding
	Codec    *lzy.Codec
}

var _ Codec[[]byte] = Charset{}

func (c Charset) Encode(p []byte) ([]byte, error) {
	u, err := c.Encoding.NewDecoder().Bytes(p)
	if err != nil {
		return nil, &lzy.Error{Kind: lzy.KindInvalidInput, Offset: -1}
	}
	return UTF8{Codec: c.Codec}.Encode(u)
}

func (c Charset) Decode(b []byte) ([]byte, error) {
	u, err := UTF8{Codec: c.Codec}.Decode(b)
	if err != nil {
		return nil, err
	}
	out, err := c.Encoding.NewEncoder().Bytes(u)
	if err != nil {
		return nil, &lzy.Error{Kind: lzy.KindInvalidInput, Offset: -1}
	}
	return out, nil
}
