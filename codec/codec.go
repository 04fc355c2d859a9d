// Package codec adapts LZY to the Codec[V] shape used for storage and
// transport: plain text codecs (String, UTF8, UTF16, Runes), a Text type
// that travels as LZY inside CBOR, msgpack and JSON documents, a protobuf
// envelope, and charset transcoding through golang.org/x/text.
package codec

import "github.com/unkn0wn-root/lzy"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var std = lzy.New(lzy.Options{})

func use(c *lzy.Codec) *lzy.Codec {
	if c == nil {
		return std
	}
	return c
}
