package codec

import "github.com/unkn0wn-root/lzy"

// LimitCodec wraps another codec to enforce a maximum payload size at
// Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: refuse oversized LZY payloads read from a shared store
// before decoding them. The error is an *lzy.Error of KindTooLarge.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, &lzy.Error{Kind: lzy.KindTooLarge, Offset: c.MaxDecode, Size: len(b)}
	}
	return c.Inner.Decode(b)
}
