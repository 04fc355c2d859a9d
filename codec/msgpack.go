package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec for documents using vmihailenco/msgpack/v5. Text
// fields inside V are written as bin values holding LZY.
// The zero value is ready to use.
//
// Use `msgpack:"fieldName"` tags if you need explicit control over keys.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
