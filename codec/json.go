package codec

import "encoding/json"

// JSON serializes documents with encoding/json. Text fields inside V are
// written as base64 LZY strings.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
