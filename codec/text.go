package codec

import (
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// TagLZY is the CBOR tag number wrapping LZY byte strings.
const TagLZY uint64 = 19546

// Text is a string that serializes in LZY form:
//   - CBOR: tag TagLZY around a byte string
//   - msgpack: bin
//   - JSON: base64 string (as []byte)
//   - encoding.BinaryMarshaler: raw LZY bytes
//
// The empty Text is an empty byte string. Marshaling fails on invalid
// UTF-8; unmarshaling fails on any LZY decode error.
type Text string

var (
	_ cbor.Marshaler             = Text("")
	_ cbor.Unmarshaler           = (*Text)(nil)
	_ msgpack.CustomEncoder      = Text("")
	_ msgpack.CustomDecoder      = (*Text)(nil)
	_ json.Marshaler             = Text("")
	_ json.Unmarshaler           = (*Text)(nil)
	_ encoding.BinaryMarshaler   = Text("")
	_ encoding.BinaryUnmarshaler = (*Text)(nil)
)

func (t Text) MarshalBinary() ([]byte, error) {
	return String{}.Encode(string(t))
}

func (t *Text) UnmarshalBinary(b []byte) error {
	s, err := String{}.Decode(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func (t Text) MarshalCBOR() ([]byte, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(cbor.Tag{Number: TagLZY, Content: b})
}

func (t *Text) UnmarshalCBOR(data []byte) error {
	var raw cbor.RawTag
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("lzy text: %w", err)
	}
	if raw.Number != TagLZY {
		return fmt.Errorf("lzy text: unexpected cbor tag %d", raw.Number)
	}
	var b []byte
	if err := cbor.Unmarshal(raw.Content, &b); err != nil {
		return fmt.Errorf("lzy text: %w", err)
	}
	return t.UnmarshalBinary(b)
}

func (t Text) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	return enc.EncodeBytes(b)
}

func (t *Text) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return t.UnmarshalBinary(b)
}

func (t Text) MarshalJSON() ([]byte, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	var b []byte
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	return t.UnmarshalBinary(b)
}

// String returns t as a plain Go string.
func (t Text) String() string { return string(t) }

// TextFrom decodes an LZY payload into a Text.
func TextFrom(b []byte) (Text, error) {
	var t Text
	err := t.UnmarshalBinary(b)
	return t, err
}
