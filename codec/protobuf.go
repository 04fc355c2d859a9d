package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/lzy"
)

// Protobuf carries LZY-encoded strings inside a google.protobuf.BytesValue
// so they can cross gRPC or be stored next to other protobuf messages.
type Protobuf struct {
	Codec *lzy.Codec // nil => strict codec without limits
}

var _ Codec[string] = Protobuf{}

func (c Protobuf) Encode(s string) ([]byte, error) {
	b, err := String{Codec: c.Codec}.Encode(s)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(wrapperspb.Bytes(b))
}

func (c Protobuf) Decode(b []byte) (string, error) {
	var m wrapperspb.BytesValue
	if err := proto.Unmarshal(b, &m); err != nil {
		return "", err
	}
	return String{Codec: c.Codec}.Decode(m.GetValue())
}

// Message is like Encode but returns the message instead of its bytes.
func (c Protobuf) Message(s string) (*wrapperspb.BytesValue, error) {
	b, err := String{Codec: c.Codec}.Encode(s)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(b), nil
}
