// Package wire frames LZY payloads for byte stores.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
)

const (
	version  byte = 1
	kindText byte = 1

	hdrLen = 4 + 1 + 1 + 4 + 4
)

var (
	ErrCorrupt  = errors.New("lzy: corrupt record")
	ErrTooLarge = errors.New("lzy: record too large")
	magic4      = [...]byte{'L', 'Z', 'Y', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Text: magic(4) | ver(1) | kind(1=text) | runes(u32 be) | plen(u32 be) | payload(plen)
//
// runes is the number of code points the payload decodes to. LZY decoding
// silently skips leading continuation bytes, so a record whose payload lost
// its first byte still decodes; the count makes that detectable.
func EncodeText(runes int, payload []byte) ([]byte, error) {
	if runes < 0 || uint64(runes) > math.MaxUint32 || uint64(len(payload)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindText)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(runes))
	buf.Write(u4[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeText validates the frame and returns the declared code point count
// and a zero-copy slice of the payload. It does not decode the payload.
func DecodeText(b []byte) (runes int, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindText {
		return 0, nil, ErrCorrupt
	}

	off := 6

	runes = int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4

	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen != len(b)-off { // short or trailing bytes
		return 0, nil, ErrCorrupt
	}
	// every code point takes at least one byte
	if runes > plen || (runes == 0) != (plen == 0) {
		return 0, nil, ErrCorrupt
	}

	return runes, b[off:], nil
}
