package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func mustEncodeText(t *testing.T, runes int, payload []byte) []byte {
	t.Helper()
	b, err := EncodeText(runes, payload)
	if err != nil {
		t.Fatalf("EncodeText error: %v", err)
	}
	return b
}

func mustDecodeText(t *testing.T, b []byte) (int, []byte) {
	t.Helper()
	n, p, err := DecodeText(b)
	if err != nil {
		t.Fatalf("DecodeText error: %v", err)
	}
	return n, p
}

func TestTextRoundTrip(t *testing.T) {
	cases := []struct {
		runes   int
		payload []byte
	}{
		{0, nil},
		{1, []byte{0x41}},
		{2, []byte{0x41, 0x07, 0xEC, 0x80}},
	}
	for _, tc := range cases {
		enc := mustEncodeText(t, tc.runes, tc.payload)
		if len(enc) != hdrLen+len(tc.payload) {
			t.Fatalf("frame length %d", len(enc))
		}
		n, p := mustDecodeText(t, enc)
		if n != tc.runes {
			t.Fatalf("runes mismatch: got %d want %d", n, tc.runes)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestTextRejectsTrailingBytes(t *testing.T) {
	enc := mustEncodeText(t, 1, []byte("x"))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, _, err := DecodeText(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestTextCorruptHeadersAndLengths(t *testing.T) {
	enc := mustEncodeText(t, 3, []byte("abc"))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeText(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := DecodeText(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// wrong kind
	badKind := append([]byte(nil), enc...)
	badKind[5] = kindText + 1
	if _, _, err := DecodeText(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// plen too large (announce more than available); plen is at 10..13
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[10:14], uint32(len("abc")+1))
	if _, _, err := DecodeText(tooLong); err == nil {
		t.Fatalf("expected error on plen beyond buffer")
	}

	// more code points than bytes
	tooMany := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooMany[6:10], 4)
	if _, _, err := DecodeText(tooMany); err == nil {
		t.Fatalf("expected error on rune count above payload length")
	}

	// zero code points with a payload
	zero := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(zero[6:10], 0)
	if _, _, err := DecodeText(zero); err == nil {
		t.Fatalf("expected error on zero runes with payload")
	}

	// truncated buffer
	if _, _, err := DecodeText(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}
	if _, _, err := DecodeText(enc[:hdrLen-1]); err == nil {
		t.Fatalf("expected error on truncated header")
	}
}

func TestTextZeroCopyPayload(t *testing.T) {
	enc := mustEncodeText(t, 1, []byte("Z"))
	_, p := mustDecodeText(t, enc)
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	_, p2 := mustDecodeText(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

func TestEncodeTextRejectsNegativeCount(t *testing.T) {
	if _, err := EncodeText(-1, nil); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}
