package lzy

import (
	"bytes"
	"sync"
	"testing"
)

type event struct {
	name   string
	kind   Kind
	offset int
}

type recHooks struct {
	mu     sync.Mutex
	events []event
}

func (h *recHooks) add(e event) {
	h.mu.Lock()
	h.events = append(h.events, e)
	h.mu.Unlock()
}

func (h *recHooks) Resynced(n int)                 { h.add(event{name: "resynced", offset: n}) }
func (h *recHooks) DecodeRejected(k Kind, off int) { h.add(event{"decode", k, off}) }
func (h *recHooks) EncodeRejected(k Kind, off int) { h.add(event{"encode", k, off}) }

type recLogger struct {
	msgs []string
}

func (l *recLogger) Debug(msg string, _ Fields) { l.msgs = append(l.msgs, "debug:"+msg) }
func (l *recLogger) Info(msg string, _ Fields)  { l.msgs = append(l.msgs, "info:"+msg) }
func (l *recLogger) Warn(msg string, _ Fields)  { l.msgs = append(l.msgs, "warn:"+msg) }
func (l *recLogger) Error(msg string, _ Fields) { l.msgs = append(l.msgs, "error:"+msg) }

func TestCodecZeroOptionsMatchesPackageFuncs(t *testing.T) {
	c := New(Options{})
	got, err := c.EncodeString(sample)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	want, _ := EncodeString(sample)
	if !bytes.Equal(got, want) {
		t.Fatalf("codec and package encodings differ")
	}
	s, err := c.DecodeString(got)
	if err != nil || s != sample {
		t.Fatalf("DecodeString = %q, %v", s, err)
	}
	if _, err := c.Encode([]rune{0xD800}); err == nil {
		t.Fatalf("default codec must be strict")
	}
}

func TestCodecReportsResync(t *testing.T) {
	h := &recHooks{}
	l := &recLogger{}
	c := New(Options{Hooks: h, Logger: l})

	rs, err := c.Decode([]byte{0x80, 0x81, 'a', 'b'})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(rs) != "ab" {
		t.Fatalf("Decode = %q", string(rs))
	}
	if len(h.events) != 1 || h.events[0] != (event{name: "resynced", offset: 2}) {
		t.Fatalf("events = %+v", h.events)
	}
	if len(l.msgs) != 1 || l.msgs[0] != "warn:discarded leading continuation bytes" {
		t.Fatalf("logs = %v", l.msgs)
	}
}

func TestCodecReportsRejections(t *testing.T) {
	h := &recHooks{}
	c := New(Options{Hooks: h})

	_, err := c.DecodeUTF16([]byte{0x7F, 0xFF, 0xFF})
	wantKind(t, err, KindOverflow)
	_, err = c.EncodeUTF16([]uint16{'a', 0xD800})
	wantKind(t, err, KindInvalidInput)
	_, err = c.DecodeUTF8(nil)
	wantKind(t, err, KindEmptyInput)

	want := []event{
		{"decode", KindOverflow, 2},
		{"encode", KindInvalidInput, 1},
		{"decode", KindEmptyInput, 0},
	}
	if len(h.events) != len(want) {
		t.Fatalf("events = %+v", h.events)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Fatalf("event %d = %+v want %+v", i, h.events[i], want[i])
		}
	}
}

func TestCodecLimits(t *testing.T) {
	h := &recHooks{}
	c := New(Options{Hooks: h, MaxEncode: 3, MaxDecode: 4})

	if _, err := c.EncodeString("abc"); err != nil {
		t.Fatalf("at limit should pass: %v", err)
	}
	_, err := c.EncodeString("abcd")
	e := wantKind(t, err, KindTooLarge)
	if e.Offset != 3 || e.Size != 4 {
		t.Fatalf("too large: %+v", e)
	}
	_, err = c.Encode([]rune("abcd"))
	wantKind(t, err, KindTooLarge)
	_, err = c.EncodeUTF16([]uint16{1, 2, 3, 4})
	wantKind(t, err, KindTooLarge)
	_, err = c.EncodeUTF8([]byte("abcd"))
	wantKind(t, err, KindTooLarge)

	if _, err := c.Decode([]byte("abcd")); err != nil {
		t.Fatalf("decode at limit: %v", err)
	}
	_, err = c.DecodeString([]byte("abcde"))
	e = wantKind(t, err, KindTooLarge)
	if e.Offset != 4 || e.Size != 5 {
		t.Fatalf("too large: %+v", e)
	}
	if got := h.events[len(h.events)-1]; got != (event{"decode", KindTooLarge, 4}) {
		t.Fatalf("last event = %+v", got)
	}
}

func TestCodecLenient(t *testing.T) {
	c := New(Options{Lenient: true})

	b, err := c.EncodeUTF16([]uint16{'a', 0xD83D})
	if err != nil {
		t.Fatalf("lenient EncodeUTF16: %v", err)
	}
	if want := AppendRune([]byte{'a'}, 0xD83D); !bytes.Equal(b, want) {
		t.Fatalf("got % x want % x", b, want)
	}
	// decode still refuses what lenient encode let through
	if _, err := c.Decode(b); KindOf(err) != KindInvalidCodePoint {
		t.Fatalf("Decode lenient output: %v", err)
	}

	b, err = c.EncodeUTF8([]byte{'a', 0xFF, 'b'})
	if err != nil {
		t.Fatalf("lenient EncodeUTF8: %v", err)
	}
	s, err := c.DecodeString(b)
	if err != nil || s != "a\uFFFDb" {
		t.Fatalf("DecodeString = %q, %v", s, err)
	}

	if _, err := c.Encode([]rune{0xDFFF}); err != nil {
		t.Fatalf("lenient Encode: %v", err)
	}
	if _, err := c.EncodeString("x\xffy"); err != nil {
		t.Fatalf("lenient EncodeString: %v", err)
	}
}

func TestCodecLenientRefusesOutOfFormatRunes(t *testing.T) {
	c := New(Options{Lenient: true})
	for _, r := range []rune{-1, maxRaw + 1, 0x7FFFFFFF} {
		_, err := c.Encode([]rune{0, r})
		e := wantKind(t, err, KindInvalidInput)
		if e.Offset != 1 || e.Value != r {
			t.Fatalf("Encode(%#x): offset=%d value=%#x", r, e.Offset, e.Value)
		}
	}
	// above MaxRune but still lead-byte aligned: encoded raw, refused on decode
	b, err := c.Encode([]rune{'a', MaxRune + 1})
	if err != nil {
		t.Fatalf("lenient Encode: %v", err)
	}
	_, err = c.Decode(b)
	wantKind(t, err, KindOverflow)
}

func TestCodecConcurrentUse(t *testing.T) {
	c := New(Options{Hooks: &recHooks{}})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				b, err := c.EncodeString(sample)
				if err != nil {
					t.Errorf("EncodeString: %v", err)
					return
				}
				if s, err := c.DecodeString(b); err != nil || s != sample {
					t.Errorf("DecodeString = %q, %v", s, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
