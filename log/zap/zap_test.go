package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/lzy"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("d", nil)
	l.Info("i", lzy.Fields{"a": 1})
	l.Warn("w", lzy.Fields{"b": "x", "a": 2})
	l.Error("e", lzy.Fields{})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("entries = %d want 4", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d level = %v want %v", i, e.Level, wantLevels[i])
		}
		if e.LoggerName != "lzy" {
			t.Fatalf("logger name = %q", e.LoggerName)
		}
	}
	w := entries[2]
	if len(w.Context) != 2 || w.Context[0].Key != "a" || w.Context[1].Key != "b" {
		t.Fatalf("fields not sorted: %+v", w.Context)
	}
	if got := w.ContextMap()["b"]; got != "x" {
		t.Fatalf("field b = %v", got)
	}
}

func TestZapLoggerWiredIntoCodec(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := lzy.New(lzy.Options{Logger: New(zap.New(core))})

	if _, err := c.Decode([]byte{0x80, 0x80, 'a'}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warn) != 1 {
		t.Fatalf("warn entries = %d want 1", len(warn))
	}
	if got := warn[0].ContextMap()["discarded"]; got != int64(2) {
		t.Fatalf("discarded = %v (%T)", got, got)
	}

	if _, err := c.Encode([]rune{0xD800}); err == nil {
		t.Fatalf("expected encode error")
	}
	dbg := logs.FilterMessage("encode rejected").All()
	if len(dbg) != 1 || dbg[0].ContextMap()["kind"] != "invalid_input" {
		t.Fatalf("encode rejection not logged: %+v", dbg)
	}
}
