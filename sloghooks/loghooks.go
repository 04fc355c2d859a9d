// Package sloghooks reports lzy.Hooks events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/lzy"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ResyncEvery uint64
	RejectEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	resyncCtr atomic.Uint64
	rejectCtr atomic.Uint64
}

var _ lzy.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Resynced(discarded int) {
	if h.l == nil || !sample(h.opts.ResyncEvery, &h.resyncCtr) {
		return
	}
	h.l.Warn("lzy.resynced",
		"discarded", discarded)
}

func (h *Hooks) DecodeRejected(kind lzy.Kind, offset int) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Info("lzy.decode_rejected",
		"kind", kind.String(),
		"offset", offset)
}

func (h *Hooks) EncodeRejected(kind lzy.Kind, offset int) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Info("lzy.encode_rejected",
		"kind", kind.String(),
		"offset", offset)
}
