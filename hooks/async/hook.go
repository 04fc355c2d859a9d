// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ResyncEvery: 10, // sample logs: ~every 10th resync
//	    RejectEvery: 1,  // log every rejection
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := lzy.New(lzy.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/lzy"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full and after Close.
type Hooks struct {
	inner lzy.Hooks
	mu    sync.RWMutex
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	closed  bool
	dropped uint64
}

var _ lzy.Hooks = (*Hooks)(nil)

func New(inner lzy.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped returns the number of events discarded so far.
func (h *Hooks) Dropped() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		h.drop()
		return
	}
	select {
	case h.q <- f:
		h.mu.RUnlock()
	default:
		h.mu.RUnlock()
		h.drop()
	}
}

func (h *Hooks) drop() {
	h.mu.Lock()
	h.dropped++
	h.mu.Unlock()
}

func (h *Hooks) Resynced(n int) { h.try(func() { h.inner.Resynced(n) }) }
func (h *Hooks) DecodeRejected(k lzy.Kind, off int) {
	h.try(func() { h.inner.DecodeRejected(k, off) })
}
func (h *Hooks) EncodeRejected(k lzy.Kind, off int) {
	h.try(func() { h.inner.EncodeRejected(k, off) })
}
