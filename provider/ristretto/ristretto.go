// Package ristretto is an in-process, cost-aware Provider backed by
// dgraph-io/ristretto.
//
// store.Texts charges each framed LZY record its length in bytes by default,
// so MaxCost bounds the memory held by encoded text. LZY never needs more
// bytes per code point than UTF-8, so a budget sized for UTF-8 text holds at
// least as much. Admission is probabilistic; a
// rejected write is reported by Set as ok=false and store.Texts only logs it,
// so callers must treat every Get as a possible miss.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/lzy/provider"
)

var ErrConfig = errors.New("ristretto provider: NumCounters, MaxCost and BufferItems must be > 0")

type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // in the unit store.Options.ComputeSetCost returns (bytes by default)
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, ErrConfig
	}
	// MaxCost counts record bytes only
	c, err := rc.NewCache(&rc.Config{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        cfg.BufferItems,
		Metrics:            cfg.Metrics,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for the write buffer to drain so a following Get observes the
// value. ok=false means ristretto's admission policy dropped it.
// cost <= 0 charges len(value).
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	if cost <= 0 {
		cost = int64(len(value))
	}
	ok := p.c.SetWithTTL(key, value, cost, ttl)
	p.c.Wait()
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto's counters; nil unless Config.Metrics was set.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
