// Package store keeps strings in a byte Provider in LZY form.
//
// Each value is framed with its code point count (internal/wire) so entries
// that were truncated or overwritten by a foreign writer are detected on
// read, deleted, and reported as a miss.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/unkn0wn-root/lzy"
	"github.com/unkn0wn-root/lzy/internal/util"
	"github.com/unkn0wn-root/lzy/internal/wire"
	pr "github.com/unkn0wn-root/lzy/provider"
)

// SetCostFunc returns the cost passed to Provider.Set for a framed record.
type SetCostFunc func(key string, raw []byte) int64

type Options struct {
	Namespace      string      // required
	Provider       pr.Provider // required
	Codec          *lzy.Codec  // nil => lzy.New(lzy.Options{Logger: Logger})
	Logger         lzy.Logger  // nil => lzy.NopLogger
	DefaultTTL     time.Duration
	ComputeSetCost SetCostFunc // nil => len(raw)
}

type Texts struct {
	ns         string
	provider   pr.Provider
	codec      *lzy.Codec
	log        lzy.Logger
	defaultTTL time.Duration
	cost       SetCostFunc
}

func New(opts Options) (*Texts, error) {
	if opts.Provider == nil {
		return nil, errors.New("lzy store: provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("lzy store: namespace is required")
	}
	s := &Texts{
		ns:         opts.Namespace,
		provider:   opts.Provider,
		codec:      opts.Codec,
		log:        opts.Logger,
		defaultTTL: opts.DefaultTTL,
		cost:       opts.ComputeSetCost,
	}
	if s.log == nil {
		s.log = lzy.NopLogger{}
	}
	if s.codec == nil {
		s.codec = lzy.New(lzy.Options{Logger: s.log})
	}
	if s.defaultTTL == 0 {
		s.defaultTTL = 10 * time.Minute
	}
	if s.cost == nil {
		s.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return s, nil
}

// Get returns (value, true, nil) on hit. Corrupt entries are deleted and
// reported as a miss.
func (s *Texts) Get(ctx context.Context, key string) (string, bool, error) {
	k := util.TextKey(s.ns, key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return "", false, err
	}
	v, err := s.decode(raw)
	if err != nil {
		s.log.Warn("dropping corrupt text entry", lzy.Fields{"key": key, "err": err.Error()})
		_ = s.provider.Del(ctx, k) // self-heal
		return "", false, nil
	}
	return v, true, nil
}

func (s *Texts) decode(raw []byte) (string, error) {
	runes, payload, err := wire.DecodeText(raw)
	if err != nil {
		return "", err
	}
	if runes == 0 {
		return "", nil
	}
	v, err := s.codec.DecodeString(payload)
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(v); n != runes {
		return "", fmt.Errorf("%w: decoded %d code points, header says %d", wire.ErrCorrupt, n, runes)
	}
	return v, nil
}

// Set stores v under key. ttl == 0 uses Options.DefaultTTL. Invalid UTF-8
// is rejected unless the Codec is lenient.
func (s *Texts) Set(ctx context.Context, key, v string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.EncodeString(v)
	if err != nil {
		return err
	}
	// lenient codecs may map invalid bytes to U+FFFD; count what was encoded
	raw, err := wire.EncodeText(lzy.CountRunes(payload), payload)
	if err != nil {
		return err
	}
	k := util.TextKey(s.ns, key)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("text write rejected by provider (pressure)", lzy.Fields{"key": key})
	}
	return nil
}

// GetMany returns the hits and the keys that missed, in input order.
// Duplicate keys are looked up once and reported once.
// The first provider error aborts the call.
func (s *Texts) GetMany(ctx context.Context, keys []string) (map[string]string, []string, error) {
	out := make(map[string]string, len(keys))
	seen := make(map[string]struct{}, len(keys))
	var missing []string
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			missing = append(missing, key)
			continue
		}
		out[key] = v
	}
	return out, missing, nil
}

func (s *Texts) Del(ctx context.Context, key string) error {
	return s.provider.Del(ctx, util.TextKey(s.ns, key))
}

// Close closes the Provider.
func (s *Texts) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}
