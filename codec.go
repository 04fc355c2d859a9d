package lzy

// Options tune a Codec. The zero value is a strict, silent codec with no
// size limits.
type Options struct {
	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used

	// Lenient disables most input validation on encode: surrogates and
	// runes up to 0x1FFFFF are encoded as their raw values, which Decode
	// then rejects, and malformed UTF-8 becomes U+FFFD. Negative runes and
	// runes above 0x1FFFFF are still refused with KindInvalidInput since
	// their bytes would decode to unrelated code points.
	Lenient bool

	MaxEncode int // max input length in units (runes, code units, bytes); 0 => unlimited
	MaxDecode int // max encoded payload length in bytes; 0 => unlimited
}

// Codec runs the LZY operations with the behavior configured in Options.
// It is immutable and safe for concurrent use.
type Codec struct {
	log       Logger
	hooks     Hooks
	strict    bool
	maxEncode int
	maxDecode int
}

func New(opts Options) *Codec {
	return &Codec{
		log:       coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:     coalesce[Hooks](opts.Hooks, NopHooks{}),
		strict:    !opts.Lenient,
		maxEncode: max(opts.MaxEncode, 0),
		maxDecode: max(opts.MaxDecode, 0),
	}
}

func (c *Codec) Encode(rs []rune) ([]byte, error) {
	if err := c.checkEncode(len(rs)); err != nil {
		return nil, err
	}
	b, err := encodeRunes(rs, c.strict)
	return b, c.encodeErr("runes", err)
}

func (c *Codec) EncodeUTF16(units []uint16) ([]byte, error) {
	if err := c.checkEncode(len(units)); err != nil {
		return nil, err
	}
	b, err := encodeUTF16(units, c.strict)
	return b, c.encodeErr("utf16", err)
}

func (c *Codec) EncodeUTF8(p []byte) ([]byte, error) {
	if err := c.checkEncode(len(p)); err != nil {
		return nil, err
	}
	b, err := encodeUTF8(p, c.strict)
	return b, c.encodeErr("utf8", err)
}

func (c *Codec) EncodeString(s string) ([]byte, error) {
	if err := c.checkEncode(len(s)); err != nil {
		return nil, err
	}
	b, err := encodeString(s, c.strict)
	return b, c.encodeErr("string", err)
}

func (c *Codec) Decode(b []byte) ([]rune, error) {
	if err := c.checkDecode(b); err != nil {
		return nil, err
	}
	rs, err := Decode(b)
	return rs, c.decodeErr("runes", err)
}

func (c *Codec) DecodeUTF16(b []byte) ([]uint16, error) {
	if err := c.checkDecode(b); err != nil {
		return nil, err
	}
	units, err := DecodeUTF16(b)
	return units, c.decodeErr("utf16", err)
}

func (c *Codec) DecodeUTF8(b []byte) ([]byte, error) {
	if err := c.checkDecode(b); err != nil {
		return nil, err
	}
	p, err := DecodeUTF8(b)
	return p, c.decodeErr("utf8", err)
}

func (c *Codec) DecodeString(b []byte) (string, error) {
	if err := c.checkDecode(b); err != nil {
		return "", err
	}
	s, err := DecodeString(b)
	return s, c.decodeErr("string", err)
}

func (c *Codec) checkEncode(n int) error {
	if c.maxEncode > 0 && n > c.maxEncode {
		err := &Error{Kind: KindTooLarge, Offset: c.maxEncode, Size: n}
		c.hooks.EncodeRejected(err.Kind, err.Offset)
		c.log.Debug("encode rejected (too large)", Fields{"size": n, "max": c.maxEncode})
		return err
	}
	return nil
}

// checkDecode enforces MaxDecode and reports bytes the decoder is going to
// skip while resynchronizing.
func (c *Codec) checkDecode(b []byte) error {
	if c.maxDecode > 0 && len(b) > c.maxDecode {
		err := &Error{Kind: KindTooLarge, Offset: c.maxDecode, Size: len(b)}
		c.hooks.DecodeRejected(err.Kind, err.Offset)
		c.log.Debug("decode rejected (too large)", Fields{"size": len(b), "max": c.maxDecode})
		return err
	}
	if start, err := resync(b); err == nil && start > 0 {
		c.hooks.Resynced(start)
		c.log.Warn("discarded leading continuation bytes", Fields{"discarded": start, "size": len(b)})
	}
	return nil
}

func (c *Codec) encodeErr(from string, err error) error {
	if e, ok := err.(*Error); ok {
		c.hooks.EncodeRejected(e.Kind, e.Offset)
		c.log.Debug("encode rejected", Fields{"input": from, "kind": e.Kind.String(), "offset": e.Offset})
	}
	return err
}

func (c *Codec) decodeErr(to string, err error) error {
	if e, ok := err.(*Error); ok {
		c.hooks.DecodeRejected(e.Kind, e.Offset)
		c.log.Debug("decode rejected", Fields{"output": to, "kind": e.Kind.String(), "offset": e.Offset})
	}
	return err
}
