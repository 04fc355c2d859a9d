package lzy

// Hooks are lightweight callbacks for codec events.
// Implementations MUST be cheap and non-blocking; they run inline on every
// call. Wrap slow ones with hooks/async.
type Hooks interface {
	// Decode skipped leading continuation bytes before the first lead byte.
	Resynced(discarded int)

	// A decode call failed. offset is the byte offset reported by *Error.
	DecodeRejected(kind Kind, offset int)

	// An encode call failed. offset is in units of the input (rune,
	// UTF-16 code unit or byte).
	EncodeRejected(kind Kind, offset int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Resynced(int)            {}
func (NopHooks) DecodeRejected(Kind, int) {}
func (NopHooks) EncodeRejected(Kind, int) {}
