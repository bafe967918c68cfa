package errors

import "fmt"

// Error is the sealed interface satisfied by every top-level failure
// variant in the taxonomy. The variant set is closed: only types in this
// package implement it, so consumers can match exhaustively.
//
// Every variant renders a fixed, field-interpolated message from Error()
// and carries a stable [Code]. Variants that wrap a lower-layer failure
// additionally implement Unwrap, so the full cause chain is reachable with
// the standard errors package or with [Chain].
type Error interface {
	error

	// Code returns the machine-readable code for this variant.
	Code() Code

	// taxonomy seals the interface to this package.
	taxonomy()
}

// Compile-time checks that every variant satisfies Error.
var (
	_ Error = (*IOError)(nil)
	_ Error = (*TLSError)(nil)
	_ Error = (*SyncChannelClosedError)(nil)
	_ Error = (*AsyncChannelClosedError)(nil)
	_ Error = (*OneShotCanceledError)(nil)
	_ Error = (*InvalidConfigError)(nil)
	_ Error = (*InvalidMessageError)(nil)
	_ Error = (*PoisonedLogError)(nil)
	_ Error = (*PingTimeoutError)(nil)
	_ Error = (*UnknownCodecError)(nil)
	_ Error = (*CodecFailedError)(nil)
	_ Error = (*NoUsableNickError)(nil)
	_ Error = (*StreamAlreadyConfiguredError)(nil)
)

// IOError reports that an underlying byte-stream operation failed.
type IOError struct {
	// Cause is the original byte-stream failure.
	Cause error
}

func (e *IOError) Error() string { return "an io error occurred" }
func (e *IOError) Code() Code { return CodeIO }
func (e *IOError) Unwrap() error { return e.Cause }
func (e *IOError) taxonomy() {}

// TLSError reports that TLS setup, handshake, read, or write failed.
type TLSError struct {
	// Cause is the original TLS failure.
	Cause error
}

func (e *TLSError) Error() string { return "a TLS error occurred" }
func (e *TLSError) Code() Code { return CodeTLS }
func (e *TLSError) Unwrap() error { return e.Cause }
func (e *TLSError) taxonomy() {}

// SyncChannelClosedError reports that a synchronous cross-goroutine
// channel's sending half was gone while a receive was attempted.
type SyncChannelClosedError struct {
	// Cause is the original receive failure.
	Cause error
}

func (e *SyncChannelClosedError) Error() string { return "a sync channel closed" }
func (e *SyncChannelClosedError) Code() Code { return CodeSyncChannelClosed }
func (e *SyncChannelClosedError) Unwrap() error { return e.Cause }
func (e *SyncChannelClosedError) taxonomy() {}

// AsyncChannelClosedError reports that an asynchronous channel send failed
// because the receiving end was gone.
type AsyncChannelClosedError struct {
	// Cause is the original send failure.
	Cause error
}

func (e *AsyncChannelClosedError) Error() string { return "an async channel closed" }
func (e *AsyncChannelClosedError) Code() Code { return CodeAsyncChannelClosed }
func (e *AsyncChannelClosedError) Unwrap() error { return e.Cause }
func (e *AsyncChannelClosedError) taxonomy() {}

// OneShotCanceledError reports that a single-use completion signal was
// dropped before firing.
type OneShotCanceledError struct {
	// Cause is the original cancellation.
	Cause error
}

func (e *OneShotCanceledError) Error() string { return "a oneshot channel closed" }
func (e *OneShotCanceledError) Code() Code { return CodeOneShotCanceled }
func (e *OneShotCanceledError) Unwrap() error { return e.Cause }
func (e *OneShotCanceledError) taxonomy() {}

// InvalidConfigError reports that configuration loading or validation
// failed. Path is the source location of the configuration document, or
// the sentinel "<none>" when no path was given.
type InvalidConfigError struct {
	// Path is the configuration document path or "<none>".
	Path string

	// Cause classifies the configuration failure.
	Cause ConfigError
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Path)
}
func (e *InvalidConfigError) Code() Code { return CodeInvalidConfig }
func (e *InvalidConfigError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}
func (e *InvalidConfigError) taxonomy() {}

// InvalidMessageError reports that a protocol message failed to parse.
// Raw is the unparsed input, stored verbatim.
type InvalidMessageError struct {
	// Raw is the string that failed to parse, never sanitized.
	Raw string

	// Cause is the detailed message parse failure.
	Cause error
}

func (e *InvalidMessageError) Error() string {
	return fmt.Sprintf("invalid message: %s", e.Raw)
}
func (e *InvalidMessageError) Code() Code { return CodeInvalidMessage }
func (e *InvalidMessageError) Unwrap() error { return e.Cause }
func (e *InvalidMessageError) taxonomy() {}

// PoisonedLogError reports that the mutex-guarded transport log became
// permanently inaccessible because a prior holder failed while holding
// the lock. The condition is terminal for that log; the library never
// attempts to reacquire or repair it.
type PoisonedLogError struct{}

func (e *PoisonedLogError) Error() string {
	return "mutex for a logged transport was poisoned"
}
func (e *PoisonedLogError) Code() Code { return CodePoisonedLog }
func (e *PoisonedLogError) taxonomy() {}

// PingTimeoutError reports that no liveness response arrived within the
// expected window.
type PingTimeoutError struct{}

func (e *PingTimeoutError) Error() string {
	return "connection reset: no ping response"
}
func (e *PingTimeoutError) Code() Code { return CodePingTimeout }
func (e *PingTimeoutError) taxonomy() {}

// UnknownCodecError reports that a requested text codec is not registered.
type UnknownCodecError struct {
	// Codec is the attempted codec name.
	Codec string
}

func (e *UnknownCodecError) Error() string {
	return fmt.Sprintf("unknown codec: %s", e.Codec)
}
func (e *UnknownCodecError) Code() Code { return CodeUnknownCodec }
func (e *UnknownCodecError) taxonomy() {}

// CodecFailedError reports that encoding or decoding via a known codec
// failed, carrying the offending data.
type CodecFailedError struct {
	// Codec is the canonical codec name.
	Codec string

	// Data is the data that failed to encode or decode.
	Data string
}

func (e *CodecFailedError) Error() string {
	return fmt.Sprintf("codec %s failed: %s", e.Codec, e.Data)
}
func (e *CodecFailedError) Code() Code { return CodeCodecFailed }
func (e *CodecFailedError) taxonomy() {}

// NoUsableNickError reports that every candidate nickname was rejected
// or unusable.
type NoUsableNickError struct{}

func (e *NoUsableNickError) Error() string {
	return "none of the specified nicknames were usable"
}
func (e *NoUsableNickError) Code() Code { return CodeNoUsableNick }
func (e *NoUsableNickError) taxonomy() {}

// StreamAlreadyConfiguredError reports that the one-time stream
// configuration operation was invoked a second time.
type StreamAlreadyConfiguredError struct{}

func (e *StreamAlreadyConfiguredError) Error() string {
	return "stream has already been configured"
}
func (e *StreamAlreadyConfiguredError) Code() Code { return CodeStreamAlreadyConfigured }
func (e *StreamAlreadyConfiguredError) taxonomy() {}
