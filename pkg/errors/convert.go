package errors

import (
	stderrors "errors"

	"github.com/topaxi/irc/internal/signal"
	"github.com/topaxi/irc/pkg/proto"
)

// From converts a lower-layer failure into the matching taxonomy variant.
// Every rule is structure-preserving: the original error object is kept as
// the variant's cause, and no diagnostic text is synthesized.
//
// Conversion rules, applied in order:
//
//   - an existing [Error] anywhere in the chain is returned unmodified
//   - [*proto.InvalidMessageError] becomes [*InvalidMessageError] with the
//     raw string and parse cause preserved unchanged
//   - [*signal.RecvError] becomes [*SyncChannelClosedError]
//   - [*signal.SendError] becomes [*AsyncChannelClosedError]
//   - [*signal.TrySendError] becomes [*AsyncChannelClosedError]; the unsent
//     payload is discarded and only the closed-channel cause is kept
//   - [*signal.Canceled] becomes [*OneShotCanceledError]
//   - anything else is treated as a byte-stream failure and becomes
//     [*IOError], which also re-tags protocol-layer I/O failures at the
//     top level
//
// From returns nil when err is nil.
func From(err error) Error {
	if err == nil {
		return nil
	}

	var tax Error
	if stderrors.As(err, &tax) {
		return tax
	}

	var parse *proto.InvalidMessageError
	if stderrors.As(err, &parse) {
		return &InvalidMessageError{Raw: parse.Raw, Cause: parse.Cause}
	}

	var recv *signal.RecvError
	if stderrors.As(err, &recv) {
		return &SyncChannelClosedError{Cause: recv}
	}

	var trySend *signal.TrySendError
	if stderrors.As(err, &trySend) {
		return &AsyncChannelClosedError{Cause: trySend.SendError()}
	}

	var send *signal.SendError
	if stderrors.As(err, &send) {
		return &AsyncChannelClosedError{Cause: send}
	}

	var canceled *signal.Canceled
	if stderrors.As(err, &canceled) {
		return &OneShotCanceledError{Cause: canceled}
	}

	return &IOError{Cause: err}
}

// WrapIO wraps a byte-stream failure as an [*IOError].
// Returns nil if err is nil.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Cause: err}
}

// WrapTLS wraps a secure-transport failure as a [*TLSError].
// Returns nil if err is nil.
func WrapTLS(err error) error {
	if err == nil {
		return nil
	}
	return &TLSError{Cause: err}
}

// NewInvalidConfig wraps a configuration failure with the document path.
// Pass [NoConfigPath] when no path was given.
func NewInvalidConfig(path string, cause ConfigError) *InvalidConfigError {
	return &InvalidConfigError{Path: path, Cause: cause}
}

// NewInvalidMessage wraps a message parse failure with the unparsed input.
func NewInvalidMessage(raw string, cause error) *InvalidMessageError {
	return &InvalidMessageError{Raw: raw, Cause: cause}
}

// NewUnknownCodec reports a codec lookup failure for the attempted name.
func NewUnknownCodec(codec string) *UnknownCodecError {
	return &UnknownCodecError{Codec: codec}
}

// NewCodecFailed reports an encode or decode failure via a known codec,
// carrying the offending data verbatim.
func NewCodecFailed(codec, data string) *CodecFailedError {
	return &CodecFailedError{Codec: codec, Data: data}
}

// NoConfigPath is the sentinel used as the path of an [InvalidConfigError]
// when the configuration was not loaded from a file.
const NoConfigPath = "<none>"
