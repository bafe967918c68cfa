package errors

import (
	stderrors "errors"
)

// AsError attempts to find a taxonomy variant in err's chain.
// Returns the variant and true if found, nil and false otherwise.
//
// Example:
//
//	if e, ok := errors.AsError(err); ok {
//	    logger.Error("operation failed", "code", e.Code(), "err", e)
//	}
func AsError(err error) (Error, bool) {
	var e Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsConfigError attempts to find a configuration failure variant in err's
// chain. It matches both a bare [ConfigError] and the cause inside an
// [*InvalidConfigError].
func AsConfigError(err error) (ConfigError, bool) {
	var e ConfigError
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the taxonomy variant in err's chain.
// If err is nil or carries no variant, returns an empty code.
func CodeOf(err error) Code {
	if e, ok := AsError(err); ok {
		return e.Code()
	}
	return ""
}

// HasCode checks whether err carries a taxonomy variant with the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// IsTransport checks whether err is a transport failure (TRANSPORT_xxx):
// an I/O or TLS failure.
func IsTransport(err error) bool {
	return CodeOf(err).Category() == "TRANSPORT"
}

// IsSignal checks whether err is an internal signaling failure
// (SIGNAL_xxx): a closed sync channel, closed async channel, or canceled
// one-shot. These indicate a cooperating goroutine terminated; the
// condition is terminal and is never retried by the library.
func IsSignal(err error) bool {
	return CodeOf(err).Category() == "SIGNAL"
}

// IsConfig checks whether err is a configuration failure (CONFIG_xxx).
func IsConfig(err error) bool {
	return CodeOf(err).Category() == "CONFIG"
}

// IsProtocol checks whether err is a protocol parse failure (PROTO_xxx).
func IsProtocol(err error) bool {
	return CodeOf(err).Category() == "PROTO"
}

// IsState checks whether err is a resource-state failure (STATE_xxx):
// a poisoned transport log or a repeated one-time configuration.
func IsState(err error) bool {
	return CodeOf(err).Category() == "STATE"
}

// IsNegotiation checks whether err is a negotiation failure (NEGO_xxx):
// a ping timeout or nickname exhaustion.
func IsNegotiation(err error) bool {
	return CodeOf(err).Category() == "NEGO"
}

// IsCodec checks whether err is a text codec failure (CODEC_xxx).
func IsCodec(err error) bool {
	return CodeOf(err).Category() == "CODEC"
}

// Chain returns the complete ordered cause chain starting at err and
// walking each wrapped cause down to the innermost originating failure.
// The chain includes err itself. Returns nil when err is nil.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = stderrors.Unwrap(err)
	}
	return chain
}
