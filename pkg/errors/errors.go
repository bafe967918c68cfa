// Package errors defines the unified failure taxonomy for the irc library.
// Every fallible operation exposed by the library — transport I/O, TLS
// negotiation, internal signaling channels, protocol message parsing,
// configuration loading, codec lookup, and nickname negotiation — reports
// its failure as one of the closed set of variant types in this package.
//
// # Taxonomy
//
// The top-level [Error] interface is sealed: the complete set of variants
// is defined here and cannot be extended from outside the package, so a
// consumer switching over variants can be audited exhaustively. Each
// variant is an immutable value constructed once at the point of failure.
//
// Variants that wrap a lower-layer failure keep the original error object
// as a traversable cause (via Unwrap), never summarized into text. A
// consumer can always produce a top-line message plus the complete ordered
// cause chain with [Chain].
//
// # Codes
//
// Each variant carries a machine-readable [Code] (e.g., "TRANSPORT_001")
// for uniform logging and error tracking. Codes group into categories
// matching the failure domains:
//
//   - TRANSPORT_xxx — byte-stream and TLS failures
//   - SIGNAL_xxx    — internal channel and one-shot signal failures
//   - CONFIG_xxx    — configuration loading and validation failures
//   - PROTO_xxx     — protocol message parse failures
//   - STATE_xxx     — resource-state failures (poisoned log, repeated setup)
//   - NEGO_xxx      — negotiation failures (ping timeout, nickname exhaustion)
//   - CODEC_xxx     — text codec failures
//
// # Conversion
//
// Lower layers raise their native failure types; [From] and the Wrap/New
// constructors in convert.go map them losslessly into taxonomy variants at
// the call boundary. No conversion synthesizes new diagnostic text.
//
// # Usage
//
// Match a specific variant:
//
//	var nf *errors.NoUsableNickError
//	if stderrors.As(err, &nf) {
//	    // give up on this connection
//	}
//
// Log uniformly:
//
//	if e, ok := errors.AsError(err); ok {
//	    logger.Error("operation failed", "code", e.Code(), "err", e)
//	}
package errors
