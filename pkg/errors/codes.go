package errors

// Code is a machine-readable identifier for a failure variant. Codes follow
// the pattern CATEGORY_XXX where CATEGORY names the failure domain and XXX
// is a three-digit numeric code.
//
// Codes are designed to be:
//   - Stable: codes do not change once assigned
//   - Unique: each variant has a distinct code
//   - Machine-readable: suitable for log aggregation and alerting
type Code string

// Code categories and their domains:
//
//	TRANSPORT_xxx - byte-stream and secure-transport failures
//	SIGNAL_xxx    - internal channel and one-shot signal failures
//	CONFIG_xxx    - configuration loading and validation failures
//	PROTO_xxx     - protocol message parse failures
//	STATE_xxx     - resource-state failures
//	NEGO_xxx      - negotiation failures
//	CODEC_xxx     - text codec failures
const (
	// CodeIO indicates an underlying byte-stream operation failed.
	CodeIO Code = "TRANSPORT_001"

	// CodeTLS indicates TLS setup, handshake, read, or write failed.
	CodeTLS Code = "TRANSPORT_002"

	// CodeSyncChannelClosed indicates a synchronous cross-goroutine
	// channel's sending half was gone while a receive was attempted.
	CodeSyncChannelClosed Code = "SIGNAL_001"

	// CodeAsyncChannelClosed indicates an asynchronous channel send failed
	// because the receiving end was gone.
	CodeAsyncChannelClosed Code = "SIGNAL_002"

	// CodeOneShotCanceled indicates a single-use completion signal was
	// dropped before firing.
	CodeOneShotCanceled Code = "SIGNAL_003"

	// CodeInvalidConfig indicates configuration loading or validation failed.
	CodeInvalidConfig Code = "CONFIG_001"

	// CodeInvalidMessage indicates a protocol message failed to parse.
	CodeInvalidMessage Code = "PROTO_001"

	// CodePoisonedLog indicates the mutex-guarded transport log became
	// permanently inaccessible after a holder failed while holding the lock.
	CodePoisonedLog Code = "STATE_001"

	// CodeStreamAlreadyConfigured indicates the one-time stream
	// configuration operation was invoked a second time.
	CodeStreamAlreadyConfigured Code = "STATE_002"

	// CodePingTimeout indicates no liveness response arrived within the
	// expected window.
	CodePingTimeout Code = "NEGO_001"

	// CodeNoUsableNick indicates every candidate nickname was rejected or
	// unusable.
	CodeNoUsableNick Code = "NEGO_002"

	// CodeUnknownCodec indicates a requested text codec is not registered.
	CodeUnknownCodec Code = "CODEC_001"

	// CodeCodecFailed indicates encoding or decoding via a known codec failed.
	CodeCodecFailed Code = "CODEC_002"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Category returns the category prefix of the code (e.g., "TRANSPORT").
func (c Code) Category() string {
	s := string(c)
	for i, r := range s {
		if r == '_' {
			return s[:i]
		}
	}
	return s
}
