package errors

// TOMLOp identifies which direction of a TOML operation failed. TOML is
// the one configuration format whose serialization and deserialization
// failures are independent native types, and callers care which direction
// failed, so the two are kept distinct rather than collapsed.
type TOMLOp int

const (
	// TOMLRead is a deserialization (parse) failure.
	TOMLRead TOMLOp = iota

	// TOMLWrite is a serialization failure.
	TOMLWrite
)

// String returns "read" or "write".
func (op TOMLOp) String() string {
	if op == TOMLWrite {
		return "write"
	}
	return "read"
}

// TOMLError wraps the TOML library's independent read and write failure
// shapes into one type, preserving the native failure as the cause.
type TOMLError struct {
	// Op records which direction failed.
	Op TOMLOp

	// Cause is the native TOML failure.
	Cause error
}

func (e *TOMLError) Error() string {
	if e.Op == TOMLWrite {
		return "serialization failed"
	}
	return "deserialization failed"
}

func (e *TOMLError) Unwrap() error { return e.Cause }
