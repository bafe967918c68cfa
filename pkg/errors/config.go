package errors

import "fmt"

// ConfigError is the sealed interface satisfied by every configuration
// failure variant. A ConfigError is always carried inside an
// [InvalidConfigError] alongside the document path.
//
// The per-format parse variants ([InvalidTOMLError], [InvalidJSONError],
// [InvalidYAMLError]) are only raised when the corresponding format parser
// is compiled in; builds that exclude a format raise
// [FormatDisabledError] for documents identified as that format instead.
// The variant types themselves are always defined so the closed set is
// stable across build configurations.
type ConfigError interface {
	error

	// configError seals the interface to this package.
	configError()
}

var (
	_ ConfigError = (*InvalidTOMLError)(nil)
	_ ConfigError = (*InvalidJSONError)(nil)
	_ ConfigError = (*InvalidYAMLError)(nil)
	_ ConfigError = (*FormatDisabledError)(nil)
	_ ConfigError = (*UnknownFormatError)(nil)
	_ ConfigError = (*MissingExtensionError)(nil)
	_ ConfigError = (*NicknameNotSpecifiedError)(nil)
	_ ConfigError = (*ServerNotSpecifiedError)(nil)
)

// InvalidTOMLError reports that a configuration document failed to parse
// or serialize as TOML. Cause is a [*TOMLError] distinguishing the
// direction that failed.
type InvalidTOMLError struct {
	// Cause is the detailed TOML failure.
	Cause error
}

func (e *InvalidTOMLError) Error() string { return "invalid toml" }
func (e *InvalidTOMLError) Unwrap() error { return e.Cause }
func (e *InvalidTOMLError) configError() {}

// InvalidJSONError reports that a configuration document failed to parse
// as JSON.
type InvalidJSONError struct {
	// Cause is the native JSON failure.
	Cause error
}

func (e *InvalidJSONError) Error() string { return "invalid json" }
func (e *InvalidJSONError) Unwrap() error { return e.Cause }
func (e *InvalidJSONError) configError() {}

// InvalidYAMLError reports that a configuration document failed to parse
// as YAML.
type InvalidYAMLError struct {
	// Cause is the native YAML failure.
	Cause error
}

func (e *InvalidYAMLError) Error() string { return "invalid yaml" }
func (e *InvalidYAMLError) Unwrap() error { return e.Cause }
func (e *InvalidYAMLError) configError() {}

// FormatDisabledError reports that the document's format was identified
// but support for it was excluded from this build. It is distinct from
// [UnknownFormatError]: the format marker is recognized, its parser is
// just not compiled in.
type FormatDisabledError struct {
	// Format is the disabled format name (e.g., "toml").
	Format string
}

func (e *FormatDisabledError) Error() string {
	return fmt.Sprintf("config format disabled: %s", e.Format)
}
func (e *FormatDisabledError) configError() {}

// UnknownFormatError reports that the document's format marker does not
// match any known format, compiled in or not.
type UnknownFormatError struct {
	// Format is the unrecognized file extension, without the dot.
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("config format unknown: %s", e.Format)
}
func (e *UnknownFormatError) configError() {}

// MissingExtensionError reports that the document's path carries no
// extension at all, so its format cannot be identified.
type MissingExtensionError struct{}

func (e *MissingExtensionError) Error() string { return "missing format extension" }
func (e *MissingExtensionError) configError() {}

// NicknameNotSpecifiedError reports that the document parsed successfully
// but does not specify a nickname. This is a semantic validation failure,
// not a syntax failure.
type NicknameNotSpecifiedError struct{}

func (e *NicknameNotSpecifiedError) Error() string { return "nickname not specified" }
func (e *NicknameNotSpecifiedError) configError() {}

// ServerNotSpecifiedError reports that the document parsed successfully
// but does not specify a server. This is a semantic validation failure,
// not a syntax failure.
type ServerNotSpecifiedError struct{}

func (e *ServerNotSpecifiedError) Error() string { return "server not specified" }
func (e *ServerNotSpecifiedError) configError() {}
