package config

import (
	"path/filepath"
	"strings"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// format is a registered structured-text format: a canonical name plus
// decode and encode functions over its native parser. Decode and encode
// failures are returned already classified as configuration failures.
type format struct {
	name   string
	decode func(data []byte, cfg *Config) ircerr.ConfigError
	encode func(cfg *Config) ([]byte, ircerr.ConfigError)
}

// markerFormats maps every recognized format marker (file extension,
// lowercased, without the dot) to its canonical format name. The set is
// closed and independent of which parsers are compiled in: a marker
// outside it is an unknown format, a marker inside it whose parser is not
// registered is a disabled format.
var markerFormats = map[string]string{
	"toml": "toml",
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
}

// registry holds the formats whose parsers are compiled into this build.
// Entries are registered from init functions in the build-tag-gated
// format files.
var registry = map[string]format{}

func registerFormat(f format) {
	registry[f.name] = f
}

// identifyFormat maps a document path to its canonical format name.
// Identification precedes parsing: a path with no extension and a path
// with an unrecognized extension are distinct failures, and neither ever
// reaches a parser.
func identifyFormat(path string) (string, ircerr.ConfigError) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &ircerr.MissingExtensionError{}
	}
	name, ok := markerFormats[strings.ToLower(ext)]
	if !ok {
		return "", &ircerr.UnknownFormatError{Format: ext}
	}
	return name, nil
}

// formatFor returns the registered format for a canonical name, or a
// FormatDisabled failure when the format is recognized but its parser was
// excluded from this build.
func formatFor(name string) (format, ircerr.ConfigError) {
	f, ok := registry[name]
	if !ok {
		return format{}, &ircerr.FormatDisabledError{Format: name}
	}
	return f, nil
}
