package config

import (
	"os"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// Load reads, parses, and validates the configuration document at path.
//
// The format is identified from the path's extension before the file is
// read; an unidentifiable or disabled format fails without touching a
// parser. Filesystem failures surface as I/O failures; identification,
// parse, and validation failures surface as [*ircerr.InvalidConfigError]
// values carrying the path and the detailed cause.
func Load(path string) (*Config, error) {
	name, cerr := identifyFormat(path)
	if cerr != nil {
		return nil, ircerr.NewInvalidConfig(path, cerr)
	}
	f, cerr := formatFor(name)
	if cerr != nil {
		return nil, ircerr.NewInvalidConfig(path, cerr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ircerr.WrapIO(err)
	}

	cfg := &Config{}
	if cerr := f.decode(data, cfg); cerr != nil {
		return nil, ircerr.NewInvalidConfig(path, cerr)
	}
	if cerr := cfg.validate(); cerr != nil {
		return nil, ircerr.NewInvalidConfig(path, cerr)
	}
	return cfg, nil
}

// Decode parses and validates an in-memory configuration document. The
// formatName may be a canonical format name or any recognized marker
// (e.g., "yml"). Failures carry the "<none>" path sentinel since no path
// was given.
func Decode(data []byte, formatName string) (*Config, error) {
	name, ok := markerFormats[formatName]
	if !ok {
		return nil, ircerr.NewInvalidConfig(ircerr.NoConfigPath,
			&ircerr.UnknownFormatError{Format: formatName})
	}
	f, cerr := formatFor(name)
	if cerr != nil {
		return nil, ircerr.NewInvalidConfig(ircerr.NoConfigPath, cerr)
	}

	cfg := &Config{}
	if cerr := f.decode(data, cfg); cerr != nil {
		return nil, ircerr.NewInvalidConfig(ircerr.NoConfigPath, cerr)
	}
	if cerr := cfg.validate(); cerr != nil {
		return nil, ircerr.NewInvalidConfig(ircerr.NoConfigPath, cerr)
	}
	return cfg, nil
}

// Save serializes the configuration to the format identified by the
// path's extension and writes it to path. Serialization failures surface
// as [*ircerr.InvalidConfigError] values (for TOML, with the write
// direction recorded); filesystem failures surface as I/O failures.
func Save(cfg *Config, path string) error {
	name, cerr := identifyFormat(path)
	if cerr != nil {
		return ircerr.NewInvalidConfig(path, cerr)
	}
	f, cerr := formatFor(name)
	if cerr != nil {
		return ircerr.NewInvalidConfig(path, cerr)
	}

	data, cerr := f.encode(cfg)
	if cerr != nil {
		return ircerr.NewInvalidConfig(path, cerr)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ircerr.WrapIO(err)
	}
	return nil
}
