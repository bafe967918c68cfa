//go:build !irc_notoml

package config

import (
	"bytes"

	"github.com/BurntSushi/toml"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// TOML is the only format whose read and write failures are independent
// native types, so both directions wrap through [ircerr.TOMLError].
func init() {
	registerFormat(format{
		name: "toml",
		decode: func(data []byte, cfg *Config) ircerr.ConfigError {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return &ircerr.InvalidTOMLError{
					Cause: &ircerr.TOMLError{Op: ircerr.TOMLRead, Cause: err},
				}
			}
			return nil
		},
		encode: func(cfg *Config) ([]byte, ircerr.ConfigError) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
				return nil, &ircerr.InvalidTOMLError{
					Cause: &ircerr.TOMLError{Op: ircerr.TOMLWrite, Cause: err},
				}
			}
			return buf.Bytes(), nil
		},
	})
}
