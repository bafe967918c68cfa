//go:build !irc_nojson

package config

import (
	"encoding/json"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

func init() {
	registerFormat(format{
		name: "json",
		decode: func(data []byte, cfg *Config) ircerr.ConfigError {
			if err := json.Unmarshal(data, cfg); err != nil {
				return &ircerr.InvalidJSONError{Cause: err}
			}
			return nil
		},
		encode: func(cfg *Config) ([]byte, ircerr.ConfigError) {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return nil, &ircerr.InvalidJSONError{Cause: err}
			}
			return data, nil
		},
	})
}
