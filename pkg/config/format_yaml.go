//go:build !irc_noyaml

package config

import (
	"gopkg.in/yaml.v3"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

func init() {
	registerFormat(format{
		name: "yaml",
		decode: func(data []byte, cfg *Config) ircerr.ConfigError {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return &ircerr.InvalidYAMLError{Cause: err}
			}
			return nil
		},
		encode: func(cfg *Config) ([]byte, ircerr.ConfigError) {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return nil, &ircerr.InvalidYAMLError{Cause: err}
			}
			return data, nil
		},
	})
}
