// Package config provides configuration loading for the irc library from
// TOML, JSON, and YAML documents. The document format is identified by its
// file extension before any parser runs:
//
//	.toml        — parsed as TOML
//	.json        — parsed as JSON
//	.yaml / .yml — parsed as YAML
//
// Format support is a build-configuration fact: each parser is registered
// by a build-tag-gated file (irc_notoml, irc_nojson, irc_noyaml exclude
// the respective format). Loading a document identified as a recognized
// but excluded format fails with a FormatDisabled cause without ever
// attempting to parse; a path whose extension matches no known format
// fails with UnknownFormat; a path with no extension at all fails with
// MissingExtension.
//
// After a successful parse the document is validated semantically: a
// configuration must specify a nickname and a server.
//
// Every failure surfaces as an [*ircerr.InvalidConfigError] carrying the
// document path (or the "<none>" sentinel) and the detailed
// [ircerr.ConfigError] cause.
package config

import (
	"net"
	"strconv"
	"time"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// Config describes a client connection: the server to reach, the identity
// to present, and the channels to join. Zero values fall back to protocol
// defaults via the accessor methods.
type Config struct {
	// Owners are the nicknames allowed to administer the client.
	Owners []string `toml:"owners" json:"owners,omitempty" yaml:"owners"`

	// Nickname is the primary nickname. Mandatory.
	Nickname string `toml:"nickname" json:"nickname,omitempty" yaml:"nickname"`

	// AltNicks are fallback nicknames tried in order when the primary
	// nickname is rejected.
	AltNicks []string `toml:"alt_nicks" json:"alt_nicks,omitempty" yaml:"alt_nicks"`

	// Username is the username sent at registration. Defaults to Nickname.
	Username string `toml:"username" json:"username,omitempty" yaml:"username"`

	// Realname is the real name sent at registration. Defaults to Nickname.
	Realname string `toml:"realname" json:"realname,omitempty" yaml:"realname"`

	// Server is the hostname or address of the server. Mandatory.
	Server string `toml:"server" json:"server,omitempty" yaml:"server"`

	// Port is the server port. Defaults to 6697 with TLS, 6667 without.
	Port int `toml:"port" json:"port,omitempty" yaml:"port"`

	// Password is the connection password, sent as PASS when non-empty.
	Password string `toml:"password" json:"password,omitempty" yaml:"password"`

	// UseTLS enables TLS for the connection.
	UseTLS bool `toml:"use_tls" json:"use_tls,omitempty" yaml:"use_tls"`

	// Channels are joined automatically after registration.
	Channels []string `toml:"channels" json:"channels,omitempty" yaml:"channels"`

	// PingTime is the liveness probe interval in seconds. Defaults to 180.
	PingTime int `toml:"ping_time" json:"ping_time,omitempty" yaml:"ping_time"`

	// PingTimeout is the window in seconds within which a liveness
	// response must arrive. Defaults to 10.
	PingTimeout int `toml:"ping_timeout" json:"ping_timeout,omitempty" yaml:"ping_timeout"`

	// Encoding is the IANA name of the wire text codec. Defaults to UTF-8.
	Encoding string `toml:"encoding" json:"encoding,omitempty" yaml:"encoding"`

	// UserInfo is the reply text for CTCP USERINFO queries.
	UserInfo string `toml:"user_info" json:"user_info,omitempty" yaml:"user_info"`

	// Options holds free-form extension settings.
	Options map[string]string `toml:"options" json:"options,omitempty" yaml:"options"`
}

// Address returns the dialable host:port for the configured server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server, strconv.Itoa(c.PortOrDefault()))
}

// PortOrDefault returns the configured port, or the protocol default for
// the transport: 6697 with TLS, 6667 without.
func (c *Config) PortOrDefault() int {
	if c.Port != 0 {
		return c.Port
	}
	if c.UseTLS {
		return 6697
	}
	return 6667
}

// UsernameOrDefault returns the configured username, falling back to the
// nickname.
func (c *Config) UsernameOrDefault() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Nickname
}

// RealnameOrDefault returns the configured real name, falling back to the
// nickname.
func (c *Config) RealnameOrDefault() string {
	if c.Realname != "" {
		return c.Realname
	}
	return c.Nickname
}

// NickCandidates returns the primary nickname followed by the alternates,
// in negotiation order.
func (c *Config) NickCandidates() []string {
	candidates := make([]string, 0, 1+len(c.AltNicks))
	candidates = append(candidates, c.Nickname)
	candidates = append(candidates, c.AltNicks...)
	return candidates
}

// PingTimeOrDefault returns the liveness probe interval.
func (c *Config) PingTimeOrDefault() time.Duration {
	if c.PingTime > 0 {
		return time.Duration(c.PingTime) * time.Second
	}
	return 180 * time.Second
}

// PingTimeoutOrDefault returns the liveness response window.
func (c *Config) PingTimeoutOrDefault() time.Duration {
	if c.PingTimeout > 0 {
		return time.Duration(c.PingTimeout) * time.Second
	}
	return 10 * time.Second
}

// EncodingOrDefault returns the configured wire codec name, falling back
// to UTF-8.
func (c *Config) EncodingOrDefault() string {
	if c.Encoding != "" {
		return c.Encoding
	}
	return "UTF-8"
}

// Validate checks the semantic invariants of a configuration: a nickname
// and a server must be specified. Returns an [*ircerr.InvalidConfigError]
// with the "<none>" path sentinel on failure, since the value being
// validated was not necessarily loaded from a file.
func (c *Config) Validate() error {
	if cerr := c.validate(); cerr != nil {
		return ircerr.NewInvalidConfig(ircerr.NoConfigPath, cerr)
	}
	return nil
}

// validate returns the first semantic validation failure, or nil.
func (c *Config) validate() ircerr.ConfigError {
	if c.Nickname == "" {
		return &ircerr.NicknameNotSpecifiedError{}
	}
	if c.Server == "" {
		return &ircerr.ServerNotSpecifiedError{}
	}
	return nil
}
