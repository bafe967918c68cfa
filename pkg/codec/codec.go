// Package codec translates wire lines between a named character set and
// Go strings. Codecs are looked up by IANA charset name through
// golang.org/x/text; a name with no registered implementation fails with
// UnknownCodec, and data a known codec cannot represent fails with
// CodecFailed carrying the offending data.
package codec

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// Codec converts between wire bytes in a fixed character set and Go
// strings. A Codec is immutable and safe for concurrent use; each call
// uses a fresh encoder or decoder.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves an IANA charset name (e.g., "UTF-8", "ISO-8859-1") to a
// [*Codec]. Names without a registered implementation fail with
// [*ircerr.UnknownCodecError].
func Lookup(name string) (*Codec, error) {
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		// The index also returns a nil encoding with no error for names
		// it recognizes but has no implementation of.
		return nil, ircerr.NewUnknownCodec(name)
	}
	canonical, err := ianaindex.IANA.Name(e)
	if err != nil || canonical == "" {
		canonical = name
	}
	return &Codec{name: canonical, enc: e}, nil
}

// Name returns the canonical IANA name of the codec.
func (c *Codec) Name() string {
	return c.name
}

// EncodeLine converts a message line into wire bytes in the codec's
// character set and terminates it with CRLF. Input the character set
// cannot represent fails with [*ircerr.CodecFailedError] carrying the
// line.
func (c *Codec) EncodeLine(line string) ([]byte, error) {
	data, err := c.enc.NewEncoder().Bytes([]byte(line))
	if err != nil {
		return nil, ircerr.NewCodecFailed(c.name, line)
	}
	return append(data, '\r', '\n'), nil
}

// DecodeLine converts wire bytes into a message line, stripping the
// trailing CRLF. Bytes the codec cannot decode fail with
// [*ircerr.CodecFailedError] carrying the raw data.
func (c *Codec) DecodeLine(data []byte) (string, error) {
	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", ircerr.NewCodecFailed(c.name, string(data))
	}
	return strings.TrimRight(string(decoded), "\r\n"), nil
}
