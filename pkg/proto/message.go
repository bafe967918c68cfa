// Package proto implements the IRC wire message representation and the
// protocol layer's failure contract. Parsing covers the message envelope
// (tags, prefix, command, parameters); command-specific semantics belong
// to the layers above.
package proto

import "strings"

// Message is a single IRC protocol message.
type Message struct {
	// Tags holds IRCv3 message tags, if present. Nil when the message
	// carries no tags. Tag values are stored raw, without unescaping.
	Tags map[string]string

	// Prefix is the message source (server name or nick!user@host),
	// without the leading colon. Empty when absent.
	Prefix string

	// Command is the message verb or three-digit numeric reply.
	Command string

	// Params are the command parameters. A trailing parameter is stored
	// without its leading colon.
	Params []string
}

// New builds a message from a command and its parameters.
func New(command string, params ...string) *Message {
	return &Message{Command: command, Params: params}
}

// Param returns the i-th parameter, or the empty string when absent.
func (m *Message) Param(i int) string {
	if i < 0 || i >= len(m.Params) {
		return ""
	}
	return m.Params[i]
}

// Trailing returns the last parameter, or the empty string when the
// message has none.
func (m *Message) Trailing() string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// String renders the message in wire format, without the trailing CRLF.
// The transport's line codec appends the terminator.
func (m *Message) String() string {
	var sb strings.Builder
	if len(m.Tags) > 0 {
		sb.WriteByte('@')
		first := true
		for k, v := range m.Tags {
			if !first {
				sb.WriteByte(';')
			}
			first = false
			sb.WriteString(k)
			if v != "" {
				sb.WriteByte('=')
				sb.WriteString(v)
			}
		}
		sb.WriteByte(' ')
	}
	if m.Prefix != "" {
		sb.WriteByte(':')
		sb.WriteString(m.Prefix)
		sb.WriteByte(' ')
	}
	sb.WriteString(m.Command)
	for i, p := range m.Params {
		sb.WriteByte(' ')
		if i == len(m.Params)-1 && needsTrailing(p) {
			sb.WriteByte(':')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// needsTrailing reports whether a final parameter must be sent as a
// trailing parameter: empty, containing a space, or starting with a colon.
func needsTrailing(p string) bool {
	return p == "" || strings.ContainsRune(p, ' ') || strings.HasPrefix(p, ":")
}

// ParseMessage parses a single wire line into a [Message]. The trailing
// CRLF may be present or absent. On failure it returns an
// [*InvalidMessageError] carrying the unparsed input and the detailed
// cause.
func ParseMessage(raw string) (*Message, error) {
	rest := strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(rest) == "" {
		return nil, &InvalidMessageError{Raw: raw, Cause: &EmptyMessageError{}}
	}

	m := &Message{}

	if strings.HasPrefix(rest, "@") {
		cut, remainder, found := strings.Cut(rest[1:], " ")
		if !found {
			return nil, &InvalidMessageError{Raw: raw, Cause: &MissingCommandError{}}
		}
		m.Tags = parseTags(cut)
		rest = strings.TrimLeft(remainder, " ")
	}

	if strings.HasPrefix(rest, ":") {
		cut, remainder, found := strings.Cut(rest[1:], " ")
		if !found {
			return nil, &InvalidMessageError{Raw: raw, Cause: &MissingCommandError{}}
		}
		m.Prefix = cut
		rest = strings.TrimLeft(remainder, " ")
	}

	if rest == "" {
		return nil, &InvalidMessageError{Raw: raw, Cause: &MissingCommandError{}}
	}

	command, remainder, found := strings.Cut(rest, " ")
	m.Command = command
	if !found {
		return m, nil
	}

	rest = remainder
	for rest != "" {
		if strings.HasPrefix(rest, ":") {
			m.Params = append(m.Params, rest[1:])
			break
		}
		param, remainder, found := strings.Cut(rest, " ")
		if param != "" {
			m.Params = append(m.Params, param)
		}
		if !found {
			break
		}
		rest = remainder
	}

	return m, nil
}

// parseTags splits the raw tag segment into a key/value map. Values are
// kept raw; a tag without '=' maps to the empty string.
func parseTags(raw string) map[string]string {
	tags := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		tags[k] = v
	}
	return tags
}
