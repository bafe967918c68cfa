package transport

import (
	"bufio"
	"log/slog"
	"net"
	"sync"

	"github.com/topaxi/irc/pkg/codec"
	ircerr "github.com/topaxi/irc/pkg/errors"
	"github.com/topaxi/irc/pkg/proto"
)

// Conn is a line-framed protocol connection over a byte stream. Reads and
// writes pass through the connection's text codec; failures convert into
// the taxonomy at this boundary.
//
// ReadMessage and WriteMessage may be used concurrently with each other;
// concurrent writers are serialized internally.
type Conn struct {
	nc     net.Conn
	r      *bufio.Reader
	codec  *codec.Codec
	logged *Logged
	logger *slog.Logger

	wmu sync.Mutex
}

// ConnOption configures a [Conn].
type ConnOption func(*Conn)

// WithLogger attaches a structured logger for wire-level debug logging.
func WithLogger(logger *slog.Logger) ConnOption {
	return func(c *Conn) { c.logger = logger }
}

// WithLogged mirrors all traffic into the given log. Once the log is
// poisoned, reads and writes fail with PoisonedLog.
func WithLogged(l *Logged) ConnOption {
	return func(c *Conn) { c.logged = l }
}

// NewConn wraps an established byte stream into a protocol connection
// using the given codec.
func NewConn(nc net.Conn, cdc *codec.Codec, opts ...ConnOption) *Conn {
	c := &Conn{
		nc:     nc,
		r:      bufio.NewReader(nc),
		codec:  cdc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadMessage reads and parses the next message from the stream.
//
// Byte-stream failures surface as IOError, undecodable data as
// CodecFailed, and an unparseable line as InvalidMessage carrying the raw
// line and the parse cause.
func (c *Conn) ReadMessage() (*proto.Message, error) {
	raw, err := c.r.ReadBytes('\n')
	if err != nil {
		return nil, ircerr.WrapIO(err)
	}

	line, err := c.codec.DecodeLine(raw)
	if err != nil {
		return nil, err
	}

	if c.logged != nil {
		if lerr := c.logged.Record("<< " + line); lerr != nil {
			return nil, lerr
		}
	}
	c.logger.Debug("received", "line", line)

	msg, err := proto.ParseMessage(line)
	if err != nil {
		return nil, ircerr.From(err)
	}
	return msg, nil
}

// WriteMessage encodes and writes a message to the stream.
func (c *Conn) WriteMessage(m *proto.Message) error {
	line := m.String()
	data, err := c.codec.EncodeLine(line)
	if err != nil {
		return err
	}

	if c.logged != nil {
		if lerr := c.logged.Record(">> " + line); lerr != nil {
			return lerr
		}
	}
	c.logger.Debug("sent", "line", line)

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if _, err := c.nc.Write(data); err != nil {
		return ircerr.WrapIO(err)
	}
	return nil
}

// Close closes the underlying byte stream.
func (c *Conn) Close() error {
	return ircerr.WrapIO(c.nc.Close())
}
