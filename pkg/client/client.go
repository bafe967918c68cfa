// Package client implements the IRC client: connection setup, nickname
// negotiation, liveness monitoring, and the message stream. Every failure
// it produces or propagates is a variant of the unified taxonomy in
// pkg/errors; the client never retries or reconnects — classifying a
// failure as recoverable is the caller's decision.
package client

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/topaxi/irc/internal/signal"
	"github.com/topaxi/irc/pkg/codec"
	"github.com/topaxi/irc/pkg/config"
	ircerr "github.com/topaxi/irc/pkg/errors"
	"github.com/topaxi/irc/pkg/proto"
	"github.com/topaxi/irc/pkg/transport"
)

// tracerName is the OpenTelemetry instrumentation scope name for this
// package. It follows the Go module path convention for OTel
// instrumentation libraries.
const tracerName = "github.com/topaxi/irc/pkg/client"

// Numeric replies relevant to registration and nickname negotiation.
const (
	rplWelcome         = "001"
	errErroneousNick   = "432"
	errNicknameInUse   = "433"
	errNicknameCollide = "436"
)

// outgoingBuffer is the capacity of the outgoing message channel.
const outgoingBuffer = 64

// ErrSendBufferFull is returned by [Client.TrySend] while the outgoing
// buffer is full. The receiver is still alive; the condition is transient
// and the send may be retried.
var ErrSendBufferFull = signal.ErrFull

// Client is an IRC client for a single connection. Create one with [New],
// establish the connection with [Client.Connect], and consume incoming
// messages through the one-time [Client.Stream].
//
// All methods are safe for concurrent use.
type Client struct {
	cfg    *config.Config
	cdc    *codec.Codec
	logger *slog.Logger
	logged *transport.Logged
	tlsCfg *tls.Config
	dialer func(ctx context.Context) (net.Conn, error)

	conn *transport.Conn

	// outgoing: Send enqueues, the write loop drains.
	sender   *signal.Sender[*proto.Message]
	outgoing *signal.Receiver[*proto.Message]

	// incoming: the read loop enqueues, the stream drains.
	incoming *signal.Sender[*proto.Message]
	stream   *Stream

	// registered fires once with the confirmed nickname, or is dropped
	// when the connection terminates before registration completes.
	registered   *signal.OneshotSender[string]
	registeredRx *signal.OneshotReceiver[string]

	streamClaimed atomic.Bool
	pong          chan struct{}
	quit          chan struct{}
	quitOnce      sync.Once

	mu          sync.Mutex
	state       State
	currentNick string
	nickIdx     int
	pingToken   string
	terminal    ircerr.Error
}

// Option configures a [Client].
type Option func(*Client)

// WithLogger attaches a structured logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithLogged mirrors all wire traffic into the given transport log.
func WithLogged(l *transport.Logged) Option {
	return func(c *Client) { c.logged = l }
}

// WithTLSConfig overrides the TLS configuration used when the
// configuration enables TLS.
func WithTLSConfig(tlsCfg *tls.Config) Option {
	return func(c *Client) { c.tlsCfg = tlsCfg }
}

// WithDialer replaces the transport dialer. The returned connection is
// used as-is; no TLS is layered on top.
func WithDialer(dialer func(ctx context.Context) (net.Conn, error)) Option {
	return func(c *Client) { c.dialer = dialer }
}

// New creates a client for the given configuration. The configuration is
// validated semantically and the configured wire codec is resolved; both
// failures surface as taxonomy variants.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cdc, err := codec.Lookup(cfg.EncodingOrDefault())
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		cdc:    cdc,
		logger: slog.Default(),
		state:  StateDisconnected,
		pong:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}
	c.sender, c.outgoing = signal.Pipe[*proto.Message](outgoingBuffer)
	incoming, streamRx := signal.Pipe[*proto.Message](outgoingBuffer)
	c.incoming = incoming
	c.stream = &Stream{c: c, r: streamRx}
	c.registered, c.registeredRx = signal.Oneshot[string]()

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentNickname returns the nickname most recently offered to or
// confirmed by the server.
func (c *Client) CurrentNickname() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentNick
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	old := c.state
	c.state = s
	c.mu.Unlock()
	if old != s {
		c.logger.Debug("state changed", "from", old.String(), "to", s.String())
	}
}

// Connect dials the configured server, sends registration, and starts the
// read, write, and liveness loops. Connect does not wait for registration
// to complete; use [Client.WaitRegistered] for that. Negotiation and
// connection failures after Connect returns are delivered through the
// stream.
func (c *Client) Connect(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "client.Connect",
		trace.WithAttributes(
			attribute.String("server.address", c.cfg.Address()),
			attribute.Bool("tls.enabled", c.cfg.UseTLS),
		))
	defer span.End()

	c.setState(StateConnecting)

	nc, err := c.dial(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "connect failed")
		// Release registration waiters and stream consumers too; claiming
		// the stream before connecting is a supported pattern.
		c.terminate(ircerr.From(err))
		return err
	}

	connOpts := []transport.ConnOption{transport.WithLogger(c.logger)}
	if c.logged != nil {
		connOpts = append(connOpts, transport.WithLogged(c.logged))
	}
	c.conn = transport.NewConn(nc, c.cdc, connOpts...)

	c.setState(StateRegistering)
	if err := c.register(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "registration send failed")
		c.terminate(ircerr.From(err))
		return err
	}

	go c.readLoop()
	go c.writeLoop()
	go c.pinger()
	return nil
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	if c.dialer != nil {
		return c.dialer(ctx)
	}
	if c.cfg.UseTLS {
		return transport.DialTLS(ctx, c.cfg.Address(), c.tlsCfg)
	}
	return transport.Dial(ctx, c.cfg.Address())
}

// register writes the initial PASS/NICK/USER sequence directly, before
// the write loop starts.
func (c *Client) register() error {
	nick := c.cfg.NickCandidates()[0]
	c.mu.Lock()
	c.currentNick = nick
	c.nickIdx = 0
	c.mu.Unlock()

	if c.cfg.Password != "" {
		if err := c.conn.WriteMessage(proto.New("PASS", c.cfg.Password)); err != nil {
			return err
		}
	}
	if err := c.conn.WriteMessage(proto.New("NICK", nick)); err != nil {
		return err
	}
	return c.conn.WriteMessage(proto.New("USER",
		c.cfg.UsernameOrDefault(), "0", "*", c.cfg.RealnameOrDefault()))
}

// Stream claims the incoming message stream. The stream can be configured
// exactly once; a second call fails with StreamAlreadyConfigured.
func (c *Client) Stream() (*Stream, error) {
	if !c.streamClaimed.CompareAndSwap(false, true) {
		return nil, &ircerr.StreamAlreadyConfiguredError{}
	}
	return c.stream, nil
}

// WaitRegistered blocks until the server confirms registration and
// returns the confirmed nickname. If the connection terminates first, the
// completion signal is dropped and WaitRegistered fails with
// OneShotCanceled.
func (c *Client) WaitRegistered() (string, error) {
	nick, err := c.registeredRx.Await()
	if err != nil {
		return "", ircerr.From(err)
	}
	return nick, nil
}

// Send enqueues a message for delivery, blocking while the outgoing
// buffer is full. Fails with AsyncChannelClosed once the connection has
// terminated.
func (c *Client) Send(m *proto.Message) error {
	if err := c.sender.Send(m); err != nil {
		return ircerr.From(err)
	}
	return nil
}

// TrySend enqueues a message without blocking. Fails with
// AsyncChannelClosed once the connection has terminated — the unsent
// message is discarded, only the closed-channel cause is reported — or
// with [ErrSendBufferFull] while the outgoing buffer is full.
func (c *Client) TrySend(m *proto.Message) error {
	if err := c.sender.TrySend(m); err != nil {
		if err == ErrSendBufferFull {
			return err
		}
		return ircerr.From(err)
	}
	return nil
}

// Quit sends QUIT with the given message and terminates the connection
// cleanly. Safe to call before Connect; it then only tears the client
// down.
func (c *Client) Quit(message string) error {
	var err error
	if c.conn != nil {
		err = c.conn.WriteMessage(proto.New("QUIT", message))
	}
	c.terminate(nil)
	return err
}

// terminate ends the connection exactly once, recording the terminal
// failure (nil for a clean quit) and releasing every party blocked on the
// client: stream consumers, senders, registration waiters, and the
// internal loops.
func (c *Client) terminate(terminal ircerr.Error) {
	c.quitOnce.Do(func() {
		c.mu.Lock()
		c.terminal = terminal
		c.mu.Unlock()
		c.setState(StateQuit)

		close(c.quit)
		c.registered.Drop()
		c.incoming.Close()
		c.sender.Close()
		c.outgoing.Close()
		if c.conn != nil {
			c.conn.Close()
		}
		if terminal != nil {
			c.logger.Error("connection terminated",
				"code", terminal.Code(), "err", terminal)
		}
	})
}

// terminalErr returns the recorded terminal failure, if any.
func (c *Client) terminalErr() ircerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminal
}

func (c *Client) quitting() bool {
	select {
	case <-c.quit:
		return true
	default:
		return false
	}
}

// readLoop reads messages until the connection ends, handling protocol
// bookkeeping and forwarding each message to the stream.
func (c *Client) readLoop() {
	for {
		msg, err := c.conn.ReadMessage()
		if err != nil {
			if !c.quitting() {
				c.terminate(ircerr.From(err))
			}
			return
		}
		if done := c.handle(msg); done {
			return
		}
		if err := c.incoming.Send(msg); err != nil {
			// The stream consumer went away; nothing left to deliver to.
			c.terminate(ircerr.From(err))
			return
		}
	}
}

// handle performs protocol bookkeeping for a received message and reports
// whether the connection terminated as a result.
func (c *Client) handle(msg *proto.Message) bool {
	switch msg.Command {
	case "PING":
		if err := c.Send(proto.New("PONG", msg.Trailing())); err != nil {
			c.terminate(ircerr.From(err))
			return true
		}
	case "PONG":
		c.mu.Lock()
		matched := c.pingToken != "" && msg.Trailing() == c.pingToken
		if matched {
			c.pingToken = ""
		}
		c.mu.Unlock()
		if matched {
			select {
			case c.pong <- struct{}{}:
			default:
			}
		}
	case rplWelcome:
		c.confirmRegistration(msg)
	case errErroneousNick, errNicknameInUse, errNicknameCollide:
		c.mu.Lock()
		registering := c.state == StateRegistering
		c.mu.Unlock()
		if registering {
			return c.advanceNick()
		}
	}
	return false
}

// confirmRegistration records the server-confirmed nickname, fires the
// registration signal, and joins the configured channels.
func (c *Client) confirmRegistration(msg *proto.Message) {
	nick := msg.Param(0)
	c.mu.Lock()
	if nick == "" {
		nick = c.currentNick
	}
	c.currentNick = nick
	c.mu.Unlock()

	c.setState(StateConnected)
	c.registered.Complete(nick)
	c.logger.Info("registered", "nick", nick)

	for _, ch := range c.cfg.Channels {
		if err := c.Send(proto.New("JOIN", ch)); err != nil {
			c.terminate(ircerr.From(err))
			return
		}
	}
}

// advanceNick offers the next candidate nickname, terminating with
// NoUsableNick once the configured list is exhausted. Reports whether the
// connection terminated.
func (c *Client) advanceNick() bool {
	candidates := c.cfg.NickCandidates()

	c.mu.Lock()
	c.nickIdx++
	idx := c.nickIdx
	if idx < len(candidates) {
		c.currentNick = candidates[idx]
	}
	c.mu.Unlock()

	if idx >= len(candidates) {
		c.terminate(&ircerr.NoUsableNickError{})
		return true
	}

	c.logger.Debug("nickname rejected, trying next", "nick", candidates[idx])
	if err := c.Send(proto.New("NICK", candidates[idx])); err != nil {
		c.terminate(ircerr.From(err))
		return true
	}
	return false
}

// writeLoop drains the outgoing channel onto the connection.
func (c *Client) writeLoop() {
	for {
		msg, err := c.outgoing.Recv()
		if err != nil {
			// Sender side closed during termination.
			return
		}
		if err := c.conn.WriteMessage(msg); err != nil {
			if !c.quitting() {
				c.terminate(ircerr.From(err))
			}
			return
		}
	}
}

// pinger probes liveness every PingTime and terminates the connection
// with PingTimeout when no response arrives within PingTimeout. Each
// probe carries a UUID token and only a PONG echoing that token counts;
// stale and unrelated PONGs are ignored.
func (c *Client) pinger() {
	ticker := time.NewTicker(c.cfg.PingTimeOrDefault())
	defer ticker.Stop()

	for {
		select {
		case <-c.quit:
			return
		case <-ticker.C:
		}

		token := uuid.NewString()
		c.mu.Lock()
		c.pingToken = token
		c.mu.Unlock()
		if err := c.Send(proto.New("PING", token)); err != nil {
			if !c.quitting() {
				c.terminate(ircerr.From(err))
			}
			return
		}

		timeout := time.NewTimer(c.cfg.PingTimeoutOrDefault())
		select {
		case <-c.quit:
			timeout.Stop()
			return
		case <-c.pong:
			timeout.Stop()
		case <-timeout.C:
			c.terminate(&ircerr.PingTimeoutError{})
			return
		}
	}
}
