package client

import (
	"github.com/topaxi/irc/internal/signal"
	ircerr "github.com/topaxi/irc/pkg/errors"
	"github.com/topaxi/irc/pkg/proto"
)

// Stream delivers incoming messages in arrival order. A Stream is claimed
// exactly once via [Client.Stream].
//
// When the connection terminates, Next returns the terminal failure that
// ended it — a ping timeout, nickname exhaustion, an I/O failure — or, for
// a clean quit, the closed-channel condition of the drained stream.
type Stream struct {
	c *Client
	r *signal.Receiver[*proto.Message]
}

// Next blocks until the next message arrives. After the connection ends
// and buffered messages are drained, Next returns the terminal failure.
func (s *Stream) Next() (*proto.Message, error) {
	msg, err := s.r.Recv()
	if err == nil {
		return msg, nil
	}
	if terminal := s.c.terminalErr(); terminal != nil {
		return nil, terminal
	}
	return nil, ircerr.From(err)
}

// Close abandons the stream. The read loop terminates the connection once
// it can no longer deliver.
func (s *Stream) Close() {
	s.r.Close()
}
