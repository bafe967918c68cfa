package transport

import (
	"context"
	stderrors "errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

func TestDial(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan struct{})
	go func() {
		if c, err := ln.Accept(); err == nil {
			c.Close()
		}
		close(accepted)
	}()

	conn, err := Dial(context.Background(), ln.Addr().String())
	require.NoError(t, err)
	conn.Close()
	<-accepted
}

func TestDial_RefusedIsIOFailure(t *testing.T) {
	t.Parallel()
	// Grab a free port and close the listener so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Dial(context.Background(), addr)
	var ioErr *ircerr.IOError
	require.True(t, stderrors.As(err, &ioErr))
	assert.Equal(t, ircerr.CodeIO, ioErr.Code())
}

func TestDialTLS_NonTLSPeerIsTLSFailure(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		// Plain-text reply; the handshake cannot complete against it.
		c.Write([]byte("NOTICE * :not tls\r\n"))
		c.Close()
	}()

	_, err = DialTLS(context.Background(), ln.Addr().String(), nil)
	var tlsErr *ircerr.TLSError
	require.True(t, stderrors.As(err, &tlsErr))
	assert.Equal(t, ircerr.CodeTLS, tlsErr.Code())
}

func TestDialTLS_RefusedIsIOFailure(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = DialTLS(context.Background(), addr, nil)
	var ioErr *ircerr.IOError
	assert.True(t, stderrors.As(err, &ioErr))
}
