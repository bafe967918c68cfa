// Package transport provides the byte-stream layer of the irc library:
// plain TCP and TLS dialing, line-framed message connections over a text
// codec, and an optional mutex-guarded traffic log.
//
// Every failure crossing this package's boundary is converted into the
// unified taxonomy: byte-stream failures as IOError, TLS setup and
// handshake failures as TLSError, undecodable wire data as CodecFailed,
// and unparseable messages as InvalidMessage with the raw line preserved.
package transport

import (
	"context"
	"crypto/tls"
	"net"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// tracerName is the OpenTelemetry instrumentation scope name for this
// package. It follows the Go module path convention for OTel
// instrumentation libraries.
const tracerName = "github.com/topaxi/irc/pkg/transport"

// Dial opens a plain TCP connection to addr (host:port). Failures are
// byte-stream failures.
func Dial(ctx context.Context, addr string) (net.Conn, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "transport.Dial",
		trace.WithAttributes(attribute.String("server.address", addr)))
	defer span.End()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dial failed")
		return nil, ircerr.WrapIO(err)
	}
	return conn, nil
}

// DialTLS opens a TLS connection to addr (host:port) and completes the
// handshake before returning. The TCP dial is a byte-stream failure; TLS
// configuration and handshake failures are secure-transport failures.
// A nil tlsCfg uses defaults with the server name taken from addr.
func DialTLS(ctx context.Context, addr string, tlsCfg *tls.Config) (net.Conn, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "transport.DialTLS",
		trace.WithAttributes(attribute.String("server.address", addr)))
	defer span.End()

	var d net.Dialer
	raw, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dial failed")
		return nil, ircerr.WrapIO(err)
	}

	if tlsCfg == nil {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		tlsCfg = &tls.Config{ServerName: host}
	}

	conn := tls.Client(raw, tlsCfg)
	if err := conn.HandshakeContext(ctx); err != nil {
		raw.Close()
		span.RecordError(err)
		span.SetStatus(codes.Error, "TLS handshake failed")
		return nil, ircerr.WrapTLS(err)
	}
	return conn, nil
}
