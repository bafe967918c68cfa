package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Category(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code Code
		want string
	}{
		{CodeIO, "TRANSPORT"},
		{CodeTLS, "TRANSPORT"},
		{CodeSyncChannelClosed, "SIGNAL"},
		{CodeAsyncChannelClosed, "SIGNAL"},
		{CodeOneShotCanceled, "SIGNAL"},
		{CodeInvalidConfig, "CONFIG"},
		{CodeInvalidMessage, "PROTO"},
		{CodePoisonedLog, "STATE"},
		{CodeStreamAlreadyConfigured, "STATE"},
		{CodePingTimeout, "NEGO"},
		{CodeNoUsableNick, "NEGO"},
		{CodeUnknownCodec, "CODEC"},
		{CodeCodecFailed, "CODEC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.code.Category())
			assert.Equal(t, string(tt.code), tt.code.String())
		})
	}
}

func TestAsError(t *testing.T) {
	t.Parallel()

	t.Run("direct variant", func(t *testing.T) {
		t.Parallel()
		orig := &NoUsableNickError{}
		e, ok := AsError(orig)
		require.True(t, ok)
		assert.Same(t, orig, e)
	})

	t.Run("wrapped variant", func(t *testing.T) {
		t.Parallel()
		orig := &PoisonedLogError{}
		wrapped := fmt.Errorf("while snapshotting: %w", orig)
		e, ok := AsError(wrapped)
		require.True(t, ok)
		assert.Same(t, orig, e)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		e, ok := AsError(stderrors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, e)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		e, ok := AsError(nil)
		assert.False(t, ok)
		assert.Nil(t, e)
	})
}

func TestAsConfigError(t *testing.T) {
	t.Parallel()

	t.Run("inside invalid config", func(t *testing.T) {
		t.Parallel()
		cause := &MissingExtensionError{}
		top := NewInvalidConfig("bot", cause)
		ce, ok := AsConfigError(top)
		require.True(t, ok)
		assert.Same(t, cause, ce)
	})

	t.Run("bare", func(t *testing.T) {
		t.Parallel()
		cause := &ServerNotSpecifiedError{}
		ce, ok := AsConfigError(cause)
		require.True(t, ok)
		assert.Same(t, cause, ce)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := AsConfigError(&PingTimeoutError{})
		assert.False(t, ok)
	})
}

func TestCodeOfAndHasCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, Code(""), CodeOf(stderrors.New("plain")))
	assert.Equal(t, CodePingTimeout, CodeOf(&PingTimeoutError{}))
	assert.True(t, HasCode(&NoUsableNickError{}, CodeNoUsableNick))
	assert.False(t, HasCode(&NoUsableNickError{}, CodePingTimeout))
}

func TestCategoryPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"transport io", &IOError{}, IsTransport},
		{"transport tls", &TLSError{}, IsTransport},
		{"signal sync", &SyncChannelClosedError{}, IsSignal},
		{"signal async", &AsyncChannelClosedError{}, IsSignal},
		{"signal oneshot", &OneShotCanceledError{}, IsSignal},
		{"config", &InvalidConfigError{}, IsConfig},
		{"protocol", &InvalidMessageError{}, IsProtocol},
		{"state poisoned", &PoisonedLogError{}, IsState},
		{"state stream", &StreamAlreadyConfiguredError{}, IsState},
		{"negotiation ping", &PingTimeoutError{}, IsNegotiation},
		{"negotiation nick", &NoUsableNickError{}, IsNegotiation},
		{"codec unknown", &UnknownCodecError{}, IsCodec},
		{"codec failed", &CodecFailedError{}, IsCodec},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(stderrors.New("plain")))
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Chain(nil))
	})

	t.Run("ordered outermost first", func(t *testing.T) {
		t.Parallel()
		innermost := stderrors.New("root cause")
		mid := &TOMLError{Op: TOMLRead, Cause: innermost}
		cfg := &InvalidTOMLError{Cause: mid}
		top := NewInvalidConfig("bot.toml", cfg)

		got := Chain(top)
		require.Len(t, got, 4)
		assert.Same(t, top, got[0])
		assert.Same(t, cfg, got[1])
		assert.Same(t, mid, got[2])
		assert.Same(t, innermost, got[3])
	})
}
