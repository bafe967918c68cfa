package transport

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

type panickingSink struct{}

func (panickingSink) Write([]byte) (int, error) { panic("sink blew up") }

type failingSink struct{}

func (failingSink) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

func TestLogged_RecordAndView(t *testing.T) {
	t.Parallel()
	var sink strings.Builder
	logged := NewLogged(&sink)

	require.NoError(t, logged.Record("<< PING :token"))
	require.NoError(t, logged.Record(">> PONG :token"))

	view, err := logged.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"<< PING :token", ">> PONG :token"}, view)
	assert.Equal(t, "<< PING :token\n>> PONG :token\n", sink.String())

	// The view is a copy; mutating it must not touch the log.
	view[0] = "tampered"
	again, err := logged.View()
	require.NoError(t, err)
	assert.Equal(t, "<< PING :token", again[0])
}

func TestLogged_SinkPanicPoisonsPermanently(t *testing.T) {
	t.Parallel()
	logged := NewLogged(panickingSink{})

	err := logged.Record("<< NOTICE * :hi")
	var poisoned *ircerr.PoisonedLogError
	require.True(t, stderrors.As(err, &poisoned))
	assert.Equal(t, ircerr.CodePoisonedLog, poisoned.Code())

	// Every later access fails the same way, even ones that would not
	// touch the sink.
	_, err = logged.View()
	assert.True(t, stderrors.As(err, &poisoned))

	err = logged.Record("<< PING :again")
	assert.True(t, stderrors.As(err, &poisoned))
}

func TestLogged_SinkWriteErrorDoesNotPoison(t *testing.T) {
	t.Parallel()
	logged := NewLogged(failingSink{})

	err := logged.Record("<< PING :token")
	var ioErr *ircerr.IOError
	require.True(t, stderrors.As(err, &ioErr))

	view, err := logged.View()
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestLogged_NilSink(t *testing.T) {
	t.Parallel()
	logged := NewLogged(nil)
	require.NoError(t, logged.Record("<< PING :token"))

	view, err := logged.View()
	require.NoError(t, err)
	assert.Len(t, view, 1)
}
