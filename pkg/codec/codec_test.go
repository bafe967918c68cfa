package codec

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
	}{
		{"UTF-8"},
		{"utf-8"},
		{"ISO-8859-1"},
		{"US-ASCII"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.NotEmpty(t, c.Name())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	_, err := Lookup("KLINGON-8")

	var unknown *ircerr.UnknownCodecError
	require.True(t, stderrors.As(err, &unknown))
	assert.Equal(t, "KLINGON-8", unknown.Codec)
	assert.Equal(t, "unknown codec: KLINGON-8", unknown.Error())
}

func TestEncodeDecodeLine_UTF8(t *testing.T) {
	t.Parallel()
	c, err := Lookup("UTF-8")
	require.NoError(t, err)

	data, err := c.EncodeLine("PRIVMSG #go :héllo")
	require.NoError(t, err)
	assert.Equal(t, []byte("PRIVMSG #go :héllo\r\n"), data)

	line, err := c.DecodeLine(data)
	require.NoError(t, err)
	assert.Equal(t, "PRIVMSG #go :héllo", line)
}

func TestEncodeDecodeLine_Latin1(t *testing.T) {
	t.Parallel()
	c, err := Lookup("ISO-8859-1")
	require.NoError(t, err)

	data, err := c.EncodeLine("café")
	require.NoError(t, err)
	// é is a single byte 0xE9 in Latin-1.
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, '\r', '\n'}, data)

	line, err := c.DecodeLine(data)
	require.NoError(t, err)
	assert.Equal(t, "café", line)
}

func TestEncodeLine_UnrepresentableData(t *testing.T) {
	t.Parallel()
	c, err := Lookup("ISO-8859-1")
	require.NoError(t, err)

	// Snowman is not representable in Latin-1.
	_, err = c.EncodeLine("PRIVMSG #go :☃")

	var failed *ircerr.CodecFailedError
	require.True(t, stderrors.As(err, &failed))
	assert.Equal(t, c.Name(), failed.Codec)
	// The offending data is carried verbatim.
	assert.Equal(t, "PRIVMSG #go :☃", failed.Data)
}
