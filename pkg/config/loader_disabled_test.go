//go:build irc_noyaml

package config

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topaxi/irc/internal/testutil"
	ircerr "github.com/topaxi/irc/pkg/errors"
)

// In a build without YAML support, a document identified as YAML fails
// with FormatDisabled without its content ever reaching a parser.
func TestLoad_YAMLDisabled(t *testing.T) {
	t.Parallel()
	// Valid YAML: proves the failure comes from the build configuration,
	// not from the document.
	path := testutil.TempConfigFile(t, testutil.MinimalYAMLConfig, ".yaml")

	_, err := Load(path)
	var invalid *ircerr.InvalidConfigError
	require.True(t, stderrors.As(err, &invalid))
	assert.Equal(t, path, invalid.Path)

	var disabled *ircerr.FormatDisabledError
	require.True(t, stderrors.As(err, &disabled))
	assert.Equal(t, "yaml", disabled.Format)
	assert.Equal(t, "config format disabled: yaml", disabled.Error())
}
