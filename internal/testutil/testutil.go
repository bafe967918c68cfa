// Package testutil provides shared test helpers for the irc library.
//
// All helpers accept [testing.TB] for compatibility with both tests and
// benchmarks. Functions that halt the test on failure use [require] from
// testify; functions that record failures without stopping use [assert].
//
// Every helper calls t.Helper() so that test failure messages report the
// caller's file and line number rather than this package's.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ircerr "github.com/topaxi/irc/pkg/errors"
)

// RequireNoError halts the test immediately if err is non-nil.
// Use this for preconditions whose failure makes continuing meaningless.
func RequireNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// RequireError halts the test immediately if err is nil.
// Use this when an error is expected and subsequent assertions depend on it.
func RequireError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

// RequireErrorCode halts the test if err is nil, carries no taxonomy
// variant, or does not carry the expected code. This is the primary
// helper for validating library failures.
//
// Example:
//
//	_, err := config.Load("bot.ini")
//	testutil.RequireErrorCode(t, err, ircerr.CodeInvalidConfig)
func RequireErrorCode(t testing.TB, err error, code ircerr.Code, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	e, ok := ircerr.AsError(err)
	require.True(t, ok, "expected a taxonomy variant, got %T: %v", err, err)
	require.Equal(t, code, e.Code(),
		"error code mismatch: got %q, want %q (message: %s)",
		e.Code(), code, e.Error())
}

// AssertErrorCode records a test failure (without halting) if err is nil,
// carries no taxonomy variant, or does not carry the expected code.
// Use this in table-driven tests where you want to check all rows.
func AssertErrorCode(t testing.TB, err error, code ircerr.Code, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	e, ok := ircerr.AsError(err)
	if !assert.True(t, ok, "expected a taxonomy variant, got %T: %v", err, err) {
		return false
	}
	return assert.Equal(t, code, e.Code(),
		"error code mismatch: got %q, want %q (message: %s)",
		e.Code(), code, e.Error())
}

// TempConfigFile creates a temporary file with the given content and
// extension (e.g., ".toml", ".json") inside t.TempDir(). The file is
// automatically cleaned up when the test finishes.
func TempConfigFile(t testing.TB, content, ext string) string {
	t.Helper()
	dir := t.TempDir()
	name := "config" + ext
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp config file %s", path)
	return path
}

// TempFile creates a temporary file with the given name and content
// inside t.TempDir(). The file is automatically cleaned up when the
// test finishes.
func TempFile(t testing.TB, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp file %s", path)
	return path
}

// MinimalTOMLConfig is a syntactically and semantically valid TOML
// configuration document for tests that need one.
const MinimalTOMLConfig = "nickname = \"test\"\nserver = \"irc.example.com\"\n"

// MinimalJSONConfig is a syntactically and semantically valid JSON
// configuration document for tests that need one.
const MinimalJSONConfig = `{"nickname": "test", "server": "irc.example.com"}`

// MinimalYAMLConfig is a syntactically and semantically valid YAML
// configuration document for tests that need one.
const MinimalYAMLConfig = "nickname: test\nserver: irc.example.com\n"
