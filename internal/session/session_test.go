package session

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFileIsAnonymous(t *testing.T) {
	m, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.False(t, m.Authenticated())

	_, ok := m.Token()
	assert.False(t, ok)
}

func TestEstablish_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, m.Establish("tok-123", "alice"))

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.True(t, reopened.Authenticated())
	assert.Equal(t, "alice", reopened.Username())

	token, ok := reopened.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
}

func TestEstablish_RejectsEmptyToken(t *testing.T) {
	m, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, m.Establish("", "alice"))
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, m.Establish("tok-123", "alice"))

	require.NoError(t, m.Clear())
	assert.False(t, m.Authenticated())
	_, err = os.Stat(filepath.Join(dir, fileName))
	assert.True(t, os.IsNotExist(err))

	// Clearing again is a no-op.
	require.NoError(t, m.Clear())
}

func TestAuthorize(t *testing.T) {
	m, err := Open(t.TempDir())
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.test/api/cards", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Authorize(req), ErrNotAuthenticated)

	require.NoError(t, m.Establish("tok-123", "alice"))
	require.NoError(t, m.Authorize(req))
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
}
