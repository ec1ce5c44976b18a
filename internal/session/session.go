// Package session owns the authentication token lifecycle for a vault.
// The session is either Anonymous or Authenticated; no remote operation
// is permitted without it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// ErrNotAuthenticated is returned when an operation needs a session and
// none is established.
var ErrNotAuthenticated = errors.New("not logged in")

// fileName is the persisted session inside the vault directory. The
// file is absent while Anonymous.
const fileName = "session.json"

// Manager holds the current token. The token is opaque: it is carried
// on outgoing requests and never inspected locally.
type Manager struct {
	dir      string
	token    string
	username string
}

type persisted struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Open loads any persisted session from a vault directory. A missing
// session file means Anonymous.
func Open(dir string) (*Manager, error) {
	m := &Manager{dir: dir}
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	m.token = p.Token
	m.username = p.Username
	return m, nil
}

// Authenticated reports whether a token is held.
func (m *Manager) Authenticated() bool {
	return m.token != ""
}

// Token returns the current token and whether one is held.
func (m *Manager) Token() (string, bool) {
	return m.token, m.token != ""
}

// Username returns the account name the session was established for.
func (m *Manager) Username() string {
	return m.username
}

// Establish transitions to Authenticated with a fresh token and
// persists it. Any previous token is discarded.
func (m *Manager) Establish(token, username string) error {
	if token == "" {
		return errors.New("establishing session with empty token")
	}
	m.token = token
	m.username = username

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("creating vault dir: %w", err)
	}
	data, err := json.Marshal(persisted{Token: token, Username: username})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, fileName), data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear transitions back to Anonymous and removes the persisted token.
// Clearing an Anonymous session is a no-op.
func (m *Manager) Clear() error {
	m.token = ""
	m.username = ""
	err := os.Remove(filepath.Join(m.dir, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// Authorize decorates an outgoing request with the bearer token.
// Calling it while Anonymous is a programming error in the caller; the
// sync engine checks the session before building any request.
func (m *Manager) Authorize(req *http.Request) error {
	if m.token == "" {
		return ErrNotAuthenticated
	}
	req.Header.Set("Authorization", "Bearer "+m.token)
	return nil
}
