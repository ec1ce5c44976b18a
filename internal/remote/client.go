// Package remote talks to the account store: authentication and the
// push/pull card sync operations. Every call is all-or-nothing; a
// failure surfaces exactly one error and mutates nothing locally.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cardvault-dev/cardvault/internal/session"
)

const (
	authPath  = "/api/auth"
	cardsPath = "/api/cards"
)

// Client is the HTTP client for the remote account store. It reads the
// session token but never mutates the session except to clear it on a
// token rejection.
type Client struct {
	baseURL string
	device  string
	httpc   *http.Client
	session *session.Manager
	log     *logrus.Logger
}

// New creates a Client. The device name identifies this installation
// on the auth endpoint.
func New(baseURL, device string, sess *session.Manager, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		device:  device,
		httpc:   &http.Client{},
		session: sess,
		log:     log,
	}
}

// do performs one JSON request/response exchange. When authorized is
// set the bearer token is attached, and an HTTP 401/403 clears the
// session before returning an AuthError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, authorized bool) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &TransportError{Op: "encoding request", Err: err}
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		if err := c.session.Authorize(req); err != nil {
			return err
		}
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("remote call")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Op: "calling server", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// The token was rejected; the session is over.
		if err := c.session.Clear(); err != nil {
			c.log.WithError(err).Warn("clearing rejected session")
		}
		return &AuthError{Message: "session expired, please log in again"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "calling server", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: "decoding response", Err: err}
		}
	}
	return nil
}
