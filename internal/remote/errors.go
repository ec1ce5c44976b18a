package remote

import (
	"errors"
	"fmt"
)

// ErrNothingToPush is returned when a push is requested with an empty
// local collection; no network call is made.
var ErrNothingToPush = errors.New("no cards to save")

var errNoToken = errors.New("server returned no token")

// serverError wraps a server-reported failure message, falling back to
// a generic description when the response carried none.
func serverError(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return errors.New(message)
}

// AuthError reports rejected credentials or a rejected token. When a
// token rejection produced the error, the session has already been
// cleared.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// TransportError reports a network or decoding failure talking to the
// remote store. Nothing is retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
