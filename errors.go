package highlight

import (
	"errors"
	"fmt"
)

// ErrClientCreation is returned when the parser rejects a language's grammar.
// The failure is fatal for that language until the pool is cleared.
var ErrClientCreation = errors.New("parser client creation failed")

// SessionError wraps the failure behind a [SessionManager.CreateSession]
// call for one file. Callers are expected to fall back to unstyled rendering;
// no error from this package is fatal to the hosting application.
type SessionError struct {
	File string
	Err  error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("creating highlighting session for %s: %v", e.File, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }
