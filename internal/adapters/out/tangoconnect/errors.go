package tangoconnect

import (
	"errors"
	"fmt"
)

// AuthenticationError means no access token could be obtained.
type AuthenticationError struct {
	StatusCode int
	Cause      error
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tango connect authentication failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("tango connect authentication failed: %v", e.Cause)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// SyncError means a data call failed after authentication succeeded.
type SyncError struct {
	Op         string
	StatusCode int
	Cause      error
}

func (e *SyncError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tango connect %s failed: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("tango connect %s failed: %v", e.Op, e.Cause)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// IsAuthenticationError reports whether err carries an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}
