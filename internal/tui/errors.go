package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit reports that the user closed the program with ctrl+c instead
// of completing the authentication flow.
var ErrUserQuit = errors.New("quit by user")

func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
