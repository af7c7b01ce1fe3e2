package tokenmanager

import "strings"

// ConfigurationError indicates required authorization settings were missing
// at construction time. It is never retried internally.
type ConfigurationError struct {
	// Missing lists the absent settings by their environment variable names.
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "tokenmanager: missing required settings: " + strings.Join(e.Missing, ", ")
}

// RefreshError indicates the client-credentials exchange failed. The cached
// credential, if any, is left untouched when this error is returned.
type RefreshError struct {
	// Cause is the underlying transport or protocol failure.
	Cause error
}

func (e *RefreshError) Error() string {
	return "tokenmanager: token refresh failed: " + e.Cause.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Cause
}
