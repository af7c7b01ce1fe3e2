package httpclient

import (
	"fmt"
	"net/http"

	"github.com/aicore-community/go-aicore/tokenmanager"
)

// AuthTransport is an http.RoundTripper that stamps outgoing requests with
// the full AI Core auth header set: the bearer Authorization header, the
// resource group qualifier, and a JSON content type.
//
// It wraps an existing transport (typically http.DefaultTransport) and
// injects the headers before each request. The Authorization header is
// always replaced with a currently valid token; the resource group and
// content type are only set when the caller has not set them already.
type AuthTransport struct {
	// Base is the underlying HTTP transport. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// TokenManager provides the cached AI Core credential.
	TokenManager *tokenmanager.TokenManager

	// ResourceGroup overrides the token manager's default resource group
	// for requests sent through this transport. Empty means the default.
	ResourceGroup string
}

// RoundTrip implements the http.RoundTripper interface.
// The token fetch respects the request context's cancellation and deadline.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.TokenManager == nil {
		return nil, fmt.Errorf("httpclient: TokenManager is nil")
	}

	headers, err := t.TokenManager.AuthHeaders(req.Context(), t.ResourceGroup)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to get auth headers: %w", err)
	}

	// Clone the request to avoid modifying the original
	reqClone := req.Clone(req.Context())

	for key, values := range headers {
		// Caller-set resource group or content type wins; the bearer
		// token is always the cache's current one.
		if key != "Authorization" && len(reqClone.Header.Values(key)) > 0 {
			continue
		}
		reqClone.Header[key] = values
	}

	// Use base transport or default
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(reqClone)
}

// NewAuthTransport creates a new AuthTransport with the given token manager.
// The base transport defaults to http.DefaultTransport if not specified.
func NewAuthTransport(tm *tokenmanager.TokenManager, base http.RoundTripper) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &AuthTransport{
		Base:         base,
		TokenManager: tm,
	}
}
