package tokenmanager

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// tokenPath is appended to Config.AuthURL to form the token endpoint.
	tokenPath = "/oauth/token"

	// safetyMargin is subtracted from the server-reported lifetime so the
	// cached token expires locally before the server would reject it.
	safetyMargin = 5 * time.Minute

	// defaultLifetime applies when the token response omits expires_in.
	defaultLifetime = time.Hour

	// exchangeTimeout bounds a single token exchange round trip.
	exchangeTimeout = 30 * time.Second
)

// Logger is an interface for optional logging in TokenManager.
// Implementations can log token refresh events if desired.
type Logger interface {
	Printf(format string, args ...any)
}

// TokenManager caches one AI Core bearer token and its expiry, refreshing it
// through the OAuth2 client-credentials flow when needed. It is safe for
// concurrent use: the check-and-refresh sequence runs under an exclusive
// lock, so at most one exchange is in flight regardless of caller count.
type TokenManager struct {
	exchange       *clientcredentials.Config
	resourceGroup  string
	resourceHeader string

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	ctx        context.Context // fallback context for GetToken
	httpClient *http.Client
	now        func() time.Time
	logger     Logger // optional logger
}

// Option is a functional option for configuring TokenManager.
type Option func(*TokenManager)

// WithLogger sets a custom logger for token refresh events.
// If not set, no logging will occur.
func WithLogger(logger Logger) Option {
	return func(tm *TokenManager) {
		tm.logger = logger
	}
}

// WithLoggingEnabled enables logging using the default Go log package.
// This is a convenience option that sets the logger to log.Default().
func WithLoggingEnabled() Option {
	return func(tm *TokenManager) {
		tm.logger = log.Default()
	}
}

// NewTokenManager creates a token manager for the given AI Core
// configuration. It fails fast with *ConfigurationError when the
// authorization URL, client ID, or client secret is missing; no network
// traffic happens until the first token is requested.
func NewTokenManager(ctx context.Context, cfg Config, opts ...Option) (*TokenManager, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Keep token requests independent from caller cancellations while
	// preserving values. Used as the fallback context for GetToken().
	if ctx == nil {
		ctx = context.Background()
	} else {
		ctx = context.WithoutCancel(ctx)
	}

	exchange := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     strings.TrimSuffix(cfg.AuthURL, "/") + tokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tm := &TokenManager{
		exchange:       exchange,
		resourceGroup:  cfg.ResourceGroup,
		resourceHeader: cfg.ResourceGroupHeader,
		ctx:            ctx,
		httpClient:     &http.Client{Timeout: exchangeTimeout},
		now:            time.Now,
	}

	// Apply options
	for _, opt := range opts {
		opt(tm)
	}

	return tm, nil
}

// GetTokenWithContext returns a currently valid access token, performing the
// client-credentials exchange first if the cached one is missing or expired.
// This method respects the provided context's cancellation and deadline.
// It uses double-checked locking so concurrent callers against an expired
// cache trigger exactly one exchange and all observe its result.
func (tm *TokenManager) GetTokenWithContext(ctx context.Context) (string, error) {
	// Use background context if nil
	if ctx == nil {
		ctx = context.Background()
	}

	// Fast path: check if we have a valid token without write lock
	tm.mu.RLock()
	if tm.tokenValid() {
		token := tm.token
		tm.mu.RUnlock()
		return token, nil
	}
	tm.mu.RUnlock()

	// Token is invalid or missing, fetch a new one
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed)
	if tm.tokenValid() {
		return tm.token, nil
	}

	if err := tm.refreshLocked(ctx); err != nil {
		return "", err
	}

	return tm.token, nil
}

// GetToken returns a currently valid access token, refreshing first if
// necessary. It uses the fallback context passed to NewTokenManager; prefer
// GetTokenWithContext when a request-scoped context is available.
func (tm *TokenManager) GetToken() (string, error) {
	return tm.GetTokenWithContext(tm.ctx)
}

// ForceRefresh unconditionally performs the token exchange and replaces the
// cached credential, even if the current one is still valid. On failure the
// previously cached token and expiry are left untouched.
func (tm *TokenManager) ForceRefresh(ctx context.Context) error {
	if ctx == nil {
		ctx = tm.ctx
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshLocked(ctx)
}

// IsValid reports whether a token is cached and not yet expired. It never
// triggers a refresh and is safe to call for status reporting.
func (tm *TokenManager) IsValid() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.tokenValid()
}

// Expiry returns the local expiry time of the cached token, already reduced
// by the safety margin. The zero time means no token has been cached yet.
func (tm *TokenManager) Expiry() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// AuthHeaders returns ready-to-attach headers for an AI Core API request:
// the bearer Authorization header from GetTokenWithContext, the resource
// group qualifier (the argument if non-empty, the configured default
// otherwise), and a JSON content type. It carries the same failure mode as
// GetTokenWithContext.
func (tm *TokenManager) AuthHeaders(ctx context.Context, resourceGroup string) (http.Header, error) {
	token, err := tm.GetTokenWithContext(ctx)
	if err != nil {
		return nil, err
	}

	if resourceGroup == "" {
		resourceGroup = tm.resourceGroup
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+token)
	headers.Set(tm.resourceHeader, resourceGroup)
	headers.Set("Content-Type", "application/json")
	return headers, nil
}

// refreshLocked performs the client-credentials exchange and replaces the
// cached (token, expiresAt) pair as one update. Callers must hold tm.mu.
// A failed exchange leaves the cached pair untouched and is surfaced as
// *RefreshError with the cause attached.
func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	if tm.logger != nil {
		tm.logger.Printf("tokenmanager: refreshing AI Core access token")
	}

	tok, err := tm.exchange.Token(tm.exchangeContext(ctx))
	if err != nil {
		return &RefreshError{Cause: err}
	}
	if tok.AccessToken == "" {
		return &RefreshError{Cause: errors.New("token response missing access_token")}
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		// Server omitted expires_in; assume the usual one-hour lifetime.
		expiry = tm.now().Add(defaultLifetime)
	}

	tm.token = tok.AccessToken
	tm.expiresAt = expiry.Add(-safetyMargin)

	if tm.logger != nil {
		tm.logger.Printf("tokenmanager: token refreshed, valid until %s", tm.expiresAt.Format(time.RFC3339))
	}

	return nil
}

// tokenValid reports whether the cached token can still be handed out.
// Callers must hold tm.mu for reading.
func (tm *TokenManager) tokenValid() bool {
	return tm.token != "" && tm.now().Before(tm.expiresAt)
}

// exchangeContext ensures the exchange uses the manager's bounded-timeout
// HTTP client unless the caller already supplied one via oauth2.HTTPClient.
func (tm *TokenManager) exchangeContext(ctx context.Context) context.Context {
	if ctx.Value(oauth2.HTTPClient) != nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, tm.httpClient)
}

// UnaryClientInterceptor returns a gRPC unary client interceptor that
// attaches the bearer token and resource group to outgoing request metadata.
// If the token fetch fails, the RPC call is aborted with that error.
func (tm *TokenManager) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx, err := tm.outgoingContext(ctx)
		if err != nil {
			return err
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor returns a gRPC stream client interceptor that
// attaches the bearer token and resource group to outgoing request metadata.
// If the token fetch fails, stream creation is aborted with that error.
func (tm *TokenManager) StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx, err := tm.outgoingContext(ctx)
		if err != nil {
			return nil, err
		}
		return streamer(ctx, desc, cc, method, opts...)
	}
}

// outgoingContext appends the auth metadata for an outgoing RPC.
func (tm *TokenManager) outgoingContext(ctx context.Context) (context.Context, error) {
	token, err := tm.GetTokenWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return metadata.AppendToOutgoingContext(ctx,
		"authorization", "Bearer "+token,
		strings.ToLower(tm.resourceHeader), tm.resourceGroup,
	), nil
}
