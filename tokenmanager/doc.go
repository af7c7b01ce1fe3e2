// Package tokenmanager manages the OAuth2 credential lifecycle for SAP AI
// Core clients using the client-credentials flow.
//
// It caches one bearer token with its expiry, refreshes it before the server
// would reject it (a five-minute safety margin is subtracted from the
// reported lifetime), and serializes refreshes so any number of concurrent
// callers cause at most one exchange. A failed refresh never corrupts the
// cached credential and surfaces to the caller as *RefreshError.
//
// # Features
//
//   - Client-credentials flow with caching, early expiry, and forced rotation
//   - Thread-safe double-checked locking around the check-and-refresh sequence
//   - Ready-to-send header assembly (Authorization, AI-Resource-Group, Content-Type)
//   - Process-wide shared instance via Shared(), built once under contention
//   - gRPC unary and stream client interceptors that inject auth metadata
//   - Optional logging (WithLogger, WithLoggingEnabled)
//
// # Quick Start
//
//	tm, err := tokenmanager.NewTokenManager(ctx, tokenmanager.Config{
//	    AuthURL:      "https://my-subaccount.authentication.eu10.hana.ondemand.com",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	headers, err := tm.AuthHeaders(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// attach headers to an AI Core API request
//
// Cooperating workers inside one process should share a single manager,
// either by injecting it explicitly or through Shared(), which resolves the
// AICORE_* environment variables once.
//
// # Notes
//
//   - GetTokenWithContext is preferred; GetToken uses the construction context.
//   - Callers seeing a remote 401 despite a locally valid token should call
//     ForceRefresh once and retry their own request; the manager does not
//     inspect downstream responses.
package tokenmanager
