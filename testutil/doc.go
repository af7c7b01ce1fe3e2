// Package testutil provides test helpers for go-aicore packages.
//
// It includes utilities to spin up IPv4-only local HTTP servers (avoiding
// IPv6 in sandboxes), mock XSUAA token endpoints without real sockets, and
// generate self-signed certificates for TLS/mTLS tests.
//
// # Utilities
//
//   - NewLocalHTTPServer: start httptest server bound to 127.0.0.1
//   - MockAuthServer with TokenResponse / StaticJSONResponse /
//     SequencedResponses: stub token endpoints and capture requests
//   - RoundTripFunc: inline http.RoundTripper implementations
//   - WriteTestCACert / WriteTestCertAndKey: generate temporary CA and leaf
//     certificates for tests
//
// These helpers are designed for tests and may mutate
// http.DefaultClient/Transport; they restore previous values via tb.Cleanup.
package testutil
