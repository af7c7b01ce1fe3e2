// Package httpclient offers HTTP client construction helpers for calling the
// AI Core API with automatic credential injection and TLS/mTLS options.
//
// It provides a fluent Builder that creates an http.Client whose transport
// stamps each request with the header set from tokenmanager.AuthHeaders
// (bearer token, resource group qualifier, JSON content type), configurable
// TLS (custom CA, mTLS, insecure for tests), timeouts, base transports, and
// redirect handling. AuthTransport can wrap any RoundTripper directly.
//
// # Quick Start
//
//	client, err := httpclient.NewBuilder().
//	    WithConfig(ctx, tokenmanager.ConfigFromEnv()).
//	    WithResourceGroup("team-a").
//	    WithTimeout(60 * time.Second).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Get(baseURL + "/v2/lm/deployments")
//
// # Manual Transport Wrapping
//
//	transport := httpclient.NewAuthTransport(tm, nil)
//	client := &http.Client{Transport: transport}
//
// All components are safe for concurrent use if the provided TokenManager is.
package httpclient
