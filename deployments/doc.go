// Package deployments lists SAP AI Core model deployments.
//
// It is a read-only consumer of the tokenmanager credential cache: each
// request attaches the current auth header set, and a remote 401 triggers a
// single forced token rotation followed by one retry. RenderTable produces
// the operator-facing report with running deployments listed first.
package deployments
