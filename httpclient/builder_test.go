package httpclient

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aicore-community/go-aicore/testutil"
	"github.com/aicore-community/go-aicore/tokenmanager"
)

func TestNewBuilder(t *testing.T) {
	builder := NewBuilder()

	if builder == nil {
		t.Fatal("builder should not be nil")
	}

	if builder.timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", builder.timeout)
	}

	if !builder.followRedirects {
		t.Error("redirects should be enabled by default")
	}
}

func TestBuilder_WithTokenManager(t *testing.T) {
	authServer := newMockAuthServer(t)
	defer authServer.Close()

	tm := newTokenManager(t, authServer)

	builder := NewBuilder().WithTokenManager(tm)

	if builder.tokenManager != tm {
		t.Error("TokenManager not set correctly")
	}
}

func TestBuilder_WithConfig(t *testing.T) {
	ctx := context.Background()

	builder := NewBuilder().WithConfig(ctx, tokenmanager.Config{
		AuthURL:      "https://auth.example.com",
		ClientID:     "client-id",
		ClientSecret: "secret",
	})

	if builder.tokenManager == nil {
		t.Fatal("TokenManager should not be nil")
	}

	if builder.configErr != nil {
		t.Fatalf("unexpected config error: %v", builder.configErr)
	}
}

func TestBuilder_WithConfig_Invalid(t *testing.T) {
	builder := NewBuilder().WithConfig(context.Background(), tokenmanager.Config{
		AuthURL: "https://auth.example.com",
	})

	client, err := builder.Build()
	if err == nil {
		t.Fatal("expected Build to fail for invalid config")
	}
	if client != nil {
		t.Error("no client should be returned on failure")
	}
	if !strings.Contains(err.Error(), "invalid AI Core config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuilder_WithTLS(t *testing.T) {
	builder := NewBuilder().
		WithTLS("/path/to/ca.crt", "/path/to/cert.crt", "/path/to/key.pem")

	if !builder.tlsEnabled {
		t.Error("TLS should be enabled")
	}

	if builder.tlsCAFile != "/path/to/ca.crt" {
		t.Errorf("unexpected CA file: %s", builder.tlsCAFile)
	}

	if builder.tlsCertFile != "/path/to/cert.crt" {
		t.Errorf("unexpected cert file: %s", builder.tlsCertFile)
	}

	if builder.tlsKeyFile != "/path/to/key.pem" {
		t.Errorf("unexpected key file: %s", builder.tlsKeyFile)
	}
}

func TestBuilder_WithTimeout(t *testing.T) {
	timeout := 45 * time.Second
	builder := NewBuilder().WithTimeout(timeout)

	if builder.timeout != timeout {
		t.Errorf("expected timeout %v, got %v", timeout, builder.timeout)
	}
}

func TestBuilder_Build_Defaults(t *testing.T) {
	client, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if client.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %v", client.Timeout)
	}

	if client.Transport == nil {
		t.Fatal("transport should not be nil")
	}
}

func TestBuilder_Build_WithTokenManager(t *testing.T) {
	authServer := newMockAuthServer(t)
	defer authServer.Close()

	tm := newTokenManager(t, authServer)

	client, err := NewBuilder().
		WithTokenManager(tm).
		WithResourceGroup("team-a").
		WithBaseTransport(testutil.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") != "Bearer mock-access-token" {
				t.Errorf("unexpected authorization header: %s", req.Header.Get("Authorization"))
			}
			if req.Header.Get("AI-Resource-Group") != "team-a" {
				t.Errorf("unexpected resource group: %s", req.Header.Get("AI-Resource-Group"))
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     make(http.Header),
				Body:       io.NopCloser(strings.NewReader("ok")),
				Request:    req,
			}, nil
		})).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	transport, ok := client.Transport.(*AuthTransport)
	if !ok {
		t.Fatal("transport should be AuthTransport")
	}
	if transport.ResourceGroup != "team-a" {
		t.Errorf("unexpected transport resource group: %s", transport.ResourceGroup)
	}

	resp, err := client.Get("https://api.ai.example.com/resource")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
}

func TestBuilder_Build_WithCACert(t *testing.T) {
	caPath := filepath.Join(t.TempDir(), "ca.crt")
	testutil.WriteTestCACert(t, caPath)

	client, err := NewBuilder().
		WithTLS(caPath, "", "").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if client.Transport == nil {
		t.Fatal("transport should not be nil")
	}
}

func TestBuilder_Build_WithClientCert(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "client.crt")
	keyPath := filepath.Join(dir, "client.key")
	testutil.WriteTestCertAndKey(t, certPath, keyPath)

	_, err := NewBuilder().
		WithTLS("", certPath, keyPath).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
}

func TestBuilder_Build_MissingCAFile(t *testing.T) {
	_, err := NewBuilder().
		WithTLS("/nonexistent/ca.crt", "", "").
		Build()
	if err == nil {
		t.Fatal("expected error for missing CA file")
	}
}

func TestBuilder_Build_CertWithoutKey(t *testing.T) {
	_, err := NewBuilder().
		WithTLS("", "/path/to/cert.crt", "").
		Build()
	if err == nil {
		t.Fatal("expected error for cert without key")
	}

	if !strings.Contains(err.Error(), "both TLS cert and key files") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuilder_Build_WithoutRedirects(t *testing.T) {
	client, err := NewBuilder().
		WithoutRedirects().
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if client.CheckRedirect == nil {
		t.Fatal("CheckRedirect should be set")
	}

	if err := client.CheckRedirect(nil, nil); err != http.ErrUseLastResponse {
		t.Errorf("expected ErrUseLastResponse, got %v", err)
	}
}
