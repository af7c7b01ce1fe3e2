package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicore-community/go-aicore/tokenmanager"
)

func TestRootCommand_Wiring(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["token"], "token command should be registered")
	assert.True(t, names["deployments"], "deployments command should be registered")

	assert.NotNil(t, tokenCmd.Flags().Lookup("refresh"))
	assert.NotNil(t, tokenCmd.Flags().Lookup("show"))
	assert.NotNil(t, deploymentsListCmd.Flags().Lookup("resource-group"))
}

func TestTokenCommand_MissingConfiguration(t *testing.T) {
	t.Setenv(tokenmanager.EnvAuthURL, "")
	t.Setenv(tokenmanager.EnvClientID, "")
	t.Setenv(tokenmanager.EnvClientSecret, "")

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"token"})

	err := rootCmd.Execute()
	require.Error(t, err)

	var cfgErr *tokenmanager.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
}

func TestDeploymentsListCommand_MissingBaseURL(t *testing.T) {
	t.Setenv(tokenmanager.EnvAuthURL, "https://auth.example.com")
	t.Setenv(tokenmanager.EnvClientID, "client")
	t.Setenv(tokenmanager.EnvClientSecret, "secret")
	t.Setenv(tokenmanager.EnvBaseURL, "")

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"deployments", "list"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), tokenmanager.EnvBaseURL)
}
