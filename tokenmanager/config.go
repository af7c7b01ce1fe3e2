package tokenmanager

import "os"

// Environment variable names for the AI Core configuration surface.
const (
	EnvAuthURL       = "AICORE_AUTH_URL"
	EnvClientID      = "AICORE_CLIENT_ID"
	EnvClientSecret  = "AICORE_CLIENT_SECRET"
	EnvResourceGroup = "AICORE_RESOURCE_GROUP"
	EnvBaseURL       = "AICORE_BASE_URL"
	EnvDeploymentID  = "AICORE_DEPLOYMENT_ID"
)

// Defaults applied when the corresponding setting is not provided.
const (
	DefaultResourceGroup       = "default"
	DefaultResourceGroupHeader = "AI-Resource-Group"
)

// Config holds the static AI Core authorization settings, resolved once at
// construction. AuthURL, ClientID, and ClientSecret are required; the
// remaining fields have defaults or only matter to downstream API consumers.
type Config struct {
	// AuthURL is the base URL of the XSUAA authorization server.
	// The token endpoint is derived as <AuthURL>/oauth/token.
	AuthURL string

	// ClientID and ClientSecret authenticate the client-credentials exchange.
	ClientID     string
	ClientSecret string

	// ResourceGroup is the default tenant qualifier attached to requests.
	// Defaults to "default".
	ResourceGroup string

	// ResourceGroupHeader is the header name carrying the resource group.
	// Defaults to "AI-Resource-Group".
	ResourceGroupHeader string

	// BaseURL is the AI Core API base URL. Not used by the token manager
	// itself; consumed by API clients such as the deployments package.
	BaseURL string

	// DeploymentID identifies a model deployment for inference callers.
	// Not used by the token manager itself.
	DeploymentID string
}

// ConfigFromEnv resolves the configuration from AICORE_* environment
// variables. It does not validate; NewTokenManager does that.
func ConfigFromEnv() Config {
	return Config{
		AuthURL:       os.Getenv(EnvAuthURL),
		ClientID:      os.Getenv(EnvClientID),
		ClientSecret:  os.Getenv(EnvClientSecret),
		ResourceGroup: os.Getenv(EnvResourceGroup),
		BaseURL:       os.Getenv(EnvBaseURL),
		DeploymentID:  os.Getenv(EnvDeploymentID),
	}
}

// Validate reports a *ConfigurationError naming every missing required
// setting, or nil if the configuration is usable.
func (c Config) Validate() error {
	var missing []string
	if c.AuthURL == "" {
		missing = append(missing, EnvAuthURL)
	}
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// withDefaults returns a copy with the optional fields filled in.
func (c Config) withDefaults() Config {
	if c.ResourceGroup == "" {
		c.ResourceGroup = DefaultResourceGroup
	}
	if c.ResourceGroupHeader == "" {
		c.ResourceGroupHeader = DefaultResourceGroupHeader
	}
	return c
}
