package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aicore-community/go-aicore/tokenmanager"
)

var (
	verbose bool
	logger  zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aicore",
	Short: "Inspect SAP AI Core credentials and deployments",
	Long: `aicore authenticates against SAP AI Core using the OAuth2 client
credentials flow and inspects the platform from the command line.

Configuration is read from AICORE_* environment variables; a .env file in
the working directory is loaded automatically if present:

  AICORE_AUTH_URL        XSUAA authorization server URL (required)
  AICORE_CLIENT_ID       OAuth2 client ID (required)
  AICORE_CLIENT_SECRET   OAuth2 client secret (required)
  AICORE_BASE_URL        AI Core API base URL (for deployment listing)
  AICORE_RESOURCE_GROUP  resource group, defaults to "default"`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log token refresh activity")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(deploymentsCmd)
}

func initEnv() {
	// Same convention as the platform's own samples: a local .env file is
	// honored but never required.
	_ = godotenv.Load()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// refreshLogger adapts the CLI's zerolog logger to the tokenmanager Logger
// interface.
type refreshLogger struct {
	log zerolog.Logger
}

func (l refreshLogger) Printf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

// newTokenManager builds the CLI's token manager from the environment.
func newTokenManager() (*tokenmanager.TokenManager, tokenmanager.Config, error) {
	cfg := tokenmanager.ConfigFromEnv()
	tm, err := tokenmanager.NewTokenManager(context.Background(), cfg, tokenmanager.WithLogger(refreshLogger{log: logger}))
	return tm, cfg, err
}
