package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	tokenRefresh bool
	tokenShow    bool
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show access token status",
	Long: `Show the status of the cached AI Core access token.

Without flags this reports whether a freshly obtained token is valid and
when it expires locally. --refresh forces a rotation even if the current
token is still valid; --show prints the bearer token itself.

Examples:
  aicore token             # fetch a token and report its expiry
  aicore token --refresh   # force a rotation
  aicore token --show      # print the bearer token`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().BoolVar(&tokenRefresh, "refresh", false, "force a token rotation")
	tokenCmd.Flags().BoolVar(&tokenShow, "show", false, "print the bearer token")
}

func runToken(cmd *cobra.Command, args []string) error {
	tm, _, err := newTokenManager()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if tokenRefresh {
		if err := tm.ForceRefresh(ctx); err != nil {
			return err
		}
		fmt.Println("Token rotated.")
	}

	token, err := tm.GetTokenWithContext(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Valid:      %t\n", tm.IsValid())
	fmt.Printf("Expires at: %s (with safety margin applied)\n", tm.Expiry().Format(time.RFC3339))

	if tokenShow {
		fmt.Printf("Token:      %s\n", token)
	}

	return nil
}
