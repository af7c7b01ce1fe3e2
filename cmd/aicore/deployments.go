package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aicore-community/go-aicore/deployments"
	"github.com/aicore-community/go-aicore/tokenmanager"
)

var deploymentsResourceGroup string

// deploymentsCmd represents the deployments command
var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "Inspect AI Core deployments",
}

// deploymentsListCmd represents the deployments list command
var deploymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List model deployments",
	Long: `List all model deployments in the configured resource group,
running deployments first.

Examples:
  aicore deployments list
  aicore deployments list --resource-group team-a`,
	RunE: runDeploymentsList,
}

func init() {
	deploymentsListCmd.Flags().StringVar(&deploymentsResourceGroup, "resource-group", "", "resource group to list (defaults to AICORE_RESOURCE_GROUP)")

	deploymentsCmd.AddCommand(deploymentsListCmd)
}

func runDeploymentsList(cmd *cobra.Command, args []string) error {
	tm, cfg, err := newTokenManager()
	if err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		return fmt.Errorf("%s is not set", tokenmanager.EnvBaseURL)
	}

	client, err := deployments.NewClient(cfg.BaseURL, tm,
		deployments.WithResourceGroup(deploymentsResourceGroup),
	)
	if err != nil {
		return err
	}

	list, err := client.List(cmd.Context())
	if err != nil {
		return err
	}

	deployments.RenderTable(os.Stdout, list)
	return nil
}
