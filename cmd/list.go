package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shakatoday/helm/internal/deploy"
)

var listFlags struct {
	hostGroup string
	models    bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered model deployments",
	Long: `List every deployment declared in model_deployments.yaml, in
registration order.

With --host-group, only deployments whose name starts with "<group>/" are
shown. With --models, the model metadata records are listed instead, each
with the deployments that serve it.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlags.hostGroup, "host-group", "", "Only deployments in this host group")
	listCmd.Flags().BoolVar(&listFlags.models, "models", false, "List model metadata records instead of deployments")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if listFlags.models {
		return listModels(reg)
	}

	names := reg.Names()
	if listFlags.hostGroup != "" {
		names = reg.ByHostGroup(listFlags.hostGroup)
	}
	if len(names) == 0 {
		printMiss("", "no model deployments registered")
		return nil
	}

	printSection("Model Deployments")
	for _, name := range names {
		d, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-44s %s\n", name, d.ClientSpec.ClassName)
	}
	return nil
}

func listModels(reg *deploy.Registry) error {
	store := reg.Metadata()
	names := store.Names()
	if len(names) == 0 {
		printMiss("", "no models registered")
		return nil
	}

	printSection("Models")
	for _, name := range names {
		md, err := store.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  (access: %s)\n", md.Name, md.Access)
		for _, dn := range md.DeploymentNamesView() {
			fmt.Printf("      - %s\n", dn)
		}
	}
	return nil
}
