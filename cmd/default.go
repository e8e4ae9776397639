package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shakatoday/helm/internal/deploy"
)

var defaultCmd = &cobra.Command{
	Use:   "default <model-name>",
	Short: "Show the deployment used for a model by default",
	Long: `Resolve which deployment serves a model when none is requested
explicitly: the deployment named like the model itself when one is
registered, otherwise the first deployment the model's metadata lists.`,
	Args: cobra.ExactArgs(1),
	RunE: runDefault,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}

func runDefault(_ *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	md, err := reg.Metadata().Get(args[0])
	if err != nil {
		return fmt.Errorf("unknown model %q.\nTip: run 'helm list --models' to see registered models.", args[0])
	}

	d, err := reg.DefaultFor(md)
	switch {
	case errors.Is(err, deploy.ErrNoDefaultDeployment):
		printMiss(md.Name, "no registered deployment and no deployment list")
		return err
	case errors.Is(err, deploy.ErrDeploymentNotFound):
		printErr(md.Name, "metadata lists a deployment that was never registered")
		return err
	case err != nil:
		return err
	}

	printOK(md.Name, fmt.Sprintf("default deployment: %s", d.Name))
	fmt.Printf("      client: %s\n", d.ClientSpec.ClassName)
	return nil
}
