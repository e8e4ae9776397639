package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shakatoday/helm/internal/config"
	"github.com/shakatoday/helm/internal/deploy"
	"github.com/shakatoday/helm/internal/logging"
	"github.com/shakatoday/helm/internal/metadata"
)

var baseDirFlag string

var rootCmd = &cobra.Command{
	Use:          "helm",
	Short:        "helm — model deployment registry and inspection tool",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `helm tracks model deployments — named, reachable instances of a model —
and links each deployment back to a model metadata record.

Deployments are declared in model_deployments.yaml inside the base directory
(--dir, HELM_BASE_PATH, or ~/.helm by default).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "dir", "",
		"Base directory holding model_deployments.yaml (default: $HELM_BASE_PATH or ~/.helm)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// baseDir resolves the effective base directory for this invocation.
func baseDir() (string, error) {
	if baseDirFlag != "" {
		return config.ExpandPath(baseDirFlag)
	}
	return config.BaseDir()
}

// loadRegistry builds a registry populated from the base directory:
// declared model metadata first, then the deployments that link to it.
// Missing files yield an empty registry.
func loadRegistry() (*deploy.Registry, error) {
	dir, err := baseDir()
	if err != nil {
		return nil, err
	}
	store := metadata.NewStore()
	if err := store.LoadDir(dir); err != nil {
		return nil, fmt.Errorf("cannot load model metadata from %s: %w", dir, err)
	}
	reg := deploy.NewRegistry(store, logging.New())
	if err := reg.LoadDir(dir); err != nil {
		return nil, fmt.Errorf("cannot load deployments from %s: %w", dir, err)
	}
	return reg, nil
}
