package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/shakatoday/helm/internal/config"
	"github.com/shakatoday/helm/internal/deploy"
	"github.com/shakatoday/helm/internal/objspec"
)

var addFlags struct {
	client    string
	window    string
	model     string
	tokenizer string
	maxSeqLen int
	maxReqLen int
	force     bool
}

var addCmd = &cobra.Command{
	Use:   "add <deployment-name>",
	Short: "Append a model deployment to model_deployments.yaml",
	Long: `Add a deployment to the deployments file in the base directory,
creating the file when it does not exist yet.

Specs are given in compact form, e.g.:

  helm add myorg/gpt-4o-proxy \
    --client "clients.openai.OpenAIClient:base_url=https://proxy.internal" \
    --model openai/gpt-4o \
    --max-seq-len 128000

The file is locked while it is rewritten, so concurrent helm invocations
cannot clobber each other; the previous file is kept as a .bak until the
rewrite succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFlags.client, "client", "", "Client spec in compact form (required)")
	addCmd.Flags().StringVar(&addFlags.window, "window", "", "Window service spec in compact form")
	addCmd.Flags().StringVar(&addFlags.model, "model", "", "Model name (defaults to the deployment name)")
	addCmd.Flags().StringVar(&addFlags.tokenizer, "tokenizer", "", "Tokenizer name")
	addCmd.Flags().IntVar(&addFlags.maxSeqLen, "max-seq-len", 0, "Maximum sequence length")
	addCmd.Flags().IntVar(&addFlags.maxReqLen, "max-req-len", 0, "Maximum request length (defaults to --max-seq-len)")
	addCmd.Flags().BoolVar(&addFlags.force, "force", false, "Replace an existing entry with the same name")
	_ = addCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	if !strings.Contains(name, "/") {
		printWarn(name, "deployment names are conventionally <host_group>/<engine>")
	}

	d, err := buildDeployment(name)
	if err != nil {
		return err
	}

	dir, err := baseDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create base directory %s: %w", dir, err)
	}
	path := config.DeploymentsPath(dir)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("cannot acquire deployments lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another helm invocation is editing %s", path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := appendToFile(path, d); err != nil {
		return err
	}
	printOK(name, "added to "+path)
	return nil
}

// buildDeployment assembles the record from the add flags.
func buildDeployment(name string) (deploy.ModelDeployment, error) {
	clientSpec, err := objspec.Parse(addFlags.client)
	if err != nil {
		return deploy.ModelDeployment{}, fmt.Errorf("invalid --client spec: %w", err)
	}

	d := deploy.ModelDeployment{
		Name:              name,
		ClientSpec:        clientSpec,
		ModelName:         addFlags.model,
		TokenizerName:     addFlags.tokenizer,
		MaxSequenceLength: addFlags.maxSeqLen,
		MaxRequestLength:  addFlags.maxReqLen,
	}
	if addFlags.window != "" {
		windowSpec, err := objspec.Parse(addFlags.window)
		if err != nil {
			return deploy.ModelDeployment{}, fmt.Errorf("invalid --window spec: %w", err)
		}
		d.WindowServiceSpec = &windowSpec
	}
	return d, deploy.ValidateRecord(d)
}

// appendToFile rewrites path with d appended (or replacing an entry of the
// same name when --force is set). The previous file survives as a .bak until
// the rewrite succeeds.
func appendToFile(path string, d deploy.ModelDeployment) error {
	var deployments []deploy.ModelDeployment
	existing := false
	if _, err := os.Stat(path); err == nil {
		existing = true
		deployments, err = deploy.ParseFile(path)
		if err != nil {
			return err
		}
	}

	replaced := false
	for i, cur := range deployments {
		if cur.Name != d.Name {
			continue
		}
		if !addFlags.force {
			return fmt.Errorf("deployment %s is already declared in %s (use --force to replace)", d.Name, path)
		}
		deployments[i] = d
		replaced = true
		break
	}
	if !replaced {
		deployments = append(deployments, d)
	}

	backupPath := ""
	if existing {
		backupPath = path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("cannot back up %s: %w", path, err)
		}
	}

	if err := deploy.WriteFile(path, deployments); err != nil {
		if backupPath != "" {
			// Restore the previous file rather than leaving nothing.
			_ = os.Rename(backupPath, path)
		}
		return err
	}

	if err := removeBackup(backupPath); err != nil {
		printWarn("", fmt.Sprintf("could not remove backup %s: %v", backupPath, err))
	}
	return nil
}
