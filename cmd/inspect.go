package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shakatoday/helm/internal/deploy"
	"github.com/shakatoday/helm/internal/objspec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <deployment-name>",
	Short: "Show a model deployment and its linked metadata",
	Long: `Display a formatted summary of a registered deployment: its client and
window-service specs, tokenizer, length limits, and the metadata record of
the model it serves.

The argument is normally an exact deployment name (e.g. huggingface/t5-11b).
When no exact match exists, a case-insensitive substring match over all
registered names is tried instead.

Example:
  helm inspect huggingface/t5-11b
  helm inspect t5`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	names, err := resolveDeploymentNames(reg, args[0])
	if err != nil {
		return err
	}

	for i, name := range names {
		if i > 0 {
			fmt.Println(strings.Repeat("─", 50))
		}
		if err := printDeployment(reg, name); err != nil {
			return err
		}
	}
	return nil
}

// resolveDeploymentNames finds registered deployments matching arg: an exact
// name first, then a case-insensitive substring match over all names.
func resolveDeploymentNames(reg *deploy.Registry, arg string) ([]string, error) {
	if _, err := reg.Get(arg); err == nil {
		return []string{arg}, nil
	} else if !errors.Is(err, deploy.ErrDeploymentNotFound) {
		return nil, err
	}

	lower := strings.ToLower(arg)
	var matches []string
	for _, name := range reg.Names() {
		if strings.Contains(strings.ToLower(name), lower) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("deployment %q not found.\nTip: run 'helm list' to see registered deployments.", arg)
	}
	return matches, nil
}

// printDeployment displays the formatted record and metadata for one
// deployment.
func printDeployment(reg *deploy.Registry, name string) error {
	d, err := reg.Get(name)
	if err != nil {
		return err
	}

	fmt.Printf("Deployment:  %s\n", d.Name)
	fmt.Printf("Model:       %s\n", d.EffectiveModelName())
	fmt.Printf("Host Group:  %s\n", d.HostGroup())
	if engine, err := d.Engine(); err == nil {
		fmt.Printf("Engine:      %s\n", engine)
	}
	if d.TokenizerName != "" {
		fmt.Printf("Tokenizer:   %s\n", d.TokenizerName)
	}
	if d.MaxSequenceLength != 0 {
		fmt.Printf("Max Seq Len: %d\n", d.MaxSequenceLength)
		fmt.Printf("Max Req Len: %d\n", d.RequestLength())
	}

	extras, err := clientExtraArgs(d)
	if err != nil {
		return err
	}
	if extras == nil {
		fmt.Printf("Credential:  %s (not set)\n", apiKeyName(d.HostGroup()))
	} else {
		fmt.Printf("Credential:  %s (configured)\n", apiKeyName(d.HostGroup()))
	}

	fmt.Println("\nClient Spec:")
	printSpec(d.ClientSpec)
	if d.WindowServiceSpec != nil {
		fmt.Println("\nWindow Service Spec:")
		printSpec(*d.WindowServiceSpec)
	}

	md, err := reg.MetadataFor(name)
	if err != nil {
		// Registration links every deployment to a record; a miss here
		// means the registry is inconsistent.
		return fmt.Errorf("registry inconsistency for %s: %w", name, err)
	}
	fmt.Println("\nModel Metadata:")
	fmt.Printf("  Display Name: %s\n", md.DisplayName)
	if md.Description != "" {
		fmt.Printf("  Description:  %s\n", md.Description)
	}
	fmt.Printf("  Access:       %s\n", md.Access)
	if md.NumParameters > 0 {
		fmt.Printf("  Parameters:   %d\n", md.NumParameters)
	}
	fmt.Printf("  Released:     %s\n", md.ReleaseDate)
	if len(md.Tags) > 0 {
		fmt.Printf("  Tags:         %s\n", strings.Join(md.Tags, ", "))
	}
	fmt.Println("  Deployments:")
	for _, dn := range md.DeploymentNamesView() {
		fmt.Printf("    - %s\n", dn)
	}
	return nil
}

// printSpec renders a spec as indented YAML.
func printSpec(s objspec.Spec) {
	b, err := yaml.Marshal(s)
	if err != nil {
		fmt.Printf("  (unrenderable: %v)\n", err)
		return
	}
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		fmt.Printf("  %s\n", line)
	}
}
