package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shakatoday/helm/internal/config"
	"github.com/shakatoday/helm/internal/deploy"
	"github.com/shakatoday/helm/internal/metadata"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the deployments file and its metadata linkage",
	Long: `Load model_deployments.yaml from the base directory and report
problems a later lookup would hit: records that cannot register, duplicate
names (the later record silently wins), metadata lists that reference
deployments which were never registered, and models without a usable
default deployment.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	dir, err := baseDir()
	if err != nil {
		return err
	}
	path := config.DeploymentsPath(dir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		printMiss("", "no "+deploy.DeploymentsFile+" in "+dir+" — nothing to check")
		return nil
	}

	printSection("Check " + path)

	records, err := deploy.ParseFile(path)
	if err != nil {
		printErr("", err.Error())
		return err
	}

	seen := make(map[string]bool, len(records))
	for _, d := range records {
		if seen[d.Name] {
			printWarn(d.Name, "declared more than once — the later record wins")
		}
		seen[d.Name] = true
	}

	store := metadata.NewStore()
	if err := store.LoadDir(dir); err != nil {
		printErr("", err.Error())
		return err
	}
	reg := deploy.NewRegistry(store, zerolog.Nop())
	if err := reg.RegisterBatch(records); err != nil {
		printErr("", err.Error())
		return err
	}
	printOK("", fmt.Sprintf("%d deployment(s) registered, %d model(s) linked", len(reg.Names()), reg.Metadata().Len()))

	broken := 0
	for _, modelName := range reg.Metadata().Names() {
		md, err := reg.Metadata().Get(modelName)
		if err != nil {
			return err
		}
		// Only explicitly declared lists bind the invariant; the implicit
		// self-name view is not a stored reference.
		for _, dn := range md.DeploymentNames {
			if _, err := reg.Get(dn); err != nil {
				printErr(modelName, "lists unregistered deployment "+dn)
				broken++
			}
		}
		if _, err := reg.DefaultFor(md); err != nil {
			printWarn(modelName, "no resolvable default deployment")
		}
	}

	seenGroups := make(map[string]bool)
	for _, name := range reg.Names() {
		d, err := reg.Get(name)
		if err != nil {
			return err
		}
		group := d.HostGroup()
		if seenGroups[group] {
			continue
		}
		seenGroups[group] = true
		extras, err := clientExtraArgs(d)
		if err != nil {
			return err
		}
		if extras == nil {
			printWarn(group, "no "+apiKeyName(group)+" credential configured")
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d dangling deployment reference(s)", broken)
	}
	printOK("", "metadata linkage is consistent")
	return nil
}
