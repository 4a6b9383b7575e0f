package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/config"
	"github.com/initializ/rulekit/migrate"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <source>",
	Short: "Copy the rules bundle from another project into this one",
	Long:  "Migrate copies rules, memory, docs, and patches from the source project's bundle into the current project. Differing destination files are backed up with a .bak suffix; identical files are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "print the plan without copying anything")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	sourceRoot := args[0]

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	bundleDir := ".cursor"
	if cfg, err := config.LoadConfig(filepath.Join(wd, cfgFile)); err == nil {
		bundleDir = cfg.BundleDir()
	}

	plan, err := migrate.BuildPlan(sourceRoot, wd, bundleDir)
	if err != nil {
		return err
	}

	if len(plan.Actions) == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}

	if migrateDryRun || verbose {
		for _, a := range plan.Actions {
			rel, err := filepath.Rel(wd, a.Dest)
			if err != nil {
				rel = a.Dest
			}
			fmt.Printf("  %-12s %s\n", a.Op, rel)
		}
	}
	if migrateDryRun {
		fmt.Printf("Dry run: %d file(s) planned, nothing copied.\n", len(plan.Actions))
		return nil
	}

	res, err := plan.Apply()
	if err != nil {
		return fmt.Errorf("applying migration: %w", err)
	}

	fmt.Printf("Migrated %d file(s): %d copied, %d backed up, %d identical skipped.\n",
		len(plan.Actions), res.Copied, res.Backups, res.Skipped)
	return nil
}
