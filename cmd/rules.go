package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/bundle"
	"github.com/initializ/rulekit/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the bundle's rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules in the bundle",
	RunE:  runRulesList,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
}

func runRulesList(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	bundleDir := ".cursor"
	if cfg, err := config.LoadConfig(filepath.Join(wd, cfgFile)); err == nil {
		bundleDir = cfg.BundleDir()
	}

	layout, err := bundle.Discover(wd, bundleDir)
	if err != nil {
		return err
	}

	rules, err := layout.Rules()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		fmt.Println("No rules found.")
		return nil
	}

	for _, r := range rules {
		marker := " "
		if r.AlwaysApply {
			marker = "*"
		}
		fmt.Printf("%s %-30s %s\n", marker, r.Name, r.Title)
		if verbose {
			if r.Description != "" {
				fmt.Printf("      %s\n", r.Description)
			}
			if len(r.Globs) > 0 {
				fmt.Printf("      globs: %s\n", strings.Join(r.Globs, ", "))
			}
		}
	}
	fmt.Printf("\n%d rule(s), * = always apply\n", len(rules))
	return nil
}
