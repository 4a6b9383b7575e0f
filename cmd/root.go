// Package cmd implements the rulekit CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "rulekit",
	Short: "Rulekit — manage, migrate, and evaluate AI agent rules bundles",
	Long:  "Rulekit is a CLI tool for scaffolding Cursor-style rules bundles, migrating them between projects, extracting training data from agent memory, and evaluating fine-tuned models.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "rulekit.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(memoryCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rulekit %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
