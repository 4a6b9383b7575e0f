package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/bundle"
	"github.com/initializ/rulekit/config"
	"github.com/initializ/rulekit/extract"
	"github.com/initializ/rulekit/memory"
	"github.com/initializ/rulekit/validate"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate rulekit.yaml and the rules bundle",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

// recognizedSections are the memory headings the extractor understands.
var recognizedSections = map[string]bool{
	extract.SectionArchitecture: true,
	extract.SectionGotchas:      true,
	extract.SectionCommands:     true,
	extract.SectionLessons:      true,
	extract.SectionAuth:         true,
	extract.SectionEnvConfig:    true,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	result := validate.ValidateConfig(cfg)
	root := filepath.Dir(cfgPath)

	// Validate the bundle itself when it exists.
	layout, err := bundle.Discover(root, cfg.BundleDir())
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("bundle: %v", err))
	} else {
		rules, err := layout.Rules()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("rules: %v", err))
		} else if len(rules) == 0 {
			result.Warnings = append(result.Warnings, "bundle contains no rules")
		}

		validateMemory(filepath.Join(root, cfg.MemoryPath()), result)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}

	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Println("Validation passed.")
	return nil
}

func validateMemory(path string, result *validate.ValidationResult) {
	f, err := os.Open(path)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("memory file %s not found", path))
		return
	}
	defer f.Close()

	doc, err := memory.Parse(f)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("memory: %v", err))
		return
	}

	for _, sec := range doc.Sections {
		if !recognizedSections[sec.Heading] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("memory section %q is not recognized by the extractor", sec.Heading))
		}
	}
}
