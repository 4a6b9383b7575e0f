package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/config"
	"github.com/initializ/rulekit/extract"
	"github.com/initializ/rulekit/memory"
	"github.com/initializ/rulekit/validate"
)

var (
	extractOutput string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract training examples from the agent memory file",
	Long:  "Extract parses the bundle's memory.md and turns its recognized sections into instruction-following training records, validated against the training example schema.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "training-data.jsonl", "output file path")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "jsonl", "output format: jsonl or json")
}

func runExtract(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	memoryPath := filepath.Join(".cursor", "memory", "memory.md")
	if cfg, err := config.LoadConfig(filepath.Join(wd, cfgFile)); err == nil {
		memoryPath = cfg.MemoryPath()
	}

	f, err := os.Open(filepath.Join(wd, memoryPath))
	if err != nil {
		return fmt.Errorf("opening memory file %s: %w", memoryPath, err)
	}
	defer f.Close()

	doc, err := memory.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing memory file: %w", err)
	}

	examples := extract.FromDocument(doc)
	if len(examples) == 0 {
		return fmt.Errorf("no training examples found in %s (no recognized sections with extractable content)", memoryPath)
	}

	// Every record must pass the schema before anything is written.
	for i, ex := range examples {
		data, err := json.Marshal(ex)
		if err != nil {
			return fmt.Errorf("encoding example %d: %w", i+1, err)
		}
		errs, err := validate.ValidateExample(data)
		if err != nil {
			return fmt.Errorf("validating example %d: %w", i+1, err)
		}
		if len(errs) > 0 {
			return fmt.Errorf("example %d (%q) failed schema validation: %s", i+1, ex.Instruction, errs[0])
		}
	}

	if err := extract.Save(extractOutput, extractFormat, examples); err != nil {
		return err
	}

	fmt.Printf("Extracted %d training example(s) to %s\n", len(examples), extractOutput)
	return nil
}
