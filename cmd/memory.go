package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/initializ/rulekit/config"
	"github.com/initializ/rulekit/memory"
)

var memoryAppendSection string

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Inspect and update the agent memory file",
}

var memorySectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List memory sections and their contents",
	RunE:  runMemorySections,
}

var memoryAppendCmd = &cobra.Command{
	Use:   "append <text>",
	Short: "Append a bullet to a memory section",
	Long:  "Append adds a bullet line to the given section, creating the file or section when missing. Use the '- **Label**: description' form so the extractor can use the entry.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoryAppend,
}

func init() {
	memoryAppendCmd.Flags().StringVarP(&memoryAppendSection, "section", "s", "Key Lessons Learned", "section heading to append under")

	memoryCmd.AddCommand(memorySectionsCmd)
	memoryCmd.AddCommand(memoryAppendCmd)
}

func memoryFilePath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	memoryPath := filepath.Join(".cursor", "memory", "memory.md")
	if cfg, err := config.LoadConfig(filepath.Join(wd, cfgFile)); err == nil {
		memoryPath = cfg.MemoryPath()
	}
	return filepath.Join(wd, memoryPath), nil
}

func runMemorySections(cmd *cobra.Command, args []string) error {
	path, err := memoryFilePath()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening memory file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := memory.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing memory file: %w", err)
	}
	if len(doc.Sections) == 0 {
		fmt.Println("Memory file has no sections.")
		return nil
	}

	for _, sec := range doc.Sections {
		fmt.Printf("%s  (%s)\n", sec.Heading, describeSection(sec))
		if verbose {
			for _, sub := range sec.Subsections {
				fmt.Printf("  %s  (%s)\n", sub.Heading, describeSection(sub))
			}
		}
	}
	return nil
}

func describeSection(sec memory.Section) string {
	var parts []string
	bullets := len(sec.Bullets)
	blocks := len(sec.CodeBlocks)
	envs := len(sec.EnvLines)
	for _, sub := range sec.Subsections {
		bullets += len(sub.Bullets)
		blocks += len(sub.CodeBlocks)
		envs += len(sub.EnvLines)
	}
	if bullets > 0 {
		parts = append(parts, fmt.Sprintf("%d bullet(s)", bullets))
	}
	if blocks > 0 {
		parts = append(parts, fmt.Sprintf("%d code block(s)", blocks))
	}
	if envs > 0 {
		parts = append(parts, fmt.Sprintf("%d env line(s)", envs))
	}
	if len(sec.Subsections) > 0 {
		parts = append(parts, fmt.Sprintf("%d subsection(s)", len(sec.Subsections)))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}

func runMemoryAppend(cmd *cobra.Command, args []string) error {
	path, err := memoryFilePath()
	if err != nil {
		return err
	}

	created, err := memory.AppendBullet(path, memoryAppendSection, args[0])
	if err != nil {
		return fmt.Errorf("appending to memory: %w", err)
	}

	if created {
		fmt.Printf("Created section %q and added the entry.\n", memoryAppendSection)
	} else {
		fmt.Printf("Added entry under %q.\n", memoryAppendSection)
	}
	return nil
}
