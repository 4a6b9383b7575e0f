package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/initializ/rulekit/internal/tui"
	"github.com/initializ/rulekit/internal/tui/steps"
	"github.com/initializ/rulekit/templates"
	"github.com/initializ/rulekit/util"
)

// initOptions holds all the collected options for bundle scaffolding.
type initOptions struct {
	Name           string
	Provider       string
	BaseURL        string
	Model          string
	BaseModel      string
	Packs          []string
	Agent          string
	Force          bool
	NonInteractive bool
	Plain          bool // promptui prompts instead of the full-screen wizard
}

// templateData is passed to all templates during rendering.
type templateData struct {
	Name      string
	BundleID  string
	Agent     string
	Provider  string
	BaseURL   string
	Model     string
	BaseModel string
}

var initOpts initOptions

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new rules bundle in the current directory",
	Long:  "Init scaffolds rulekit.yaml, the bundle directory with rule packs, a memory file skeleton, and an eval suite. Runs an interactive wizard on a terminal; use flags otherwise.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initOpts.Name, "name", "", "project name (skips the name prompt)")
	initCmd.Flags().StringVar(&initOpts.Provider, "provider", "openai", "eval provider: openai or ollama")
	initCmd.Flags().StringVar(&initOpts.BaseURL, "base-url", "", "eval endpoint base URL")
	initCmd.Flags().StringVar(&initOpts.Model, "model", "", "model to evaluate")
	initCmd.Flags().StringVar(&initOpts.BaseModel, "base-model", "", "base model for comparison")
	initCmd.Flags().StringSliceVar(&initOpts.Packs, "packs", []string{"safety", "workflow", "memory-discipline"}, "rule packs to include")
	initCmd.Flags().StringVar(&initOpts.Agent, "agent", "cursor", "target agent: cursor, windsurf, or custom")
	initCmd.Flags().BoolVar(&initOpts.Force, "force", false, "overwrite an existing bundle")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "never prompt, use flags only")
	initCmd.Flags().BoolVar(&initOpts.Plain, "plain", false, "use plain prompts instead of the full-screen wizard")
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := initOpts
	if len(args) > 0 {
		opts.Name = args[0]
	}

	interactive := !opts.NonInteractive && term.IsTerminal(int(os.Stdin.Fd()))

	switch {
	case !interactive:
		if opts.Name == "" {
			return fmt.Errorf("--name is required in non-interactive mode")
		}
		if opts.Model == "" {
			opts.Model = "rules-lora"
		}
	case opts.Plain:
		if err := collectPlain(&opts); err != nil {
			return err
		}
	default:
		if err := collectWizard(&opts); err != nil {
			return err
		}
	}

	return scaffold(&opts)
}

// collectWizard runs the bubbletea wizard and copies its answers into opts.
func collectWizard(opts *initOptions) error {
	pal := tui.NewPalette(themeOverride)

	wizardSteps := []tui.Step{
		steps.NewNameStep(pal, opts.Name),
		steps.NewPacksStep(pal),
		steps.NewProviderStep(pal),
		steps.NewReviewStep(pal),
	}

	model := tui.NewWizardModel(pal, wizardSteps, appVersion)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	wizard, ok := finalModel.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("unexpected wizard model type")
	}
	if wizard.Err() != nil {
		return wizard.Err()
	}
	if !wizard.Done() {
		return fmt.Errorf("wizard cancelled")
	}

	answers := wizard.Answers()
	opts.Name = answers.Name
	opts.Packs = answers.Packs
	opts.Provider = answers.Provider
	opts.BaseURL = answers.BaseURL
	opts.Model = answers.Model
	return nil
}

// collectPlain collects the same answers through line-oriented prompts.
func collectPlain(opts *initOptions) error {
	var err error

	if opts.Name == "" {
		opts.Name, err = askText("Project name", "")
		if err != nil {
			return err
		}
	}

	opts.Provider, err = askSelect("Eval provider", []string{"openai", "ollama"})
	if err != nil {
		return err
	}

	opts.Model, err = askText("Model to evaluate", "rules-lora")
	if err != nil {
		return err
	}

	opts.BaseURL, err = askText("Base URL (empty for provider default)", "")
	if err != nil {
		return err
	}

	on := map[string]bool{"safety": true, "workflow": true, "memory-discipline": true}
	opts.Packs, err = askMultiSelect("Rule packs", []string{"safety", "workflow", "memory-discipline", "code-style"}, on)
	if err != nil {
		return err
	}

	ok, err := askConfirm(fmt.Sprintf("Create bundle %q here", util.Slugify(opts.Name)))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("init cancelled")
	}
	return nil
}

// scaffoldFile maps an embedded template to its output location.
type scaffoldFile struct {
	TemplatePath string
	OutputPath   string
}

// packTemplates maps pack names to their rule file templates.
var packTemplates = map[string]scaffoldFile{
	"safety":            {TemplatePath: "rules/safety.mdc.tmpl", OutputPath: "rules/safety.mdc"},
	"workflow":          {TemplatePath: "rules/workflow.mdc.tmpl", OutputPath: "rules/workflow.mdc"},
	"memory-discipline": {TemplatePath: "rules/memory-discipline.mdc.tmpl", OutputPath: "rules/memory-discipline.mdc"},
	"code-style":        {TemplatePath: "rules/code-style.md.tmpl", OutputPath: "rules/code-style.md"},
}

func getFileManifest(opts *initOptions) ([]scaffoldFile, error) {
	manifest := []scaffoldFile{
		{TemplatePath: "memory.md.tmpl", OutputPath: filepath.Join("memory", "memory.md")},
		{TemplatePath: "docs/README.md.tmpl", OutputPath: filepath.Join("docs", "README.md")},
	}
	for _, pack := range opts.Packs {
		f, ok := packTemplates[pack]
		if !ok {
			return nil, fmt.Errorf("unknown rule pack %q (known: safety, workflow, memory-discipline, code-style)", pack)
		}
		manifest = append(manifest, f)
	}
	return manifest, nil
}

func scaffold(opts *initOptions) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	bundleDir := filepath.Join(wd, ".cursor")
	if !opts.Force {
		if _, err := os.Stat(bundleDir); err == nil {
			return fmt.Errorf("bundle directory %q already exists (use --force to overwrite)", ".cursor")
		}
	}

	data := templateData{
		Name:      opts.Name,
		BundleID:  util.Slugify(opts.Name),
		Agent:     opts.Agent,
		Provider:  opts.Provider,
		BaseURL:   opts.BaseURL,
		Model:     opts.Model,
		BaseModel: opts.BaseModel,
	}

	manifest, err := getFileManifest(opts)
	if err != nil {
		return err
	}

	for _, subDir := range []string{"rules", "memory", "docs", "patches"} {
		if err := os.MkdirAll(filepath.Join(bundleDir, subDir), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", subDir, err)
		}
	}

	for _, f := range manifest {
		if err := renderTemplate(f.TemplatePath, filepath.Join(bundleDir, f.OutputPath), data); err != nil {
			return err
		}
	}

	// Top-level files live next to the bundle, not inside it.
	if err := renderTemplate("rulekit.yaml.tmpl", filepath.Join(wd, "rulekit.yaml"), data); err != nil {
		return err
	}
	if err := renderTemplate("eval-suite.yaml.tmpl", filepath.Join(wd, "eval-suite.yaml"), data); err != nil {
		return err
	}
	if err := appendGitignore(wd); err != nil {
		return err
	}

	fmt.Printf("\nCreated bundle %q in .cursor/\n", data.BundleID)
	fmt.Println("  rulekit validate      check the bundle")
	fmt.Println("  rulekit extract       build training data from memory.md")
	fmt.Println("  rulekit eval          score the fine-tuned model")
	return nil
}

func renderTemplate(templatePath, outPath string, data templateData) error {
	content, err := templates.GetInitTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(templatePath).Parse(content)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", templatePath, err)
	}

	if parentDir := filepath.Dir(outPath); parentDir != "." {
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", outPath, err)
	}

	if err := tmpl.Execute(out, data); err != nil {
		_ = out.Close()
		return fmt.Errorf("rendering template %s: %w", templatePath, err)
	}
	return out.Close()
}

// appendGitignore adds rulekit's ignore entries, creating .gitignore if needed.
func appendGitignore(dir string) error {
	content, err := templates.GetInitTemplate("gitignore.tmpl")
	if err != nil {
		return fmt.Errorf("reading gitignore template: %w", err)
	}

	path := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}
	if strings.Contains(string(existing), "# rulekit artifacts") {
		return nil
	}

	var out string
	if len(existing) > 0 {
		out = strings.TrimRight(string(existing), "\n") + "\n\n"
	}
	out += content

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
