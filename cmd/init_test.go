package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func scaffoldTestOpts() *initOptions {
	return &initOptions{
		Name:           "My Project",
		Provider:       "openai",
		Model:          "rules-lora",
		Packs:          []string{"safety", "workflow", "memory-discipline"},
		Agent:          "cursor",
		NonInteractive: true,
	}
}

func TestScaffold_CreatesBundle(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := scaffold(scaffoldTestOpts()); err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}

	for _, rel := range []string{
		"rulekit.yaml",
		"eval-suite.yaml",
		".gitignore",
		".cursor/rules/safety.mdc",
		".cursor/rules/workflow.mdc",
		".cursor/rules/memory-discipline.mdc",
		".cursor/memory/memory.md",
		".cursor/docs/README.md",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	// patches dir exists even though nothing is scaffolded into it
	if info, err := os.Stat(filepath.Join(dir, ".cursor", "patches")); err != nil || !info.IsDir() {
		t.Error("patches directory not created")
	}

	cfgData, err := os.ReadFile(filepath.Join(dir, "rulekit.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfgData), "bundle_id: my-project") {
		t.Errorf("rulekit.yaml missing slugified bundle_id:\n%s", cfgData)
	}
	if !strings.Contains(string(cfgData), "model: rules-lora") {
		t.Errorf("rulekit.yaml missing model:\n%s", cfgData)
	}
}

func TestScaffold_RefusesExistingBundle(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.Mkdir(filepath.Join(dir, ".cursor"), 0755); err != nil {
		t.Fatal(err)
	}

	err := scaffold(scaffoldTestOpts())
	if err == nil {
		t.Fatal("expected error for existing bundle without --force")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error = %v", err)
	}
}

func TestScaffold_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.Mkdir(filepath.Join(dir, ".cursor"), 0755); err != nil {
		t.Fatal(err)
	}

	opts := scaffoldTestOpts()
	opts.Force = true
	if err := scaffold(opts); err != nil {
		t.Fatalf("scaffold() error with --force: %v", err)
	}
}

func TestScaffold_UnknownPack(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	opts := scaffoldTestOpts()
	opts.Packs = []string{"safety", "nonexistent"}
	if err := scaffold(opts); err == nil {
		t.Fatal("expected error for unknown rule pack")
	}
}

func TestScaffold_ValidatesCleanly(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := scaffold(scaffoldTestOpts()); err != nil {
		t.Fatalf("scaffold() error: %v", err)
	}

	oldCfg := cfgFile
	cfgFile = filepath.Join(dir, "rulekit.yaml")
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = true
	defer func() { strict = oldStrict }()

	// A fresh scaffold must pass its own strict validation.
	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("fresh scaffold fails validation: %v", err)
	}
}
