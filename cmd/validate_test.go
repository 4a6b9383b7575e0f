package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestRulekitYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "rulekit.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing rulekit.yaml: %v", err)
	}
	return path
}

func writeBundleFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestRulekitYAML(t, dir, `
bundle_id: test-bundle
version: 0.1.0
agent: cursor
`)
	writeBundleFile(t, dir, ".cursor/rules/safety.md", "# Safety\n")
	writeBundleFile(t, dir, ".cursor/memory/memory.md", "## Key Lessons Learned\n")

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestRulekitYAML(t, dir, `
bundle_id: INVALID_ID!
version: not-semver
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestRunValidate_StrictMode(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestRulekitYAML(t, dir, `
bundle_id: test-bundle
version: 0.1.0
agent: some-unknown-agent
`)
	writeBundleFile(t, dir, ".cursor/rules/safety.md", "# Safety\n")
	writeBundleFile(t, dir, ".cursor/memory/memory.md", "## Key Lessons Learned\n")

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = true
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected error in strict mode with unknown agent warning")
	}
}

func TestRunValidate_UnrecognizedMemorySection(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestRulekitYAML(t, dir, `
bundle_id: test-bundle
version: 0.1.0
`)
	writeBundleFile(t, dir, ".cursor/rules/safety.md", "# Safety\n")
	writeBundleFile(t, dir, ".cursor/memory/memory.md", "## Random Musings\n\n- **Idea**: x.\n")

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = true
	defer func() { strict = oldStrict }()

	// Unrecognized section is a warning, which strict mode promotes.
	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected strict failure for unrecognized memory section")
	}
}
