package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMemoryAppend_ExistingSection(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, ".cursor/memory/memory.md", "## Key Lessons Learned\n\n- **First**: already here.\n")
	chdir(t, dir)

	oldSection := memoryAppendSection
	memoryAppendSection = "Key Lessons Learned"
	defer func() { memoryAppendSection = oldSection }()

	if err := runMemoryAppend(nil, []string{"**Second**: added by the test."}); err != nil {
		t.Fatalf("runMemoryAppend() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".cursor", "memory", "memory.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "- **Second**: added by the test.") {
		t.Errorf("bullet not appended:\n%s", data)
	}
}

func TestRunMemoryAppend_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".cursor", "memory"), 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	oldSection := memoryAppendSection
	memoryAppendSection = "Environment Gotchas"
	defer func() { memoryAppendSection = oldSection }()

	if err := runMemoryAppend(nil, []string{"**Tmpfs**: /tmp is wiped on reboot."}); err != nil {
		t.Fatalf("runMemoryAppend() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".cursor", "memory", "memory.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## Environment Gotchas") {
		t.Errorf("section not created:\n%s", data)
	}
}

func TestRunMemorySections_MissingFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := runMemorySections(nil, nil); err == nil {
		t.Fatal("expected error when memory file is missing")
	}
}
