package cmd

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const extractableMemory = `## Environment Gotchas

### Frontend Dependencies

- **Peer Conflicts**: install with --legacy-peer-deps.

## Critical Commands

### Restart The Backend

` + "```bash\nmake restart\n```\n"

func TestRunExtract_WritesJSONL(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, ".cursor/memory/memory.md", extractableMemory)
	chdir(t, dir)

	outPath := filepath.Join(dir, "out.jsonl")
	oldOut, oldFormat := extractOutput, extractFormat
	extractOutput, extractFormat = outPath, "jsonl"
	defer func() { extractOutput, extractFormat = oldOut, oldFormat }()

	if err := runExtract(nil, nil); err != nil {
		t.Fatalf("runExtract() error: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		if rec["instruction"] == "" || rec["response"] == "" {
			t.Errorf("line %d missing fields: %v", lines+1, rec)
		}
		lines++
	}
	if lines != 2 {
		t.Errorf("expected 2 records, got %d", lines)
	}
}

func TestRunExtract_NoMemoryFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	oldOut := extractOutput
	extractOutput = filepath.Join(dir, "out.jsonl")
	defer func() { extractOutput = oldOut }()

	if err := runExtract(nil, nil); err == nil {
		t.Fatal("expected error when memory file is missing")
	}
}

func TestRunExtract_NoRecords(t *testing.T) {
	dir := t.TempDir()
	writeBundleFile(t, dir, ".cursor/memory/memory.md", "## Random Thoughts\n\nNothing extractable.\n")
	chdir(t, dir)

	oldOut := extractOutput
	extractOutput = filepath.Join(dir, "out.jsonl")
	defer func() { extractOutput = oldOut }()

	err := runExtract(nil, nil)
	if err == nil {
		t.Fatal("expected error when no examples are found")
	}
	if !strings.Contains(err.Error(), "no training examples") {
		t.Errorf("error = %v", err)
	}
	if _, statErr := os.Stat(extractOutput); !os.IsNotExist(statErr) {
		t.Error("output file was written despite zero records")
	}
}
