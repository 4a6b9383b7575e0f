package bundle

import "testing"

func TestParseRule_Frontmatter(t *testing.T) {
	source := []byte(`---
description: Never run destructive shell commands without confirmation.
globs:
  - "**/*.sh"
alwaysApply: true
---

# No Destructive Commands

The agent must never run rm -rf or force-push without asking.
`)
	rule, err := ParseRule("rules/no-destructive-commands.md", source)
	if err != nil {
		t.Fatalf("ParseRule error: %v", err)
	}
	if rule.Name != "no-destructive-commands" {
		t.Errorf("Name = %q", rule.Name)
	}
	if rule.Title != "No Destructive Commands" {
		t.Errorf("Title = %q, want No Destructive Commands", rule.Title)
	}
	if rule.Description == "" {
		t.Error("Description is empty")
	}
	if !rule.AlwaysApply {
		t.Error("AlwaysApply = false, want true")
	}
	if len(rule.Globs) != 1 || rule.Globs[0] != "**/*.sh" {
		t.Errorf("Globs = %v", rule.Globs)
	}
}

func TestParseRule_TitleFromFrontmatter(t *testing.T) {
	source := []byte(`---
title: Commit Style
description: Commit message conventions.
---

Body without a heading.
`)
	rule, err := ParseRule("rules/commit-style.md", source)
	if err != nil {
		t.Fatalf("ParseRule error: %v", err)
	}
	if rule.Title != "Commit Style" {
		t.Errorf("Title = %q, want Commit Style", rule.Title)
	}
}

func TestParseRule_NoFrontmatterNoHeading(t *testing.T) {
	source := []byte("Just a plain paragraph of rule text.\n")
	rule, err := ParseRule("rules/memory-discipline.md", source)
	if err != nil {
		t.Fatalf("ParseRule error: %v", err)
	}
	if rule.Title != "Memory Discipline" {
		t.Errorf("Title = %q, want Memory Discipline", rule.Title)
	}
	if rule.Description != "" {
		t.Errorf("Description = %q, want empty", rule.Description)
	}
}
