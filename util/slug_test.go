package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Rules Bundle", "my-rules-bundle"},
		{"hello world", "hello-world"},
		{"  Leading Spaces  ", "leading-spaces"},
		{"UPPER CASE", "upper-case"},
		{"special!@#$%chars", "specialchars"},
		{"multiple---hyphens", "multiple-hyphens"},
		{"--leading-trailing--", "leading-trailing"},
		{"123-numbers-456", "123-numbers-456"},
		{"", ""},
		{"---", ""},
		{"a", "a"},
		{"café-bundle", "caf-bundle"},
		{"my_bundle_name", "mybundlename"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"memory-discipline", "Memory Discipline"},
		{"code_style", "Code Style"},
		{"safety", "Safety"},
		{"", ""},
		{"  no-destructive-commands ", "No Destructive Commands"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Humanize(tt.input)
			if got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
