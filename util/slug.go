// Package util provides shared utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumHyphen = regexp.MustCompile(`[^a-z0-9-]`)
	multipleHyphens   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a human-readable name into an ID-safe slug.
// It lowercases, replaces spaces with hyphens, strips non-[a-z0-9-],
// collapses multiple hyphens, and trims leading/trailing hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonAlphanumHyphen.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// Humanize turns a slug or file stem into a display title:
// hyphens and underscores become spaces and each word is capitalized.
func Humanize(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(slug))
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
