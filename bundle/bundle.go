// Package bundle models the on-disk agent rules bundle: the marker directory
// (by convention ".cursor") holding rules/, memory/, docs/, and patches/.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Layout locates a bundle inside a project.
type Layout struct {
	Root string // project root
	Dir  string // marker directory name, e.g. ".cursor"
}

// Discover verifies that the marker directory exists under projectRoot and
// returns the layout. It does not create anything.
func Discover(projectRoot, bundleDir string) (*Layout, error) {
	marker := filepath.Join(projectRoot, bundleDir)
	info, err := os.Stat(marker)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("marker directory %s not found (not a rules bundle project)", marker)
		}
		return nil, fmt.Errorf("checking marker directory %s: %w", marker, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("marker path %s is not a directory", marker)
	}
	return &Layout{Root: projectRoot, Dir: bundleDir}, nil
}

// Path returns the absolute path of the marker directory.
func (l *Layout) Path() string {
	return filepath.Join(l.Root, l.Dir)
}

// RulesDir returns the rules directory path.
func (l *Layout) RulesDir() string {
	return filepath.Join(l.Path(), "rules")
}

// MemoryFile returns the memory file path.
func (l *Layout) MemoryFile() string {
	return filepath.Join(l.Path(), "memory", "memory.md")
}

// DocsDir returns the docs directory path.
func (l *Layout) DocsDir() string {
	return filepath.Join(l.Path(), "docs")
}

// PatchesDir returns the patches directory path.
func (l *Layout) PatchesDir() string {
	return filepath.Join(l.Path(), "patches")
}

// Rules parses every rule file under rules/, sorted by file name.
// A missing rules directory yields an empty slice, not an error.
func (l *Layout) Rules() ([]Rule, error) {
	dir := l.RulesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading rules directory %s: %w", dir, err)
	}

	var rules []Rule
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".md" && ext != ".mdc" {
			continue
		}
		rule, err := ParseRuleFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing rule %s: %w", e.Name(), err)
		}
		rules = append(rules, *rule)
	}

	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules, nil
}
