// Package migrate copies a rules bundle from a source tree into a destination
// project, backing up files it overwrites. Planning is separated from applying
// so a plan can be printed without touching the destination, and so that no
// write happens at all when the marker directory or source tree is missing.
package migrate

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Op describes what Apply will do for one file.
type Op int

const (
	// OpCopy copies the source file to a destination that does not exist yet.
	OpCopy Op = iota
	// OpBackupCopy writes one .bak copy of the existing destination, then overwrites it.
	OpBackupCopy
	// OpSkip leaves an identical destination file untouched.
	OpSkip
)

// String returns the op name for plan output.
func (o Op) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpBackupCopy:
		return "backup+copy"
	case OpSkip:
		return "skip"
	}
	return "unknown"
}

// Action is one planned file operation.
type Action struct {
	Source string
	Dest   string
	Backup string // set only for OpBackupCopy
	Op     Op
}

// Plan is the ordered set of actions for one migration run.
type Plan struct {
	Actions []Action
}

// Result summarizes an applied plan.
type Result struct {
	Copied  int
	Backups int
	Skipped int
}

// migrated file set, relative to the bundle directory: every rule and doc
// markdown file, the memory file, and everything under patches.
var bundleGlobs = []struct {
	dir     string
	pattern string
	recurse bool
}{
	{dir: "rules", pattern: "*.md"},
	{dir: "rules", pattern: "*.mdc"},
	{dir: "docs", pattern: "*.md"},
	{dir: filepath.Join("memory"), pattern: "memory.md"},
	{dir: "patches", pattern: "*", recurse: true},
}

// BuildPlan inspects the source bundle and the destination project and returns
// the actions Apply would take. It fails, without planning any write, when the
// destination marker directory or the source bundle tree is missing.
func BuildPlan(sourceRoot, projectRoot, bundleDir string) (*Plan, error) {
	destMarker := filepath.Join(projectRoot, bundleDir)
	if info, err := os.Stat(destMarker); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("marker directory %s not found: run from a project that contains %s", destMarker, bundleDir)
	}

	srcBundle := filepath.Join(sourceRoot, bundleDir)
	if info, err := os.Stat(srcBundle); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source bundle %s not found", srcBundle)
	}

	plan := &Plan{}
	for _, g := range bundleGlobs {
		srcDir := filepath.Join(srcBundle, g.dir)
		files, err := collectFiles(srcDir, g.pattern, g.recurse)
		if err != nil {
			return nil, err
		}
		for _, rel := range files {
			src := filepath.Join(srcDir, rel)
			dest := filepath.Join(destMarker, g.dir, rel)
			action, err := planFile(src, dest)
			if err != nil {
				return nil, err
			}
			plan.Actions = append(plan.Actions, action)
		}
	}
	return plan, nil
}

func collectFiles(dir, pattern string, recurse bool) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	if !recurse {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("globbing %s: %w", dir, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				files = append(files, filepath.Base(m))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

func planFile(src, dest string) (Action, error) {
	srcData, err := os.ReadFile(src)
	if err != nil {
		return Action{}, fmt.Errorf("reading source %s: %w", src, err)
	}

	destData, err := os.ReadFile(dest)
	if err != nil {
		if os.IsNotExist(err) {
			return Action{Source: src, Dest: dest, Op: OpCopy}, nil
		}
		return Action{}, fmt.Errorf("reading destination %s: %w", dest, err)
	}

	if bytes.Equal(srcData, destData) {
		return Action{Source: src, Dest: dest, Op: OpSkip}, nil
	}
	return Action{Source: src, Dest: dest, Backup: dest + ".bak", Op: OpBackupCopy}, nil
}

// Apply executes the plan in order.
func (p *Plan) Apply() (*Result, error) {
	res := &Result{}
	for _, a := range p.Actions {
		switch a.Op {
		case OpSkip:
			res.Skipped++
			continue

		case OpBackupCopy:
			destData, err := os.ReadFile(a.Dest)
			if err != nil {
				return res, fmt.Errorf("reading %s for backup: %w", a.Dest, err)
			}
			if err := os.WriteFile(a.Backup, destData, 0o644); err != nil {
				return res, fmt.Errorf("writing backup %s: %w", a.Backup, err)
			}
			res.Backups++
			fallthrough

		case OpCopy:
			if err := os.MkdirAll(filepath.Dir(a.Dest), 0o755); err != nil {
				return res, fmt.Errorf("creating directory for %s: %w", a.Dest, err)
			}
			srcData, err := os.ReadFile(a.Source)
			if err != nil {
				return res, fmt.Errorf("reading source %s: %w", a.Source, err)
			}
			if err := os.WriteFile(a.Dest, srcData, 0o644); err != nil {
				return res, fmt.Errorf("writing %s: %w", a.Dest, err)
			}
			res.Copied++
		}
	}
	return res, nil
}
