package bundle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/initializ/rulekit/util"
)

// Rule is a single behavioral constraint document for the agent.
type Rule struct {
	Path        string
	Name        string // file stem, e.g. "memory-discipline"
	Title       string
	Description string
	Globs       []string
	AlwaysApply bool
	Body        []byte // markdown body without frontmatter
}

// ruleFrontmatter is the .mdc-style metadata block at the top of a rule file.
type ruleFrontmatter struct {
	Description string   `yaml:"description"`
	Globs       []string `yaml:"globs"`
	AlwaysApply bool     `yaml:"alwaysApply"`
	Title       string   `yaml:"title"`
}

// ParseRule parses rule source bytes. The title comes from frontmatter, then
// the first markdown heading, then the humanized file stem.
func ParseRule(path string, source []byte) (*Rule, error) {
	var meta ruleFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	title := meta.Title
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = util.Humanize(name)
	}

	return &Rule{
		Path:        path,
		Name:        name,
		Title:       title,
		Description: meta.Description,
		Globs:       meta.Globs,
		AlwaysApply: meta.AlwaysApply,
		Body:        body,
	}, nil
}

// ParseRuleFile reads and parses a rule file from disk.
func ParseRuleFile(path string) (*Rule, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRule(path, source)
}

// firstHeading walks the goldmark AST and returns the text of the first
// heading, or "" when the body has none.
func firstHeading(body []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(string(h.Text(body)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
