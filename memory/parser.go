// Package memory parses the agent memory file: a free-form markdown document
// whose structure is convention (headings, bold-label bullets, code fences),
// not a validated grammar. Unrecognized content is carried silently, never an
// error.
package memory

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Document is a parsed memory file.
type Document struct {
	Sections []Section
}

// Section is one "## Heading" block. Top-level sections may hold "### "
// subsections; bullets, code blocks, and env lines attach to the innermost
// open section.
type Section struct {
	Heading     string
	Bullets     []Bullet
	CodeBlocks  []CodeBlock
	EnvLines    []EnvLine
	Subsections []Section
}

// Bullet is a "- **Label**: description" line. Descriptions may wrap onto
// following lines until a blank line, another bullet, or a heading.
type Bullet struct {
	Label       string
	Description string
}

// CodeBlock is a fenced code block with its info string.
type CodeBlock struct {
	Lang    string
	Content string
}

// EnvLine is a NAME=value assignment, matched anywhere in a line, inside
// or outside code fences. The value runs to the end of the line, so
// "export PORT=4000" yields PORT with value "4000".
type EnvLine struct {
	Name  string
	Value string
}

var (
	bulletPattern = regexp.MustCompile(`^- \*\*(.+?)\*\*:\s*(.*)$`)
	envPattern    = regexp.MustCompile(`([A-Z][A-Z0-9_]*)=(.+)`)
)

// Parse reads a memory document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var (
		top        *Section
		sub        *Section
		openBullet *Bullet
		inFence    bool
		fenceLang  string
		fenceLines []string
	)

	active := func() *Section {
		if sub != nil {
			return sub
		}
		return top
	}

	closeBullet := func() {
		if openBullet == nil {
			return
		}
		if sec := active(); sec != nil {
			openBullet.Description = strings.TrimSpace(openBullet.Description)
			sec.Bullets = append(sec.Bullets, *openBullet)
		}
		openBullet = nil
	}

	closeSub := func() {
		closeBullet()
		if sub != nil && top != nil {
			top.Subsections = append(top.Subsections, *sub)
		}
		sub = nil
	}

	closeTop := func() {
		closeSub()
		if top != nil {
			doc.Sections = append(doc.Sections, *top)
		}
		top = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if inFence {
			if trimmed == "```" {
				inFence = false
				if sec := active(); sec != nil {
					sec.CodeBlocks = append(sec.CodeBlocks, CodeBlock{
						Lang:    fenceLang,
						Content: strings.Join(fenceLines, "\n"),
					})
				}
				fenceLines = nil
				continue
			}
			fenceLines = append(fenceLines, line)
			// Env assignments count even inside fences.
			if m := envPattern.FindStringSubmatch(trimmed); m != nil {
				if sec := active(); sec != nil {
					sec.EnvLines = append(sec.EnvLines, EnvLine{Name: m[1], Value: m[2]})
				}
			}
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "```"):
			closeBullet()
			inFence = true
			fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))

		case strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "###"):
			closeTop()
			top = &Section{Heading: strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))}

		case strings.HasPrefix(trimmed, "### "):
			closeSub()
			heading := strings.TrimSpace(strings.TrimPrefix(trimmed, "### "))
			if top == nil {
				top = &Section{Heading: heading}
			} else {
				sub = &Section{Heading: heading}
			}

		case strings.HasPrefix(trimmed, "#"):
			// Other heading levels terminate an open bullet but are not sections.
			closeBullet()

		case trimmed == "":
			closeBullet()

		default:
			if m := bulletPattern.FindStringSubmatch(trimmed); m != nil {
				closeBullet()
				openBullet = &Bullet{Label: m[1], Description: m[2]}
				continue
			}
			if m := envPattern.FindStringSubmatch(trimmed); m != nil {
				closeBullet()
				if sec := active(); sec != nil {
					sec.EnvLines = append(sec.EnvLines, EnvLine{Name: m[1], Value: m[2]})
				}
				continue
			}
			if openBullet != nil {
				// Continuation of a wrapped bullet description.
				if openBullet.Description != "" {
					openBullet.Description += " "
				}
				openBullet.Description += trimmed
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	closeTop()
	return doc, nil
}

// Section returns the top-level section with the given heading, or nil.
func (d *Document) Section(heading string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Heading == heading {
			return &d.Sections[i]
		}
	}
	return nil
}

// Subsection returns the subsection with the given heading, or nil.
func (s *Section) Subsection(heading string) *Section {
	for i := range s.Subsections {
		if s.Subsections[i].Heading == heading {
			return &s.Subsections[i]
		}
	}
	return nil
}
