package memory

import (
	"fmt"
	"os"
	"strings"
)

// AppendBullet appends "- <text>" to the section with the given heading,
// creating the section at the end of the file when it is absent. The file is
// created when missing. Returns true when the section was created.
func AppendBullet(path, heading, text string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading memory file %s: %w", path, err)
	}

	lines := []string{}
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	headingLine := "## " + heading
	sectionIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == headingLine {
			sectionIdx = i
			break
		}
	}

	created := false
	if sectionIdx < 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, headingLine, "", "- "+text)
		created = true
	} else {
		// Insert before the next "## " heading, trimming trailing blanks
		// so the bullet lands at the end of the section body.
		end := len(lines)
		for i := sectionIdx + 1; i < len(lines); i++ {
			t := strings.TrimSpace(lines[i])
			if strings.HasPrefix(t, "## ") && !strings.HasPrefix(t, "###") {
				end = i
				break
			}
		}
		insert := end
		for insert > sectionIdx+1 && strings.TrimSpace(lines[insert-1]) == "" {
			insert--
		}

		updated := make([]string, 0, len(lines)+1)
		updated = append(updated, lines[:insert]...)
		updated = append(updated, "- "+text)
		updated = append(updated, lines[insert:]...)
		lines = updated
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, fmt.Errorf("writing memory file %s: %w", path, err)
	}
	return created, nil
}
