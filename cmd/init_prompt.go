package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// askText reads one line, falling back to def on an empty submission.
func askText(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def}
	val, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return val, nil
}

// askSelect picks one of items.
func askSelect(label string, items []string) (string, error) {
	s := promptui.Select{Label: label, Items: items}
	_, val, err := s.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return val, nil
}

// askMultiSelect toggles items through a repeated select list. Picking an
// item flips it; the trailing "done" entry confirms the set. on holds the
// initial toggles and is mutated in place.
func askMultiSelect(label string, items []string, on map[string]bool) ([]string, error) {
	for {
		rows := make([]string, 0, len(items)+1)
		for _, item := range items {
			mark := "[ ]"
			if on[item] {
				mark = "[x]"
			}
			rows = append(rows, mark+" "+item)
		}
		rows = append(rows, "done")

		s := promptui.Select{Label: label, Items: rows, Size: len(rows)}
		idx, _, err := s.Run()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", label, err)
		}
		if idx == len(items) {
			break
		}
		on[items[idx]] = !on[items[idx]]
	}

	var chosen []string
	for _, item := range items {
		if on[item] {
			chosen = append(chosen, item)
		}
	}
	return chosen, nil
}

// askConfirm asks a yes/no question. Declining is a false answer, not an
// error; only an interrupt aborts.
func askConfirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, fmt.Errorf("prompt interrupted")
		}
		return false, nil
	}
	return true, nil
}
