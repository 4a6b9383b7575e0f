package eval

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// PrintReport writes a human-readable evaluation report.
func PrintReport(w io.Writer, res *Results) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, "MODEL EVALUATION REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 72))

	s := res.Summary
	fmt.Fprintln(w, "\nOverall performance:")
	fmt.Fprintf(w, "  Candidate average score: %.3f\n", s.Candidate.AverageScore)
	if s.Base != nil {
		fmt.Fprintf(w, "  Base average score:      %.3f\n", s.Base.AverageScore)
		fmt.Fprintf(w, "  Improvement:             %+.3f (%+.1f%%)\n",
			s.Improvement.ScoreImprovement, s.Improvement.PercentageImprovement)
	}

	fmt.Fprintln(w, "\nPerfect scores:")
	fmt.Fprintf(w, "  Candidate: %d/%d\n", s.Candidate.PerfectScores, len(res.Candidate))
	if s.Base != nil {
		fmt.Fprintf(w, "  Base:      %d/%d\n", s.Base.PerfectScores, len(res.Base))
	}

	fmt.Fprintln(w, "\nCategory performance:")
	categories := make([]string, 0, len(s.Candidate.CategoryScores))
	for cat := range s.Candidate.CategoryScores {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		score := s.Candidate.CategoryScores[cat]
		if s.Base != nil {
			base := s.Base.CategoryScores[cat]
			fmt.Fprintf(w, "  %s: %.3f (vs %.3f, %+.3f)\n", cat, score, base, score-base)
		} else {
			fmt.Fprintf(w, "  %s: %.3f\n", cat, score)
		}
	}

	fmt.Fprintln(w, "\nDetailed results:")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for i, r := range res.Candidate {
		fmt.Fprintf(w, "\n%d. %s", i+1, r.Category)
		if r.Difficulty != "" {
			fmt.Fprintf(w, " - %s", strings.ToUpper(r.Difficulty))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "   Question: %s\n", r.Question)
		fmt.Fprintf(w, "   Score: %.3f (%d/%d)\n", r.Score, r.Matches, r.TotalKeywords)
		if len(r.MatchedKeywords) > 0 {
			fmt.Fprintf(w, "   Matched: %s\n", strings.Join(r.MatchedKeywords, ", "))
		}
	}
}

// SaveResults writes the full results, including per-case responses, as JSON.
func SaveResults(path string, res *Results) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}
