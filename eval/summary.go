package eval

// ModelSummary aggregates one model's case results.
type ModelSummary struct {
	AverageScore   float64            `json:"average_score"`
	TotalMatches   int                `json:"total_matches"`
	PerfectScores  int                `json:"perfect_scores"`
	ZeroScores     int                `json:"zero_scores"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// Improvement compares the candidate against the base model.
type Improvement struct {
	ScoreImprovement      float64 `json:"score_improvement"`
	PercentageImprovement float64 `json:"percentage_improvement"`
	BetterPerformance     bool    `json:"better_performance"`
}

// Summary holds the aggregate statistics for a run.
type Summary struct {
	Candidate   ModelSummary  `json:"candidate"`
	Base        *ModelSummary `json:"base,omitempty"`
	Improvement *Improvement  `json:"improvement,omitempty"`
}

func summarize(res *Results) Summary {
	s := Summary{Candidate: summarizeModel(res.Candidate)}
	if res.Base == nil {
		return s
	}

	base := summarizeModel(res.Base)
	s.Base = &base

	imp := Improvement{
		ScoreImprovement:  s.Candidate.AverageScore - base.AverageScore,
		BetterPerformance: s.Candidate.AverageScore > base.AverageScore,
	}
	if base.AverageScore > 0 {
		imp.PercentageImprovement = imp.ScoreImprovement / base.AverageScore * 100
	}
	s.Improvement = &imp
	return s
}

func summarizeModel(results []CaseResult) ModelSummary {
	sum := ModelSummary{CategoryScores: map[string]float64{}}
	if len(results) == 0 {
		return sum
	}

	counts := map[string]int{}
	var total float64
	for _, r := range results {
		total += r.Score
		sum.TotalMatches += r.Matches
		if r.Score == 1.0 {
			sum.PerfectScores++
		}
		if r.Score == 0.0 {
			sum.ZeroScores++
		}
		sum.CategoryScores[r.Category] += r.Score
		counts[r.Category]++
	}
	sum.AverageScore = total / float64(len(results))
	for cat, n := range counts {
		sum.CategoryScores[cat] /= float64(n)
	}
	return sum
}
