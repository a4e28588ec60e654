package match

import (
	"sort"
)

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.6

// DefaultMaxSuggestions caps how many names Suggest returns.
const DefaultMaxSuggestions = 3

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates sorted by descending score.
type CandidateList []Candidate

// Rank scores every known name against name and returns them sorted by
// descending similarity, ties broken alphabetically.
func Rank(name string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))
	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: NormalizedSimilarity(name, k)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to DefaultMaxSuggestions known names close to name.
// An exact (normalized) match is never an error case, so it is returned alone.
func Suggest(name string, known []string) []string {
	ranked := Rank(name, known).AboveThreshold(DefaultMinScore)
	if len(ranked) == 0 {
		return nil
	}

	if ranked[0].Score == 1.0 {
		return []string{ranked[0].Name}
	}

	return ranked.Top(DefaultMaxSuggestions).Names()
}
