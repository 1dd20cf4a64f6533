package format

import "sort"

// MatchKind classifies the outcome of matching a header against the known
// definitions.
type MatchKind int

const (
	// NoMatch means no definition had all its required columns in the header.
	NoMatch MatchKind = iota
	// Matched means exactly one definition applies.
	Matched
	// Ambiguous means several definitions apply; Candidates lists them in
	// deterministic order for the caller to disambiguate.
	Ambiguous
)

// Candidate pairs a definition with its signature score: the fraction of its
// required columns found in the header.
type Candidate struct {
	Definition *Definition
	Score      float64
}

// MatchResult is the outcome of Match. Definition is set only when Kind is
// Matched; Candidates is set for Matched (one entry) and Ambiguous.
type MatchResult struct {
	Kind       MatchKind
	Definition *Definition
	Candidates []Candidate
}

// Match decides which of the known definitions applies to a file with the
// given header. Labels are compared case-insensitively with whitespace
// collapsed. A definition is a candidate only when every required column is
// present (score 1.0). Pure function: no I/O, safe to call concurrently.
func Match(header []string, known []*Definition) MatchResult {
	present := make(map[string]bool, len(header))
	for _, label := range header {
		present[NormalizeLabel(label)] = true
	}

	var candidates []Candidate

	for _, def := range known {
		required := def.RequiredColumns()

		found := 0

		for _, col := range required {
			if present[NormalizeLabel(col)] {
				found++
			}
		}

		score := float64(found) / float64(len(required))
		if score == 1.0 {
			candidates = append(candidates, Candidate{Definition: def, Score: score})
		}
	}

	// Descending score, then name, so Ambiguous output is stable across calls.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Definition.Name < candidates[j].Definition.Name
	})

	switch len(candidates) {
	case 0:
		return MatchResult{Kind: NoMatch}
	case 1:
		return MatchResult{Kind: Matched, Definition: candidates[0].Definition, Candidates: candidates}
	default:
		return MatchResult{Kind: Ambiguous, Candidates: candidates}
	}
}
