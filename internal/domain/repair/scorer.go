package repair

// Scorer rates how much a string looks like clean Arabic text.
type Scorer struct {
	policy Policy
}

// NewScorer builds a scorer for policy.
func NewScorer(policy Policy) Scorer {
	return Scorer{policy: policy}
}

// Score rates text; higher is better.
func (s Scorer) Score(text string) float64 {
	return s.scoreProfile(Analyze(text))
}

func (s Scorer) scoreProfile(p Profile) float64 {
	w := s.policy

	return w.ArabicWeight*float64(p.Arabic) -
		w.HardMarkerWeight*float64(p.Hard) -
		w.ReplacementWeight*float64(p.Replacement) -
		w.LatinMarkerWeight*float64(p.LatinMarkers) -
		w.LatinLetterWeight*float64(p.LatinLetters)
}
