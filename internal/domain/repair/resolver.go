package repair

import (
	m "github.com/mouse-blink/mojifix/internal/model"
)

// Resolution is the outcome for one literal.
type Resolution struct {
	Original string
	Text     string
	// Suspect reports that the detector flagged the original.
	Suspect bool
	// Changed reports that Text differs from Original.
	Changed bool
	// Residual reports that the original carries a replacement rune or a
	// Latin/punctuation mojibake marker. Hard-marker density alone does not
	// count: plenty of valid words contain TAH or ZAH.
	Residual   bool
	Winner     m.Candidate
	Candidates []m.Candidate
}

// Unresolved reports a literal that was kept as is while still showing a
// corruption marker.
func (r Resolution) Unresolved() bool {
	return r.Suspect && !r.Changed && r.Residual
}

// Resolver chains detection, candidate generation and scoring.
type Resolver struct {
	policy    Policy
	detector  Detector
	scorer    Scorer
	generator *Generator
}

// NewResolver builds a resolver. gen is shared read-only across goroutines.
func NewResolver(policy Policy, gen *Generator) *Resolver {
	if gen == nil {
		gen = NewGenerator()
	}

	return &Resolver{
		policy:    policy,
		detector:  NewDetector(policy),
		scorer:    NewScorer(policy),
		generator: gen,
	}
}

// Resolve returns the best reading of text. The original wins unless a
// candidate beats it by more than the policy margin.
func (r *Resolver) Resolve(text string) Resolution {
	identity := m.Candidate{Text: text, Provenance: m.ProvenanceIdentity}
	res := Resolution{Original: text, Text: text, Winner: identity}

	profile := Analyze(text)
	if !r.detector.suspect(profile) {
		return res
	}

	res.Suspect = true
	res.Residual = profile.Replacement > 0 || profile.LatinMarkers > 0
	res.Candidates = r.generator.Candidates(text)

	best := 0

	for i := range res.Candidates {
		res.Candidates[i].Score = r.scorer.Score(res.Candidates[i].Text)
		if res.Candidates[i].Score > res.Candidates[best].Score {
			best = i
		}
	}

	identityScore := res.Candidates[0].Score
	res.Winner = res.Candidates[0]

	if res.Candidates[best].Score > identityScore+r.policy.Margin {
		res.Winner = res.Candidates[best]
		res.Text = res.Winner.Text
		res.Changed = res.Text != text
	}

	return res
}
