package repair

// Detector is a heuristic mojibake classifier. False negatives leave good
// text alone; false positives are filtered later because a replacement has
// to out-score the original.
type Detector struct {
	policy Policy
}

// NewDetector builds a detector for policy.
func NewDetector(policy Policy) Detector {
	return Detector{policy: policy}
}

// IsSuspect reports whether text is likely mojibake.
func (d Detector) IsSuspect(text string) bool {
	return d.suspect(Analyze(text))
}

func (d Detector) suspect(p Profile) bool {
	minRunes := d.policy.MinRunes
	if minRunes < 1 {
		minRunes = 1
	}

	if p.Runes < minRunes {
		return false
	}

	if p.LatinMojibake > 0 {
		return true
	}

	if p.Arabic == 0 {
		return false
	}

	return float64(p.Hard)/float64(p.Arabic) > d.policy.DensityThreshold
}
