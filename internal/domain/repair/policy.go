// Package repair decides whether a literal is mojibake and, if so, which
// reinterpretation of it reads best.
package repair

// Policy holds the tunable constants of detection and scoring. The defaults
// are calibrated for Arabic script; other alphabets need their own values.
type Policy struct {
	ArabicWeight      float64 `mapstructure:"arabic_weight"`
	HardMarkerWeight  float64 `mapstructure:"hard_marker_weight"`
	ReplacementWeight float64 `mapstructure:"replacement_weight"`
	LatinMarkerWeight float64 `mapstructure:"latin_marker_weight"`
	LatinLetterWeight float64 `mapstructure:"latin_letter_weight"`

	// Margin is how far a candidate must out-score the original text.
	Margin float64 `mapstructure:"margin"`
	// DensityThreshold is the hard-marker share of Arabic runes above which
	// a literal is suspect.
	DensityThreshold float64 `mapstructure:"density_threshold"`
	// MinRunes is the shortest text the detector looks at.
	MinRunes int `mapstructure:"min_runes"`
}

// DefaultPolicy returns the Arabic calibration.
func DefaultPolicy() Policy {
	return Policy{
		ArabicWeight:      2,
		HardMarkerWeight:  4,
		ReplacementWeight: 10,
		LatinMarkerWeight: 5,
		LatinLetterWeight: 0.5,
		Margin:            2,
		DensityThreshold:  0.28,
		MinRunes:          2,
	}
}
