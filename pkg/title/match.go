package title

import (
	"github.com/hbollon/go-edlib"
)

// Confidence grades a fuzzy title comparison.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.85
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
	ConfidenceExact                    // cleaned titles are equal
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "none"
	}
}

// Compare returns the Jaro-Winkler similarity of two cleaned titles and
// its confidence grade.
func Compare(a, b string) (float64, Confidence) {
	ca, cb := Clean(a), Clean(b)
	if ca == cb {
		return 1, ConfidenceExact
	}
	if ca == "" || cb == "" {
		return 0, ConfidenceNone
	}
	score := float64(edlib.JaroWinklerSimilarity(ca, cb))
	switch {
	case score >= 0.95:
		return score, ConfidenceHigh
	case score >= 0.85:
		return score, ConfidenceMedium
	default:
		return score, ConfidenceNone
	}
}

// Matches reports whether a library entry is the catalog's title. Years
// must agree when both are known; titles must be equal once cleaned, or
// highly similar.
func Matches(want string, wantYear int, got string, gotYear int) bool {
	if wantYear > 0 && gotYear > 0 && wantYear != gotYear {
		return false
	}
	_, conf := Compare(want, got)
	return conf >= ConfidenceHigh
}
