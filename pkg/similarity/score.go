package similarity

import "unicode/utf8"

// Score returns the normalized Levenshtein similarity of a and b in [0, 1].
//
// Equal strings, including two empty strings, score exactly 1. When exactly
// one side is empty the score is 0 without computing a distance. Otherwise
// the score is 1 - Distance(a, b) / max(runes(a), runes(b)).
func Score(a, b string) float64 {
	s, _ := measure(a, b)
	return s
}

// measure returns the score and distance of a and b, computing the distance
// at most once.
func measure(a, b string) (float64, int) {
	if a == b {
		return 1, 0
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if a == "" || b == "" {
		return 0, max(la, lb)
	}

	d := Distance(a, b)
	return 1 - float64(d)/float64(max(la, lb)), d
}
