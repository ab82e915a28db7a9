package similarity

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// invalidByte offsets invalid UTF-8 bytes past the last code point so each
// byte value stays distinct from every rune and from the other bytes.
const invalidByte = utf8.MaxRune + 1

// Distance returns the Levenshtein distance between a and b in runes.
// Insertions, deletions and substitutions each cost 1. The result is
// symmetric, zero for equal strings and equal to the rune count of the other
// string when one side is empty.
//
// Each invalid UTF-8 byte counts as one unit of its own, so "\xff" and
// "\xfe" differ from each other and from "\uFFFD".
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return utf8.RuneCountInString(b)
	}
	if b == "" {
		return utf8.RuneCountInString(a)
	}

	// ComputeDistance stores uint16 cells and reads invalid bytes as
	// utf8.RuneError
	if utf8.ValidString(a) && utf8.ValidString(b) &&
		max(utf8.RuneCountInString(a), utf8.RuneCountInString(b)) <= math.MaxUint16 {
		return levenshtein.ComputeDistance(a, b)
	}
	return distance(units(a), units(b))
}

// units decodes s into runes, mapping every invalid byte to its own value
// above utf8.MaxRune.
func units(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = invalidByte + rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

// distance is the two-row dynamic programming form of Levenshtein, with rows
// sized by the shorter input.
func distance(s1, s2 []rune) int {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	prev := make([]int, len(s1)+1)
	curr := make([]int, len(s1)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s2); i++ {
		curr[0] = i
		for j := 1; j <= len(s1); j++ {
			cost := 1
			if s2[i-1] == s1[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s1)]
}
