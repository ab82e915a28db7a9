// Package similarity measures how close two strings are using the
// Levenshtein edit distance.
//
// Distance counts the minimum number of single-rune insertions, deletions
// and substitutions needed to turn one string into the other. Score maps that
// distance onto [0, 1], where 1 means identical:
//
//	score = 1 - distance / max(len(a), len(b))
//
// Lengths and edits are measured in runes (Unicode code points). No case
// folding or normalization is applied, so "A" and "a" differ and a
// precomposed "é" differs from "e" followed by a combining accent. Callers
// who want looser matching can normalize inputs first with
// github.com/dmitrymomot/textkit/pkg/textnorm, or use the WithFold and
// WithNormalization options of Closest and Rank.
//
// # Usage
//
//	similarity.Distance("kitten", "sitting") // 3
//	similarity.Score("hello", "hallo")       // 0.8
//
//	m, ok := similarity.Closest("colr", []string{"color", "colour", "cool"},
//		similarity.WithThreshold(0.5),
//	)
//	// m.Value == "color", ok == true
//
// # Complexity
//
// Distance runs in O(len(a)*len(b)) time on github.com/agnivade/levenshtein,
// which keeps a single row of the dynamic programming table sized by the
// shorter input.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package similarity
