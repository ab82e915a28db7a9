// Package grapheme provides string operations that work on user-perceived
// characters (grapheme clusters) instead of bytes or runes.
//
// Go's len returns bytes and ranging over a string yields runes, but neither
// matches what a reader counts as a character. A family emoji is 18 bytes and
// 5 runes, a flag is two regional indicators, and "é" may be one rune or a
// base letter followed by a combining accent. This package segments text
// following the Unicode text segmentation rules (UAX #29) and builds length,
// slice and reverse operations on top of that segmentation.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/grapheme"
//
//	grapheme.Len("👍🏽👍")          // 2
//	grapheme.Slice("👍🏽👍", 0, 1)  // "👍🏽"
//	grapheme.Slice("héllo", -3, -1) // "ll"
//	grapheme.Reverse("👍🏽👍")      // "👍👍🏽"
//
// # Indexing
//
// Slice, SliceFrom and At index into the cluster sequence. Negative indices
// count from the end, so -1 is the last cluster. Out-of-range indices are
// clamped, never rejected, which mirrors Go slice expressions without the
// panic.
//
// # Invalid input
//
// Every function is total. Ill-formed UTF-8 bytes become their own clusters
// and are copied through unchanged, so concatenating Split(s) always
// reproduces s byte for byte.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Nothing is cached
// between calls.
package grapheme
