package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cluster is a single grapheme cluster together with its position in the
// source string. Start and End are code point offsets, End is exclusive.
type Cluster struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Segment splits s into grapheme clusters with their code point offsets.
// Returns nil for an empty string.
func Segment(s string) []Cluster {
	if s == "" {
		return nil
	}

	out := make([]Cluster, 0, utf8.RuneCountInString(s))
	offset := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n := utf8.RuneCountInString(cluster)
		out = append(out, Cluster{Text: cluster, Start: offset, End: offset + n})
		offset += n
	}
	return out
}

// Split returns the grapheme clusters of s in order.
// Returns nil for an empty string.
func Split(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, utf8.RuneCountInString(s))
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}

// Len returns the number of grapheme clusters in s.
func Len(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// Slice returns the clusters in the half-open range [start, end) joined
// back into a string. Negative indices count from the end of the cluster
// sequence and out-of-range indices are clamped. An empty range yields "".
func Slice(s string, start, end int) string {
	clusters := Split(s)
	from, to := bounds(len(clusters), start, end)
	if from >= to {
		return ""
	}
	return strings.Join(clusters[from:to], "")
}

// SliceFrom returns every cluster from start through the end of s.
func SliceFrom(s string, start int) string {
	clusters := Split(s)
	from, to := bounds(len(clusters), start, len(clusters))
	if from >= to {
		return ""
	}
	return strings.Join(clusters[from:to], "")
}

// At returns the cluster at index i, or "" when i is out of range.
// Negative indices count from the end.
func At(s string, i int) string {
	clusters := Split(s)
	if i < 0 {
		i += len(clusters)
	}
	if i < 0 || i >= len(clusters) {
		return ""
	}
	return clusters[i]
}

// Reverse returns s with the order of its grapheme clusters reversed.
// Code points inside a cluster keep their order, so combining marks stay on
// their base and emoji sequences stay intact.
func Reverse(s string) string {
	clusters := Split(s)
	if len(clusters) < 2 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// Truncate shortens s to at most n clusters, ellipsis included.
// If s already fits it is returned unchanged. When the ellipsis alone does not
// fit, s is cut to n clusters without it.
func Truncate(s string, n int, ellipsis string) string {
	if n <= 0 {
		return ""
	}

	clusters := Split(s)
	if len(clusters) <= n {
		return s
	}

	keep := n - Len(ellipsis)
	if keep <= 0 {
		return strings.Join(clusters[:n], "")
	}
	return strings.Join(clusters[:keep], "") + ellipsis
}

// Width returns the monospace display width of s. East Asian wide characters
// and emoji presentation sequences count as two columns.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// bounds resolves slice indices against a sequence of length n.
func bounds(n, start, end int) (int, int) {
	return clamp(n, start), clamp(n, end)
}

func clamp(n, i int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}
