package similarity

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/textkit/pkg/textnorm"
)

// Match is a candidate scored against a target string.
type Match struct {
	Value    string  `json:"value" yaml:"value"`
	Index    int     `json:"index" yaml:"index"`
	Score    float64 `json:"score" yaml:"score"`
	Distance int     `json:"distance" yaml:"distance"`
}

// Option configures Closest and Rank.
type Option func(*config)

type config struct {
	threshold float64
	fold      bool
	normalize bool
}

func defaultConfig() *config {
	return &config{}
}

// WithThreshold drops candidates scoring below score.
// Values outside [0, 1] are clamped.
func WithThreshold(score float64) Option {
	return func(c *config) {
		c.threshold = max(0, min(score, 1))
	}
}

// WithFold compares case-folded strings, so "Color" matches "color" exactly.
func WithFold() Option {
	return func(c *config) {
		c.fold = true
	}
}

// WithNormalization compares NFC-normalized strings, so precomposed and
// decomposed accents are treated as equal.
func WithNormalization() Option {
	return func(c *config) {
		c.normalize = true
	}
}

func (c *config) prepare(s string) string {
	if c.normalize {
		s = textnorm.Compose(s)
	}
	if c.fold {
		s = textnorm.Fold(s)
	}
	return s
}

// Rank scores every candidate against target and returns those at or above
// the threshold, best first. Candidates with equal scores keep their input
// order. Returned values are the original, untransformed candidates.
func Rank(target string, candidates []string, opts ...Option) []Match {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	t := cfg.prepare(target)
	matches := make([]Match, 0, len(candidates))
	for i, candidate := range candidates {
		score, dist := measure(t, cfg.prepare(candidate))
		if score < cfg.threshold {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Index:    i,
			Score:    score,
			Distance: dist,
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// Closest returns the best scoring candidate for target. The second result
// is false when no candidate reaches the threshold.
func Closest(target string, candidates []string, opts ...Option) (Match, bool) {
	matches := Rank(target, candidates, opts...)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
