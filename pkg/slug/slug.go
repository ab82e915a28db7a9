package slug

import (
	"cmp"
	"crypto/rand"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/grapheme"
	"github.com/dmitrymomot/textkit/pkg/textnorm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	keepUnicode   bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum slug length in grapheme clusters.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls lowercase conversion. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// KeepUnicode keeps letters and digits of every script instead of reducing
// the slug to ASCII. Accented letters keep their marks.
func KeepUnicode(enabled bool) Option {
	return func(c *config) {
		c.keepUnicode = enabled
	}
}

// StripChars removes every listed character before slugification.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies replacements before slugification, longest key first.
// For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// joined with the separator. Example: "hello-world-x7g3k2".
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Letters that survive canonical decomposition unchanged.
var transliterator = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// Make creates a URL-safe slug from s. Runs of characters that are not kept
// collapse into a single separator, and leading or trailing separators are
// dropped.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s = applyReplacements(s, cfg.customReplace)
	for _, r := range cfg.stripChars {
		s = strings.ReplaceAll(s, string(r), "")
	}
	if !cfg.keepUnicode {
		s = transliterator.Replace(textnorm.StripMarks(s))
	}

	var b strings.Builder
	b.Grow(len(s))

	sepLen := grapheme.Len(cfg.separator)
	lastWasSep := true // avoids a leading separator
	count := 0

	for _, cluster := range grapheme.Split(s) {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}
		if cfg.lowercase {
			cluster = strings.ToLower(cluster)
		}

		if keep(cluster, cfg.keepUnicode) {
			b.WriteString(cluster)
			lastWasSep = false
			count++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			count += sepLen
		}
	}

	result := b.String()
	if cfg.separator != "" {
		result = strings.TrimSuffix(result, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// appendSuffix adds a random suffix, shortening the slug when the total
// would exceed the configured maximum.
func appendSuffix(result string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen, cfg.lowercase)
	sepLen := grapheme.Len(cfg.separator)

	if cfg.maxLength > 0 && grapheme.Len(result)+sepLen+suffixLen > cfg.maxLength {
		room := cfg.maxLength - sepLen - suffixLen
		if room > 0 {
			result = grapheme.Truncate(result, room, "")
			if cfg.separator != "" {
				result = strings.TrimSuffix(result, cfg.separator)
			}
		} else {
			result = ""
		}
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// keep reports whether a cluster belongs in the slug as is.
func keep(cluster string, keepUnicode bool) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	if !keepUnicode {
		return len(cluster) == 1 && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// applyReplacements replaces longer keys first so overlapping keys behave
// the same on every run.
func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	keys := slices.SortedFunc(maps.Keys(replacements), func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, k := range keys {
		if k == "" {
			continue
		}
		s = strings.ReplaceAll(s, k, replacements[k])
	}
	return s
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsUpper
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}
