package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Form names a Unicode normalization form.
type Form string

const (
	NFC  Form = "NFC"
	NFD  Form = "NFD"
	NFKC Form = "NFKC"
	NFKD Form = "NFKD"
)

// ParseForm converts a case-insensitive form name into a Form.
func ParseForm(name string) (Form, error) {
	f := Form(strings.ToUpper(strings.TrimSpace(name)))
	if _, err := f.norm(); err != nil {
		return "", err
	}
	return f, nil
}

func (f Form) norm() (norm.Form, error) {
	switch f {
	case NFC:
		return norm.NFC, nil
	case NFD:
		return norm.NFD, nil
	case NFKC:
		return norm.NFKC, nil
	case NFKD:
		return norm.NFKD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownForm, string(f))
	}
}

// Normalize returns s converted to the normalization form f.
func Normalize(s string, f Form) (string, error) {
	nf, err := f.norm()
	if err != nil {
		return "", err
	}
	return nf.String(s), nil
}

// Compose returns s in NFC. Unlike Normalize it cannot fail.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// IsNormalized reports whether s is already in form f.
func IsNormalized(s string, f Form) (bool, error) {
	nf, err := f.norm()
	if err != nil {
		return false, err
	}
	return nf.IsNormalString(s), nil
}

// Fold applies Unicode full case folding, for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// StripMarks removes nonspacing marks after canonical decomposition and
// recomposes the rest, turning "café" into "cafe". Letters without a
// decomposition, such as "ß" or "ø", are left untouched.
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
