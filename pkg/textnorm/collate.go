package textnorm

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func collator(lang string) (*collate.Collator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
	}
	return collate.New(tag), nil
}

// Compare orders a and b using the collation rules of lang, a BCP 47 tag.
// It returns -1, 0 or 1.
func Compare(a, b, lang string) (int, error) {
	c, err := collator(lang)
	if err != nil {
		return 0, err
	}
	return c.CompareString(a, b), nil
}

// Sort sorts values in place using the collation rules of lang.
func Sort(values []string, lang string) error {
	c, err := collator(lang)
	if err != nil {
		return err
	}
	c.SortStrings(values)
	return nil
}
