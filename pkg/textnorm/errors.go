package textnorm

import "errors"

var (
	// ErrUnknownForm is returned for a normalization form other than NFC, NFD, NFKC or NFKD.
	ErrUnknownForm = errors.New("unknown normalization form")

	// ErrInvalidLanguage is returned when a collation locale is not a valid BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")
)
