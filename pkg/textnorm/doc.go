// Package textnorm exposes Unicode normalization, case folding and
// locale-aware collation as thin wrappers over golang.org/x/text.
//
// Nothing here implements a Unicode algorithm. The package exists so the
// rest of the module, and its callers, reach these operations through one
// small API with named forms and sentinel errors:
//
//	s, err := textnorm.Normalize("e\u0301", textnorm.NFC) // "\u00e9"
//	textnorm.Fold("Straße")                               // "strasse"
//	textnorm.StripMarks("Crème brûlée")                   // "Creme brulee"
//
//	n, err := textnorm.Compare("äpfel", "zebra", "de")    // -1
//
// Transformers and collators from x/text are stateful, so every call builds
// its own instance. All functions are safe for concurrent use.
package textnorm
