// Package slug provides URL-safe string generation for use in web applications.
//
// The package offers a simple yet flexible way to convert any string into a URL-friendly
// format by replacing spaces and special characters with hyphens (or custom separators),
// stripping diacritics, and optionally adding random suffixes to reduce collisions.
// This is particularly useful for creating readable URLs from user-generated content like
// blog post titles, product names, or usernames.
//
// # Features
//
// The slug generator supports several features:
//   - Diacritic removal through canonical decomposition (é → e, ñ → n)
//   - Transliteration of letters without a decomposition (ß → ss, ø → o)
//   - Optional Unicode mode that keeps letters of every script
//   - Configurable separators (default: hyphen)
//   - Optional lowercase conversion (enabled by default)
//   - Maximum length counted in grapheme clusters
//   - Custom string replacements (e.g., "&" → "and")
//   - Character stripping for removing specific unwanted characters
//   - Random suffix generation for collision avoidance
//
// # Usage
//
// Basic usage is straightforward:
//
//	import "github.com/dmitrymomot/textkit/pkg/slug"
//
//	// Simple slug generation
//	url := slug.Make("Hello World!")
//	// Result: "hello-world"
//
//	// With custom options
//	url := slug.Make("Price: $99.99",
//		slug.MaxLength(10),
//		slug.CustomReplace(map[string]string{"$": "usd"}),
//	)
//	// Result: "price-usd9"
//
// # Configuration Options
//
// The package uses functional options for configuration:
//
//   - MaxLength: Set maximum slug length (counts grapheme clusters, not bytes)
//   - Separator: Change the separator character (default: "-")
//   - Lowercase: Enable/disable lowercase conversion (default: true)
//   - StripChars: Remove specific characters from the output
//   - CustomReplace: Apply custom string replacements before processing
//   - KeepUnicode: Keep non-ASCII letters and digits instead of reducing to ASCII
//   - WithSuffix: Add a random alphanumeric suffix to reduce collisions
//
// # Unicode Support
//
// By default input is decomposed (NFD), nonspacing marks are dropped and the
// remaining letters are reduced to ASCII, so "café" becomes "cafe" whether the
// accent was precomposed or not. With KeepUnicode(true) every letter and digit
// survives as a whole grapheme cluster:
//
//	slug.Make("日本語 テキスト", slug.KeepUnicode(true))
//	// Result: "日本語-テキスト"
//
// # Performance Considerations
//
// Slug generation is linear in the input length. Text is walked cluster by
// cluster, so an emoji with modifiers or a flag is dropped or kept as a unit.
//
// # Thread Safety
//
// All functions in this package are thread-safe. The random suffix generation uses
// crypto/rand for secure random number generation.
package slug
