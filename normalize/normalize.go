// Package normalize implements the single canonical-key derivation used
// everywhere a token must be compared: building delete keys, looking up
// candidates, matching protected terms, and deduplicating entries at
// load time. A single rule must serve all four uses — any divergence
// between them produces silent misses (spec §4.1).
package normalize

import "unicode"

// Key maps an arbitrary string to its normalized form: Unicode simple
// lowercase mapping, then removal of every rune in the Unicode
// White_Space property. No NFC/NFD normalization is applied — input is
// treated as a bare sequence of code points, not decomposed or
// recomposed. Punctuation is preserved.
//
// The result may be empty; callers must treat an empty result as
// "reject" (see Entry/Candidate construction in package lexicon).
//
// Deliberately not delegated to golang.org/x/text/cases or
// unicode/norm: both apply a broader notion of case folding or
// decomposition than spec.md's narrow rule, and using them here would
// silently change matching behavior for languages with case-folding
// exceptions (Turkish dotted/dotless I, German ß) that this engine does
// not attempt to model.
func Key(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// Lower applies only the case-folding half of Key, without whitespace
// elision. Used by the guard package's plain-lowercase protected-set
// check (spec §4.3), which must preserve punctuation-adjacent
// whitespace semantics distinct from the fully normalized key.
func Lower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
