// Package lexicon implements the SymSpell symmetric-delete fuzzy-match
// index: the Lexicon Index component of spec §4.2. It answers
// "candidates within edit distance ≤ k" against an immutable, built
// index, with true distance computed via Damerau-Levenshtein.
package lexicon

// RawEntry is one parsed dictionary row before deduplication: a
// canonical display term and its corpus frequency. See spec §6.1.
type RawEntry struct {
	Canonical string
	Frequency uint64
}

// Candidate is the result of a lookup: the entry's display form, the
// edit distance from the query's normalized form, and the entry's
// corpus frequency (spec §3).
type Candidate struct {
	Canonical string
	Distance  int
	Frequency uint64
}

// Stats mirrors the build-time accounting spec §4.2 requires:
// dictionary_size plus per-reason skip counters, none of which is
// fatal — malformed rows are counted, never rejected as build errors.
type Stats struct {
	Size               int
	SkippedMalformed   int
	SkippedMultiword   int
	SkippedInvalidFreq int
	SkippedDuplicates  int
}
