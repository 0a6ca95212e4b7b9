// Package fingerprint provides a fast, non-cryptographic content hash
// used to fingerprint a built lexicon for observability (distinguishing
// snapshot generations in logs and stats) and as the hashing primitive
// behind the lexicon's delete-key buckets. Neither use is part of the
// matching semantics: two snapshots built from the same entries in a
// different order hash identically because entries are combined with an
// order-independent accumulator, but the matching behavior of the index
// they produce never depends on the fingerprint itself.
package fingerprint

import "github.com/zeebo/xxh3"

// String returns the 64-bit xxh3 hash of s. Used to key the lexicon's
// delete-key buckets without retaining the original (often much longer)
// delete-string as the map key.
func String(s string) uint64 {
	return xxh3.HashString(s)
}

// Entries returns an order-independent fingerprint of a built lexicon,
// suitable for identifying a snapshot generation in logs without
// hashing the entire dictionary contents on every call. Order
// independence is achieved by XOR-folding each entry's hash into the
// running total, so callers cannot rely on this value to detect
// reordering of otherwise-identical entries, only to detect a change in
// the entry set itself.
func Entries(normalizedCanonicalPairs [][2]string) uint64 {
	var acc uint64
	for _, pair := range normalizedCanonicalPairs {
		h := xxh3.HashString(pair[0] + "\x00" + pair[1])
		acc ^= h
	}
	return acc
}
