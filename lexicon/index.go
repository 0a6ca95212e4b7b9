package lexicon

import (
	"io"
	"sort"

	"github.com/antzucaro/matchr"

	"github.com/fulmenhq/spellguard/fingerprint"
	"github.com/fulmenhq/spellguard/normalize"
	"github.com/fulmenhq/spellguard/spellerr"
)

type mergedEntry struct {
	canonical       string
	normalized      string
	frequency       uint64
	topIndividualFq uint64 // highest single pre-merge frequency seen for this key
}

// Index is the immutable, built SymSpell fuzzy-match index. Zero value
// is not usable; construct with Build or BuildFromReader.
type Index struct {
	maxEditDistance int
	entries         []mergedEntry            // indexed by stable integer id
	byNormalized    map[string]uint32         // normalized -> id, for O(1) exact match
	buckets         map[uint64][]uint32       // xxh3(delete key) -> ids
	fp              uint64
}

// MaxEditDistance reports the k this index was built with.
func (idx *Index) MaxEditDistance() int { return idx.maxEditDistance }

// Len reports the number of distinct (post-merge) entries.
func (idx *Index) Len() int { return len(idx.entries) }

// Fingerprint returns the order-independent content hash of this
// index's entry set, for observability only (see package fingerprint).
func (idx *Index) Fingerprint() uint64 { return idx.fp }

// Contains reports whether Normalizer(word) equals the normalized form
// of some entry (spec §4.2).
func (idx *Index) Contains(word string) bool {
	q := normalize.Key(word)
	if q == "" {
		return false
	}
	_, ok := idx.byNormalized[q]
	return ok
}

// Lookup returns up to maxResults candidates within MaxEditDistance of
// Normalizer(word), sorted by (distance ascending, frequency
// descending, canonical ascending as a stable tiebreak). An exact match
// (distance 0) short-circuits: it is returned alone, without scanning
// delete-key buckets (spec §4.2).
func (idx *Index) Lookup(word string, maxResults int) []Candidate {
	q := normalize.Key(word)
	if q == "" || maxResults <= 0 {
		return nil
	}

	if id, ok := idx.byNormalized[q]; ok {
		e := idx.entries[id]
		return []Candidate{{Canonical: e.canonical, Distance: 0, Frequency: e.frequency}}
	}

	variants := deleteVariants(q, idx.maxEditDistance)
	seen := make(map[uint32]struct{})
	var candidates []Candidate

	for key := range variants {
		bucket := idx.buckets[fingerprint.String(key)]
		for _, id := range bucket {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			e := idx.entries[id]
			d := matchr.DamerauLevenshtein(q, e.normalized)
			if d > idx.maxEditDistance {
				continue
			}
			candidates = append(candidates, Candidate{Canonical: e.canonical, Distance: d, Frequency: e.frequency})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Canonical < b.Canonical
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates
}

// Build constructs an Index from already-parsed raw rows (see
// ParseDictionaryReader for turning a dictionary file into rows).
// maxEditDistance must be 1 or 2; any other value fails the build
// (spec §6.3). Per-entry parse problems are never fatal here — they
// were already filtered out by the caller — but duplicate merging and
// the (always-zero, see doc comment) multiword counter are computed in
// this step because they depend on the full merged entry set.
func Build(rows []RawEntry, maxEditDistance int) (*Index, Stats, error) {
	if maxEditDistance != 1 && maxEditDistance != 2 {
		return nil, Stats{}, spellerr.New(spellerr.InvalidArgument, "edit_distance must be 1 or 2").
			WithDetails(map[string]any{"edit_distance": maxEditDistance})
	}

	var stats Stats
	order := make([]string, 0, len(rows))
	merged := make(map[string]*mergedEntry, len(rows))

	for _, row := range rows {
		normalized := normalize.Key(row.Canonical)
		if normalized == "" {
			stats.SkippedMalformed++
			continue
		}

		// Multi-word canonicals are supported via whitespace-elision
		// normalization, never rejected; this counter stays at zero
		// under normal input and exists only for parity with
		// implementations that might reject them under a stricter
		// mode this engine does not offer.
		_ = stats.SkippedMultiword

		existing, ok := merged[normalized]
		if !ok {
			order = append(order, normalized)
			merged[normalized] = &mergedEntry{
				canonical:       row.Canonical,
				normalized:      normalized,
				frequency:       row.Frequency,
				topIndividualFq: row.Frequency,
			}
			continue
		}

		stats.SkippedDuplicates++
		existing.frequency += row.Frequency
		if row.Frequency > existing.topIndividualFq {
			existing.canonical = row.Canonical
			existing.topIndividualFq = row.Frequency
		}
		// Tie on individual frequency: keep first-seen canonical, i.e.
		// do nothing (spec §9 open question, resolved as first-seen).
	}

	idx := &Index{
		maxEditDistance: maxEditDistance,
		entries:         make([]mergedEntry, 0, len(order)),
		byNormalized:    make(map[string]uint32, len(order)),
		buckets:         make(map[uint64][]uint32),
	}

	pairs := make([][2]string, 0, len(order))
	for _, normalized := range order {
		e := merged[normalized]
		id := uint32(len(idx.entries))
		idx.entries = append(idx.entries, *e)
		idx.byNormalized[normalized] = id
		pairs = append(pairs, [2]string{e.normalized, e.canonical})

		for key := range deleteVariants(normalized, maxEditDistance) {
			h := fingerprint.String(key)
			idx.buckets[h] = append(idx.buckets[h], id)
		}
	}

	idx.fp = fingerprint.Entries(pairs)
	stats.Size = len(idx.entries)
	return idx, stats, nil
}

// BuildFromReader parses a dictionary file (spec §6.1) and builds an
// Index from it in one step, merging the line-level parse stats with
// the build-level merge stats.
func BuildFromReader(r io.Reader, maxEditDistance int) (*Index, Stats, error) {
	rows, parseStats, err := ParseDictionaryReader(r)
	if err != nil {
		return nil, Stats{}, spellerr.Wrap(spellerr.FileNotFound, "failed to read dictionary", err)
	}

	idx, buildStats, err := Build(rows, maxEditDistance)
	if err != nil {
		return nil, Stats{}, err
	}

	buildStats.SkippedMalformed += parseStats.SkippedMalformed
	buildStats.SkippedInvalidFreq += parseStats.SkippedInvalidFreq
	return idx, buildStats, nil
}
