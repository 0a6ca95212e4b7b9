package lexicon

// deleteVariants returns the set of distinct strings obtainable by
// deleting between 0 and maxDist runes (inclusive) from word, per spec
// §4.2's Delete Key definition. The zero-deletion case (word itself) is
// always included.
//
// For a single-rune word with maxDist ≥ 1, the one-deletion level
// always produces "" — this is deliberate, not a bug: spec §4.2
// requires the empty-string bucket to collect every single-character
// entry so that one-character queries still have somewhere to land.
func deleteVariants(word string, maxDist int) map[string]struct{} {
	results := map[string]struct{}{word: {}}
	if maxDist <= 0 {
		return results
	}

	frontier := []string{word}
	for depth := 0; depth < maxDist; depth++ {
		var next []string
		for _, w := range frontier {
			runes := []rune(w)
			for i := range runes {
				variant := string(append(append([]rune{}, runes[:i]...), runes[i+1:]...))
				if _, seen := results[variant]; seen {
					continue
				}
				results[variant] = struct{}{}
				next = append(next, variant)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return results
}
