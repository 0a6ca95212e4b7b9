package guard

import (
	"bufio"
	"io"
	"strings"

	"github.com/fulmenhq/spellguard/normalize"
)

// protectedSet holds the dual-inserted (normalized and plain-lowercase)
// forms of every protected term, per spec §4.3's deliberate design:
// letting a term like "IL-6" protect both its punctuation-preserving
// lowercase form and its whitespace-elided normalized form without the
// caller having to think about the normalization policy (spec §9).
type protectedSet map[string]struct{}

// ParseProtectedTermsReader reads the protected-terms file format of
// spec §6.2: one term per line, blank lines and '#'-prefixed comments
// ignored, leading/trailing whitespace trimmed.
func ParseProtectedTermsReader(r io.Reader) ([]string, error) {
	var terms []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}

func newProtectedSet(terms []string) protectedSet {
	set := make(protectedSet, len(terms)*2)
	for _, term := range terms {
		set[normalize.Lower(term)] = struct{}{}
		set[normalize.Key(term)] = struct{}{}
	}
	return set
}

func (s protectedSet) contains(normalized, lower string) bool {
	if _, ok := s[normalized]; ok {
		return true
	}
	_, ok := s[lower]
	return ok
}
