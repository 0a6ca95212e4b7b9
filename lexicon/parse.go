package lexicon

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseDictionaryReader reads the dictionary file format of spec §6.1:
// plain text, UTF-8, line-oriented, two whitespace-run-separated
// fields per line (canonical term, decimal non-negative frequency).
// Comments (lines beginning with '#' after trimming) and blank lines
// are ignored outright — they are not counted in Stats at all. Lines
// with no whitespace delimiter (a single field), an unparseable
// frequency, or an empty trimmed term are skipped and tallied, never
// fatal.
//
// The returned Stats carries only SkippedMalformed and
// SkippedInvalidFreq; SkippedMultiword and SkippedDuplicates are
// populated later, by Build, since they depend on the merged entry
// set rather than any single line.
func ParseDictionaryReader(r io.Reader) ([]RawEntry, Stats, error) {
	var rows []RawEntry
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		canonical, freqText, ok := splitDictionaryLine(line)
		if !ok {
			stats.SkippedMalformed++
			continue
		}
		if canonical == "" {
			stats.SkippedMalformed++
			continue
		}

		freq, err := strconv.ParseUint(freqText, 10, 64)
		if err != nil {
			stats.SkippedInvalidFreq++
			continue
		}

		rows = append(rows, RawEntry{Canonical: canonical, Frequency: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, err
	}
	return rows, stats, nil
}

// splitDictionaryLine splits a dictionary line on the *last* run of
// whitespace (tab or space): any earlier whitespace is part of the
// canonical term (so "New York" keeps its interior space), and both
// fields are individually trimmed.
func splitDictionaryLine(line string) (canonical, freqText string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", "", false
	}

	// The frequency field is always a single whitespace-free token, so
	// the run of whitespace nearest the end of the line is the
	// delimiter: everything before it is the canonical term (which may
	// itself contain interior whitespace, e.g. "New York"), everything
	// after it is the frequency.
	end := -1
	for i := len(trimmed) - 1; i >= 0; i-- {
		if trimmed[i] == ' ' || trimmed[i] == '\t' {
			end = i
			break
		}
	}
	if end < 0 {
		return "", "", false
	}
	start := end
	for start > 0 && (trimmed[start-1] == ' ' || trimmed[start-1] == '\t') {
		start--
	}

	field1 := strings.TrimSpace(trimmed[:start])
	field2 := strings.TrimSpace(trimmed[end+1:])
	if field1 == "" || field2 == "" {
		return "", "", false
	}
	return field1, field2, true
}
