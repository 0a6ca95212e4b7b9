package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionaryReaderBasic(t *testing.T) {
	data := "hello\t10000\nhelp\t3000\nworld\t8000\n"
	rows, stats, err := ParseDictionaryReader(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, RawEntry{Canonical: "hello", Frequency: 10000}, rows[0])
	assert.Equal(t, 0, stats.SkippedMalformed)
}

func TestParseDictionaryReaderMultiwordCanonical(t *testing.T) {
	rows, _, err := ParseDictionaryReader(strings.NewReader("New York\t5000\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "New York", rows[0].Canonical)
	assert.EqualValues(t, 5000, rows[0].Frequency)
}

func TestParseDictionaryReaderSkipsCommentsAndBlankLines(t *testing.T) {
	data := "# comment\n\nhello\t100\n"
	rows, _, err := ParseDictionaryReader(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

// scenario 9: 1 valid, 3 malformed-shape, 1 invalid-frequency, 2 duplicates-of-valid.
func TestParseDictionaryReaderMalformedAccounting(t *testing.T) {
	data := strings.Join([]string{
		"hello\t100", // valid
		"noFrequencyField",
		"\t100", // no separator once leading whitespace trims away
		"bogus",
		"hello\tNaN", // invalid frequency
		"hello\t200", // duplicate of valid (counted at build time, not parse time)
		"hello\t300", // duplicate of valid
		"",
	}, "\n")

	rows, stats, err := ParseDictionaryReader(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.SkippedMalformed)
	assert.Equal(t, 1, stats.SkippedInvalidFreq)
	require.Len(t, rows, 3) // hello x3 (valid + 2 duplicates), invalid-frequency row dropped
}
