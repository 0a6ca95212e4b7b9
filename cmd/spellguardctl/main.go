// Package main provides spellguardctl, a functional smoke-test CLI for
// a spellguard dictionary and protected-terms file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fulmenhq/spellguard/correction"
)

const usageText = `spellguardctl - smoke-test a spellguard dictionary

Usage:
  spellguardctl --dictionary=<path> [options] [word ...]

Required Flags:
  --dictionary string
        Path to the dictionary file (spec format: "term<TAB>frequency" per line)

Optional Flags:
  --protected string
        Path to a protected-terms file
  --edit-distance int
        Maximum edit distance, 1 or 2 (default 1)
  --frequency-threshold float
        Minimum frequency for a correction to be accepted (default 10)
  --no-guard
        Disable protected-term/pattern checking
  --stats
        Print dictionary build statistics and exit
  --help
        Show this help message

With no positional words, reads one word per line from stdin.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("spellguardctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageText) }

	dictionary := fs.String("dictionary", "", "path to dictionary file")
	protected := fs.String("protected", "", "path to protected terms file")
	editDistance := fs.Int("edit-distance", 1, "maximum edit distance")
	freqThreshold := fs.Float64("frequency-threshold", 10.0, "frequency acceptance threshold")
	noGuard := fs.Bool("no-guard", false, "disable guard checking")
	showStats := fs.Bool("stats", false, "print stats and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *dictionary == "" {
		fmt.Fprintln(stderr, "error: --dictionary is required")
		fs.Usage()
		return 2
	}

	// fs.Visit only reports flags the caller actually set, so an
	// explicit --frequency-threshold=0 is distinguished from the flag
	// being left at its default — a bare *freqThreshold read can't make
	// that distinction since 0 is a legitimate, explicitly-settable value.
	freqThresholdSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "frequency-threshold" {
			freqThresholdSet = true
		}
	})

	engine := correction.New()
	err := engine.Load(correction.LoadConfig{
		DictionaryPath:        *dictionary,
		ProtectedPath:         *protected,
		EditDistance:          *editDistance,
		FrequencyThreshold:    *freqThreshold,
		FrequencyThresholdSet: freqThresholdSet,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *showStats {
		printStats(stdout, engine)
		return 0
	}

	useGuard := !*noGuard
	words := fs.Args()
	if len(words) > 0 {
		for _, w := range words {
			printCorrection(stdout, engine, w, useGuard)
		}
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		printCorrection(stdout, engine, w, useGuard)
	}
	return 0
}

func printStats(w *os.File, engine *correction.Engine) {
	s := engine.Stats()
	fmt.Fprintf(w, "dictionary_size: %d\n", s.DictionarySize)
	fmt.Fprintf(w, "edit_distance: %d\n", s.EditDistance)
	fmt.Fprintf(w, "frequency_threshold: %g\n", s.FrequencyThreshold)
	fmt.Fprintf(w, "skipped_malformed: %d\n", s.SkippedMalformed)
	fmt.Fprintf(w, "skipped_invalid_freq: %d\n", s.SkippedInvalidFreq)
	fmt.Fprintf(w, "skipped_duplicates: %d\n", s.SkippedDuplicates)
	fmt.Fprintf(w, "fingerprint: %016x\n", s.Fingerprint)
}

func printCorrection(w *os.File, engine *correction.Engine, word string, useGuard bool) {
	corrected, err := engine.Correct(word, useGuard)
	if err != nil {
		fmt.Fprintf(w, "%s\terror: %v\n", word, err)
		return
	}
	if corrected == word {
		fmt.Fprintf(w, "%s\n", word)
		return
	}
	fmt.Fprintf(w, "%s\t-> %s\n", word, corrected)
}
