// Package correction implements the Correction Engine of spec §4.4: it
// composes the Normalizer, Lexicon Index, Guard, and State Holder
// behind the public operations (correct_exact, suggestions, correct,
// correct_tokens, stats, healthcheck) and enforces the three-state
// lifecycle (Unloaded / Loaded / Loaded').
package correction

import (
	"time"

	"github.com/fulmenhq/spellguard/lexicon"
	"github.com/fulmenhq/spellguard/logging"
	"github.com/fulmenhq/spellguard/snapshot"
	"github.com/fulmenhq/spellguard/spellerr"
	"github.com/fulmenhq/spellguard/telemetry"
)

// Engine is one Correction Engine instance with its own State Holder
// (spec §4.5: "multiple independent Correction Engine instances may
// coexist; each carries its own State Holder").
type Engine struct {
	holder *snapshot.Holder
	log    *logging.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger; nil (the default) disables
// logging entirely rather than falling back to a discard logger, so a
// caller who never configures logging pays no zap allocation cost on
// the hot path.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New constructs an Engine in the Unloaded state.
func New(opts ...Option) *Engine {
	e := &Engine{holder: snapshot.NewHolder()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// current returns the live Snapshot, or a NotLoaded error if none has
// ever been published (spec §4.4 state machine: only Healthcheck and
// Load/Reload are legal in the Unloaded state; every other operation
// here except Stats, which reports Loaded: false instead, fails this
// way).
func (e *Engine) current() (*snapshot.Snapshot, error) {
	snap := e.holder.Acquire()
	if snap == nil {
		return nil, spellerr.New(spellerr.NotLoaded, "no snapshot has been published; call Load first")
	}
	return snap, nil
}

// Healthcheck fails if no snapshot is loaded; it is legal in every
// state.
func (e *Engine) Healthcheck() error {
	_, err := e.current()
	return err
}

// CorrectExact reports whether word is a known lexicon entry. Does not
// consult the Guard (spec §4.4).
func (e *Engine) CorrectExact(word string) (bool, error) {
	snap, err := e.current()
	if err != nil {
		return false, err
	}
	return snap.Index.Contains(word), nil
}

// Suggestions returns up to max ranked candidates for word, without
// consulting the Guard — callers asking for suggestions want the raw
// ranked list (spec §4.4). Rejects empty input.
func (e *Engine) Suggestions(word string, max int) ([]lexicon.Candidate, error) {
	if word == "" {
		return nil, spellerr.New(spellerr.InvalidArgument, "word must not be empty")
	}
	start := time.Now()
	snap, err := e.current()
	if err != nil {
		return nil, err
	}
	results := snap.Index.Lookup(word, max)
	telemetry.EmitCounter(telemetry.LexiconLookupTotal, 1, nil)
	telemetry.EmitHistogram(telemetry.LexiconLookupMs, time.Since(start), nil)
	return results, nil
}

// Correct runs the core rewrite algorithm of spec §4.4 steps 1-5 for a
// single word.
func (e *Engine) Correct(word string, useGuard bool) (string, error) {
	if word == "" {
		return "", spellerr.New(spellerr.InvalidArgument, "word must not be empty")
	}
	snap, err := e.current()
	if err != nil {
		return "", err
	}
	return e.correctWithSnapshot(snap, word, useGuard), nil
}

// CorrectTokens applies Correct's single-token algorithm to every
// token, acquiring the snapshot exactly once (spec §4.4, §9: this is
// an explicit cheap-batch optimization contract, not an implementation
// detail — callers may rely on it being far cheaper under contention
// than the equivalent per-token calls). Duplicates are processed
// independently; result ordering matches input ordering.
func (e *Engine) CorrectTokens(tokens []string, useGuard bool) ([]string, error) {
	if len(tokens) == 0 {
		return []string{}, nil
	}
	for _, t := range tokens {
		if t == "" {
			return nil, spellerr.New(spellerr.InvalidArgument, "tokens must not contain an empty word")
		}
	}

	snap, err := e.current()
	if err != nil {
		return nil, err
	}

	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = e.correctWithSnapshot(snap, t, useGuard)
	}
	return out, nil
}

// correctWithSnapshot is the single-token algorithm shared by Correct
// and CorrectTokens, parameterized over an already-acquired snapshot so
// the two call sites are provably equivalent (spec §8 invariant 8:
// batch equivalence).
func (e *Engine) correctWithSnapshot(snap *snapshot.Snapshot, word string, useGuard bool) string {
	if useGuard && snap.Guard.IsProtected(word) {
		telemetry.EmitCounter(telemetry.GuardBlockedTotal, 1, nil)
		return word
	}

	candidates := snap.Index.Lookup(word, 1)
	if len(candidates) == 0 {
		telemetry.EmitCounter(telemetry.CorrectionRejectedTotal, 1, map[string]string{telemetry.TagResult: "no_candidate"})
		return word
	}

	top := candidates[0]
	if top.Distance == 0 {
		return top.Canonical
	}

	if float64(top.Frequency) >= snap.Config.FrequencyThreshold {
		telemetry.EmitCounter(telemetry.CorrectionAcceptedTotal, 1, nil)
		return top.Canonical
	}

	telemetry.EmitCounter(telemetry.CorrectionRejectedTotal, 1, map[string]string{telemetry.TagResult: "below_threshold"})
	return word
}
