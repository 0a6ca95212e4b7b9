// Package snapshot implements the immutable Snapshot tuple and the
// State Holder of spec §4.5: atomic publish, cheap shared acquire, and
// the reader-writer discipline of spec §5 (concurrent readers never
// block each other; a publisher excludes other publishers but never
// blocks readers that already hold a snapshot).
package snapshot

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulmenhq/spellguard/guard"
	"github.com/fulmenhq/spellguard/lexicon"
	"github.com/fulmenhq/spellguard/telemetry"
)

// Config is the subset of spec §6.3's configuration surface that is
// baked into a published Snapshot (everything needed by the
// Correction Engine's query path without re-reading any file).
type Config struct {
	EditDistance       int
	FrequencyThreshold float64
}

// Snapshot is the immutable tuple of spec §3: a built Lexicon Index, a
// Guard (holding the Protected Set and compiled Pattern List), and the
// Config it was built with. Snapshots are built once and never
// mutated; replacement is by whole-snapshot swap (spec §3 Lifecycle).
type Snapshot struct {
	Index    *lexicon.Index
	Guard    *guard.Guard
	Config   Config
	Stats    lexicon.Stats
	LoadedAt int64  // unix seconds
	BuildID  string // correlation id for this generation, for log/trace correlation across reloads
}

// Holder owns at most one Snapshot and exposes atomic publish and
// shared read-only acquire (spec §4.5). The swap itself is a single
// atomic.Pointer store/load — Go's garbage collector already gives us
// the "reference-counted pointer to a frozen structure" spec §9
// describes: a reader that loaded an old Snapshot keeps it reachable
// for as long as its local variable lives, and a Snapshot with no
// remaining readers becomes collectible the instant the last reference
// drops, with no manual refcounting required.
type Holder struct {
	current    atomic.Pointer[Snapshot]
	publishMu  sync.Mutex // serializes concurrent Publish calls only
}

// NewHolder returns an empty Holder (Unloaded state — Acquire returns
// nil until the first Publish).
func NewHolder() *Holder {
	return &Holder{}
}

// Publish installs snap as the current snapshot. Concurrent Publish
// calls are serialized against each other; a Publish in flight never
// blocks a concurrent Acquire, and any reader that has already acquired
// a snapshot keeps seeing it until it releases its reference (spec
// §5).
func (h *Holder) Publish(snap *Snapshot) {
	start := time.Now()
	h.publishMu.Lock()
	defer h.publishMu.Unlock()
	h.current.Store(snap)
	telemetry.EmitCounter(telemetry.SnapshotPublishTotal, 1, nil)
	telemetry.EmitHistogram(telemetry.SnapshotPublishMs, time.Since(start), nil)
}

// Acquire returns the currently published Snapshot, or nil if none has
// ever been published. Constant-time; never copies the Snapshot.
func (h *Holder) Acquire() *Snapshot {
	return h.current.Load()
}
