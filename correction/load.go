package correction

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fulmenhq/spellguard/guard"
	"github.com/fulmenhq/spellguard/lexicon"
	"github.com/fulmenhq/spellguard/snapshot"
	"github.com/fulmenhq/spellguard/spellerr"
	"github.com/fulmenhq/spellguard/telemetry"
)

// Load builds a Snapshot from cfg and publishes it, transitioning the
// Engine from Unloaded to Loaded (spec §4.4). Load may also be called
// again on an already-Loaded engine, in which case it behaves exactly
// like Reload: both build a fresh Snapshot and atomically swap it in,
// without disturbing in-flight readers (spec §4.5).
func (e *Engine) Load(cfg LoadConfig) error {
	return e.buildAndPublish(cfg, "load")
}

// Reload is Load's synonym for the post-first-load case (spec §4.4's
// Loaded -> Loaded' transition); kept as a distinct method so callers
// and logs can distinguish "first load" from "hot reload" even though
// the underlying mechanics are identical.
func (e *Engine) Reload(cfg LoadConfig) error {
	return e.buildAndPublish(cfg, "reload")
}

func (e *Engine) buildAndPublish(cfg LoadConfig, event string) error {
	start := time.Now()
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	dictFile, err := os.Open(cfg.DictionaryPath)
	if err != nil {
		return spellerr.Wrap(spellerr.FileNotFound, "opening dictionary file", err).
			WithDetails(map[string]any{"path": cfg.DictionaryPath})
	}
	defer dictFile.Close()

	idx, stats, err := lexicon.BuildFromReader(dictFile, cfg.EditDistance)
	if err != nil {
		return err
	}

	var protectedReader io.Reader
	if cfg.ProtectedPath != "" {
		protectedFile, err := os.Open(cfg.ProtectedPath)
		if err != nil {
			return spellerr.Wrap(spellerr.FileNotFound, "opening protected terms file", err).
				WithDetails(map[string]any{"path": cfg.ProtectedPath})
		}
		defer protectedFile.Close()
		protectedReader = protectedFile
	}

	g, err := guard.NewFromReaders(protectedReader, cfg.callerPatterns(), cfg.builtinFlags())
	if err != nil {
		return err
	}

	snap := &snapshot.Snapshot{
		Index: idx,
		Guard: g,
		Config: snapshot.Config{
			EditDistance:       cfg.EditDistance,
			FrequencyThreshold: cfg.FrequencyThreshold,
		},
		Stats:    stats,
		LoadedAt: time.Now().Unix(),
		BuildID:  uuid.NewString(),
	}

	e.holder.Publish(snap)

	if event == "reload" {
		telemetry.EmitCounter(telemetry.SnapshotReloadTotal, 1, nil)
	}

	if e.log != nil {
		e.log.Info("snapshot published",
			zap.String("event", event),
			zap.String("build_id", snap.BuildID),
			zap.Int("edit_distance", cfg.EditDistance),
			zap.Int("dictionary_size", stats.Size),
			zap.Uint64("fingerprint", idx.Fingerprint()),
			zap.Duration("duration", time.Since(start)),
		)
	}

	return nil
}
