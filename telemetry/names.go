package telemetry

// Fixed metrics taxonomy for spellguard's core operations, mirroring the
// teacher stack's convention of centralizing metric name constants
// instead of inlining string literals at call sites.
const (
	LexiconLookupTotal      = "spellguard_lexicon_lookup_total"
	LexiconLookupMs         = "spellguard_lexicon_lookup_ms"
	GuardBlockedTotal       = "spellguard_guard_blocked_total"
	CorrectionAcceptedTotal = "spellguard_correction_accepted_total"
	CorrectionRejectedTotal = "spellguard_correction_rejected_total"
	SnapshotPublishTotal    = "spellguard_snapshot_publish_total"
	SnapshotPublishMs       = "spellguard_snapshot_publish_ms"
	SnapshotReloadTotal     = "spellguard_snapshot_reload_total"

	TagOperation = "operation"
	TagResult    = "result"
)
