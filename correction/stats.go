package correction

// Stats is the response shape for the stats() operation (spec §4.4): a
// Loaded flag plus the build-time accounting carried by the live
// Snapshot. Stats never errors — an Unloaded engine reports Loaded:
// false with every counter at its zero value, since "what is the
// current state" is itself diagnostic information a caller may want
// even before the first Load (unlike Suggestions/Correct, which need
// an actual index to answer against).
type Stats struct {
	Loaded             bool
	DictionarySize     int
	SkippedMalformed   int
	SkippedMultiword   int
	SkippedInvalidFreq int
	SkippedDuplicates  int
	EditDistance       int
	FrequencyThreshold float64
	Fingerprint        uint64
	LoadedAt           int64
	BuildID            string
}

// Stats reports the current Snapshot's build-time accounting. See the
// Stats type doc comment for why this never returns an error.
func (e *Engine) Stats() Stats {
	snap := e.holder.Acquire()
	if snap == nil {
		return Stats{}
	}
	return Stats{
		Loaded:             true,
		DictionarySize:     snap.Stats.Size,
		SkippedMalformed:   snap.Stats.SkippedMalformed,
		SkippedMultiword:   snap.Stats.SkippedMultiword,
		SkippedInvalidFreq: snap.Stats.SkippedInvalidFreq,
		SkippedDuplicates:  snap.Stats.SkippedDuplicates,
		EditDistance:       snap.Config.EditDistance,
		FrequencyThreshold: snap.Config.FrequencyThreshold,
		Fingerprint:        snap.Index.Fingerprint(),
		LoadedAt:           snap.LoadedAt,
		BuildID:            snap.BuildID,
	}
}
