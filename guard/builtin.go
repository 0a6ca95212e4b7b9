package guard

// BuiltinFlags toggles the named built-in skip-pattern families of
// spec §4.3. All default to false (off).
type BuiltinFlags struct {
	SkipURLs          bool
	SkipEmails        bool
	SkipHostnames     bool
	SkipCodePatterns  bool
	SkipNumbers       bool
}

// builtinPatterns returns the compiled-on-demand patterns enabled by
// flags, in the fixed order given by spec §4.3's table.
func builtinPatterns(flags BuiltinFlags) []*Pattern {
	var patterns []*Pattern

	if flags.SkipURLs {
		patterns = append(patterns,
			NewPattern(`^https?://\S+$`, PatternOptions{CaseInsensitive: true}),
			NewPattern(`^www\.\S+$`, PatternOptions{CaseInsensitive: true}),
		)
	}
	if flags.SkipEmails {
		patterns = append(patterns,
			NewPattern(`^[\w.+-]+@[\w.-]+\.\w+$`, PatternOptions{CaseInsensitive: true}),
		)
	}
	if flags.SkipHostnames {
		patterns = append(patterns,
			NewPattern(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`, PatternOptions{CaseInsensitive: true}),
		)
	}
	if flags.SkipCodePatterns {
		patterns = append(patterns,
			NewPattern(`^[a-z]+[A-Z][a-zA-Z0-9]*$`, PatternOptions{}),                     // camelCase
			NewPattern(`^[A-Z][a-z]+[A-Z][a-zA-Z0-9]*$`, PatternOptions{}),                // PascalCase
			NewPattern(`^[a-z]+_[a-z0-9_]+$`, PatternOptions{CaseInsensitive: true}),       // snake_case
			NewPattern(`^[A-Z]+_[A-Z0-9_]+$`, PatternOptions{}),                           // SCREAMING_SNAKE
			NewPattern(`^[a-zA-Z_][a-zA-Z0-9_]*\.[a-zA-Z_][a-zA-Z0-9_.]*$`, PatternOptions{}), // dotted.path
		)
	}
	if flags.SkipNumbers {
		patterns = append(patterns,
			NewPattern(`^\d+\.\d+(\.\d+)?(\.\d+)?$`, PatternOptions{}), // version
			NewPattern(`^#\d+$`, PatternOptions{}),                     // hash id
			NewPattern(`^\d+(\.\d+)?(kg|g|mg|lb|oz|km|m|cm|mm|mi|ft|in|gb|mb|kb|tb|pb|px|pt|em|rem)$`, PatternOptions{CaseInsensitive: true}), // measurement
			NewPattern(`^\d`, PatternOptions{}), // leading-digit catch-all
		)
	}

	return patterns
}
