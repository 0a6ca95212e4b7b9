package guard

import (
	"io"

	"github.com/fulmenhq/spellguard/normalize"
)

// Guard evaluates whether a raw token is domain-protected and must be
// passed through unchanged. It holds a protected-terms set and an
// ordered list of compiled patterns: caller-supplied patterns first,
// then the enabled built-in skip patterns (spec §4.3).
type Guard struct {
	patterns []*Pattern
	set      protectedSet
}

// Config describes how to build a Guard (spec §6.3's protected_path /
// protected_patterns / skip_* options).
type Config struct {
	ProtectedTerms     []string
	CallerPatterns     []*Pattern
	Builtin            BuiltinFlags
}

// New builds a Guard, compiling every pattern eagerly so a malformed
// pattern fails the build rather than surfacing later at lookup time
// (spec §4.3, §7: MalformedPattern is a build-time error).
func New(cfg Config) (*Guard, error) {
	patterns := make([]*Pattern, 0, len(cfg.CallerPatterns))
	patterns = append(patterns, cfg.CallerPatterns...)
	patterns = append(patterns, builtinPatterns(cfg.Builtin)...)

	for _, p := range patterns {
		if err := p.Compile(); err != nil {
			return nil, err
		}
	}

	return &Guard{
		patterns: patterns,
		set:      newProtectedSet(cfg.ProtectedTerms),
	}, nil
}

// NewFromReaders is a convenience constructor that reads protected
// terms from r (nil means no protected-terms file) before building the
// Guard.
func NewFromReaders(protectedTerms io.Reader, callerPatterns []*Pattern, builtin BuiltinFlags) (*Guard, error) {
	var terms []string
	if protectedTerms != nil {
		var err error
		terms, err = ParseProtectedTermsReader(protectedTerms)
		if err != nil {
			return nil, err
		}
	}
	return New(Config{ProtectedTerms: terms, CallerPatterns: callerPatterns, Builtin: builtin})
}

// IsProtected evaluates the order given in spec §4.3: pattern list
// first (against the raw token, since URL/hostname/code patterns
// depend on preserved case and punctuation), then the protected set
// (checked against both the fully normalized and the plain-lowercased
// form of raw).
func (g *Guard) IsProtected(raw string) bool {
	if g == nil {
		return false
	}
	for _, p := range g.patterns {
		if p.MatchString(raw) {
			return true
		}
	}
	return g.set.contains(normalize.Key(raw), normalize.Lower(raw))
}
