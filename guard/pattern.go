// Package guard implements the domain-protection predicate of spec
// §4.3: a set of compiled patterns plus a protected-terms set, either
// of which can mark a raw token as one that must never be rewritten.
package guard

import (
	"regexp"
	"strings"
	"sync"

	"github.com/fulmenhq/spellguard/spellerr"
)

// PatternOptions carries the regex flags a caller-supplied pattern may
// request (spec §4.3). A plain string pattern with the zero value is
// case-sensitive, single-line, non-extended.
type PatternOptions struct {
	CaseInsensitive bool
	Multiline       bool
	// Extended ignores unescaped whitespace and '#'-prefixed comments
	// in the pattern source before compiling, the way Perl/PCRE's /x
	// flag does. Go's regexp/syntax has no native extended mode, so
	// this package pre-processes the source the same way a caller's
	// richer regex engine would before re-emitting it in RE2 syntax
	// (spec §9's documented implementer choice).
	Extended bool
}

// Pattern is a compiled protected-pattern: the source text, its flags,
// and a lazily-compiled *regexp.Regexp cached behind sync.Once,
// mirroring the teacher stack's catalog Pattern type (compile-once,
// evaluate-many).
type Pattern struct {
	Source  string
	Options PatternOptions

	once    sync.Once
	re      *regexp.Regexp
	compErr error
}

// NewPattern constructs an uncompiled Pattern. Compilation happens
// lazily on first MatchString/Compile call.
func NewPattern(source string, opts PatternOptions) *Pattern {
	return &Pattern{Source: source, Options: opts}
}

// Compile forces compilation now, returning a *spellerr.Error with Kind
// MalformedPattern naming the offending source on failure. Safe to call
// multiple times and from multiple goroutines.
func (p *Pattern) Compile() error {
	p.once.Do(func() {
		src := p.Source
		if p.Options.Extended {
			src = stripExtendedWhitespace(src)
		}

		var flags string
		if p.Options.CaseInsensitive {
			flags += "i"
		}
		if p.Options.Multiline {
			flags += "m"
		}
		if flags != "" {
			src = "(?" + flags + ")" + src
		}

		re, err := regexp.Compile(src)
		if err != nil {
			p.compErr = spellerr.Wrap(spellerr.MalformedPattern, "pattern failed to compile", err).
				WithDetails(map[string]any{"source": p.Source})
			return
		}
		p.re = re
	})
	return p.compErr
}

// MatchString reports whether raw matches this pattern. A pattern that
// fails to compile never matches; the compile error was already
// surfaced at build time (spec §4.3: "a malformed pattern ... fails
// the build", never the lookup).
func (p *Pattern) MatchString(raw string) bool {
	if err := p.Compile(); err != nil {
		return false
	}
	return p.re.MatchString(raw)
}

// stripExtendedWhitespace removes unescaped whitespace and '#'-led
// line comments from a pattern source, emulating the /x regex flag.
func stripExtendedWhitespace(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	inClass := false
	escaped := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			b.WriteByte(c)
			escaped = true
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == ']':
			inClass = false
			b.WriteByte(c)
		case inClass:
			b.WriteByte(c)
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// dropped
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
