package uf

import (
	"strings"

	"github.com/gobwas/glob"
)

// RuleKind discriminates the two pattern namespaces a rule can match in.
type RuleKind string

const (
	// MimeRule patterns match the detected major/minor MIME type. The only
	// supported wildcard form is "major/*".
	MimeRule RuleKind = "mime"
	// ExtRule patterns match the bare file extension, case-sensitively.
	ExtRule RuleKind = "ext"
)

// Rule maps a single MIME-type or extension pattern to a program.
type Rule struct {
	Kind    RuleKind
	Pattern string
	Program string
	// Line is the 1-based config file line the rule was read from.
	Line int

	// compiled once at parse time for wildcard mime rules; nil otherwise
	matcher glob.Glob
}

func newMimeRule(pattern, program string, line int) (Rule, error) {
	rule := Rule{
		Kind:    MimeRule,
		Pattern: pattern,
		Program: program,
		Line:    line,
	}

	// Only the "major/*" shape (already validated) is a wildcard; every
	// other pattern is an exact, character-for-character comparison. The
	// major type is quoted so glob metacharacters in it stay literal, and
	// '/' as separator keeps the wildcard from crossing the type boundary.
	if major, isWildcard := strings.CutSuffix(pattern, "/*"); isWildcard {
		matcher, err := glob.Compile(glob.QuoteMeta(major)+"/*", '/')
		if err != nil {
			return Rule{}, err
		}
		rule.matcher = matcher
	}
	return rule, nil
}

func newExtRule(pattern, program string, line int) Rule {
	return Rule{
		Kind:    ExtRule,
		Pattern: pattern,
		Program: program,
		Line:    line,
	}
}

// Matches reports whether the rule applies to the given target. A target
// with no detected MIME type never matches mime rules; a target with no
// extension never matches ext rules.
func (r Rule) Matches(t Target) bool {
	switch r.Kind {
	case ExtRule:
		return t.Extension != "" && r.Pattern == t.Extension
	case MimeRule:
		if t.MIME == nil {
			return false
		}
		if r.matcher != nil {
			return r.matcher.Match(t.MIME.String())
		}
		return r.Pattern == t.MIME.String()
	}
	return false
}
