package uf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads rules from a line-oriented config. Each rule line is
// "mime PATTERN PROGRAM" or "ext PATTERN PROGRAM"; everything from the first
// '#' to the end of a line is a comment, and blank lines are skipped. The
// first malformed line aborts with a ParseError (fail-fast), so a broken
// config never yields a partial rule set.
func Parse(r io.Reader) (RuleSet, error) {
	var rules RuleSet

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()

		text := raw
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, ParseError{
				Line:    lineNumber,
				Content: strings.TrimSpace(raw),
				Reason:  fmt.Sprintf("expected 3 fields (keyword pattern program), got %d", len(fields)),
			}
		}

		keyword, pattern, program := fields[0], fields[1], fields[2]
		switch RuleKind(keyword) {
		case MimeRule:
			if err := validateMimePattern(pattern); err != nil {
				return nil, ParseError{
					Line:    lineNumber,
					Content: strings.TrimSpace(raw),
					Reason:  err.Error(),
				}
			}
			rule, err := newMimeRule(pattern, program, lineNumber)
			if err != nil {
				return nil, ParseError{
					Line:    lineNumber,
					Content: strings.TrimSpace(raw),
					Reason:  fmt.Sprintf("invalid mime pattern: %v", err),
				}
			}
			rules = append(rules, rule)
		case ExtRule:
			rules = append(rules, newExtRule(pattern, program, lineNumber))
		default:
			return nil, ParseError{
				Line:    lineNumber,
				Content: strings.TrimSpace(raw),
				Reason:  fmt.Sprintf("unknown keyword %q (expected \"mime\" or \"ext\")", keyword),
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return rules, nil
}

// Load reads and parses the config file at the given path. A missing or
// unreadable file yields a ConfigNotFoundError, distinct from the
// ParseError returned for a malformed file.
func Load(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ConfigNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f)
}

// validateMimePattern rejects wildcard shapes the matcher does not support:
// '*' is only legal as the entire subtype, as in "text/*".
func validateMimePattern(pattern string) error {
	if !strings.Contains(pattern, "*") {
		return nil
	}
	major, minor, ok := strings.Cut(pattern, "/")
	if !ok || major == "" || minor != "*" || strings.Contains(major, "*") {
		return fmt.Errorf("wildcard is only supported as the whole subtype (as in \"major/*\")")
	}
	return nil
}
