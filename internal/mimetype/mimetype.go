// Package mimetype detects the MIME type of a file by delegating to file(1).
// Detection is intentionally external so it can be swapped for another
// mechanism without touching rule matching.
package mimetype

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Type is a parsed major/minor MIME media type.
type Type struct {
	Major string
	Minor string
}

func (t Type) String() string {
	return t.Major + "/" + t.Minor
}

// Detect runs `file --brief --dereference --mime-type` against the given
// path and parses its output. Any failure to run the command, a non-zero
// exit, or malformed output is returned as an error; callers decide whether
// a missing MIME type is fatal.
func Detect(ctx context.Context, path string) (Type, error) {
	cmd := exec.CommandContext(ctx, "file", "--brief", "--dereference", "--mime-type", path)

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return Type{}, fmt.Errorf("'file' command failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Type{}, fmt.Errorf("failed to execute 'file' command: %w", err)
	}

	return ParseType(strings.TrimSpace(string(out)))
}

// ParseType parses a "major/minor" media type string.
func ParseType(s string) (Type, error) {
	major, minor, ok := strings.Cut(s, "/")
	if !ok || major == "" || minor == "" {
		return Type{}, fmt.Errorf("not a valid MIME type: %q", s)
	}
	return Type{Major: major, Minor: minor}, nil
}
