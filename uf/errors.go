package uf

import (
	"errors"
	"fmt"
	"io/fs"
)

// ConfigNotFoundError indicates the config file is missing or unreadable,
// as opposed to present but malformed.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (e ConfigNotFoundError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("config file not found: %s", e.Path)
	}
	return fmt.Sprintf("failed to open config file %s: %v", e.Path, e.Err)
}

func (e ConfigNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError indicates a malformed rule line. Parsing is fail-fast: the
// first malformed line aborts the load and no rules from the file are used.
type ParseError struct {
	Line    int
	Content string
	Reason  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid config line %d: %s: %q", e.Line, e.Reason, e.Content)
}

// NoMatchError indicates that no rule in the set matched the target.
type NoMatchError struct {
	Path      string
	MIME      string
	Extension string
}

func (e NoMatchError) Error() string {
	switch {
	case e.MIME != "" && e.Extension != "":
		return fmt.Sprintf("no program found for %s (MIME type %q, extension %q)", e.Path, e.MIME, e.Extension)
	case e.MIME != "":
		return fmt.Sprintf("no program found for %s (MIME type %q)", e.Path, e.MIME)
	case e.Extension != "":
		return fmt.Sprintf("no program found for %s (extension %q)", e.Path, e.Extension)
	}
	return fmt.Sprintf("no program found for %s (no MIME type or extension detected)", e.Path)
}

// LaunchError indicates the configured program could not be started, as
// opposed to a config or matching problem.
type LaunchError struct {
	Program string
	Err     error
}

func (e LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Program, e.Err)
}

func (e LaunchError) Unwrap() error {
	return e.Err
}
