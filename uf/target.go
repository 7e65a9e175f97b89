package uf

import (
	"path/filepath"
	"strings"

	"github.com/uf-cli/uf/internal/mimetype"
)

// Target is the file a lookup runs against. MIME is nil when detection
// failed and Extension is empty when the file has none; a rule can still
// match on whichever of the two is present.
type Target struct {
	Path      string
	MIME      *mimetype.Type
	Extension string
}

// ExtensionOf returns the bare extension of a path without the leading dot,
// or "" when the file has none. Dotfiles like ".bashrc" have no extension.
func ExtensionOf(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}
