// Package config resolves the location of the uf rules file.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	// EnvConfigPath overrides the rules file location when set.
	EnvConfigPath = "UF_CONFIG"

	// FileName is the rules file name under the XDG config directory.
	FileName = "uf.conf"
)

// Resolve returns the path to the rules file. Precedence: the explicit
// override (the --config flag), the UF_CONFIG environment variable, then
// $XDG_CONFIG_HOME/uf.conf (~/.config/uf.conf by default).
func Resolve(override string) (string, error) {
	if override != "" {
		return expand(override)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return expand(env)
	}
	return filepath.Join(xdg.ConfigHome, FileName), nil
}

func expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not expand config path: %s", path)
	}
	return expanded, nil
}
