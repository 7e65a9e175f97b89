package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		override string
		env      string
		want     func(t *testing.T, got string)
	}{
		{
			name:     "explicit override wins over everything",
			override: "/etc/uf/rules.conf",
			env:      "/tmp/ignored.conf",
			want: func(t *testing.T, got string) {
				assert.Equal(t, "/etc/uf/rules.conf", got)
			},
		},
		{
			name: "environment variable wins over the default",
			env:  "/tmp/uf-env.conf",
			want: func(t *testing.T, got string) {
				assert.Equal(t, "/tmp/uf-env.conf", got)
			},
		},
		{
			name: "default is uf.conf under the XDG config directory",
			want: func(t *testing.T, got string) {
				assert.Equal(t, FileName, filepath.Base(got))
				assert.True(t, filepath.IsAbs(got), "default config path should be absolute: %s", got)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env != "" {
				t.Setenv(EnvConfigPath, tc.env)
			} else {
				t.Setenv(EnvConfigPath, "")
			}

			got, err := Resolve(tc.override)
			require.NoError(t, err)
			tc.want(t, got)
		})
	}
}
