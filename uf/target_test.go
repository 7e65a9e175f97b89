package uf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "notes.txt", want: "txt"},
		{path: "/home/user/docs/notes.txt", want: "txt"},
		{path: "archive.tar.gz", want: "gz"},
		{path: "book.EPUB", want: "EPUB"},
		{path: "README", want: ""},
		{path: ".bashrc", want: ""},
		{path: "/etc/conf.d/network", want: ""},
		{path: "trailing.", want: ""},
		{path: "a.b/c", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtensionOf(tc.path))
		})
	}
}
