package mimetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Type
		wantErr bool
	}{
		{
			name:  "plain major/minor pair",
			input: "text/plain",
			want:  Type{Major: "text", Minor: "plain"},
		},
		{
			name:  "minor type with subtype punctuation",
			input: "application/vnd.oasis.opendocument.text",
			want:  Type{Major: "application", Minor: "vnd.oasis.opendocument.text"},
		},
		{
			name:  "x- prefixed minor type",
			input: "text/x-c",
			want:  Type{Major: "text", Minor: "x-c"},
		},
		{
			name:    "missing slash",
			input:   "textplain",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty minor type",
			input:   "text/",
			wantErr: true,
		},
		{
			name:    "empty major type",
			input:   "/plain",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseType(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_TypeString(t *testing.T) {
	assert.Equal(t, "text/plain", Type{Major: "text", Minor: "plain"}.String())
}
