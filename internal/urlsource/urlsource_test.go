package urlsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comments and blanks",
			input: "# comment\n\nhttp://a\n  http://b  \n",
			want:  []string{"http://a", "http://b"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "duplicates and order kept",
			input: "http://b\nhttp://a\nhttp://b",
			want:  []string{"http://b", "http://a", "http://b"},
		},
		{
			name:  "indented comment",
			input: "   # not a url\nhttp://a",
			want:  []string{"http://a"},
		},
		{
			name:  "hash inside line kept",
			input: "http://a/#section",
			want:  []string{"http://a/#section"},
		},
		{
			name:  "malformed values pass through",
			input: "not a url\r\n\t\r\nftp://x",
			want:  []string{"not a url", "ftp://x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n\nhttp://a\n  http://b  \n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"http://a", "http://b"}, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrSourceNotFound)
	require.Contains(t, err.Error(), path)
}
