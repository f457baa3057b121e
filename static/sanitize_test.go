package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		invalid bool
	}{
		{name: "plain", path: "/fixtures/static.txt", want: []string{"fixtures", "static.txt"}},
		{name: "root", path: "/", want: []string{}},
		{name: "empty", path: "", want: []string{}},
		{name: "repeated_separators", path: "//a///b", want: []string{"a", "b"}},
		{name: "encoded_space", path: "/my%20file.txt", want: []string{"my file.txt"}},
		{name: "dot_segment", path: "/./a", invalid: true},
		{name: "traversal", path: "/a/../b", invalid: true},
		{name: "encoded_traversal_upper", path: "/a/%2E%2E/b", invalid: true},
		{name: "encoded_traversal_lower", path: "/a/%2e%2e/b", invalid: true},
		{name: "encoded_traversal_mixed", path: "/a/%2e%2E/b", invalid: true},
		{name: "encoded_single_dot", path: "/%2e/a", invalid: true},
		{name: "raw_nul", path: "/a\x00b", invalid: true},
		{name: "encoded_nul", path: "/a%00b", invalid: true},
		{name: "backslash", path: "/a%5Cb", invalid: true},
		{name: "encoded_separator", path: "/a%2Fb", invalid: true},
		{name: "drive_letter", path: "/C%3A/windows", invalid: true},
		{name: "drive_letter_suffix", path: "/fooC%3Abar", invalid: true},
		{name: "dangling_escape", path: "/abc%2", invalid: true},
		{name: "non_hex_escape", path: "/abc%zz", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := sanitizePath(tt.path)
			if tt.invalid {
				require.Error(t, err)
				assert.Equal(t, ErrInvalidPath, err)
				assert.Equal(t, "invalid path for static asset", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, segments)
		})
	}
}

func TestErrInvalidPathStatusCode(t *testing.T) {
	assert.Equal(t, 400, ErrInvalidPath.StatusCode())
}
