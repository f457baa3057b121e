package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"gzip", true},
		{"GZIP", true},
		{"gzip, deflate, br", true},
		{"br, gzip;q=0.8", true},
		{"*", true},
		{"deflate, *;q=0.5", true},
		{"identity", false},
		{"gzipx", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, acceptsGzip(tt.header), "header %q", tt.header)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("plain"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js.gz"), []byte("compressed"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solo.js"), []byte("solo"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	gzipped := &Middleware{config: Config{Gzip: true}}
	plain := &Middleware{config: Config{}}

	t.Run("gzip_variant_selected", func(t *testing.T) {
		file, err := gzipped.resolveFile(filepath.Join(dir, "app.js"), "gzip")
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.True(t, file.gzipped)
		assert.Equal(t, filepath.Join(dir, "app.js.gz"), file.path)
		assert.Equal(t, int64(len("compressed")), file.size)
	})

	t.Run("client_without_gzip_gets_plain", func(t *testing.T) {
		file, err := gzipped.resolveFile(filepath.Join(dir, "app.js"), "identity")
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.False(t, file.gzipped)
		assert.Equal(t, filepath.Join(dir, "app.js"), file.path)
	})

	t.Run("gzip_disabled_gets_plain", func(t *testing.T) {
		file, err := plain.resolveFile(filepath.Join(dir, "app.js"), "gzip")
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.False(t, file.gzipped)
	})

	t.Run("missing_sibling_falls_through", func(t *testing.T) {
		file, err := gzipped.resolveFile(filepath.Join(dir, "solo.js"), "gzip")
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.False(t, file.gzipped)
		assert.Equal(t, filepath.Join(dir, "solo.js"), file.path)
	})

	t.Run("missing_file", func(t *testing.T) {
		file, err := gzipped.resolveFile(filepath.Join(dir, "nope.js"), "gzip")
		require.NoError(t, err)
		assert.Nil(t, file)
	})

	t.Run("directory_is_not_served", func(t *testing.T) {
		file, err := gzipped.resolveFile(filepath.Join(dir, "sub"), "gzip")
		require.NoError(t, err)
		assert.Nil(t, file)
	})
}
