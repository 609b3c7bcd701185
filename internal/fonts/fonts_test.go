package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0o644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFonts(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.OTF", "readme.txt")

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.OTF"}, got)

	got, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFonts(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans/GoogleSans-Medium.ttf")
	dirs := []string{filepath.Join(dir, "nope"), dir}

	got, err := Resolve("", dirs)
	require.NoError(t, err)
	assert.Empty(t, got)

	exact := filepath.Join(dir, "Inter", "Inter-Bold.ttf")
	got, err = Resolve(exact, dirs)
	require.NoError(t, err)
	assert.Equal(t, exact, got)

	got, err = Resolve("inter", dirs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = Resolve("Google Sans", dirs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Medium.ttf"), got)

	got, err = Resolve("assets/fonts/Inter-Light.ttf", dirs)
	require.NoError(t, err, "missing file falls back to the family name")
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	_, err = Resolve("Comic", dirs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
