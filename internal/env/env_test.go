package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# editor\nEDITOR_PALETTE_DIR=\"custom/prims\"\nEDITOR_LOG=from-file.txt\n"), 0644))
	t.Setenv(LogPath, "from-env.txt")
	t.Setenv(PaletteDir, "")
	require.NoError(t, os.Unsetenv(PaletteDir))

	require.NoError(t, Load(path))
	assert.Equal(t, "custom/prims", Get(PaletteDir, "x"))
	assert.Equal(t, "from-env.txt", Get(LogPath, "x"))
}

func TestGetFallback(t *testing.T) {
	t.Setenv(ConfigPath, "")
	assert.Equal(t, "config/editor.json", Get(ConfigPath, "config/editor.json"))
}
