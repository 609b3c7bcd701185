package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Keys read by the editor. Values in the process environment win over the .env file.
const (
	ConfigPath = "EDITOR_CONFIG"
	PaletteDir = "EDITOR_PALETTE_DIR"
	LogPath    = "EDITOR_LOG"
)

// Load reads KEY=VALUE pairs from path (e.g. ".env") into the environment without overriding
// variables that are already set. A missing file is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
