package editorconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the editor config file, relative to the process working directory.
const DefaultPath = "config/editor.json"

// Prefs holds editor preferences persisted across runs. The placed scene itself is not saved.
type Prefs struct {
	WindowWidth  int        `json:"window_width"`
	WindowHeight int        `json:"window_height"`
	Fullscreen   bool       `json:"fullscreen"`
	GridSize     int        `json:"grid_size"`
	GridVisible  bool       `json:"grid_visible"`
	ShowFPS      bool       `json:"show_fps"`
	ShowMemAlloc bool       `json:"show_memalloc"`
	DefaultShape string     `json:"default_shape"`
	DefaultColor string     `json:"default_color"`
	Swatches     []string   `json:"swatches"`
	CameraStart  [3]float32 `json:"camera_start"`
	CameraFovY   float32    `json:"camera_fovy"`
	ToolbarWidth int        `json:"toolbar_width"`
	Stylesheet   string     `json:"stylesheet,omitempty"`
	Font         string     `json:"font,omitempty"`
}

// Default returns the preferences used when no config file exists.
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 800,
		GridSize:     20,
		GridVisible:  true,
		DefaultShape: "cube",
		DefaultColor: "#ff0000",
		Swatches:     []string{"#ff0000", "#ff9900", "#ffee00", "#33cc33", "#3399ff", "#9933ff", "#ffffff", "#333333"},
		CameraStart:  [3]float32{10, 15, -22},
		CameraFovY:   45,
		ToolbarWidth: 220,
	}
}

// Load reads preferences from path (DefaultPath when empty). A missing file yields Default() and no
// error; a file that cannot be parsed yields Default() and the parse error so the caller can report it.
// Fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	if path == "" {
		path = DefaultPath
	}
	p := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("editorconfig: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("editorconfig: %s: %w", path, err)
	}
	return p.sanitize(), nil
}

// Save writes preferences to path (DefaultPath when empty), creating the directory if needed.
func Save(path string, p Prefs) error {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("editorconfig: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("editorconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// sanitize replaces out-of-range values with defaults.
func (p Prefs) sanitize() Prefs {
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.GridSize <= 0 {
		p.GridSize = d.GridSize
	}
	// Cells are centred on integer+0.5, so only an even grid has its edges on cell borders.
	if p.GridSize%2 != 0 {
		p.GridSize++
	}
	if p.CameraFovY <= 0 || p.CameraFovY >= 180 {
		p.CameraFovY = d.CameraFovY
	}
	if p.ToolbarWidth < 0 || p.ToolbarWidth >= p.WindowWidth {
		p.ToolbarWidth = d.ToolbarWidth
	}
	if len(p.Swatches) == 0 {
		p.Swatches = d.Swatches
	}
	return p
}
