package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"scene-editor/internal/placement"
)

// DefaultDir is where primitive definitions are looked up, relative to the working directory.
const DefaultDir = "assets/primitives"

// PrimitiveDef is the YAML definition of a placeable primitive (e.g. assets/primitives/cube.yaml).
// Size is the bounding box in world units; Outline is the hex or named color of the outline shell.
// Omitted fields keep the built-in value.
type PrimitiveDef struct {
	Type    string     `yaml:"type"`
	Size    [3]float32 `yaml:"size,omitempty"`
	Outline string     `yaml:"outline,omitempty"`
}

// builtin are unit-sized primitives: cube side 1, sphere radius 0.5, cylinder radius 0.5 height 1.
var builtin = map[placement.ShapeKind]PrimitiveDef{
	placement.Cube:     {Type: "cube", Size: [3]float32{1, 1, 1}, Outline: "#000000"},
	placement.Sphere:   {Type: "sphere", Size: [3]float32{1, 1, 1}, Outline: "#000000"},
	placement.Cylinder: {Type: "cylinder", Size: [3]float32{1, 1, 1}, Outline: "#000000"},
}

// Palette holds the definition of each placeable shape. It implements placement.Footprints.
type Palette struct {
	defs map[placement.ShapeKind]PrimitiveDef
}

// Default returns the built-in palette.
func Default() *Palette {
	p := &Palette{defs: make(map[placement.ShapeKind]PrimitiveDef, len(builtin))}
	for k, d := range builtin {
		p.defs[k] = d
	}
	return p
}

// Load reads every *.yaml / *.yml file in dir and overlays it on the built-in definition of its type.
// A missing dir yields Default(). Files that fail to parse or name an unknown type are skipped and
// reported in the joined error; the returned palette is always usable.
func Load(dir string) (*Palette, error) {
	p := Default()
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return p, fmt.Errorf("palette: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var errs []error
	for _, path := range paths {
		if err := p.loadFile(path); err != nil {
			errs = append(errs, err)
		}
	}
	return p, errors.Join(errs...)
}

func (p *Palette) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("palette %s: %w", path, err)
	}
	var def PrimitiveDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("palette %s: %w", path, err)
	}
	kind, ok := placement.ParseShape(def.Type)
	if !ok {
		return fmt.Errorf("palette %s: unknown type %q", path, def.Type)
	}
	for i, v := range def.Size {
		if v < 0 {
			return fmt.Errorf("palette %s: size[%d] is negative", path, i)
		}
	}
	if def.Outline != "" {
		if _, err := placement.ParseColor(def.Outline); err != nil {
			return fmt.Errorf("palette %s: outline: %w", path, err)
		}
	}
	merged := p.defs[kind]
	if err := copier.CopyWithOption(&merged, &def, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("palette %s: %w", path, err)
	}
	merged.Type = kind.String()
	p.defs[kind] = merged
	return nil
}

// Size implements placement.Footprints.
func (p *Palette) Size(kind placement.ShapeKind) ([3]float32, bool) {
	d, ok := p.defs[kind]
	if !ok {
		return [3]float32{}, false
	}
	return d.Size, true
}

// Outline returns the outline color for kind (black when unset).
func (p *Palette) Outline(kind placement.ShapeKind) placement.Color {
	d, ok := p.defs[kind]
	if !ok {
		return placement.Color{}
	}
	c, err := placement.ParseColor(d.Outline)
	if err != nil {
		return placement.Color{}
	}
	return c
}
