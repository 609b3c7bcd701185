package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/grid"
	"scene-editor/internal/placement"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDefaultIsUnitSized(t *testing.T) {
	p := Default()
	for _, k := range placement.Shapes {
		size, ok := p.Size(k)
		require.True(t, ok, k.String())
		assert.Equal(t, [3]float32{1, 1, 1}, size)
		assert.Equal(t, placement.Color{}, p.Outline(k))
	}
	_, ok := p.Size(placement.ShapeUnknown)
	assert.False(t, ok)
}

func TestLoadMissingDir(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	size, ok := p.Size(placement.Cube)
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 1, 1}, size)
}

func TestLoadOverlaysBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cylinder.yaml", "type: cylinder\nsize: [1, 2, 1]\n")
	writeFile(t, dir, "sphere.yml", "type: sphere\noutline: white\n")

	p, err := Load(dir)
	require.NoError(t, err)

	size, _ := p.Size(placement.Cylinder)
	assert.Equal(t, [3]float32{1, 2, 1}, size)
	assert.Equal(t, placement.Color{}, p.Outline(placement.Cylinder), "omitted outline keeps builtin black")

	size, _ = p.Size(placement.Sphere)
	assert.Equal(t, [3]float32{1, 1, 1}, size, "omitted size keeps builtin")
	assert.Equal(t, placement.Color{R: 255, G: 255, B: 255}, p.Outline(placement.Sphere))
}

func TestLoadReportsBadFilesAndKeepsGoodOnes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cube.yaml", "type: cube\nsize: [2, 2, 2]\n")
	writeFile(t, dir, "plane.yaml", "type: plane\n")
	writeFile(t, dir, "broken.yaml", "type: [cube\n")
	writeFile(t, dir, "neg.yaml", "type: sphere\nsize: [1, -1, 1]\n")
	writeFile(t, dir, "badcolor.yaml", "type: cylinder\noutline: '#zz'\n")

	p, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type \"plane\"")
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, err.Error(), "size[1] is negative")
	assert.Contains(t, err.Error(), "outline")

	size, _ := p.Size(placement.Cube)
	assert.Equal(t, [3]float32{2, 2, 2}, size)
	size, _ = p.Size(placement.Sphere)
	assert.Equal(t, [3]float32{1, 1, 1}, size)
}

func TestPaletteDrivesPlacementHeight(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cube.yaml", "type: cube\nsize: [1, 4, 1]\n")
	p, err := Load(dir)
	require.NoError(t, err)

	l := placement.NewLedger(nil, p)
	obj, err := l.TryPlace(grid.At(0, 0), placement.Cube, placement.DefaultColor)
	require.NoError(t, err)
	assert.Equal(t, float32(2), obj.Position[1])
}
