package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/editor"
	"scene-editor/internal/grid"
	"scene-editor/internal/placement"
	"scene-editor/internal/projector"
)

const (
	camHeight = 10
	stripW    = 200
	canvasW   = 800
	canvasH   = 800
)

// The canvas sits to the right of a stripW-wide toolbar.
var canvas = projector.Viewport{X: stripW, Y: 0, Width: canvasW, Height: canvasH}

var halfExtent = float32(camHeight * math.Tan(22.5*math.Pi/180))

type rect struct{ x0, y0, x1, y1 float32 }

func (r rect) Contains(x, y float32) bool { return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1 }

func newRouter(t *testing.T, blockers ...Region) (*Router, *[]string) {
	t.Helper()
	proj := &projector.Projector{
		Camera: projector.Camera{
			Position: mgl32.Vec3{0, camHeight, 0},
			Up:       mgl32.Vec3{0, 0, -1},
			FovY:     45,
			Near:     0.1,
			Far:      1000,
		},
		Ground: projector.Ground{Size: projector.DefaultGroundSize},
	}
	var lines []string
	r := &Router{
		Session:  editor.NewSession(proj, placement.NewLedger(nil, nil), nil),
		Viewport: canvas,
		Blockers: blockers,
		Log:      func(l string) { lines = append(lines, l) },
	}
	return r, &lines
}

// at returns the window pixel over world point (x, 0, z) for the top-down camera.
func at(x, z float32) (float32, float32) {
	return stripW + (x/halfExtent+1)/2*canvasW, (z/halfExtent + 1) / 2 * canvasH
}

func frame(x, z float32, pressed, released bool) Frame {
	px, py := at(x, z)
	return Frame{X: px, Y: py, Pressed: pressed, Released: released}
}

func TestClickOnCanvasPlaces(t *testing.T) {
	r, lines := newRouter(t)
	res := r.Handle(frame(1.3, -2.7, true, false))

	assert.False(t, res.Blocked)
	require.Equal(t, editor.Placed, res.Outcome)
	assert.Equal(t, grid.Snap(1.3, -2.7), res.Object.Cell())
	assert.Equal(t, 1, r.Session.Ledger().Len())
	assert.Equal(t, []string{"placed cube #ff0000 at (1.5, -2.5)"}, *lines)
}

func TestClickOnToolbarStripNeverPlaces(t *testing.T) {
	r, _ := newRouter(t)
	r.Handle(frame(0.2, 0.2, false, false))
	require.True(t, r.Session.HighlightLive())

	res := r.Handle(Frame{X: stripW / 2, Y: 100, Pressed: true})
	assert.True(t, res.Blocked)
	assert.Equal(t, editor.Ignored, res.Outcome)
	assert.False(t, r.Session.HighlightLive())
	assert.Zero(t, r.Session.Ledger().Len())
}

func TestBlockingRegionInsideCanvas(t *testing.T) {
	// A console covering the bottom quarter of the canvas.
	console := rect{x0: stripW, y0: canvasH * 3 / 4, x1: stripW + canvasW, y1: canvasH}
	r, _ := newRouter(t, console)

	res := r.Handle(frame(0, halfExtent*0.9, true, false))
	assert.True(t, res.Blocked)
	assert.Zero(t, r.Session.Ledger().Len())

	res = r.Handle(frame(0, 0, true, false))
	assert.False(t, res.Blocked)
	assert.Equal(t, editor.Placed, res.Outcome)
}

func TestPickAndDropAreLogged(t *testing.T) {
	r, lines := newRouter(t)
	r.Handle(frame(0.5, 0.5, true, false))
	r.Handle(frame(0.5, 0.5, false, true))

	// The second press lands on the cube itself, so it is picked rather than reported occupied.
	res := r.Handle(frame(0.5, 0.5, true, false))
	assert.Equal(t, editor.Picked, res.Outcome)
	r.Handle(frame(0.5, 0.5, false, true))
	assert.Contains(t, *lines, "picked cube at (0.5, 0.5)")
	assert.Contains(t, *lines, "dropped cube at (0.5, 0.5)")
}

func TestDragContinuesOverBlockedArea(t *testing.T) {
	console := rect{x0: stripW, y0: canvasH * 3 / 4, x1: stripW + canvasW, y1: canvasH}
	r, _ := newRouter(t, console)

	res := r.Handle(frame(0.5, 0.5, true, false))
	require.Equal(t, editor.Placed, res.Outcome)
	id := res.Object.ID

	res = r.Handle(frame(0.5, 0.5, true, false))
	require.Equal(t, editor.Picked, res.Outcome)
	require.Equal(t, editor.Dragging, r.Session.State())

	// Over the console the drag keeps following the ground.
	r.Handle(frame(2.5, halfExtent*0.9, false, false))
	obj, ok := r.Session.Ledger().Get(id)
	require.True(t, ok)
	assert.Equal(t, grid.Snap(2.5, halfExtent*0.9), obj.Cell())

	r.Handle(frame(2.5, halfExtent*0.9, false, true))
	assert.Equal(t, editor.Idle, r.Session.State())
	assert.Equal(t, 1, r.Session.Ledger().Len())
}
