package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"scene-editor/internal/anim"
	"scene-editor/internal/grid"
	"scene-editor/internal/palette"
	"scene-editor/internal/placement"
	"scene-editor/internal/primitives"
	"scene-editor/internal/projector"
)

const (
	gridMinorAlpha = 90
	axisLineAlpha  = 200
	highlightLift  = 0.01 // keeps the highlight quad above the grid lines
	orbitSpeed     = 0.005
)

var (
	canvasColor        = rl.NewColor(45, 48, 54, 255)
	gridColor          = rl.NewColor(150, 150, 150, gridMinorAlpha)
	axisXColor         = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZColor         = rl.NewColor(80, 80, 220, axisLineAlpha)
	highlightFreeColor = rl.NewColor(255, 255, 255, 110)
	highlightBusyColor = rl.NewColor(255, 40, 40, 140)
)

// entry is one drawn object and its pop-in animation.
type entry struct {
	obj placement.PlacedObject
	pop anim.PopIn
}

// Scene owns the orbit camera and draws the grid, the highlighted cell, and every placed object.
// It implements placement.SceneSink and placement.Mover, so the ledger drives what is drawn.
type Scene struct {
	GridVisible bool
	gridSize    int

	view  projector.Camera
	orbit projector.Orbit

	target  rl.RenderTexture2D
	prims   *primitives.Registry
	palette *palette.Palette
	objects map[uuid.UUID]*entry
	order   []uuid.UUID
	now     func() float64

	highlight        grid.Cell
	highlightVisible bool
	highlightFree    bool
}

// New returns a scene with a gridSize×gridSize grid and the camera at start looking at the origin.
func New(gridSize int, start [3]float32, fovY float32, pal *palette.Palette) *Scene {
	if pal == nil {
		pal = palette.Default()
	}
	view := projector.DefaultCamera()
	view.Position = mgl32.Vec3(start)
	if fovY > 0 {
		view.FovY = fovY
	}
	s := &Scene{
		GridVisible: true,
		gridSize:    gridSize,
		view:        view,
		orbit:       projector.NewOrbit(view.Position, view.Target),
		prims:       primitives.NewRegistry(),
		palette:     pal,
		objects:     make(map[uuid.UUID]*entry),
		now:         rl.GetTime,
	}
	s.orbit.Apply(&s.view)
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// View returns the camera the scene renders with; the pointer projector must use the same one.
func (s *Scene) View() projector.Camera {
	return s.view
}

// Add implements placement.SceneSink. The object pops in from the current time.
func (s *Scene) Add(obj placement.PlacedObject) {
	if _, ok := s.objects[obj.ID]; !ok {
		s.order = append(s.order, obj.ID)
	}
	s.objects[obj.ID] = &entry{obj: obj, pop: anim.NewPopIn(s.now())}
}

// Remove implements placement.SceneSink.
func (s *Scene) Remove(obj placement.PlacedObject) {
	if _, ok := s.objects[obj.ID]; !ok {
		return
	}
	delete(s.objects, obj.ID)
	for i, id := range s.order {
		if id == obj.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Move implements placement.Mover: the object jumps to its new position without replaying the pop-in.
func (s *Scene) Move(obj placement.PlacedObject) {
	if e, ok := s.objects[obj.ID]; ok {
		e.obj = obj
	}
}

// SetHighlight sets the cell drawn under the pointer. free selects the free/occupied color.
func (s *Scene) SetHighlight(cell grid.Cell, visible, free bool) {
	s.highlight = cell
	s.highlightVisible = visible
	s.highlightFree = free
}

// Update runs the orbit controls once per frame: right mouse drag rotates, wheel zooms.
// Pass input=false when the pointer is over a panel. A drag started on the canvas keeps
// rotating when the pointer crosses a panel; only its start and the wheel are gated.
func (s *Scene) Update(input bool) {
	pressed := rl.IsMouseButtonPressed(rl.MouseButtonRight)
	down := rl.IsMouseButtonDown(rl.MouseButtonRight)
	if s.orbit.Drag(pressed, down, input) {
		d := rl.GetMouseDelta()
		s.orbit.Rotate(-d.X*orbitSpeed, d.Y*orbitSpeed)
	}
	if input {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.orbit.Zoom(wheel)
		}
	}
	s.orbit.Apply(&s.view)
}

// Draw renders the 3D scene into the canvas rectangle vp. The render target has the canvas size,
// so the perspective aspect matches the one the pointer projector uses for vp.
func (s *Scene) Draw(vp projector.Viewport) {
	w, h := int32(vp.Width), int32(vp.Height)
	if w <= 0 || h <= 0 {
		return
	}
	s.ensureTarget(w, h)

	cam := s.rlCamera()
	s.prims.SetView([3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z})
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(canvasColor)
	rl.BeginMode3D(cam)
	if s.GridVisible {
		drawGrid(s.gridSize)
	}
	now := s.now()
	for _, id := range s.order {
		e := s.objects[id]
		scale := e.pop.To
		if !e.pop.Done(now) {
			scale = e.pop.Scale(now)
		}
		s.prims.Draw(e.obj, scale, s.palette.Outline(e.obj.Shape))
	}
	if s.highlightVisible {
		col := highlightFreeColor
		if !s.highlightFree {
			col = highlightBusyColor
		}
		center := rl.NewVector3(s.highlight.X, highlightLift, s.highlight.Z)
		rl.DrawPlane(center, rl.NewVector2(1, 1), col)
	}
	rl.EndMode3D()
	rl.EndTextureMode()

	// Render textures are stored bottom-up; a negative source height flips them.
	src := rl.NewRectangle(0, 0, float32(w), -float32(h))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(vp.X, vp.Y), rl.White)
}

func (s *Scene) ensureTarget(w, h int32) {
	if s.target.ID != 0 && s.target.Texture.Width == w && s.target.Texture.Height == h {
		return
	}
	if s.target.ID != 0 {
		rl.UnloadRenderTexture(s.target)
	}
	s.target = rl.LoadRenderTexture(w, h)
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	if s.target.ID != 0 {
		rl.UnloadRenderTexture(s.target)
		s.target = rl.RenderTexture2D{}
	}
	s.prims.Unload()
}

func (s *Scene) rlCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(s.view.Position.X(), s.view.Position.Y(), s.view.Position.Z()),
		Target:     rl.NewVector3(s.view.Target.X(), s.view.Target.Y(), s.view.Target.Z()),
		Up:         rl.NewVector3(s.view.Up.X(), s.view.Up.Y(), s.view.Up.Z()),
		Fovy:       s.view.FovY,
		Projection: rl.CameraPerspective,
	}
}

// drawGrid draws size×size unit cells on the XZ plane (Y=0) centred on the origin, with the X and Z
// axes highlighted. Reuses start/end vectors to avoid per-frame allocations.
func drawGrid(size int) {
	half := float32(size) / 2
	var start, end rl.Vector3
	for i := 0; i <= size; i++ {
		v := -half + float32(i)
		c := gridColor
		if v == 0 {
			c = axisZColor
		}
		start.X, start.Y, start.Z = v, 0, -half
		end.X, end.Y, end.Z = v, 0, half
		rl.DrawLine3D(start, end, c)

		c = gridColor
		if v == 0 {
			c = axisXColor
		}
		start.X, start.Y, start.Z = -half, 0, v
		end.X, end.Y, end.Z = half, 0, v
		rl.DrawLine3D(start, end, c)
	}
}
