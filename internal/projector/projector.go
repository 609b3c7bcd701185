package projector

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"scene-editor/internal/grid"
)

// parallelEpsilon: rays whose Y direction is smaller than this are treated as parallel to the ground.
const parallelEpsilon = 1e-6

// DefaultGroundSize matches the editor grid: a 20×20 plane centred on the origin.
const DefaultGroundSize = 20

// Viewport is the canvas rectangle in window pixels. The 3D view may not cover the whole window
// (e.g. a toolbar strip), so pointer coordinates are normalized against this rectangle.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// Aspect returns width/height, or 0 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width / v.Height
}

// Contains reports whether the pixel (px, py) lies inside the viewport.
func (v Viewport) Contains(px, py float32) bool {
	return px >= v.X && px < v.X+v.Width && py >= v.Y && py < v.Y+v.Height
}

// NDC converts a pixel position to normalized device coordinates in [-1, 1] (Y up).
// ok is false when the viewport has no area.
func (v Viewport) NDC(px, py float32) (x, y float32, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	x = (px-v.X)/v.Width*2 - 1
	y = -(py-v.Y)/v.Height*2 + 1
	return x, y, true
}

// Ray is a half-line from Origin along Direction (unit length).
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox returns the distance to the first hit of the ray with the axis-aligned box [min, max]
// (slab test). A ray starting inside the box hits at t = 0.
func (r Ray) IntersectBox(min, max mgl32.Vec3) (float32, bool) {
	tmin := float32(0)
	tmax := math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if math32.Abs(d) < parallelEpsilon {
			if o < min[axis] || o > max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (min[axis] - o) / d
		t2 := (max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Camera is a perspective camera. FovY is the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32
	Near     float32
	Far      float32
}

// DefaultCamera returns the editor's starting camera: above and behind the grid, looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{10, 15, -22},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Near:     0.1,
		Far:      1000,
	}
}

// viewProjection64 returns projection * view in float64. Inverting it in float32 with a 0.1/1000
// near/far ratio loses about 1e-4 world units, enough to flip a snap near a cell edge.
func (c Camera) viewProjection64(aspect float32) mgl64.Mat4 {
	view := mgl64.LookAtV(vec64(c.Position), vec64(c.Target), vec64(c.Up))
	proj := mgl64.Perspective(mgl64.DegToRad(float64(c.FovY)), float64(aspect), float64(c.Near), float64(c.Far))
	return proj.Mul4(view)
}

// Ray returns the ray from the camera position through the NDC point on the near plane.
// The unprojection runs in float64. ok is false for a degenerate camera (zero aspect, singular
// matrix, Up parallel to the view direction).
func (c Camera) Ray(ndcX, ndcY, aspect float32) (Ray, bool) {
	if aspect <= 0 {
		return Ray{}, false
	}
	vp := c.viewProjection64(aspect)
	if det := vp.Det(); det == 0 || math.IsNaN(det) {
		return Ray{}, false
	}
	near, ok := unproject(vp.Inv(), mgl64.Vec4{float64(ndcX), float64(ndcY), -1, 1})
	if !ok {
		return Ray{}, false
	}
	dir := near.Sub(vec64(c.Position))
	if dir.Len() == 0 {
		return Ray{}, false
	}
	dir = dir.Normalize()
	return Ray{
		Origin:    c.Position,
		Direction: mgl32.Vec3{float32(dir[0]), float32(dir[1]), float32(dir[2])},
	}, true
}

func unproject(inv mgl64.Mat4, clip mgl64.Vec4) (mgl64.Vec3, bool) {
	p := inv.Mul4x1(clip)
	if p.W() == 0 {
		return mgl64.Vec3{}, false
	}
	return p.Vec3().Mul(1 / p.W()), true
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Ground is the horizontal plane y = 0. Size > 0 bounds it to a Size×Size square centred on the
// origin; Size == 0 makes it infinite. Size must be even for the square to line up with the cells.
type Ground struct {
	Size float32
}

// Intersect returns the first point where r meets the ground. There is no hit when the ray is
// parallel to the plane, points away from it, or lands outside the bounded square.
func (g Ground) Intersect(r Ray) (mgl32.Vec3, bool) {
	dy := r.Direction.Y()
	if math32.Abs(dy) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := -r.Origin.Y() / dy
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	p := r.At(t)
	p[1] = 0
	if g.Size > 0 {
		// Half-open on the far edge so, for an even Size, every accepted point snaps to a cell inside the grid.
		half := g.Size / 2
		if p.X() < -half || p.X() >= half || p.Z() < -half || p.Z() >= half {
			return mgl32.Vec3{}, false
		}
	}
	return p, true
}

// Hit is a ground intersection and the cell it snaps to.
type Hit struct {
	Point mgl32.Vec3
	Cell  grid.Cell
}

// Projector turns pointer positions into rays and ground cells.
type Projector struct {
	Camera Camera
	Ground Ground
}

// New returns a projector with the default camera over a bounded ground of the given size.
func New(groundSize float32) *Projector {
	return &Projector{Camera: DefaultCamera(), Ground: Ground{Size: groundSize}}
}

// Ray returns the world ray through the pixel (px, py) of vp.
func (p *Projector) Ray(px, py float32, vp Viewport) (Ray, bool) {
	x, y, ok := vp.NDC(px, py)
	if !ok {
		return Ray{}, false
	}
	return p.Camera.Ray(x, y, vp.Aspect())
}

// Project returns the ground hit under the pixel (px, py), or false when the ray misses.
func (p *Projector) Project(px, py float32, vp Viewport) (Hit, bool) {
	r, ok := p.Ray(px, py, vp)
	if !ok {
		return Hit{}, false
	}
	return p.ProjectRay(r)
}

// ProjectRay intersects an existing ray with the ground and snaps the hit.
func (p *Projector) ProjectRay(r Ray) (Hit, bool) {
	pt, ok := p.Ground.Intersect(r)
	if !ok {
		return Hit{}, false
	}
	return Hit{Point: pt, Cell: grid.Snap(pt.X(), pt.Z())}, true
}
