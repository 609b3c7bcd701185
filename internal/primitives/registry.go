package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/placement"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 24
	outlineScale   = 1.1
	outlineRings   = 8
	outlineSlices  = 12
)

// cached holds the unit mesh and material of one shape. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// centerOffset moves the mesh so its bounding-box center is at the model origin.
	centerOffset rl.Vector3
}

// Registry draws placed primitives: a lit, tinted mesh plus a wire outline shell.
// Meshes and the shader are created on first use so GPU resources are allocated after the
// window/OpenGL context exists.
type Registry struct {
	cache    map[placement.ShapeKind]cached
	shader   litShader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry with light coming from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[placement.ShapeKind]cached),
		lightDir: [3]float32{0.5, 1, -0.3},
	}
}

// SetView sets the camera position for this frame's specular term. Call once per frame before Draw.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
	if r.loaded {
		r.shader.setView(r.viewPos, r.lightDir)
	}
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.shader = loadLitShader()
	r.loaded = true
	r.shader.setView(r.viewPos, r.lightDir)
}

// ensure creates the unit mesh for kind. Unknown kinds return false.
func (r *Registry) ensure(kind placement.ShapeKind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var c cached
	switch kind {
	case placement.Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case placement.Sphere:
		// Radius 0.5 so the diameter matches the cube side.
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case placement.Cylinder:
		// Raylib cylinder has its base at Y=0; shift down by half the height to center it.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.centerOffset = rl.NewVector3(0, -0.5, 0)
	default:
		return cached{}, false
	}
	r.ensureShader()
	c.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader.shader) {
		c.mtl.Shader = r.shader.shader
	}
	r.cache[kind] = c
	return c, true
}

// Draw draws one object centred at position with per-axis size and a uniform pop-in scale
// (scale 0 is treated as 1). Must be called between BeginMode3D and EndMode3D.
// Unknown kinds are skipped.
func (r *Registry) Draw(obj placement.PlacedObject, scale float32, outline placement.Color) {
	c, ok := r.ensure(obj.Shape)
	if !ok {
		return
	}
	if scale == 0 {
		scale = 1
	}
	sx, sy, sz := obj.Size[0]*scale, obj.Size[1]*scale, obj.Size[2]*scale
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = ToColor(obj.Color)
	}
	// Order: center the mesh, scale, then translate to the object position.
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixTranslate(c.centerOffset.X, c.centerOffset.Y, c.centerOffset.Z), rl.MatrixScale(sx, sy, sz)),
		rl.MatrixTranslate(obj.Position[0], obj.Position[1], obj.Position[2]),
	)
	rl.DrawMesh(c.mesh, c.mtl, transform)
	drawOutline(obj, rl.NewVector3(sx, sy, sz), ToColor(outline))
}

// drawOutline draws a slightly larger wire shell around the object.
func drawOutline(obj placement.PlacedObject, size rl.Vector3, col rl.Color) {
	center := rl.NewVector3(obj.Position[0], obj.Position[1], obj.Position[2])
	switch obj.Shape {
	case placement.Cube:
		rl.DrawCubeWiresV(center, rl.Vector3Scale(size, outlineScale), col)
	case placement.Sphere:
		rl.DrawSphereWires(center, size.X*0.5*outlineScale, outlineRings, outlineSlices, col)
	case placement.Cylinder:
		h := size.Y * outlineScale
		base := rl.NewVector3(center.X, center.Y-h*0.5, center.Z)
		r := size.X * 0.5 * outlineScale
		rl.DrawCylinderWires(base, r, r, h, outlineSlices, col)
	}
}

// ToColor converts an editor color to an opaque raylib color.
func ToColor(c placement.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// Unload frees the GPU resources of every cached shape.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader.shader) {
		rl.UnloadShader(r.shader.shader)
	}
	r.loaded = false
}
