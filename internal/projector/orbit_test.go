package projector

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-3, "component %d", i)
	}
}

func TestNewOrbitRoundTrip(t *testing.T) {
	start := mgl32.Vec3{10, 15, -22}
	o := NewOrbit(start, mgl32.Vec3{})
	assertVecNear(t, start, o.Position())
	assert.InDelta(t, start.Len(), o.Distance, 1e-4)
}

func TestOrbitRotateKeepsDistance(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 5, 10}, mgl32.Vec3{1, 0, 1})
	d := o.Distance
	o.Rotate(math32.Pi/2, 0.2)
	assert.InDelta(t, d, o.Position().Sub(o.Target).Len(), 1e-4)
}

func TestOrbitPitchIsClamped(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	o.Rotate(0, 10)
	assert.InDelta(t, maxPitch, o.Pitch, 1e-6)
	o.Rotate(0, -20)
	assert.InDelta(t, -maxPitch, o.Pitch, 1e-6)
}

func TestOrbitZoomIsClamped(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	o.Zoom(1)
	assert.InDelta(t, 9, o.Distance, 1e-4)
	o.Zoom(-1000)
	assert.Equal(t, float32(maxOrbitDist), o.Distance)
	o.Zoom(9)
	assert.Equal(t, float32(minOrbitDist), o.Distance)
}

func TestOrbitApplyFeedsProjector(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{0, 10, 0.01}, mgl32.Vec3{2.3, 0, 4.7})
	o.Pitch = maxPitch
	cam := DefaultCamera()
	o.Apply(&cam)
	p := &Projector{Camera: cam, Ground: Ground{Size: DefaultGroundSize}}

	hit, ok := p.Project(400, 300, testViewport)
	if assert.True(t, ok) {
		assert.Equal(t, float32(2.5), hit.Cell.X)
		assert.Equal(t, float32(4.5), hit.Cell.Z)
	}
}

func TestNewOrbitDegenerate(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	assert.Equal(t, float32(minOrbitDist), o.Distance)
}

func TestOrbitDragStartsOnlyWhenAllowed(t *testing.T) {
	var o Orbit
	assert.False(t, o.Drag(true, true, false), "press over a panel")
	assert.False(t, o.Drag(false, true, true), "held without a press on the canvas")

	assert.True(t, o.Drag(true, true, true))
	assert.True(t, o.Drag(false, true, false), "drag continues over a panel")
	assert.True(t, o.Drag(false, true, true))

	assert.False(t, o.Drag(false, false, true), "release ends the drag")
	assert.False(t, o.Drag(false, true, true))
}
