package projector

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch        = 89 * math32.Pi / 180
	minOrbitDist    = 2
	maxOrbitDist    = 200
	defaultZoomStep = 0.1
)

// Orbit keeps a camera on a sphere around Target, like orbit controls: yaw turns around the
// vertical axis, pitch tilts above or below the target, distance zooms.
type Orbit struct {
	Target   mgl32.Vec3
	Yaw      float32 // radians, 0 = camera on +Z
	Pitch    float32 // radians, clamped to ±89°
	Distance float32

	dragging bool
}

// NewOrbit returns the orbit that puts the camera at position looking at target.
func NewOrbit(position, target mgl32.Vec3) Orbit {
	off := position.Sub(target)
	d := off.Len()
	if d == 0 {
		return Orbit{Target: target, Distance: minOrbitDist}
	}
	o := Orbit{
		Target:   target,
		Yaw:      math32.Atan2(off.X(), off.Z()),
		Pitch:    math32.Asin(off.Y() / d),
		Distance: d,
	}
	o.clamp()
	return o
}

// Rotate adds to yaw and pitch (radians). Pitch stays within ±89° so the up vector stays valid.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.Yaw += dYaw
	o.Pitch += dPitch
	o.clamp()
}

// Drag tracks a rotate drag from the mouse button state of one frame. A drag starts only on a press
// that is allowed (the pointer is over the canvas) and then lasts while the button stays down,
// wherever the pointer goes. It reports whether the drag is active.
func (o *Orbit) Drag(pressed, down, allowed bool) bool {
	switch {
	case !down:
		o.dragging = false
	case pressed && allowed:
		o.dragging = true
	}
	return o.dragging
}

// Zoom moves the camera closer for positive steps and further for negative ones
// (one step = 10% of the distance).
func (o *Orbit) Zoom(steps float32) {
	o.Distance *= 1 - steps*defaultZoomStep
	o.clamp()
}

// Position returns the camera position on the orbit sphere.
func (o Orbit) Position() mgl32.Vec3 {
	cp := math32.Cos(o.Pitch)
	return mgl32.Vec3{
		o.Target.X() + o.Distance*cp*math32.Sin(o.Yaw),
		o.Target.Y() + o.Distance*math32.Sin(o.Pitch),
		o.Target.Z() + o.Distance*cp*math32.Cos(o.Yaw),
	}
}

// Apply writes position, target, and up into c, leaving the lens settings alone.
func (o Orbit) Apply(c *Camera) {
	c.Position = o.Position()
	c.Target = o.Target
	c.Up = mgl32.Vec3{0, 1, 0}
}

func (o *Orbit) clamp() {
	o.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, o.Pitch))
	o.Distance = math32.Max(minOrbitDist, math32.Min(maxOrbitDist, o.Distance))
}
