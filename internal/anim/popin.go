package anim

import "github.com/chewxy/math32"

// Defaults for the placement pop-in: 0.1 → 1.0 at 0.05 per frame at 60 Hz.
const (
	DefaultFrom = float32(0.1)
	DefaultTo   = float32(1.0)
	DefaultRate = float32(3.0)
)

// PopIn is a linear scale-up sampled each frame from the current time. It holds no per-frame state,
// so skipped or repeated frames do not change the result.
type PopIn struct {
	Start float64 // seconds, same clock as the now passed to Scale
	From  float32
	To    float32
	Rate  float32 // scale units per second
}

// NewPopIn starts a default pop-in at time start.
func NewPopIn(start float64) PopIn {
	return PopIn{Start: start, From: DefaultFrom, To: DefaultTo, Rate: DefaultRate}
}

// Scale returns the uniform scale at time now, clamped to [From, To].
func (p PopIn) Scale(now float64) float32 {
	if p.Rate <= 0 {
		return p.To
	}
	elapsed := float32(now - p.Start)
	if elapsed <= 0 {
		return p.From
	}
	return math32.Min(p.To, p.From+elapsed*p.Rate)
}

// Done reports whether the animation has reached its target at time now.
func (p PopIn) Done(now float64) bool {
	return p.Scale(now) >= p.To
}
