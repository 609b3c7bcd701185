// Package input routes one frame of pointer state to the editor session. It has no rendering
// dependency; the main loop polls raylib and hands the result over as a Frame.
package input

import (
	"fmt"

	"scene-editor/internal/editor"
	"scene-editor/internal/placement"
	"scene-editor/internal/projector"
)

// Frame is the pointer state sampled once per frame.
type Frame struct {
	X, Y     float32
	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
}

// Region is a screen area that swallows the pointer (toolbar, console).
type Region interface {
	Contains(x, y float32) bool
}

// Result is what the frame did.
type Result struct {
	Outcome editor.Outcome
	Object  placement.PlacedObject
	Blocked bool // the pointer was outside the canvas or over a region
}

// Router forwards pointer frames to a session. Presses outside the canvas or over a blocking
// region never reach the session; moves there mark the highlight stale unless a drag is running.
type Router struct {
	Session  *editor.Session
	Viewport projector.Viewport
	Blockers []Region
	Log      func(line string)
}

// Blocked reports whether (x, y) is outside the canvas or over a blocking region.
func (r *Router) Blocked(x, y float32) bool {
	if !r.Viewport.Contains(x, y) {
		return true
	}
	for _, b := range r.Blockers {
		if b != nil && b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Handle processes one frame: move first, then press, then release.
func (r *Router) Handle(f Frame) Result {
	p := editor.Pointer{X: f.X, Y: f.Y, Viewport: r.Viewport}
	res := Result{Outcome: editor.Ignored, Blocked: r.Blocked(f.X, f.Y)}

	if res.Blocked && r.Session.State() != editor.Dragging {
		r.Session.PointerLeave()
	} else {
		r.Session.PointerMove(p)
	}
	if f.Pressed && !res.Blocked {
		res.Outcome, res.Object = r.Session.PointerDown(p)
		r.report(res)
	}
	if f.Released {
		if obj, ok := r.Session.Dragged(); ok {
			r.logf("dropped %s at %s", obj.Shape, obj.Cell())
		}
		r.Session.PointerUp()
	}
	return res
}

func (r *Router) report(res Result) {
	switch res.Outcome {
	case editor.Placed:
		r.logf("placed %s %s at %s", res.Object.Shape, res.Object.Color, res.Object.Cell())
	case editor.Picked:
		r.logf("picked %s at %s", res.Object.Shape, res.Object.Cell())
	case editor.Occupied:
		if cell, ok := r.Session.Highlight(); ok {
			r.logf("cell %s is occupied", cell)
		}
	case editor.Missed:
		r.logf("click missed the ground")
	}
}

func (r *Router) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log(fmt.Sprintf(format, args...))
	}
}
