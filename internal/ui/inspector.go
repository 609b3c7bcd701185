package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Inspector is a panel that shows the highlighted cell and the object on it.
// It owns its nodes and updates their text in Update.
type Inspector struct {
	panel *Node
	lines [inspectorNL]*Node
}

// NewInspector creates an Inspector with nodes styled by .inspector and .inspector-line.
func NewInspector() *Inspector {
	in := &Inspector{panel: NewNode("panel", "inspector", "", "")}
	for i := range in.lines {
		in.lines[i] = NewNode("label", "inspector-line", "", "")
	}
	return in
}

// Selection holds the data shown in the inspector. The caller fills it from the editor session;
// ui does not depend on the editor.
type Selection struct {
	Cell     string // formatted grid cell, empty when the pointer never hit the ground
	Live     bool   // the pointer is currently over the ground
	Occupied bool
	Object   string // "cube #ff0000", empty when the cell is free
	State    string // "idle" or "dragging"
	Count    int
}

// Layout places the panel at r and stacks the lines inside it.
func (in *Inspector) Layout(r rl.Rectangle) {
	in.panel.Bounds = r
	for i, n := range in.lines {
		n.Bounds = rl.NewRectangle(r.X+4, r.Y+margin+float32(i)*lineH, r.Width-8, lineH)
	}
}

// Update refreshes the labels from sel.
func (in *Inspector) Update(sel Selection) {
	cell := sel.Cell
	switch {
	case cell == "":
		cell = "none"
	case !sel.Live:
		cell += " (stale)"
	}
	in.lines[0].Text = "Cell: " + cell
	if sel.Occupied {
		in.lines[1].Text = "Occupied: yes"
		in.lines[2].Text = "Object: " + sel.Object
	} else {
		in.lines[1].Text = "Occupied: no"
		in.lines[2].Text = "Object: -"
	}
	in.lines[3].Text = "State: " + sel.State
	in.lines[4].Text = fmt.Sprintf("Objects: %d", sel.Count)
}

// AppendNodes appends the inspector nodes to dst.
func (in *Inspector) AppendNodes(dst []*Node) []*Node {
	dst = append(dst, in.panel)
	return append(dst, in.lines[:]...)
}
