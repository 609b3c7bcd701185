package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/placement"
)

// DefaultCSS styles the toolbar and inspector when no stylesheet file is configured.
const DefaultCSS = `
#toolbar { background: #1e1e1e; border: #3c3c3c; }
.heading { color: #9a9a9a; font-size: 16px; padding: 2px; }
.button { background: #333333; color: #dddddd; border: #444444; font-size: 18px; padding: 7px; height: 32px; }
.button.selected { background: #2f6fb0; color: #ffffff; border: #8fc1ff; }
.swatch { border: #555555; width: 36px; height: 36px; }
.swatch.selected { border: #ffffff; }
.current { color: #dddddd; font-size: 16px; padding: 2px; }
.inspector { background: #262626; border: #3c3c3c; }
.inspector-line { color: #cfcfcf; font-size: 16px; padding: 2px; }
`

const (
	margin      = 10
	rowGap      = 6
	headingH    = 22
	buttonH     = 32
	swatchSize  = 36
	swatchGap   = 8
	lineH       = 20
	inspectorNL = 5
)

// Action is what a toolbar click selected.
type Action struct {
	Shape    placement.ShapeKind
	Color    placement.Color
	HasColor bool
}

// Toolbar is the left strip with one button per shape and one swatch per color. The strip also
// hosts the inspector below the swatches.
type Toolbar struct {
	Width float32

	panel    *Node
	shapeHdr *Node
	shapes   []*Node
	colorHdr *Node
	swatches []*Node
	colors   []placement.Color
	current  *Node

	Inspector *Inspector
}

// NewToolbar builds a toolbar of the given width. swatches are color strings accepted by
// placement.ParseColor; invalid entries are skipped.
func NewToolbar(width float32, swatches []string) *Toolbar {
	tb := &Toolbar{
		Width:     width,
		panel:     NewNode("panel", "", "toolbar", ""),
		shapeHdr:  NewNode("label", "heading", "", "Shapes"),
		colorHdr:  NewNode("label", "heading", "", "Color"),
		current:   NewNode("label", "current", "", ""),
		Inspector: NewInspector(),
	}
	for _, k := range placement.Shapes {
		tb.shapes = append(tb.shapes, NewNode("button", "button", "shape-"+k.String(), k.String()))
	}
	for _, s := range swatches {
		c, err := placement.ParseColor(s)
		if err != nil {
			continue
		}
		fill := rl.NewColor(c.R, c.G, c.B, 255)
		n := NewNode("swatch", "swatch", "", "")
		n.Fill = &fill
		tb.swatches = append(tb.swatches, n)
		tb.colors = append(tb.colors, c)
	}
	return tb
}

// Layout places every node inside a strip of tb.Width × height at the left edge of the screen.
func (tb *Toolbar) Layout(height float32) {
	tb.panel.Bounds = rl.NewRectangle(0, 0, tb.Width, height)
	inner := tb.Width - 2*margin
	y := float32(margin)

	tb.shapeHdr.Bounds = rl.NewRectangle(margin, y, inner, headingH)
	y += headingH
	for _, n := range tb.shapes {
		n.Bounds = rl.NewRectangle(margin, y, inner, buttonH)
		y += buttonH + rowGap
	}

	y += rowGap
	tb.colorHdr.Bounds = rl.NewRectangle(margin, y, inner, headingH)
	y += headingH
	perRow := int((inner + swatchGap) / (swatchSize + swatchGap))
	if perRow < 1 {
		perRow = 1
	}
	for i, n := range tb.swatches {
		col, row := i%perRow, i/perRow
		n.Bounds = rl.NewRectangle(
			margin+float32(col)*(swatchSize+swatchGap),
			y+float32(row)*(swatchSize+swatchGap),
			swatchSize, swatchSize)
	}
	rows := (len(tb.swatches) + perRow - 1) / perRow
	y += float32(rows) * (swatchSize + swatchGap)

	tb.current.Bounds = rl.NewRectangle(margin, y, inner, lineH)
	y += lineH + 2*rowGap

	tb.Inspector.Layout(rl.NewRectangle(margin, y, inner, inspectorNL*lineH+2*margin))
}

// Contains reports whether (x, y) is over the toolbar strip.
func (tb *Toolbar) Contains(x, y float32) bool {
	return tb.panel.Contains(x, y)
}

// Sync marks the selected shape button and swatch and updates the current-selection label.
func (tb *Toolbar) Sync(shape placement.ShapeKind, c placement.Color) {
	for i, n := range tb.shapes {
		n.SetClass("selected", placement.Shapes[i] == shape)
	}
	for i, n := range tb.swatches {
		n.SetClass("selected", tb.colors[i] == c)
	}
	tb.current.Text = shape.String() + "  " + c.Hex()
}

// Click maps a click at (x, y) to an action. ok is false when nothing selectable was hit.
func (tb *Toolbar) Click(x, y float32) (a Action, ok bool) {
	for i, n := range tb.shapes {
		if n.Contains(x, y) {
			return Action{Shape: placement.Shapes[i]}, true
		}
	}
	for i, n := range tb.swatches {
		if n.Contains(x, y) {
			return Action{Color: tb.colors[i], HasColor: true}, true
		}
	}
	return Action{}, false
}

// AppendNodes appends the toolbar and inspector nodes to dst in draw order.
func (tb *Toolbar) AppendNodes(dst []*Node) []*Node {
	dst = append(dst, tb.panel, tb.shapeHdr)
	dst = append(dst, tb.shapes...)
	dst = append(dst, tb.colorHdr)
	dst = append(dst, tb.swatches...)
	dst = append(dst, tb.current)
	return tb.Inspector.AppendNodes(dst)
}
