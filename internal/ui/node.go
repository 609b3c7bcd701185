package ui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button, swatch. Classes and ID are matched against
// the stylesheet; Bounds is set by layout code unless the stylesheet positions the node.
type Node struct {
	Type    string
	Classes []string
	ID      string
	Bounds  rl.Rectangle
	Text    string
	Fill    *rl.Color // overrides the stylesheet background (color swatches)
}

// NewNode creates a node with type, one class, id and text.
func NewNode(typ, class, id, text string) *Node {
	n := &Node{Type: typ, ID: id, Text: text}
	if class != "" {
		n.Classes = []string{class}
	}
	return n
}

// SetClass adds or removes class. It reports whether the class list changed.
func (n *Node) SetClass(class string, on bool) bool {
	i := slices.Index(n.Classes, class)
	switch {
	case on && i < 0:
		n.Classes = append(n.Classes, class)
		return true
	case !on && i >= 0:
		n.Classes = slices.Delete(n.Classes, i, i+1)
		return true
	}
	return false
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// Contains reports whether the point (x, y) in screen pixels is inside the node.
func (n *Node) Contains(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(x, y), n.Bounds)
}
