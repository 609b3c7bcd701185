package ui

import (
	"image/color"
	"os"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/stylesheet"
)

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per node and recomputed when the stylesheet, the node list or a
// node's classes change.
// If a font is loaded (LoadFont), text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet  *stylesheet.Stylesheet
	nodes  []*Node
	styles []cachedStyle
	font   rl.Font
}

type cachedStyle struct {
	classes []string
	id      string
	style   stylesheet.ComputedStyle
	valid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	sheet, err := stylesheet.Load(path)
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. the built-in one).
func (e *Engine) SetStylesheet(sheet *stylesheet.Stylesheet) {
	e.sheet = sheet
	e.styles = nil
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *stylesheet.Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font (zero texture ID when none).
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	if len(e.styles) != len(nodes) {
		e.styles = nil
	}
}

// Style returns the computed style of node i, from the cache when its classes did not change.
func (e *Engine) Style(i int) stylesheet.ComputedStyle {
	if len(e.styles) != len(e.nodes) {
		e.styles = make([]cachedStyle, len(e.nodes))
	}
	n, c := e.nodes[i], &e.styles[i]
	if !c.valid || c.id != n.ID || !slices.Equal(c.classes, n.Classes) {
		c.style = e.sheet.Resolve(n.ID, n.Classes)
		c.classes = slices.Clone(n.Classes)
		c.id = n.ID
		c.valid = true
	}
	return c.style
}

// NodeAt returns the topmost node under (x, y), or nil.
func (e *Engine) NodeAt(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		if e.nodes[i].Contains(x, y) {
			return e.nodes[i]
		}
	}
	return nil
}

// resolveBounds applies stylesheet sizes and positions to n. Percent positions are relative to the screen.
func resolveBounds(n *Node, style stylesheet.ComputedStyle, screenW, screenH int32) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	if style.LeftPct >= 0 {
		n.Bounds.X = float32((screenW - int32(n.Bounds.Width)) * style.LeftPct / 100)
	} else if style.HasLeft {
		n.Bounds.X = float32(style.Left)
	}
	if style.TopPct >= 0 {
		n.Bounds.Y = float32((screenH - int32(n.Bounds.Height)) * style.TopPct / 100)
	} else if style.HasTop {
		n.Bounds.Y = float32(style.Top)
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw draws all nodes: for each node, resolve style (cached), update bounds from style, then draw background, border, and text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		style := e.Style(i)
		resolveBounds(n, style, screenW, screenH)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		bg := toRL(style.Background)
		if n.Fill != nil {
			bg = *n.Fill
		}
		if bg.A > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, toRL(style.Border))
		}
		if n.Text != "" {
			pos := rl.NewVector2(float32(x+style.Padding), float32(y+style.Padding))
			if e.font.Texture.ID != 0 {
				rl.DrawTextEx(e.font, n.Text, pos, float32(style.FontSize), 1, toRL(style.Color))
			} else {
				rl.DrawText(n.Text, int32(pos.X), int32(pos.Y), style.FontSize, toRL(style.Color))
			}
		}
	}
}

// Unload frees the font.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}
