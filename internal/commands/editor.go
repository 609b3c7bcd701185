package commands

import (
	"fmt"
	"strings"

	"scene-editor/internal/editor"
	"scene-editor/internal/placement"
)

// Hooks connect commands to the parts of the editor that live outside the session
// (grid, overlays, config). A command whose hook is nil reports that it is not available.
type Hooks struct {
	Log            func(line string)
	SetGridVisible func(visible bool)
	SetShowFPS     func(show bool)
	SetShowMem     func(show bool)
	SaveConfig     func() error
}

// RegisterEditorCommands adds the editor subcommands (shape, color, grid, fps, memalloc, place,
// remove, clear, list, save, help) to r. place and remove act on the highlighted cell.
func RegisterEditorCommands(r *Registry, s *editor.Session, h Hooks) {
	logf := func(format string, args ...any) {
		if h.Log != nil {
			h.Log(fmt.Sprintf(format, args...))
		}
	}

	shapeFS := NewFlagSet("shape")
	r.Register("shape", "cmd shape cube|sphere|cylinder", shapeFS, func() error {
		if shapeFS.NArg() != 1 {
			return fmt.Errorf("shape: expected one of %s", shapeNames())
		}
		k, ok := placement.ParseShape(shapeFS.Arg(0))
		if !ok {
			return fmt.Errorf("shape: unknown shape %q (use %s)", shapeFS.Arg(0), shapeNames())
		}
		s.SetShape(k)
		logf("shape: %s", k)
		return nil
	})

	colorFS := NewFlagSet("color")
	colorReset := colorFS.Bool("reset", false, "use the default color")
	r.Register("color", "cmd color <#rrggbb|name> | cmd color --reset", colorFS, func() error {
		defer func() { *colorReset = false }()
		if *colorReset {
			s.ResetColor()
			logf("color: %s (default)", s.Color())
			return nil
		}
		if colorFS.NArg() != 1 {
			return fmt.Errorf("color: expected a hex value or color name")
		}
		c, err := placement.ParseColor(colorFS.Arg(0))
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		s.SetColor(c)
		logf("color: %s", c)
		return nil
	})

	registerToggle(r, "grid", "editor grid", h.SetGridVisible, logf)
	registerToggle(r, "fps", "FPS counter", h.SetShowFPS, logf)
	registerToggle(r, "memalloc", "memory counter", h.SetShowMem, logf)

	r.Register("place", "cmd place", NewFlagSet("place"), func() error {
		out, obj := s.Place()
		switch out {
		case editor.Placed:
			logf("place: %s %s at %s", obj.Shape, obj.Color, obj.Cell())
			return nil
		case editor.Occupied:
			cell, _ := s.Highlight()
			return fmt.Errorf("place: cell %s is occupied", cell)
		case editor.Missed:
			return fmt.Errorf("place: no grid cell under the pointer")
		default:
			return fmt.Errorf("place: %s", out)
		}
	})

	r.Register("remove", "cmd remove", NewFlagSet("remove"), func() error {
		cell, ok := s.Highlight()
		if !ok || !s.HighlightLive() {
			return fmt.Errorf("remove: no grid cell under the pointer")
		}
		obj, ok := s.Ledger().ObjectAt(cell)
		if !ok {
			return fmt.Errorf("remove: cell %s is empty", cell)
		}
		if d, dragging := s.Dragged(); dragging && d.ID == obj.ID {
			s.PointerUp()
		}
		if err := s.Ledger().Remove(obj.ID); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		logf("remove: %s at %s", obj.Shape, cell)
		return nil
	})

	r.Register("clear", "cmd clear", NewFlagSet("clear"), func() error {
		if s.State() == editor.Dragging {
			s.PointerUp()
		}
		n := s.Ledger().Clear()
		logf("clear: removed %d object(s)", n)
		return nil
	})

	r.Register("list", "cmd list", NewFlagSet("list"), func() error {
		objs := s.Ledger().Objects()
		if len(objs) == 0 {
			logf("list: scene is empty")
			return nil
		}
		for i, o := range objs {
			logf("%d: %s %s at %s", i+1, o.Shape, o.Color, o.Cell())
		}
		return nil
	})

	r.Register("save", "cmd save", NewFlagSet("save"), func() error {
		if h.SaveConfig == nil {
			return fmt.Errorf("save: not available")
		}
		if err := h.SaveConfig(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		logf("save: preferences written")
		return nil
	})

	r.Register("help", "cmd help", NewFlagSet("help"), func() error {
		for _, n := range r.Names() {
			logf("%s", r.Usage(n))
		}
		return nil
	})
}

// registerToggle adds "cmd <name> --show|--hide".
func registerToggle(r *Registry, name, what string, set func(bool), logf func(string, ...any)) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show the "+what)
	hide := fs.Bool("hide", false, "hide the "+what)
	r.Register(name, "cmd "+name+" --show|--hide", fs, func() error {
		defer func() { *show, *hide = false, false }()
		if *show == *hide {
			return fmt.Errorf("%s: use exactly one of --show or --hide", name)
		}
		if set == nil {
			return fmt.Errorf("%s: not available", name)
		}
		set(*show)
		if *show {
			logf("%s: shown", name)
		} else {
			logf("%s: hidden", name)
		}
		return nil
	})
}

func shapeNames() string {
	names := make([]string, len(placement.Shapes))
	for i, k := range placement.Shapes {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
