package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/debug"
	"scene-editor/internal/editor"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/env"
	"scene-editor/internal/fonts"
	"scene-editor/internal/graphics"
	"scene-editor/internal/input"
	"scene-editor/internal/logger"
	"scene-editor/internal/palette"
	"scene-editor/internal/placement"
	"scene-editor/internal/projector"
	"scene-editor/internal/scene"
	"scene-editor/internal/stylesheet"
	"scene-editor/internal/terminal"
	"scene-editor/internal/ui"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	log := logger.New(env.Get(env.LogPath, logger.DefaultPath))

	cfgPath := env.Get(env.ConfigPath, editorconfig.DefaultPath)
	prefs, err := editorconfig.Load(cfgPath)
	if err != nil {
		log.Logf("config: %v (using defaults)", err)
	}
	pal, err := palette.Load(env.Get(env.PaletteDir, palette.DefaultDir))
	if err != nil {
		log.Logf("palette: %v", err)
	}

	scn := scene.New(prefs.GridSize, prefs.CameraStart, prefs.CameraFovY, pal)
	scn.SetGridVisible(prefs.GridVisible)
	ledger := placement.NewLedger(scn, pal)
	proj := projector.New(float32(prefs.GridSize))
	proj.Camera = scn.View()
	session := editor.NewSession(proj, ledger, log)
	if k, ok := placement.ParseShape(prefs.DefaultShape); ok {
		session.SetShape(k)
	}
	if prefs.DefaultColor != "" {
		if c, err := placement.ParseColor(prefs.DefaultColor); err == nil {
			session.SetColor(c)
		} else {
			log.Logf("config: default color: %v", err)
		}
	}

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	reg := commands.NewRegistry()
	commands.RegisterEditorCommands(reg, session, commands.Hooks{
		Log: log.Log,
		SetGridVisible: func(v bool) {
			scn.SetGridVisible(v)
			prefs.GridVisible = v
		},
		SetShowFPS: func(v bool) {
			dbg.SetShowFPS(v)
			prefs.ShowFPS = v
		},
		SetShowMem: func(v bool) {
			dbg.SetShowMemAlloc(v)
			prefs.ShowMemAlloc = v
		},
		SaveConfig: func() error {
			prefs.DefaultShape = session.Shape().String()
			prefs.DefaultColor = session.Color().Hex()
			return editorconfig.Save(cfgPath, prefs)
		},
	})
	term := terminal.New(log, reg)

	toolbar := ui.NewToolbar(float32(prefs.ToolbarWidth), prefs.Swatches)
	uiEngine := ui.New()
	if prefs.Stylesheet != "" {
		if err := uiEngine.LoadCSS(prefs.Stylesheet); err != nil {
			log.Logf("stylesheet: %v (using built-in)", err)
		}
	}
	if uiEngine.Stylesheet() == nil {
		sheet, err := stylesheet.Parse(ui.DefaultCSS)
		if err != nil {
			log.Logf("stylesheet: built-in: %v", err)
		}
		uiEngine.SetStylesheet(sheet)
	}

	router := &input.Router{
		Session:  session,
		Blockers: []input.Region{toolbar, term},
		Log:      log.Log,
	}
	var nodes []*ui.Node

	initGPU := func() {
		path, err := fonts.Resolve(prefs.Font, fonts.DefaultDirs)
		if err != nil {
			log.Logf("font %s: %v", prefs.Font, err)
			return
		}
		if path == "" {
			return
		}
		if err := uiEngine.LoadFont(path); err != nil {
			log.Logf("font %s: %v", path, err)
			return
		}
		term.SetFont(uiEngine.Font())
		dbg.SetFont(uiEngine.Font())
	}

	update := func() {
		term.Update()
		router.Viewport = canvas(float32(prefs.ToolbarWidth))
		toolbar.Layout(float32(rl.GetScreenHeight()))

		frame := pollPointer()
		scn.Update(!router.Blocked(frame.X, frame.Y))
		proj.Camera = scn.View()

		if frame.Pressed && toolbar.Contains(frame.X, frame.Y) {
			if a, ok := toolbar.Click(frame.X, frame.Y); ok {
				apply(session, a, log)
			}
		}
		router.Handle(frame)

		cell, ok := session.Highlight()
		scn.SetHighlight(cell, ok, session.HighlightFree())
		toolbar.Sync(session.Shape(), session.Color())
		toolbar.Inspector.Update(inspect(session))
	}

	draw := func() {
		scn.Draw(router.Viewport)
		nodes = toolbar.AppendNodes(nodes[:0])
		uiEngine.SetNodes(nodes)
		uiEngine.Draw()
		term.Draw()
		dbg.Draw(ledger.Len())
	}

	shutdown := func() {
		scn.Unload()
		uiEngine.Unload()
	}

	log.Logf("editor started: grid %dx%d, press ESC for the console", prefs.GridSize, prefs.GridSize)
	graphics.Run(graphics.Window{
		Title:      "Scene Editor",
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
	}, initGPU, update, draw, shutdown)
}

// canvas is the part of the window right of the toolbar strip.
func canvas(toolbarWidth float32) projector.Viewport {
	w := float32(rl.GetScreenWidth()) - toolbarWidth
	if w < 0 {
		w = 0
	}
	return projector.Viewport{X: toolbarWidth, Y: 0, Width: w, Height: float32(rl.GetScreenHeight())}
}

func apply(s *editor.Session, a ui.Action, log *logger.Logger) {
	if a.HasColor {
		s.SetColor(a.Color)
		log.Logf("color %s", a.Color.Hex())
		return
	}
	s.SetShape(a.Shape)
	log.Logf("shape %s", a.Shape)
}

// inspect collects what the inspector panel shows about the highlighted cell.
func inspect(s *editor.Session) ui.Selection {
	sel := ui.Selection{
		Live:  s.HighlightLive(),
		State: s.State().String(),
		Count: s.Ledger().Len(),
	}
	if cell, ok := s.Highlight(); ok {
		sel.Cell = cell.String()
		if obj, ok := s.Ledger().ObjectAt(cell); ok {
			sel.Occupied = true
			sel.Object = obj.Shape.String() + " " + obj.Color.Hex()
		}
	}
	return sel
}
