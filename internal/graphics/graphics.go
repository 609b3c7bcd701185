package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window opened by Run.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool // use the monitor size and ignore Width/Height
}

var background = rl.NewColor(32, 34, 38, 255)

// Run opens the window and runs the main loop. Each frame it calls update (input), then clears
// the screen and calls draw. init runs once after the window exists (GPU resources, fonts);
// shutdown runs before the window closes. ESC is reserved for the console; close via the window button.
func Run(win Window, init, update, draw, shutdown func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), win.Title)
	} else {
		rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	if init != nil {
		init()
	}
	if shutdown != nil {
		defer shutdown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
