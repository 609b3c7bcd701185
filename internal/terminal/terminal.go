package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/logger"
)

const (
	BarHeight     = 40
	prompt        = "> "
	fontSize      = 20
	padding       = 8
	visibleLines  = 10
	lineHeight    = fontSize + 4
	maxLineLength = 200
	maxHistory    = 50
)

var (
	barColor   = rl.NewColor(40, 40, 40, 255)
	edgeColor  = rl.NewColor(80, 80, 80, 255)
	logBgColor = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console at the bottom of the screen, toggled with ESC or the backtick key.
// While open it owns the keyboard: typed text goes to the input line, Enter runs it, Up/Down walk
// the history of submitted lines and PageUp/PageDown scroll the log.
// Only "cmd ..." lines are executed; anything else is answered with a hint.
type Terminal struct {
	log  *logger.Logger
	reg  *commands.Registry
	font rl.Font

	open    bool
	input   string
	history []string
	recall  int // index into history while browsing; len(history) when not browsing
	scroll  int // log lines hidden below the visible window
	top     int32
}

// New returns a closed console that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the console font. Zero texture ID = raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Contains reports whether (x, y) is over the open console, so clicks there do not reach the grid.
func (t *Terminal) Contains(x, y float32) bool {
	return t.open && y >= float32(t.top)
}

// Update handles the toggle key and, while open, editing keys. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}

	if ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper); ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.input += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input += string(rune(c))
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		if t.input != "" {
			_, size := utf8.DecodeLastRuneInString(t.input)
			t.input = t.input[:len(t.input)-size]
		}
	case rl.IsKeyPressed(rl.KeyUp):
		t.recallStep(-1)
	case rl.IsKeyPressed(rl.KeyDown):
		t.recallStep(1)
	case rl.IsKeyPressed(rl.KeyPageUp):
		t.scrollBy(visibleLines / 2)
	case rl.IsKeyPressed(rl.KeyPageDown):
		t.scrollBy(-visibleLines / 2)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		t.submit()
	}
}

func (t *Terminal) submit() {
	line := t.input
	if line == "" {
		return
	}
	t.input = ""
	t.scroll = 0
	if n := len(t.history); n == 0 || t.history[n-1] != line {
		t.history = append(t.history, line)
		if len(t.history) > maxHistory {
			t.history = t.history[len(t.history)-maxHistory:]
		}
	}
	t.recall = len(t.history)

	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`unknown input; try "cmd help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// recallStep moves through the submitted lines; stepping past the newest clears the input.
func (t *Terminal) recallStep(d int) {
	if len(t.history) == 0 {
		return
	}
	t.recall = min(max(t.recall+d, 0), len(t.history))
	if t.recall == len(t.history) {
		t.input = ""
		return
	}
	t.input = t.history[t.recall]
}

func (t *Terminal) scrollBy(n int) {
	maxScroll := max(len(t.log.Lines())-visibleLines, 0)
	t.scroll = min(max(t.scroll+n, 0), maxScroll)
}

// Draw draws the input bar at the bottom and the log window above it. Nothing is drawn when closed.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	logH := int32(visibleLines * lineHeight)
	logY := max(barY-logH, 0)
	t.top = logY
	rl.DrawRectangle(0, logY, screenW, barY-logY, logBgColor)

	lines := t.log.Lines()
	end := max(len(lines)-t.scroll, 0)
	start := max(end-visibleLines, 0)
	for i, line := range lines[start:end] {
		if len(line) > maxLineLength {
			line = line[:maxLineLength-3] + "..."
		}
		t.text(line, padding, logY+int32(i*lineHeight)+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, edgeColor)
	t.text(prompt+t.input+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int32, col rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(s, x, y, fontSize, col)
}
