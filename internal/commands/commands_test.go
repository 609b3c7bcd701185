package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/editor"
	"scene-editor/internal/grid"
	"scene-editor/internal/placement"
	"scene-editor/internal/projector"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{line: "cmd grid --hide", want: []string{"grid", "--hide"}, wantOK: true},
		{line: "cmd   color   red ", want: []string{"color", "red"}, wantOK: true},
		{line: "cmd ", want: nil, wantOK: true},
		{line: "hello there", want: nil, wantOK: false},
		{line: "CMD grid", want: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Parse(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("x")
	r.Register("x", "cmd x", fs, func() error { return errors.New("boom") })

	assert.ErrorContains(t, r.Execute(nil), "missing subcommand")
	assert.ErrorContains(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.ErrorContains(t, r.Execute([]string{"x", "--bad"}), "usage: cmd x")
	assert.EqualError(t, r.Execute([]string{"x"}), "boom")
}

type fixture struct {
	reg     *Registry
	session *editor.Session
	logged  []string
	grid    *bool
	fps     *bool
	saved   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{reg: NewRegistry()}
	f.session = editor.NewSession(projector.New(projector.DefaultGroundSize), placement.NewLedger(nil, nil), nil)
	RegisterEditorCommands(f.reg, f.session, Hooks{
		Log:            func(line string) { f.logged = append(f.logged, line) },
		SetGridVisible: func(v bool) { f.grid = &v },
		SetShowFPS:     func(v bool) { f.fps = &v },
		SaveConfig:     func() error { f.saved++; return nil },
	})
	return f
}

func (f *fixture) run(t *testing.T, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok)
	return f.reg.Execute(args)
}

func TestShapeCommand(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "cmd shape sphere"))
	assert.Equal(t, placement.Sphere, f.session.Shape())

	assert.ErrorContains(t, f.run(t, "cmd shape plane"), "unknown shape")
	assert.ErrorContains(t, f.run(t, "cmd shape"), "cube, sphere, cylinder")
	assert.Equal(t, placement.Sphere, f.session.Shape())
}

func TestColorCommand(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "cmd color #00ff00"))
	assert.Equal(t, placement.Color{G: 255}, f.session.Color())

	require.NoError(t, f.run(t, "cmd color navy"))
	assert.Equal(t, placement.Color{B: 128}, f.session.Color())

	assert.Error(t, f.run(t, "cmd color #nothex"))
	assert.Equal(t, placement.Color{B: 128}, f.session.Color())

	require.NoError(t, f.run(t, "cmd color --reset"))
	assert.Equal(t, placement.DefaultColor, f.session.Color())

	// --reset does not stick to the next invocation.
	require.NoError(t, f.run(t, "cmd color white"))
	assert.Equal(t, placement.Color{R: 255, G: 255, B: 255}, f.session.Color())
}

func TestToggleCommands(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "cmd grid --hide"))
	require.NotNil(t, f.grid)
	assert.False(t, *f.grid)

	require.NoError(t, f.run(t, "cmd grid --show"))
	assert.True(t, *f.grid)

	require.NoError(t, f.run(t, "cmd fps --show"))
	assert.True(t, *f.fps)

	assert.Error(t, f.run(t, "cmd fps"))
	assert.Error(t, f.run(t, "cmd fps --show --hide"))
	assert.ErrorContains(t, f.run(t, "cmd memalloc --show"), "not available")
	assert.Equal(t, []string{"grid: hidden", "grid: shown", "fps: shown"}, f.logged)
}

func TestClearAndListCommands(t *testing.T) {
	f := newFixture(t)
	l := f.session.Ledger()
	_, err := l.TryPlace(grid.At(0, 0), placement.Cube, placement.DefaultColor)
	require.NoError(t, err)
	_, err = l.TryPlace(grid.At(1, 2), placement.Cylinder, placement.Color{B: 255})
	require.NoError(t, err)

	require.NoError(t, f.run(t, "cmd list"))
	assert.Equal(t, []string{
		"1: cube #ff0000 at (0.5, 0.5)",
		"2: cylinder #0000ff at (1.5, 2.5)",
	}, f.logged)

	f.logged = nil
	require.NoError(t, f.run(t, "cmd clear"))
	assert.Zero(t, l.Len())
	assert.Equal(t, []string{"clear: removed 2 object(s)"}, f.logged)

	f.logged = nil
	require.NoError(t, f.run(t, "cmd list"))
	assert.Equal(t, []string{"list: scene is empty"}, f.logged)
}

func TestSaveAndHelp(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "cmd save"))
	assert.Equal(t, 1, f.saved)

	f.logged = nil
	require.NoError(t, f.run(t, "cmd help"))
	assert.Len(t, f.logged, len(f.reg.Names()))
	assert.Contains(t, f.logged, "cmd shape cube|sphere|cylinder")
}

// hover moves the pointer over the ground near the origin and returns the highlighted cell.
func (f *fixture) hover(t *testing.T) grid.Cell {
	t.Helper()
	vp := projector.Viewport{Width: 800, Height: 600}
	f.session.PointerMove(editor.Pointer{X: 430, Y: 330, Viewport: vp})
	cell, ok := f.session.Highlight()
	require.True(t, ok)
	require.True(t, f.session.HighlightLive())
	return cell
}

func TestPlaceAndRemoveCommands(t *testing.T) {
	f := newFixture(t)
	cell := f.hover(t)

	require.NoError(t, f.run(t, "cmd shape sphere"))
	require.NoError(t, f.run(t, "cmd place"))
	obj, ok := f.session.Ledger().ObjectAt(cell)
	require.True(t, ok)
	assert.Equal(t, placement.Sphere, obj.Shape)
	assert.Contains(t, f.logged[len(f.logged)-1], "place: sphere")

	assert.ErrorContains(t, f.run(t, "cmd place"), "is occupied")
	assert.Equal(t, 1, f.session.Ledger().Len())

	require.NoError(t, f.run(t, "cmd remove"))
	assert.Equal(t, 0, f.session.Ledger().Len())
	assert.ErrorContains(t, f.run(t, "cmd remove"), "is empty")
}

func TestPlaceWithoutLiveHighlight(t *testing.T) {
	f := newFixture(t)
	assert.ErrorContains(t, f.run(t, "cmd place"), "no grid cell")
	assert.ErrorContains(t, f.run(t, "cmd remove"), "no grid cell")

	f.hover(t)
	f.session.PointerLeave()
	assert.ErrorContains(t, f.run(t, "cmd place"), "no grid cell")
	assert.Equal(t, 0, f.session.Ledger().Len())
}

func TestRemoveReleasesDraggedObject(t *testing.T) {
	f := newFixture(t)
	f.hover(t)
	p := editor.Pointer{X: 430, Y: 330, Viewport: projector.Viewport{Width: 800, Height: 600}}
	out, _ := f.session.PointerDown(p)
	require.Equal(t, editor.Placed, out)
	out, _ = f.session.PointerDown(p)
	require.Equal(t, editor.Picked, out)
	require.Equal(t, editor.Dragging, f.session.State())

	require.NoError(t, f.run(t, "cmd remove"))
	assert.Equal(t, editor.Idle, f.session.State())
	assert.Equal(t, 0, f.session.Ledger().Len())
}
