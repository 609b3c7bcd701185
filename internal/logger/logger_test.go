package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "editor.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC) }
	return l, path
}

func TestLogStoresAndAppends(t *testing.T) {
	l, path := newTestLogger(t)
	l.Log("placed cube")
	l.Logf("cell %s occupied", "(0.5, 0.5)")

	want := []string{
		"[2026-10-19 08:30:00] placed cube",
		"[2026-10-19 08:30:00] cell (0.5, 0.5) occupied",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l, _ := newTestLogger(t)
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestHistoryIsCapped(t *testing.T) {
	l, _ := newTestLogger(t)
	for i := 0; i < maxLines+20; i++ {
		l.Log("x")
	}
	assert.Len(t, l.Lines(), maxLines)
}
