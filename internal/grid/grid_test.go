package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		x, z float32
		want Cell
	}{
		{name: "positive", x: 2.3, z: 4.7, want: Cell{X: 2.5, Z: 4.5}},
		{name: "negative", x: -0.2, z: -3.9, want: Cell{X: -0.5, Z: -3.5}},
		{name: "on grid line", x: 1, z: -1, want: Cell{X: 1.5, Z: -0.5}},
		{name: "origin", x: 0, z: 0, want: Cell{X: 0.5, Z: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snap(tt.x, tt.z))
		})
	}
}

func TestSnapIsIdempotentWithinCell(t *testing.T) {
	a := Snap(3.01, -7.99)
	b := Snap(3.98, -7.02)
	assert.Equal(t, a, b)
	assert.Equal(t, a, Snap(a.X, a.Z))
}

func TestAt(t *testing.T) {
	c := At(-3, 7)
	assert.Equal(t, Cell{X: -2.5, Z: 7.5}, c)
	assert.Equal(t, c, Snap(-3, 7))
}
