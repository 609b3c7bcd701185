package grid

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Cell is a unit square on the ground plane, identified by its center (integer + 0.5 on X and Z).
// Cells are compared with ==; Snap is the only constructor that should be used for pointer input so
// that equal cells are bit-identical.
type Cell struct {
	X float32
	Z float32
}

// Snap returns the cell containing the ground point (x, z): (floor(x)+0.5, floor(z)+0.5).
func Snap(x, z float32) Cell {
	return Cell{X: math32.Floor(x) + 0.5, Z: math32.Floor(z) + 0.5}
}

// At returns the cell with integer indices (i, j), i.e. the cell whose min corner is (i, j).
func At(i, j int) Cell {
	return Cell{X: float32(i) + 0.5, Z: float32(j) + 0.5}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", c.X, c.Z)
}
