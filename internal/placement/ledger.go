package placement

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"scene-editor/internal/grid"
)

var (
	// ErrOccupied is returned when the target cell already holds an object.
	ErrOccupied = errors.New("cell occupied")
	// ErrUnknownShape is returned when the shape has no footprint (nothing would be drawn).
	ErrUnknownShape = errors.New("unknown shape")
	// ErrNotFound is returned for an ID that is not in the ledger.
	ErrNotFound = errors.New("object not found")
)

// PlacedObject is one primitive on the grid. ID is assigned at placement and never changes;
// Position is the object's center: cell center on X/Z, half its height on Y so it rests on the ground.
type PlacedObject struct {
	ID       uuid.UUID
	Position [3]float32
	Size     [3]float32
	Shape    ShapeKind
	Color    Color
}

// Cell returns the grid cell the object occupies.
func (o PlacedObject) Cell() grid.Cell {
	return grid.Cell{X: o.Position[0], Z: o.Position[2]}
}

// Bounds returns the object's axis-aligned bounding box (center ± half size).
func (o PlacedObject) Bounds() (min, max [3]float32) {
	for i := 0; i < 3; i++ {
		half := o.Size[i] * 0.5
		min[i] = o.Position[i] - half
		max[i] = o.Position[i] + half
	}
	return min, max
}

// SceneSink receives ledger changes so they can be shown. The ledger never depends on how.
type SceneSink interface {
	Add(obj PlacedObject)
	Remove(obj PlacedObject)
}

// Mover is implemented by sinks that can reposition an object in place. Sinks without it get
// Remove followed by Add.
type Mover interface {
	Move(obj PlacedObject)
}

// Footprints gives the size of each shape. ok is false for shapes that cannot be built.
type Footprints interface {
	Size(kind ShapeKind) (size [3]float32, ok bool)
}

// UnitFootprints sizes every valid shape as a unit box (radius 0.5 / height 1 for sphere and cylinder).
type UnitFootprints struct{}

// Size returns (1, 1, 1) for Cube, Sphere, and Cylinder.
func (UnitFootprints) Size(kind ShapeKind) ([3]float32, bool) {
	if !kind.Valid() {
		return [3]float32{}, false
	}
	return [3]float32{1, 1, 1}, true
}

type noopSink struct{}

func (noopSink) Add(PlacedObject)    {}
func (noopSink) Remove(PlacedObject) {}

// Ledger is the insertion-ordered list of placed objects with a cell index.
// At most one object occupies a cell. Not safe for concurrent use; it belongs to the frame loop.
type Ledger struct {
	objects    []PlacedObject
	byCell     map[grid.Cell]int
	sink       SceneSink
	footprints Footprints
}

// NewLedger returns an empty ledger that reports changes to sink (nil = discard) and sizes
// objects with footprints (nil = UnitFootprints).
func NewLedger(sink SceneSink, footprints Footprints) *Ledger {
	if sink == nil {
		sink = noopSink{}
	}
	if footprints == nil {
		footprints = UnitFootprints{}
	}
	return &Ledger{
		byCell:     make(map[grid.Cell]int),
		sink:       sink,
		footprints: footprints,
	}
}

// TryPlace adds a new object at cell unless it is occupied. The object is lifted by half its
// height so it sits on the ground, appended to the ledger, and handed to the sink.
// Returns ErrOccupied or ErrUnknownShape without changing anything.
func (l *Ledger) TryPlace(cell grid.Cell, shape ShapeKind, color Color) (PlacedObject, error) {
	if _, taken := l.byCell[cell]; taken {
		return PlacedObject{}, ErrOccupied
	}
	size, ok := l.footprints.Size(shape)
	if !ok {
		return PlacedObject{}, ErrUnknownShape
	}
	obj := PlacedObject{
		ID:       uuid.New(),
		Position: [3]float32{cell.X, size[1] * 0.5, cell.Z},
		Size:     size,
		Shape:    shape,
		Color:    color,
	}
	l.byCell[cell] = len(l.objects)
	l.objects = append(l.objects, obj)
	l.sink.Add(obj)
	return obj, nil
}

// OccupancyAt reports whether an object sits on cell.
func (l *Ledger) OccupancyAt(cell grid.Cell) bool {
	_, ok := l.byCell[cell]
	return ok
}

// ObjectAt returns the object on cell, if any.
func (l *Ledger) ObjectAt(cell grid.Cell) (PlacedObject, bool) {
	i, ok := l.byCell[cell]
	if !ok {
		return PlacedObject{}, false
	}
	return l.objects[i], true
}

// Get returns the object with the given ID.
func (l *Ledger) Get(id uuid.UUID) (PlacedObject, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return PlacedObject{}, false
	}
	return l.objects[i], true
}

// Objects returns a copy of all objects in placement order.
func (l *Ledger) Objects() []PlacedObject {
	return slices.Clone(l.objects)
}

// Len returns the number of placed objects.
func (l *Ledger) Len() int {
	return len(l.objects)
}

// Move relocates an object to cell, keeping its ID and height. Moving onto the object's own cell
// is a no-op; moving onto another object's cell returns ErrOccupied.
func (l *Ledger) Move(id uuid.UUID, cell grid.Cell) (PlacedObject, error) {
	i := l.indexOf(id)
	if i < 0 {
		return PlacedObject{}, ErrNotFound
	}
	obj := l.objects[i]
	from := obj.Cell()
	if from == cell {
		return obj, nil
	}
	if _, taken := l.byCell[cell]; taken {
		return obj, ErrOccupied
	}
	delete(l.byCell, from)
	obj.Position[0], obj.Position[2] = cell.X, cell.Z
	l.objects[i] = obj
	l.byCell[cell] = i
	if m, ok := l.sink.(Mover); ok {
		m.Move(obj)
	} else {
		l.sink.Remove(obj)
		l.sink.Add(obj)
	}
	return obj, nil
}

// Remove deletes the object with the given ID and tells the sink.
func (l *Ledger) Remove(id uuid.UUID) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	obj := l.objects[i]
	l.objects = slices.Delete(l.objects, i, i+1)
	l.reindex()
	l.sink.Remove(obj)
	return nil
}

// Clear removes every object and returns how many were removed.
func (l *Ledger) Clear() int {
	n := len(l.objects)
	for _, obj := range l.objects {
		l.sink.Remove(obj)
	}
	l.objects = nil
	clear(l.byCell)
	return n
}

func (l *Ledger) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.objects, func(o PlacedObject) bool { return o.ID == id })
}

func (l *Ledger) reindex() {
	clear(l.byCell)
	for i, o := range l.objects {
		l.byCell[o.Cell()] = i
	}
}
