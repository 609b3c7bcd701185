package editor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"scene-editor/internal/grid"
	"scene-editor/internal/placement"
	"scene-editor/internal/projector"
)

// State is the pointer interaction state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome says what a pointer-down did. None of them are errors: the loop just waits for the next event.
type Outcome int

const (
	Ignored  Outcome = iota // pointer-down while already dragging
	Placed                  // a new object was added
	Occupied                // the highlighted cell already holds an object
	Missed                  // the last pointer move did not hit the ground
	Picked                  // an existing object was grabbed; state is now Dragging
	Rejected                // the selected shape cannot be built
)

func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case Occupied:
		return "occupied"
	case Missed:
		return "missed"
	case Picked:
		return "picked"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Pointer is a pointer position in window pixels together with the canvas it is relative to.
type Pointer struct {
	X, Y     float32
	Viewport projector.Viewport
}

// Logger receives diagnostic lines. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

type discardLogger struct{}

func (discardLogger) Log(string) {}

// Session is one editor session: the selected shape and color, the ledger, the highlighted cell,
// and the drag state. All methods run on the frame loop; it is not safe for concurrent use.
type Session struct {
	proj   *projector.Projector
	ledger *placement.Ledger
	log    Logger

	shape    placement.ShapeKind
	color    placement.Color
	colorSet bool

	highlight    grid.Cell
	hasHighlight bool // at least one pointer move has hit the ground
	live         bool // the latest pointer move hit the ground

	state  State
	dragID uuid.UUID
}

// NewSession returns an idle session with Cube selected and no color picked (DefaultColor is used).
// log may be nil.
func NewSession(proj *projector.Projector, ledger *placement.Ledger, log Logger) *Session {
	if log == nil {
		log = discardLogger{}
	}
	return &Session{
		proj:   proj,
		ledger: ledger,
		log:    log,
		shape:  placement.Cube,
	}
}

// Projector returns the projector the session uses; the host updates its camera every frame.
func (s *Session) Projector() *projector.Projector {
	return s.proj
}

// Ledger returns the session's ledger.
func (s *Session) Ledger() *placement.Ledger {
	return s.ledger
}

// SetShape selects the shape used by the next placement. It is not validated here; an unknown
// shape is rejected when a placement is attempted.
func (s *Session) SetShape(k placement.ShapeKind) {
	s.shape = k
}

// Shape returns the selected shape.
func (s *Session) Shape() placement.ShapeKind {
	return s.shape
}

// SetColor selects the color used by the next placement.
func (s *Session) SetColor(c placement.Color) {
	s.color = c
	s.colorSet = true
}

// ResetColor drops the picked color so placements fall back to DefaultColor.
func (s *Session) ResetColor() {
	s.color = placement.Color{}
	s.colorSet = false
}

// Color returns the picked color, or DefaultColor when none is set.
func (s *Session) Color() placement.Color {
	if !s.colorSet {
		return placement.DefaultColor
	}
	return s.color
}

// State returns Idle or Dragging.
func (s *Session) State() State {
	return s.state
}

// Highlight returns the last cell the pointer hit. ok is false until the first hit. The cell is kept
// when later moves miss the ground; use HighlightLive to know whether it is current.
func (s *Session) Highlight() (cell grid.Cell, ok bool) {
	return s.highlight, s.hasHighlight
}

// HighlightLive reports whether the latest pointer move hit the ground.
func (s *Session) HighlightLive() bool {
	return s.live
}

// HighlightFree reports whether the highlighted cell is unoccupied (drives the highlight color).
func (s *Session) HighlightFree() bool {
	return s.hasHighlight && !s.ledger.OccupancyAt(s.highlight)
}

// Dragged returns the object being dragged.
func (s *Session) Dragged() (placement.PlacedObject, bool) {
	if s.state != Dragging {
		return placement.PlacedObject{}, false
	}
	return s.ledger.Get(s.dragID)
}

// PointerMove recomputes the highlighted cell. On a miss the previous cell is kept but marked stale,
// so a following pointer-down does not place anything. While dragging, the dragged object follows
// the cell unless another object already sits there.
func (s *Session) PointerMove(p Pointer) {
	hit, ok := s.proj.Project(p.X, p.Y, p.Viewport)
	if !ok {
		s.live = false
		return
	}
	s.highlight = hit.Cell
	s.hasHighlight = true
	s.live = true

	if s.state != Dragging {
		return
	}
	_, err := s.ledger.Move(s.dragID, hit.Cell)
	switch {
	case err == nil:
	case errors.Is(err, placement.ErrOccupied):
		// Stay on the last free cell.
	case errors.Is(err, placement.ErrNotFound):
		s.log.Log("drag: object was removed, releasing")
		s.endDrag()
	default:
		s.log.Log(fmt.Sprintf("drag: %v", err))
	}
}

// PointerLeave marks the highlight stale, as a miss does. Used when the pointer is over a panel.
func (s *Session) PointerLeave() {
	s.live = false
}

// PointerDown grabs the closest placed object under the pointer, or places the selected shape on
// the highlighted cell if it is live and free. The returned object is the placed or grabbed one.
func (s *Session) PointerDown(p Pointer) (Outcome, placement.PlacedObject) {
	if s.state == Dragging {
		return Ignored, placement.PlacedObject{}
	}
	if r, ok := s.proj.Ray(p.X, p.Y, p.Viewport); ok {
		if obj, ok := s.Pick(r); ok {
			s.state = Dragging
			s.dragID = obj.ID
			return Picked, obj
		}
	}
	return s.placeAtHighlight()
}

// PointerUp ends a drag. It always returns to Idle.
func (s *Session) PointerUp() {
	s.endDrag()
}

// Place places the selected shape on the highlighted cell without picking (e.g. from a command).
func (s *Session) Place() (Outcome, placement.PlacedObject) {
	return s.placeAtHighlight()
}

func (s *Session) placeAtHighlight() (Outcome, placement.PlacedObject) {
	if !s.live {
		return Missed, placement.PlacedObject{}
	}
	obj, err := s.ledger.TryPlace(s.highlight, s.shape, s.Color())
	switch {
	case err == nil:
		return Placed, obj
	case errors.Is(err, placement.ErrOccupied):
		return Occupied, placement.PlacedObject{}
	case errors.Is(err, placement.ErrUnknownShape):
		s.log.Log(fmt.Sprintf("place: %s is not a placeable shape", s.shape))
		return Rejected, placement.PlacedObject{}
	default:
		s.log.Log(fmt.Sprintf("place: %v", err))
		return Rejected, placement.PlacedObject{}
	}
}

// Pick returns the placed object whose bounding box the ray hits first.
func (s *Session) Pick(r projector.Ray) (placement.PlacedObject, bool) {
	var (
		best  placement.PlacedObject
		bestT float32
		found bool
	)
	for _, obj := range s.ledger.Objects() {
		min, max := obj.Bounds()
		t, ok := r.IntersectBox(mgl32.Vec3(min), mgl32.Vec3(max))
		if !ok {
			continue
		}
		if !found || t < bestT {
			best, bestT, found = obj, t, true
		}
	}
	return best, found
}

func (s *Session) endDrag() {
	s.state = Idle
	s.dragID = uuid.Nil
}
