package state

import (
	"log"
	"math/rand"

	"shapeboard/internal/shape"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

type dragSession struct {
	shape *shape.Shape
	last  fyne.Position
}

// Scene is the ordered set of shapes on the board together with the drag
// state. Slice order is z-order: later shapes are drawn on top.
type Scene struct {
	shapes    []*shape.Shape
	drag      *dragSession
	rng       *rand.Rand
	populated bool

	// OnChange is called after every mutation that affects what is drawn.
	OnChange func()
}

// NewScene creates an empty scene drawing placement randomness from rng.
func NewScene(rng *rand.Rand) *Scene {
	return &Scene{
		shapes: make([]*shape.Shape, 0),
		rng:    rng,
	}
}

// Shapes returns the shapes in z-order.
func (s *Scene) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len returns the number of shapes on the board.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Add places sh on top of the scene, assigning an ID if it has none.
func (s *Scene) Add(sh *shape.Shape) {
	if sh.ID == "" {
		sh.ID = uuid.NewString()
	}
	s.shapes = append(s.shapes, sh)
	log.Printf("[SCENE] Added %s %s at (%.1f, %.1f)", sh.Name(), sh.ID, sh.Position.X, sh.Position.Y)
	s.changed()
}

// Clear removes every shape and ends any drag in progress.
func (s *Scene) Clear() {
	s.shapes = make([]*shape.Shape, 0)
	s.drag = nil
	s.changed()
}

// Populated reports whether the one-shot populate has already run.
func (s *Scene) Populated() bool {
	return s.populated
}

// Populate scatters one shape of every kind over the surface. It only
// does anything the first time it is called.
func (s *Scene) Populate(surface fyne.Size) bool {
	if s.populated {
		return false
	}
	s.populated = true
	log.Printf("[SCENE] Populating %.0fx%.0f surface", surface.Width, surface.Height)
	s.scatter(surface)
	return true
}

// Shuffle clears the board and scatters every kind again.
func (s *Scene) Shuffle(surface fyne.Size) {
	s.Clear()
	s.scatter(surface)
}

func (s *Scene) scatter(surface fyne.Size) {
	for _, k := range shape.ScatterOrder {
		sh := shape.New(k)
		sh.Position = randomPosition(s.rng, sh.Size, surface)
		s.Add(sh)
	}
}

// DrawCentered replaces the board contents with a single shape of kind k
// centered on the surface.
func (s *Scene) DrawCentered(k shape.Kind, surface fyne.Size) *shape.Shape {
	s.Clear()
	sh := shape.New(k)
	sh.Position = centered(sh.Size, surface)
	s.Add(sh)
	return sh
}

// HitTest returns the earliest added shape whose bounds contain p.
func (s *Scene) HitTest(p fyne.Position) *shape.Shape {
	for _, sh := range s.shapes {
		if sh.Contains(p) {
			return sh
		}
	}
	return nil
}

// Press starts a drag on the shape under p, if any, and returns it.
func (s *Scene) Press(p fyne.Position) *shape.Shape {
	s.drag = nil
	sh := s.HitTest(p)
	if sh != nil {
		s.drag = &dragSession{shape: sh, last: p}
	}
	return sh
}

// Move drags the grabbed shape by the pointer delta, keeping it on the
// surface. It reports whether a shape was being dragged.
func (s *Scene) Move(p fyne.Position, surface fyne.Size) bool {
	if s.drag == nil {
		return false
	}
	sh := s.drag.shape
	proposed := sh.Position.Add(p.Subtract(s.drag.last))
	sh.Position = clampToSurface(proposed, sh.Size, surface)
	s.drag.last = p
	s.changed()
	return true
}

// Release ends the drag, if any.
func (s *Scene) Release() {
	s.drag = nil
}

// Dragging returns the shape being dragged, or nil.
func (s *Scene) Dragging() *shape.Shape {
	if s.drag == nil {
		return nil
	}
	return s.drag.shape
}

func (s *Scene) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
