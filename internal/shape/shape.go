package shape

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Kind identifies which of the six shapes a Shape is.
type Kind int

const (
	Square Kind = iota
	Circle
	Triangle
	Diamond
	Pentagon
	Octagon
)

// EmptyName is shown when a press lands on no shape.
const EmptyName = "empty"

// Kinds lists every kind in toolbar order.
var Kinds = []Kind{Square, Circle, Triangle, Diamond, Pentagon, Octagon}

// ScatterOrder is the order shapes are added when the board is populated.
var ScatterOrder = []Kind{Square, Pentagon, Octagon, Triangle, Circle, Diamond}

func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Diamond:
		return "diamond"
	case Pentagon:
		return "pentagon"
	case Octagon:
		return "octagon"
	}
	return "unknown"
}

// IsPolygon reports whether shapes of this kind are described by vertices.
func (k Kind) IsPolygon() bool {
	return k != Square && k != Circle
}

// Shape is a filled primitive placed on the board.
type Shape struct {
	ID       string
	Kind     Kind
	Size     fyne.Size
	Points   []fyne.Position // relative to the bounding box, polygons only
	Fill     color.NRGBA
	Position fyne.Position // top-left on the board
}

// Name returns the label text for the shape.
func (s *Shape) Name() string {
	return s.Kind.String()
}

// Contains reports whether p lies inside the shape's bounding box, edges included.
func (s *Shape) Contains(p fyne.Position) bool {
	return p.X >= s.Position.X && p.X <= s.Position.X+s.Size.Width &&
		p.Y >= s.Position.Y && p.Y <= s.Position.Y+s.Size.Height
}

// AbsolutePoints returns the polygon vertices in board coordinates.
func (s *Shape) AbsolutePoints() []fyne.Position {
	pts := make([]fyne.Position, 0, len(s.Points))
	for _, p := range s.Points {
		pts = append(pts, s.Position.Add(p))
	}
	return pts
}
