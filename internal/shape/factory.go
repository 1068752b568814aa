package shape

import (
	"image/color"

	"fyne.io/fyne/v2"
)

const side = 80

var (
	DeepPink     = color.NRGBA{R: 255, G: 20, B: 147, A: 255}
	DeepSkyBlue  = color.NRGBA{R: 0, G: 191, B: 255, A: 255}
	Red          = color.NRGBA{R: 255, A: 255}
	MediumPurple = color.NRGBA{R: 147, G: 112, B: 219, A: 255}
	Orange       = color.NRGBA{R: 255, G: 165, A: 255}
	Black        = color.NRGBA{A: 255}
)

// New builds a fresh shape of the given kind at the origin.
func New(k Kind) *Shape {
	switch k {
	case Circle:
		return NewCircle()
	case Triangle:
		return NewTriangle()
	case Diamond:
		return NewDiamond()
	case Pentagon:
		return NewPentagon()
	case Octagon:
		return NewOctagon()
	}
	return NewSquare()
}

func NewSquare() *Shape {
	return &Shape{Kind: Square, Size: fyne.NewSize(side, side), Fill: DeepPink}
}

func NewCircle() *Shape {
	return &Shape{Kind: Circle, Size: fyne.NewSize(side, side), Fill: DeepSkyBlue}
}

func NewTriangle() *Shape {
	return polygon(Triangle, Red, 40, 0, 80, 80, 0, 80)
}

func NewDiamond() *Shape {
	return polygon(Diamond, MediumPurple, 40, 0, 80, 40, 40, 80, 0, 40)
}

func NewPentagon() *Shape {
	return polygon(Pentagon, Orange, 40, 0, 80, 30, 65, 80, 15, 80, 0, 30)
}

func NewOctagon() *Shape {
	return polygon(Octagon, Black, 30, 0, 50, 0, 80, 30, 80, 50, 50, 80, 30, 80, 0, 50, 0, 30)
}

// polygon takes vertex coordinates as x,y pairs inside an 80x80 box.
func polygon(k Kind, fill color.NRGBA, xy ...float32) *Shape {
	pts := make([]fyne.Position, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, fyne.NewPos(xy[i], xy[i+1]))
	}
	return &Shape{Kind: k, Size: fyne.NewSize(side, side), Points: pts, Fill: fill}
}
