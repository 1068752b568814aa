package ui

import (
	"image"
	"image/color"
	"image/draw"

	"shapeboard/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/vector"
)

// polygons are rasterized at this multiple of their box size so they stay
// sharp on HiDPI screens
const oversample = 3

// rasterizePolygon fills the polygon described by pts (relative to a box of
// the given size) into a transparent RGBA image.
func rasterizePolygon(pts []fyne.Position, size fyne.Size, fill color.Color) *image.RGBA {
	w := int(size.Width * oversample)
	h := int(size.Height * oversample)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(pts) < 3 || w == 0 || h == 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	z.MoveTo(pts[0].X*oversample, pts[0].Y*oversample)
	for _, p := range pts[1:] {
		z.LineTo(p.X*oversample, p.Y*oversample)
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	return dst
}

// newShapeObject builds the canvas object that draws sh, sized to its box.
func newShapeObject(sh *shape.Shape) fyne.CanvasObject {
	var obj fyne.CanvasObject
	switch {
	case sh.Kind == shape.Square:
		obj = canvas.NewRectangle(sh.Fill)
	case sh.Kind == shape.Circle:
		obj = canvas.NewCircle(sh.Fill)
	default:
		img := canvas.NewImageFromImage(rasterizePolygon(sh.Points, sh.Size, sh.Fill))
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScaleSmooth
		obj = img
	}
	obj.Resize(sh.Size)
	return obj
}
