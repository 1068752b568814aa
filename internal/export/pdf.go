package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"shapeboard/internal/shape"

	"fyne.io/fyne/v2"
	"github.com/jung-kurt/gofpdf"
)

// ErrEmptySurface is returned when the board has no area to export.
var ErrEmptySurface = errors.New("board has zero size")

// WritePDF renders shapes onto a single page the size of the board, one
// point per board unit, and writes the document to w.
func WritePDF(w io.Writer, shapes []*shape.Shape, surface fyne.Size) error {
	if surface.Width <= 0 || surface.Height <= 0 {
		return ErrEmptySurface
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(surface.Width), Ht: float64(surface.Height)},
	})
	p.SetTitle("Shape Board", true)
	p.SetCreator("shapeboard", true)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for _, sh := range shapes {
		p.SetFillColor(int(sh.Fill.R), int(sh.Fill.G), int(sh.Fill.B))
		x, y := float64(sh.Position.X), float64(sh.Position.Y)
		w, h := float64(sh.Size.Width), float64(sh.Size.Height)

		switch {
		case sh.Kind == shape.Square:
			p.Rect(x, y, w, h, "F")
		case sh.Kind == shape.Circle:
			p.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, "F")
		case sh.Kind.IsPolygon():
			pts := make([]gofpdf.PointType, 0, len(sh.Points))
			for _, v := range sh.AbsolutePoints() {
				pts = append(pts, gofpdf.PointType{X: float64(v.X), Y: float64(v.Y)})
			}
			p.Polygon(pts, "F")
		}
	}

	if err := p.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d shapes on a %.0fx%.0f page", len(shapes), surface.Width, surface.Height)
	return nil
}

// WritePDFFile is WritePDF to a file at path.
func WritePDFFile(path string, shapes []*shape.Shape, surface fyne.Size) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := WritePDF(f, shapes, surface); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
