package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	label      *canvas.Text
	shapes     map[string]fyne.CanvasObject // keyed by shape ID
	objects    []fyne.CanvasObject
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	label := canvas.NewText("", color.Black)
	label.TextSize = b.cfg.LabelTextSize
	label.Alignment = fyne.TextAlignCenter

	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		label:      label,
		shapes:     make(map[string]fyne.CanvasObject),
	}
	r.rebuild()
	return r
}

// rebuild syncs the object list with the scene: background first, shapes
// in z-order, then the label on top.
func (r *boardRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	seen := make(map[string]bool, len(r.shapes))

	for _, sh := range r.board.scene.Shapes() {
		obj, ok := r.shapes[sh.ID]
		if !ok {
			obj = newShapeObject(sh)
			r.shapes[sh.ID] = obj
		}
		obj.Move(sh.Position)
		seen[sh.ID] = true
		objects = append(objects, obj)
	}
	for id := range r.shapes {
		if !seen[id] {
			delete(r.shapes, id)
		}
	}

	if text, ok := r.board.toast.Current(); ok {
		r.label.Text = text
		r.label.Refresh()
		r.placeLabel(r.board.Size())
		objects = append(objects, r.label)
	}
	r.objects = objects
}

func (r *boardRenderer) placeLabel(size fyne.Size) {
	ts := r.label.MinSize()
	r.label.Resize(ts)
	r.label.Move(fyne.NewPos((size.Width-ts.Width)/2, r.board.cfg.LabelInset))
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.placeLabel(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
