package ui

import (
	"image/color"

	"shapeboard/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 32

// --- Shape swatch: a small preview that draws its shape when tapped ---
type shapeSwatch struct {
	widget.BaseWidget
	Kind     shape.Kind
	OnTapped func(shape.Kind)
}

func newShapeSwatch(k shape.Kind, tapped func(shape.Kind)) *shapeSwatch {
	s := &shapeSwatch{Kind: k, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *shapeSwatch) CreateRenderer() fyne.WidgetRenderer {
	preview := newShapeObject(shape.New(s.Kind))

	// the preview keeps its aspect inside a fixed cell
	cell := canvas.NewRectangle(color.Transparent)
	cell.SetMinSize(fyne.NewSize(swatchSize, swatchSize))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(cell, container.NewPadded(preview), border))
}

func (s *shapeSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Kind)
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, k := range shape.Kinds {
		swatches.Add(newShapeSwatch(k, board.DrawShape))
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), board.Shuffle), // Shuffle
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showExportDialog(win, board)
		}), // Export
	)

	return container.NewHBox(
		widget.NewLabel("Draw:"),
		swatches,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}
