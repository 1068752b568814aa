package ui

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"shapeboard/internal/config"
	"shapeboard/internal/export"
	"shapeboard/internal/shape"
	"shapeboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface holding the shapes.
type BoardWidget struct {
	widget.BaseWidget
	scene *state.Scene
	toast *state.Toast
	cfg   config.Config
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// uiScheduler runs timer callbacks back on the Fyne UI goroutine.
var uiScheduler = state.SchedulerFunc(func(d time.Duration, f func()) state.Timer {
	return time.AfterFunc(d, func() { fyne.Do(f) })
})

// NewBoard creates a board with its own scene and toast as configured.
func NewBoard(cfg config.Config) *BoardWidget {
	rng := rand.New(rand.NewSource(cfg.RandomSeed(time.Now())))
	return NewBoardWidget(cfg, state.NewScene(rng), state.NewToast(uiScheduler, cfg.LabelDelay))
}

// NewBoardWidget wires a board to an existing scene and toast.
func NewBoardWidget(cfg config.Config, scene *state.Scene, toast *state.Toast) *BoardWidget {
	b := &BoardWidget{
		scene: scene,
		toast: toast,
		cfg:   cfg,
	}
	b.ExtendBaseWidget(b)
	scene.OnChange = b.Refresh
	toast.OnChange = b.Refresh
	return b
}

// Scene exposes the shapes on the board.
func (b *BoardWidget) Scene() *state.Scene {
	return b.scene
}

// Resize lays the board out and scatters the initial shapes the first
// time it gets a real size.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 && !b.scene.Populated() {
		b.scene.Populate(size)
	}
}

// DrawShape clears the board and draws one shape of kind k in the middle.
func (b *BoardWidget) DrawShape(k shape.Kind) {
	log.Printf("[UI] Draw %s", k)
	b.scene.DrawCentered(k, b.Size())
}

// Shuffle clears the board and scatters every shape again.
func (b *BoardWidget) Shuffle() {
	log.Println("[UI] Shuffle")
	b.scene.Shuffle(b.Size())
}

// ExportPDF writes the board as a PDF and closes writer.
func (b *BoardWidget) ExportPDF(writer io.WriteCloser) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()
	if err := export.WritePDF(writer, b.scene.Shapes(), b.Size()); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}

func (b *BoardWidget) press(pos fyne.Position) {
	name := shape.EmptyName
	if sh := b.scene.Press(pos); sh != nil {
		name = sh.Name()
	}
	b.toast.Show(name)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.press(e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.scene.Release()
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.scene.Move(e.Position, b.Size())
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.scene.Move(e.Position, b.Size())
}

func (b *BoardWidget) DragEnd() {
	b.scene.Release()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
