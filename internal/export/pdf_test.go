package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shapeboard/internal/shape"

	"fyne.io/fyne/v2"
)

func allShapes() []*shape.Shape {
	var shapes []*shape.Shape
	for i, k := range shape.Kinds {
		sh := shape.New(k)
		sh.Position = fyne.NewPos(float32(i*90), float32(i*20))
		shapes = append(shapes, sh)
	}
	return shapes
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, allShapes(), fyne.NewSize(640, 480)); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWritePDFEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, nil, fyne.NewSize(300, 200)); err != nil {
		t.Fatalf("an empty scene should still export: %v", err)
	}

	err := WritePDF(&buf, allShapes(), fyne.NewSize(0, 200))
	if !errors.Is(err, ErrEmptySurface) {
		t.Errorf("err = %v, want ErrEmptySurface", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePDFWriterError(t *testing.T) {
	if err := WritePDF(failingWriter{}, allShapes(), fyne.NewSize(640, 480)); err == nil {
		t.Error("expected the writer error to surface")
	}
}

func TestWritePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	if err := WritePDFFile(path, allShapes(), fyne.NewSize(640, 480)); err != nil {
		t.Fatalf("WritePDFFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file does not start with a PDF header")
	}
}
