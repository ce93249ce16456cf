package recording

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func blinker(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.FromCells([][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	})
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return g
}

func TestFrameRendererCells(t *testing.T) {
	fr := FrameRenderer{CellSize: 10}
	g := blinker(t)
	img := fr.Render(g, 3)

	w, h := fr.Size(3, 3)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("image is %v, want %dx%d", img.Bounds(), w, h)
	}
	// centers of cells, clear of gridlines
	if got := img.RGBAAt(15, labelHeight+15); got != colorAlive {
		t.Fatalf("alive cell color = %v", got)
	}
	if got := img.RGBAAt(15, labelHeight+5); got != colorDead {
		t.Fatalf("dead cell color = %v", got)
	}
	if got := img.RGBAAt(10, labelHeight+5); got != colorLine {
		t.Fatalf("gridline color = %v", got)
	}
}

func TestFrameRendererLabel(t *testing.T) {
	fr := FrameRenderer{CellSize: 30}
	img := fr.Render(blinker(t), 12)
	dark := 0
	for y := 0; y < labelHeight; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("label area must contain drawn text")
	}
}

func TestVideoRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewVideoRecorder(path, 3, 3, FrameRenderer{CellSize: 16}, 2)
	if err != nil {
		t.Fatalf("NewVideoRecorder: %v", err)
	}

	g := blinker(t)
	for gen := 0; gen < 3; gen++ {
		if err = rec.AddGrid(g, gen); err != nil {
			t.Fatalf("AddGrid: %v", err)
		}
		g = g.NextGeneration(nil)
	}

	other, err := model.NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err = rec.AddGrid(other, 3); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("mismatched grid err = %v, want ErrInvalidDimension", err)
	}
	if rec.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", rec.Frames())
	}
	if err = rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read video: %v", err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatal("output is not an AVI file")
	}
}

func TestNewVideoRecorderRejectsEmptyGrid(t *testing.T) {
	_, err := NewVideoRecorder(filepath.Join(t.TempDir(), "x.avi"), 0, 3, FrameRenderer{CellSize: 4}, 1)
	if !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestWritePopulationChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePopulationChart(&buf, []int{12, 9, 9, 7, 0}); err != nil {
		t.Fatalf("WritePopulationChart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("chart output is not a PNG")
	}

	buf.Reset()
	if err := WritePopulationChart(&buf, []int{0, 0}); err != nil {
		t.Fatalf("flat chart: %v", err)
	}
	if err := WritePopulationChart(&buf, []int{4}); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("single sample err = %v, want ErrNotEnoughData", err)
	}
}
