package recording

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sheikhrachel/go-life/model"
)

const (
	labelHeight  = 20
	labelPadding = 4
)

var (
	colorAlive = color.RGBA{A: 255}
	colorDead  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLine  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLabel = color.RGBA{A: 255}
)

// FrameRenderer draws a grid as a black-on-white image with gridlines and an
// iteration label above it.
type FrameRenderer struct {
	CellSize int
}

// Size returns the image dimensions for a rows x columns grid
func (fr FrameRenderer) Size(rows, columns int) (width, height int) {
	return columns * fr.CellSize, rows*fr.CellSize + labelHeight
}

// Render draws g labelled with its generation number
func (fr FrameRenderer) Render(g *model.Grid, generation int) *image.RGBA {
	w, h := fr.Size(g.Rows(), g.Columns())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorDead}, image.Point{}, draw.Src)

	for r := range g.Rows() {
		for c := range g.Columns() {
			if !g.Get(r, c) {
				continue
			}
			cell := image.Rect(c*fr.CellSize, labelHeight+r*fr.CellSize, (c+1)*fr.CellSize, labelHeight+(r+1)*fr.CellSize)
			draw.Draw(img, cell, &image.Uniform{colorAlive}, image.Point{}, draw.Src)
		}
	}

	// minor gridlines on cell boundaries
	for r := 0; r <= g.Rows(); r++ {
		y := min(labelHeight+r*fr.CellSize, h-1)
		for x := 0; x < w; x++ {
			img.Set(x, y, colorLine)
		}
	}
	for c := 0; c <= g.Columns(); c++ {
		x := min(c*fr.CellSize, w-1)
		for y := labelHeight; y < h; y++ {
			img.Set(x, y, colorLine)
		}
	}

	addLabel(img, labelPadding, labelHeight-labelPadding-2, fmt.Sprintf("Iteration: %d", generation))
	return img
}

// addLabel draws text with its baseline at (x, y)
func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}
