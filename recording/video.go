package recording

import (
	"bytes"
	"image/jpeg"

	"github.com/icza/mjpeg"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const jpegQuality = 90

// VideoRecorder appends rendered generations to an MJPEG AVI file
type VideoRecorder struct {
	writer  mjpeg.AviWriter
	frames  FrameRenderer
	rows    int
	columns int
	buf     bytes.Buffer
	count   int
}

// NewVideoRecorder creates the AVI file at path for grids of the given size
func NewVideoRecorder(path string, rows, columns int, frames FrameRenderer, fps int32) (*VideoRecorder, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(model.ErrInvalidDimension, "[NewVideoRecorder] rows=%d columns=%d", rows, columns)
	}
	if fps <= 0 {
		fps = 1
	}
	w, h := frames.Size(rows, columns)
	aw, err := mjpeg.New(path, int32(w), int32(h), fps)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewVideoRecorder] failed to create video: %+v", path)
	}
	return &VideoRecorder{writer: aw, frames: frames, rows: rows, columns: columns}, nil
}

// AddGrid encodes one generation as a frame
func (v *VideoRecorder) AddGrid(g *model.Grid, generation int) error {
	if g.Rows() != v.rows || g.Columns() != v.columns {
		return errors.Wrapf(model.ErrInvalidDimension, "[AddGrid] grid is %dx%d, video is %dx%d",
			g.Rows(), g.Columns(), v.rows, v.columns)
	}

	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, v.frames.Render(g, generation), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return errors.Wrapf(err, "[AddGrid] failed to encode generation %d", generation)
	}
	if err := v.writer.AddFrame(v.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[AddGrid] failed to add generation %d", generation)
	}
	v.count++
	return nil
}

// Frames returns the number of frames written so far
func (v *VideoRecorder) Frames() int { return v.count }

// Close finalizes the AVI index and closes the file
func (v *VideoRecorder) Close() error {
	return errors.Wrap(v.writer.Close(), "[Close] failed to finalize video")
}
