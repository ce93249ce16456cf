package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// RandomGrid fills a new grid from rng, drawing one sample per cell in
// row-major order. A cell is alive iff its sample is below probability.
// Arguments are validated before any sample is drawn.
func RandomGrid(rows, columns int, probability float64, rng *utils.RNG) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[RandomGrid] rows=%d columns=%d", rows, columns)
	}
	// written as a negated range check so NaN is rejected too
	if !(probability >= 0 && probability <= 1) {
		return nil, errors.Wrapf(ErrInvalidProbability, "[RandomGrid] probability=%v", probability)
	}

	g := newGrid(rows, columns)
	for r := range rows {
		for c := range columns {
			g.cells[r][c] = rng.Float64() < probability
		}
	}
	return g, nil
}

// NewRandomGrid is RandomGrid with a fresh PCG generator seeded with seed
func NewRandomGrid(rows, columns int, probability float64, seed int64) (*Grid, error) {
	return RandomGrid(rows, columns, probability, utils.NewRNG(seed))
}
