package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func TestRandomGridDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 211, -42} {
		a, err := NewRandomGrid(12, 9, 0.3, seed)
		if err != nil {
			t.Fatalf("NewRandomGrid: %v", err)
		}
		b, err := NewRandomGrid(12, 9, 0.3, seed)
		if err != nil {
			t.Fatalf("NewRandomGrid: %v", err)
		}
		if !a.Equal(b) {
			t.Fatalf("seed %d produced different grids", seed)
		}
	}
}

func TestRandomGridDrawsOncePerCell(t *testing.T) {
	rng := utils.NewRNG(5)
	if _, err := RandomGrid(4, 6, 0.5, rng); err != nil {
		t.Fatalf("RandomGrid: %v", err)
	}
	if rng.Draws() != 24 {
		t.Fatalf("draws = %d, want 24", rng.Draws())
	}
}

func TestRandomGridProbabilityExtremes(t *testing.T) {
	none, err := NewRandomGrid(5, 5, 0, 1)
	if err != nil {
		t.Fatalf("NewRandomGrid: %v", err)
	}
	if none.CountLivingCells() != 0 {
		t.Fatal("probability 0 must produce an empty grid")
	}
	all, err := NewRandomGrid(5, 5, 1, 1)
	if err != nil {
		t.Fatalf("NewRandomGrid: %v", err)
	}
	if all.CountLivingCells() != 25 {
		t.Fatal("probability 1 must fill the grid")
	}
}

func TestRandomGridRowMajorMT19937(t *testing.T) {
	// seed 0 yields 0.5488..., 0.7151..., 0.6027..., 0.5448...
	g, err := RandomGrid(2, 2, 0.61, utils.NewMT19937RNG(0))
	if err != nil {
		t.Fatalf("RandomGrid: %v", err)
	}
	want := gridOf(t, "#.", "##")
	if !g.Equal(want) {
		t.Fatalf("grid:\n%s\nwant:\n%s", g, want)
	}
}

func TestRandomGridRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name        string
		rows, cols  int
		probability float64
		want        error
	}{
		{"zero rows", 0, 5, 0.3, ErrInvalidDimension},
		{"negative columns", 5, -2, 0.3, ErrInvalidDimension},
		{"probability above one", 5, 5, 1.5, ErrInvalidProbability},
		{"negative probability", 5, 5, -0.1, ErrInvalidProbability},
		{"NaN probability", 5, 5, math.NaN(), ErrInvalidProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := utils.NewRNG(1)
			g, err := RandomGrid(tc.rows, tc.cols, tc.probability, rng)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if g != nil {
				t.Fatal("no grid may be returned on error")
			}
			if rng.Draws() != 0 {
				t.Fatalf("draws = %d, want 0", rng.Draws())
			}
		})
	}
}
