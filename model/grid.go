package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a fixed-size board of alive/dead cells indexed by (row, column),
// origin at the top-left. Its dimensions never change after creation.
type Grid struct {
	rows    int
	columns int
	cells   [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d columns=%d", rows, columns)
	}
	return newGrid(rows, columns), nil
}

func newGrid(rows, columns int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// FromCells builds a grid from a rectangular matrix, copying it
func FromCells(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[FromCells] empty matrix")
	}
	g := newGrid(len(cells), len(cells[0]))
	for i, row := range cells {
		if len(row) != g.columns {
			return nil, errors.Wrapf(ErrInvalidDimension, "[FromCells] row %d has %d cells, want %d", i, len(row), g.columns)
		}
		copy(g.cells[i], row)
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns
func (g *Grid) Columns() int {
	return g.columns
}

// Set sets a cell to alive (true) or dead (false); out-of-range writes are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.columns {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; cells outside the grid are dead
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		return false
	}
	return g.cells[row][col]
}

// Cells returns a copy of the cell matrix
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for i, row := range g.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, columns: g.columns, cells: g.Cells()}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col),
// clipped at the grid edges. The cell itself is not counted. Coordinates
// outside the grid count as 0.
func (g *Grid) CountNeighbors(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		return 0
	}
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows, row+2)
	minCol := max(0, col-1)
	maxCol := min(g.columns, col+2)

	for r := minRow; r < maxRow; r++ {
		for c := minCol; c < maxCol; c++ {
			if g.cells[r][c] {
				count++
			}
		}
	}
	if g.cells[row][col] {
		count--
	}
	return count
}

// NextGeneration computes the next generation into a freshly allocated grid.
// The receiver is only read. A nil rule means the canonical Conway rule.
func (g *Grid) NextGeneration(rule rules.Rule) *Grid {
	if rule == nil {
		rule = rules.Conway
	}
	next := newGrid(g.rows, g.columns)
	g.nextRows(next, rule, 0, g.rows)
	return next
}

// NextGenerationParallel computes the same result as NextGeneration, splitting
// rows into bands evaluated concurrently. workers <= 0 uses runtime.NumCPU().
func (g *Grid) NextGenerationParallel(rule rules.Rule, workers int) *Grid {
	if rule == nil {
		rule = rules.Conway
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	next := newGrid(g.rows, g.columns)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			g.nextRows(next, rule, startRow, endRow)
			return nil
		})
	}

	// workers write disjoint rows and never fail
	_ = eg.Wait()

	return next
}

func (g *Grid) nextRows(next *Grid, rule rules.Rule, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := 0; c < g.columns; c++ {
			next.cells[r][c] = rule(g.cells[r][c], g.CountNeighbors(r, c))
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d;", g.rows, g.columns)
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid as rows of '#' (alive) and '.' (dead)
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
