package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a position falls outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
)

// neighborOffsets lists the Moore neighborhood, excluding the cell itself
var neighborOffsets = [8]Position{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Position addresses a single cell
type Position struct {
	Row int
	Col int
}

// View is the read-only side of a grid handed to renderers
type View interface {
	Rows() int
	Cols() int
	IsAlive(row, col int) (bool, error)
	Population() int
	Each(fn func(row, col int, alive bool))
	AliveCells() []Position
	Hash() string
}

// Grid represents the game board
type Grid struct {
	rows  int
	cols  int
	cells []bool // row-major, addressed by row*cols+col
}

// NewGrid creates a new grid with the specified dimensions and every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if g.inBounds(row, col) {
		return nil
	}
	return errors.Wrapf(ErrOutOfBounds, "[Grid.%s] (%d,%d) outside %dx%d", op, row, col, g.rows, g.cols)
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if err := g.checkBounds("IsAlive", row, col); err != nil {
		return false, err
	}
	return g.cells[g.index(row, col)], nil
}

// SetAlive sets a cell to alive (true) or dead (false)
func (g *Grid) SetAlive(row, col int, alive bool) error {
	if err := g.checkBounds("SetAlive", row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = alive
	return nil
}

// Toggle flips the state of a cell
func (g *Grid) Toggle(row, col int) error {
	if err := g.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
	return nil
}

// NeighborsOf returns the in-bounds neighbors of a cell; edges do not wrap
func (g *Grid) NeighborsOf(row, col int) ([]Position, error) {
	if err := g.checkBounds("NeighborsOf", row, col); err != nil {
		return nil, err
	}
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		r, c := row+off.Row, col+off.Col
		if g.inBounds(r, c) {
			neighbors = append(neighbors, Position{Row: r, Col: c})
		}
	}
	return neighbors, nil
}

// LivingNeighborCount counts the living neighbors of a cell
func (g *Grid) LivingNeighborCount(row, col int) (int, error) {
	if err := g.checkBounds("LivingNeighborCount", row, col); err != nil {
		return 0, err
	}
	return g.countNeighbors(row, col), nil
}

// countNeighbors counts living neighbors with bounds computed once per cell
func (g *Grid) countNeighbors(row, col int) (count int) {
	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		base := r * g.cols
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[base+c] {
				count++
			}
		}
	}
	return
}

// ResetAll sets every cell dead
func (g *Grid) ResetAll() {
	clear(g.cells)
}

// Each visits every cell in row-major order
func (g *Grid) Each(fn func(row, col int, alive bool)) {
	for row := range g.rows {
		for col := range g.cols {
			fn(row, col, g.cells[g.index(row, col)])
		}
	}
}

// Scan visits every cell in row-major order together with its living
// neighbor count. fn must not mutate the grid.
func (g *Grid) Scan(fn func(row, col int, alive bool, neighbors int)) {
	for row := range g.rows {
		for col := range g.cols {
			fn(row, col, g.cells[g.index(row, col)], g.countNeighbors(row, col))
		}
	}
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// AliveCells lists the living cells in row-major order
func (g *Grid) AliveCells() []Position {
	alive := make([]Position, 0)
	g.Each(func(row, col int, a bool) {
		if a {
			alive = append(alive, Position{Row: row, Col: col})
		}
	})
	return alive
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Hash returns an MD5 fingerprint of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
