package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TextRenderer writes a grid as text, one line per row
type TextRenderer struct {
	Alive string
	Dead  string
}

// NewTextRenderer returns a renderer using full blocks for living cells
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Alive: gridPosBlock, Dead: gridPosEmpty}
}

// Display renders the grid to w
func (r *TextRenderer) Display(w io.Writer, g View) error {
	bw := bufio.NewWriter(w)
	for row := range g.Rows() {
		for col := range g.Cols() {
			alive, _ := g.IsAlive(row, col)
			if alive {
				bw.WriteString(r.Alive)
			} else {
				bw.WriteString(r.Dead)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[TextRenderer.Display] flush")
}
