package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a named set of living cells relative to its top-left corner
type Pattern struct {
	Name  string
	Cells []Position
}

var builtinPatterns = map[string]string{
	"block": `
OO
OO`,
	"blinker": `
OOO`,
	"glider": `
.O.
..O
OOO`,
	"beehive": `
.OO.
O..O
.OO.`,
	"toad": `
.OOO
OOO.`,
}

// ParsePattern reads a plain-text pattern. 'O', '#' and '*' mark living
// cells, '.' and ' ' dead ones; lines starting with '!' are comments.
func ParsePattern(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	row := 0
	for _, line := range strings.Split(strings.TrimLeft(text, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '#', '*':
				p.Cells = append(p.Cells, Position{Row: row, Col: col})
			case '.', ' ':
			default:
				return Pattern{}, errors.Errorf("[ParsePattern] %s: unexpected %q at row %d col %d", name, ch, row, col)
			}
		}
		row++
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.Errorf("[ParsePattern] %s: no living cells", name)
	}
	return p, nil
}

// LookupPattern returns a built-in pattern by name
func LookupPattern(name string) (Pattern, error) {
	text, ok := builtinPatterns[name]
	if !ok {
		return Pattern{}, errors.Errorf("[LookupPattern] unknown pattern %q", name)
	}
	return ParsePattern(name, text)
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the bounding box of the pattern
func (p Pattern) Size() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return
}

// Place stamps the pattern onto g with its top-left corner at (row, col).
// Nothing is written unless every cell fits.
func (p Pattern) Place(g *Grid, row, col int) error {
	for _, c := range p.Cells {
		if !g.inBounds(row+c.Row, col+c.Col) {
			return errors.Wrapf(ErrOutOfBounds, "[Pattern.Place] %s at (%d,%d) on %dx%d", p.Name, row, col, g.rows, g.cols)
		}
	}
	for _, c := range p.Cells {
		g.cells[g.index(row+c.Row, col+c.Col)] = true
	}
	return nil
}
