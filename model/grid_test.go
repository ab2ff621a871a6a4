package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNewGridStartsDead(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {4, 3}, {10, 10}}
	for _, size := range sizes {
		g := mustGrid(t, size[0], size[1])
		if g.Rows() != size[0] || g.Cols() != size[1] {
			t.Fatalf("grid size %dx%d, expected %dx%d", g.Rows(), g.Cols(), size[0], size[1])
		}
		for row := range size[0] {
			for col := range size[1] {
				alive, err := g.IsAlive(row, col)
				if err != nil || alive {
					t.Fatalf("cell (%d,%d) alive=%v err=%v on fresh %dx%d grid", row, col, alive, err, size[0], size[1])
				}
				n, err := g.LivingNeighborCount(row, col)
				if err != nil || n != 0 {
					t.Fatalf("cell (%d,%d) neighbors=%d err=%v on fresh grid", row, col, n, err)
				}
			}
		}
		if g.Population() != 0 {
			t.Fatalf("fresh grid population %d", g.Population())
		}
	}
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		g, err := NewGrid(size[0], size[1])
		if g != nil || !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) = %v, %v; expected ErrInvalidDimensions", size[0], size[1], g, err)
		}
	}
}

func TestOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	g := mustGrid(t, 3, 4)
	if err := g.SetAlive(1, 1, true); err != nil {
		t.Fatal(err)
	}
	before := g.Clone()

	bad := []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}}
	for _, p := range bad {
		if _, err := g.IsAlive(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("IsAlive%v err=%v", p, err)
		}
		if err := g.SetAlive(p.Row, p.Col, true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetAlive%v err=%v", p, err)
		}
		if err := g.Toggle(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle%v err=%v", p, err)
		}
		if _, err := g.NeighborsOf(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("NeighborsOf%v err=%v", p, err)
		}
		if _, err := g.LivingNeighborCount(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("LivingNeighborCount%v err=%v", p, err)
		}
	}
	if !g.Equal(before) {
		t.Fatal("rejected operations mutated the grid")
	}
}

func TestToggle(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if err := g.Toggle(0, 1); err != nil {
		t.Fatal(err)
	}
	if alive, _ := g.IsAlive(0, 1); !alive {
		t.Fatal("toggle of a dead cell should make it alive")
	}
	if err := g.Toggle(0, 1); err != nil {
		t.Fatal(err)
	}
	if alive, _ := g.IsAlive(0, 1); alive {
		t.Fatal("toggle of a living cell should kill it")
	}
}

func TestNeighborsOf(t *testing.T) {
	g := mustGrid(t, 5, 6)
	cases := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 3},
		{Position{0, 5}, 3},
		{Position{4, 0}, 3},
		{Position{4, 5}, 3},
		{Position{0, 2}, 5},
		{Position{2, 0}, 5},
		{Position{2, 3}, 8},
		{Position{3, 4}, 8},
	}
	for _, tc := range cases {
		neighbors, err := g.NeighborsOf(tc.pos.Row, tc.pos.Col)
		if err != nil {
			t.Fatal(err)
		}
		if len(neighbors) != tc.want {
			t.Fatalf("NeighborsOf%v = %d positions, expected %d", tc.pos, len(neighbors), tc.want)
		}
		seen := map[Position]bool{}
		for _, n := range neighbors {
			if n == tc.pos {
				t.Fatalf("NeighborsOf%v includes the cell itself", tc.pos)
			}
			if seen[n] {
				t.Fatalf("NeighborsOf%v lists %v twice", tc.pos, n)
			}
			seen[n] = true
			dr, dc := n.Row-tc.pos.Row, n.Col-tc.pos.Col
			if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
				t.Fatalf("NeighborsOf%v includes non-adjacent %v", tc.pos, n)
			}
		}
	}

	single := mustGrid(t, 1, 1)
	if neighbors, _ := single.NeighborsOf(0, 0); len(neighbors) != 0 {
		t.Fatalf("1x1 grid cell has %d neighbors", len(neighbors))
	}
}

func TestLivingNeighborCountNoWraparound(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for _, p := range []Position{{0, 3}, {3, 0}, {3, 3}, {1, 1}} {
		if err := g.SetAlive(p.Row, p.Col, true); err != nil {
			t.Fatal(err)
		}
	}
	cases := map[Position]int{
		{0, 0}: 1, // only (1,1); (3,3), (0,3), (3,0) would count with wrapping
		{2, 2}: 2,
		{1, 1}: 0,
		{0, 2}: 2,
	}
	for p, want := range cases {
		got, err := g.LivingNeighborCount(p.Row, p.Col)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("LivingNeighborCount%v = %d, expected %d", p, got, want)
		}
	}
}

func TestScanMatchesLivingNeighborCount(t *testing.T) {
	g := mustGrid(t, 4, 5)
	for _, p := range []Position{{0, 0}, {1, 1}, {1, 2}, {2, 4}, {3, 3}} {
		_ = g.SetAlive(p.Row, p.Col, true)
	}
	visited := 0
	g.Scan(func(row, col int, alive bool, neighbors int) {
		visited++
		want, _ := g.LivingNeighborCount(row, col)
		if neighbors != want {
			t.Fatalf("Scan (%d,%d) neighbors=%d, expected %d", row, col, neighbors, want)
		}
		if a, _ := g.IsAlive(row, col); a != alive {
			t.Fatalf("Scan (%d,%d) alive=%v, expected %v", row, col, alive, a)
		}
	})
	if visited != 20 {
		t.Fatalf("Scan visited %d cells, expected 20", visited)
	}
}

func TestResetAllKeepsDimensions(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Each(func(row, col int, _ bool) { _ = g.SetAlive(row, col, true) })
	if g.Population() != 9 {
		t.Fatalf("population %d, expected 9", g.Population())
	}
	g.ResetAll()
	if g.Population() != 0 || g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("after ResetAll population=%d size=%dx%d", g.Population(), g.Rows(), g.Cols())
	}
}

func TestAliveCellsRowMajor(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, p := range []Position{{2, 0}, {0, 2}, {1, 1}} {
		_ = g.SetAlive(p.Row, p.Col, true)
	}
	got := g.AliveCells()
	want := []Position{{0, 2}, {1, 1}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("AliveCells = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AliveCells = %v, expected %v", got, want)
		}
	}
}

func TestCloneAndHash(t *testing.T) {
	g := mustGrid(t, 4, 4)
	_ = g.SetAlive(1, 2, true)
	c := g.Clone()
	if !g.Equal(c) || g.Hash() != c.Hash() {
		t.Fatal("clone should equal the original")
	}
	_ = c.Toggle(0, 0)
	if g.Equal(c) || g.Hash() == c.Hash() {
		t.Fatal("clone must be independent of the original")
	}
	other := mustGrid(t, 2, 8)
	if g.Equal(other) {
		t.Fatal("grids of different shape must not be equal")
	}
}
