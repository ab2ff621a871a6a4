// Package engine advances a Game of Life board one generation at a time.
//
// An Engine is not safe for concurrent use: callers drive it from a single
// goroutine and never overlap Step with ToggleCell, Randomize or Reset.
package engine

import (
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rng"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// State describes where the engine is in its run
type State int

const (
	// Idle means no step has been taken since construction, reset or randomize
	Idle State = iota
	// Advancing means the last step changed at least one cell
	Advancing
	// Settled means the last step changed nothing
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Advancing:
		return "advancing"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Delta counts the cells flipped by a step
type Delta struct {
	Births int
	Deaths int
}

// Engine owns a grid and applies the Game of Life rules to it
type Engine struct {
	rows, cols int
	grid       *model.Grid
	generation int
	active     bool
	state      State
	last       Delta

	resetLeavesActive bool

	// scratch lists reused across steps
	births []model.Position
	deaths []model.Position
}

// New creates an engine over an all-dead grid of the given size
func New(rows, cols int) (*Engine, error) {
	grid, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Engine{rows: rows, cols: cols, grid: grid, state: Idle}, nil
}

// NewWithConfig creates an engine sized and tuned by config
func NewWithConfig(config utils.Config) (*Engine, error) {
	e, err := New(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	e.resetLeavesActive = config.ResetLeavesActive
	return e, nil
}

// Rows returns the number of rows of the board
func (e *Engine) Rows() int { return e.rows }

// Cols returns the number of columns of the board
func (e *Engine) Cols() int { return e.cols }

// Generation returns the number of steps taken since the last reset
func (e *Engine) Generation() int { return e.generation }

// IsActive reports whether the last step changed the population
func (e *Engine) IsActive() bool { return e.active }

// State returns the engine's run state
func (e *Engine) State() State { return e.state }

// LastDelta returns the births and deaths of the most recent step
func (e *Engine) LastDelta() Delta { return e.last }

// ResetLeavesActive reports whether Reset and Randomize leave the engine active
func (e *Engine) ResetLeavesActive() bool { return e.resetLeavesActive }

// View exposes the current board read-only. The view is replaced by Reset
// and Randomize, so callers should fetch it again after either.
func (e *Engine) View() model.View { return e.grid }

// Snapshot returns an independent copy of the current board
func (e *Engine) Snapshot() *model.Grid { return e.grid.Clone() }

func (e *Engine) restart() {
	// dimensions were validated by New
	e.grid, _ = model.NewGrid(e.rows, e.cols)
	e.generation = 0
	e.active = e.resetLeavesActive
	e.state = Idle
	e.last = Delta{}
}

// Reset kills every cell and rewinds the generation counter
func (e *Engine) Reset() {
	e.restart()
}

// Randomize reseeds the board from the linear congruential stream
// starting at seed. See Populate for how probability is applied.
func (e *Engine) Randomize(seed int64, probability float64) {
	e.Populate(rng.New(seed), probability)
}

// Populate resets the engine and then, visiting cells in row-major order,
// makes each cell alive when the next draw from src is strictly below
// probability. probability is clamped into [0, 1].
func (e *Engine) Populate(src rng.Source, probability float64) {
	probability = min(max(probability, 0), 1)
	e.restart()
	e.grid.Each(func(row, col int, _ bool) {
		if src.Float64() < probability {
			_ = e.grid.SetAlive(row, col, true)
		}
	})
}

// ToggleCell flips a single cell. Whether toggling is allowed while a run is
// in progress is up to the caller.
func (e *Engine) ToggleCell(row, col int) error {
	return e.grid.Toggle(row, col)
}

// SetCell sets a single cell
func (e *Engine) SetCell(row, col int, alive bool) error {
	return e.grid.SetAlive(row, col, alive)
}

// Place stamps a pattern onto the board with its top-left corner at (row, col)
func (e *Engine) Place(p model.Pattern, row, col int) error {
	return p.Place(e.grid, row, col)
}

// Step advances the board one generation and returns whether any cell
// changed together with the new generation count.
//
// Every neighbor count is read from the unmodified board before any cell is
// flipped, so the update is simultaneous for all cells.
func (e *Engine) Step() (bool, int) {
	e.births, e.deaths = e.births[:0], e.deaths[:0]

	e.grid.Scan(func(row, col int, alive bool, neighbors int) {
		if !rules.Changes(neighbors, alive) {
			return
		}
		if alive {
			e.deaths = append(e.deaths, model.Position{Row: row, Col: col})
		} else {
			e.births = append(e.births, model.Position{Row: row, Col: col})
		}
	})

	for _, p := range e.births {
		_ = e.grid.SetAlive(p.Row, p.Col, true)
	}
	for _, p := range e.deaths {
		_ = e.grid.SetAlive(p.Row, p.Col, false)
	}

	e.last = Delta{Births: len(e.births), Deaths: len(e.deaths)}
	e.active = len(e.births)+len(e.deaths) > 0
	e.generation++
	if e.active {
		e.state = Advancing
	} else {
		e.state = Settled
	}
	return e.active, e.generation
}
