// Package driver runs an engine on behalf of a front-end: it owns the
// "is running" flag, gates manual edits while a run is in progress and paces
// generations on a fixed cadence.
package driver

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrRunning rejects board edits while the simulation is advancing
var ErrRunning = errors.New("simulation is running")

// Reason records why a session stopped running
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSettled
	ReasonCycle
	ReasonLimit
	ReasonStopped
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSettled:
		return "settled"
	case ReasonCycle:
		return "cycle detected"
	case ReasonLimit:
		return "generation limit"
	case ReasonStopped:
		return "stopped"
	case ReasonCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Frame is what a front-end needs to draw one update
type Frame struct {
	Generation int
	Active     bool
	Running    bool
	Population int
	Births     int
	Deaths     int
	State      engine.State
	Reason     Reason
}

// Session pairs an engine with the run/stop state a front-end toggles
type Session struct {
	eng     *engine.Engine
	config  utils.Config
	stats   *utils.Stats
	history *model.History

	running  bool
	reason   Reason
	seed     int64
	lastTick time.Time
}

// NewSession wraps eng using the limits and seed from config
func NewSession(eng *engine.Engine, config utils.Config) *Session {
	return &Session{
		eng:     eng,
		config:  config,
		stats:   utils.NewStats(),
		history: model.NewHistory(config.CycleWindow),
		seed:    config.Seed,
	}
}

// Engine returns the wrapped engine
func (s *Session) Engine() *engine.Engine { return s.eng }

// Stats returns the running statistics
func (s *Session) Stats() *utils.Stats { return s.stats }

// Running reports whether ticks currently advance the board
func (s *Session) Running() bool { return s.running }

// Reason returns why the session last stopped
func (s *Session) Reason() Reason { return s.reason }

// Seed returns the seed the next RandomizeNext call will use
func (s *Session) Seed() int64 { return s.seed }

// Start begins advancing on every tick
func (s *Session) Start() {
	s.running = true
	s.reason = ReasonNone
	s.lastTick = time.Time{}
	s.history.Clear()
	s.history.Record(s.eng.View().Hash())
}

// Stop halts advancing; the board keeps its state
func (s *Session) Stop() {
	s.halt(ReasonStopped)
}

func (s *Session) halt(reason Reason) {
	if !s.running {
		return
	}
	s.running = false
	s.reason = reason
}

// Tick advances the board one generation when running and stops the run
// once the board settles, reaches the generation limit or repeats
func (s *Session) Tick() Frame {
	if !s.running {
		return s.Snapshot()
	}
	s.advance()
	return s.Snapshot()
}

// StepOnce advances a single generation while stopped
func (s *Session) StepOnce() (Frame, error) {
	if s.running {
		return s.Snapshot(), errors.Wrap(ErrRunning, "[Session.StepOnce]")
	}
	s.advance()
	return s.Snapshot(), nil
}

func (s *Session) advance() {
	now := time.Now()
	var frameDuration time.Duration
	if !s.lastTick.IsZero() {
		frameDuration = now.Sub(s.lastTick)
	}
	s.lastTick = now

	active, generation := s.eng.Step()
	view := s.eng.View()
	delta := s.eng.LastDelta()
	s.stats.Update(generation, view.Population(), delta.Births, delta.Deaths, frameDuration)

	switch {
	case !active:
		s.halt(ReasonSettled)
	case s.config.MaxGenerations > 0 && generation >= s.config.MaxGenerations:
		s.halt(ReasonLimit)
	case s.config.StopOnCycle:
		hash := view.Hash()
		if s.history.Repeats(hash) {
			s.halt(ReasonCycle)
		}
		s.history.Record(hash)
	}
}

// Toggle flips a cell; edits are only accepted while stopped
func (s *Session) Toggle(row, col int) error {
	if s.running {
		return errors.Wrapf(ErrRunning, "[Session.Toggle] (%d,%d)", row, col)
	}
	return s.eng.ToggleCell(row, col)
}

// Randomize reseeds the board. The run continues only when the engine is
// configured to stay active after a reset.
func (s *Session) Randomize(seed int64, probability float64) {
	s.eng.Randomize(seed, probability)
	s.afterRestart()
}

// RandomizeNext randomizes with the session seed and then advances it, so
// repeated calls walk through a reproducible series of boards
func (s *Session) RandomizeNext() int64 {
	seed := s.seed
	s.Randomize(seed, s.config.Probability)
	s.seed++
	return seed
}

// Reset kills every cell
func (s *Session) Reset() {
	s.eng.Reset()
	s.afterRestart()
}

func (s *Session) afterRestart() {
	s.stats = utils.NewStats()
	s.lastTick = time.Time{}
	s.history.Clear()
	if !s.eng.IsActive() {
		s.halt(ReasonStopped)
	}
}

// Snapshot describes the current state without advancing
func (s *Session) Snapshot() Frame {
	delta := s.eng.LastDelta()
	return Frame{
		Generation: s.eng.Generation(),
		Active:     s.eng.IsActive(),
		Running:    s.running,
		Population: s.eng.View().Population(),
		Births:     delta.Births,
		Deaths:     delta.Deaths,
		State:      s.eng.State(),
		Reason:     s.reason,
	}
}
