// Package terminal is an interactive tcell front-end for a driver.Session.
//
// Keys: space/enter run or stop, n single step, r randomize, c reset,
// q/esc/ctrl-c quit. A left click toggles a cell while the run is stopped.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/driver"
)

const cellWidth = 2

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// App draws a session on a terminal screen and maps input to session calls
type App struct {
	screen   tcell.Screen
	session  *driver.Session
	interval time.Duration

	message string
	pressed bool
}

// New creates an App on an initialized screen. Run finalizes the screen
// when it returns.
func New(screen tcell.Screen, session *driver.Session, interval time.Duration) *App {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &App{screen: screen, session: session, interval: interval}
}

// Run processes input and ticks the session until the user quits or ctx is
// done. Input is polled on its own goroutine; the session is only touched
// from the loop goroutine.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseButtonEvents)
	a.screen.Clear()

	var (
		events   = make(chan tcell.Event)
		loopDone = make(chan struct{})
		eg       errgroup.Group
	)

	eg.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-loopDone:
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer a.screen.Fini()
		defer close(loopDone)
		return a.loop(ctx, events)
	})

	return eg.Wait()
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !a.session.Running() {
				continue
			}
			frame := a.session.Tick()
			if !frame.Running {
				a.message = frame.Reason.String()
			}
			a.draw()
		case ev := <-events:
			if a.handle(ev) {
				return nil
			}
			a.draw()
		}
	}
}

// handle applies one input event and reports whether the user asked to quit
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.toggleRun()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		a.toggleRun()
	case 'n':
		if _, err := a.session.StepOnce(); err != nil {
			a.report(err)
		} else {
			a.message = "stepped"
		}
	case 'r':
		seed := a.session.RandomizeNext()
		a.message = fmt.Sprintf("randomized with seed %d", seed)
	case 'c':
		a.session.Reset()
		a.message = "reset"
	}
	return false
}

func (a *App) toggleRun() {
	if a.session.Running() {
		a.session.Stop()
		a.message = "stopped"
		return
	}
	a.session.Start()
	a.message = "running"
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	// toggle on press only, not on release or while held
	if !down || a.pressed {
		a.pressed = down
		return
	}
	a.pressed = true

	x, y := ev.Position()
	row, col := y, x/cellWidth
	eng := a.session.Engine()
	if row >= eng.Rows() || col >= eng.Cols() {
		return
	}
	if err := a.session.Toggle(row, col); err != nil {
		a.report(err)
		return
	}
	a.message = fmt.Sprintf("toggled (%d,%d)", row, col)
}

func (a *App) report(err error) {
	if errors.Is(err, driver.ErrRunning) {
		a.message = "stop the run to edit the board"
		return
	}
	a.message = err.Error()
}

func (a *App) draw() {
	width, height := a.screen.Size()
	view := a.session.Engine().View()
	boardRows := min(view.Rows(), max(height-1, 0))
	boardCols := min(view.Cols(), width/cellWidth)

	a.screen.Clear()
	view.Each(func(row, col int, alive bool) {
		if row >= boardRows || col >= boardCols {
			return
		}
		ch, style := ' ', deadStyle
		if alive {
			ch, style = '█', aliveStyle
		}
		for i := range cellWidth {
			a.screen.SetContent(col*cellWidth+i, row, ch, nil, style)
		}
	})

	frame := a.session.Snapshot()
	status := fmt.Sprintf(" gen %d | pop %d | %s", frame.Generation, frame.Population, frame.State)
	if frame.Running {
		status += " | running"
	}
	if a.message != "" {
		status += " | " + a.message
	}
	a.drawText(0, min(boardRows, height-1), width, status)
	a.screen.Show()
}

func (a *App) drawText(x, y, width int, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		a.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
}
