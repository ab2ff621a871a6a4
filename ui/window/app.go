//go:build ebiten

// Package window shows a driver.Session in an ebiten window. Keys match the
// terminal front-end; a left click toggles a cell while the run is stopped.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/utils"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *driver.Session
	stepper *driver.FixedStep
	board   *ebiten.Image
	pixels  []byte

	onColor  color.Color
	offColor color.Color

	scale   int
	message string
}

// New constructs a Game stepping the session every interval.
func New(session *driver.Session, config utils.Config, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	eng := session.Engine()
	return &Game{
		session:  session,
		stepper:  driver.NewFixedStep(config.TickInterval()),
		board:    ebiten.NewImage(eng.Cols(), eng.Rows()),
		pixels:   make([]byte, eng.Rows()*eng.Cols()*4),
		onColor:  color.RGBA{R: 0x4c, G: 0xd1, B: 0x37, A: 0xff},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the session on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.session.Running() {
			g.session.Stop()
		} else {
			g.session.Start()
			g.stepper.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if _, err := g.session.StepOnce(); err != nil {
			g.message = "stop the run to step"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.message = fmt.Sprintf("seed %d", g.session.RandomizeNext())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Reset()
		g.message = "reset"
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := cellAt(x, y, g.scale, g.session.Engine().View()); ok {
			if err := g.session.Toggle(row, col); err != nil {
				g.message = "stop the run to edit the board"
			}
		}
	}

	if g.session.Running() && g.stepper.ShouldStep() {
		if frame := g.session.Tick(); !frame.Running {
			g.message = frame.Reason.String()
		}
	}
	return nil
}

// Draw renders the board and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	fillBinaryRGBA(g.pixels, g.session.Engine().View(), g.onColor, g.offColor)
	g.board.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.board, op)

	frame := g.session.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d  %s  %s", frame.Generation, frame.Population, frame.State, g.message))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	eng := g.session.Engine()
	return eng.Cols() * g.scale, eng.Rows() * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(session *driver.Session, config utils.Config, scale int) error {
	game := New(session, config, scale)
	eng := session.Engine()

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(eng.Cols()*game.scale, eng.Rows()*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[window.Run]")
	}
	return nil
}
