package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// spinnerRefresh is how many generations pass between spinner text updates
const spinnerRefresh = 10

// initializeGame sets up the engine and session and seeds the board
func initializeGame(config utils.Config) (*driver.Session, error) {
	eng, err := engine.NewWithConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] engine")
	}
	session := driver.NewSession(eng, config)

	if config.Pattern == "" {
		session.RandomizeNext()
		return session, nil
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] available patterns: %v", model.PatternNames())
	}
	rows, cols := pattern.Size()
	if err = eng.Place(pattern, (config.Rows-rows)/2, (config.Cols-cols)/2); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] pattern %q does not fit", config.Pattern)
	}
	return session, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, session *driver.Session) {
	fmt.Fprintf(w, "Grid: %dx%d | Tick: %v | Initial living cells: %d\n",
		config.Rows, config.Cols, config.TickInterval(), session.Engine().View().Population())
	if config.Pattern != "" {
		fmt.Fprintf(w, "Pattern: %s\n", config.Pattern)
	} else {
		fmt.Fprintf(w, "Seed: %d | Probability: %.2f\n", config.Seed, config.Probability)
	}
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// displayGameStatus shows the final game status
func displayGameStatus(w io.Writer, reason driver.Reason, session *driver.Session) {
	frame := session.Snapshot()
	stats := session.Stats()
	fmt.Fprintf(w, "Stopped: %s | Gen: %d | Living: %d | State: %s\n",
		reason, frame.Generation, frame.Population, frame.State)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths,
		stats.Runtime().Seconds())
}

// progress reports a headless run while it advances
type progress interface {
	update(frame driver.Frame)
	finish(reason driver.Reason)
}

// barProgress is used when the run has a known generation limit
type barProgress struct {
	bar *pb.ProgressBar
}

func (p *barProgress) update(frame driver.Frame) {
	p.bar.SetCurrent(int64(frame.Generation))
}

func (p *barProgress) finish(driver.Reason) {
	p.bar.Finish()
}

// spinnerProgress is used for open-ended runs
type spinnerProgress struct {
	spinner *wow.Wow
}

func (p *spinnerProgress) update(frame driver.Frame) {
	if frame.Generation%spinnerRefresh == 0 {
		p.spinner.Text(fmt.Sprintf(" generation %d, %d alive", frame.Generation, frame.Population))
	}
}

func (p *spinnerProgress) finish(reason driver.Reason) {
	p.spinner.PersistWith(spin.Spinner{Frames: []string{"✓"}}, " "+reason.String())
}

func newProgress(w io.Writer, config utils.Config) progress {
	if config.MaxGenerations > 0 {
		return &barProgress{bar: pb.New(config.MaxGenerations).SetWriter(w).Start()}
	}
	s := wow.New(w, spin.Get(spin.Dots), " simulating")
	s.Start()
	return &spinnerProgress{spinner: s}
}

// runHeadless advances the session without a display until it stops on its
// own or the process is interrupted, then prints the final board
func runHeadless(config utils.Config, session *driver.Session) error {
	displayGameInfo(os.Stdout, config, session)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reason driver.Reason
	report := newProgress(os.Stderr, config)

	eg.Go(func() error {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		var err error
		reason, err = driver.NewRunner(session, config.TickInterval()).Run(ctx, report.update)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err := eg.Wait()
	report.finish(reason)
	if err != nil {
		return errors.Wrap(err, "[runHeadless]")
	}

	displayGameStatus(os.Stdout, reason, session)
	return model.NewTextRenderer().Display(os.Stdout, session.Engine().View())
}
