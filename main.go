package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/ui/terminal"
	"github.com/sheikhrachel/go-life/ui/window"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	configFile   = "config.json"
	defaultScale = 4
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading %s: %v", configFile, err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	scale := defaultScale
	config.Bind(flag.CommandLine)
	flag.IntVar(&scale, "scale", scale, "pixels per cell in window mode")
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	session, err := initializeGame(config)
	if err != nil {
		log.Fatal(err)
	}

	switch config.Mode {
	case utils.ModeHeadless:
		err = runHeadless(config, session)
	case utils.ModeWindow:
		err = window.Run(session, config, scale)
	default:
		err = runTerminal(config, session)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runTerminal hands the session to the interactive terminal front-end
func runTerminal(config utils.Config, session *driver.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] creating screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] initializing screen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, session, config.TickInterval()).Run(ctx)
}
