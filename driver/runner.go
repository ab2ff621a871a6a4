package driver

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Runner advances a session on a fixed cadence
type Runner struct {
	session  *Session
	interval time.Duration
}

// NewRunner creates a runner ticking every interval
func NewRunner(session *Session, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Runner{session: session, interval: interval}
}

// Run starts the session and ticks it until it stops on its own or ctx is
// done. onFrame, when not nil, sees every frame including the last one.
func (r *Runner) Run(ctx context.Context, onFrame func(Frame)) (Reason, error) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.session.Start()
	for {
		select {
		case <-ctx.Done():
			r.session.halt(ReasonCancelled)
			return ReasonCancelled, errors.Wrap(ctx.Err(), "[Runner.Run]")
		case <-ticker.C:
			frame := r.session.Tick()
			if onFrame != nil {
				onFrame(frame)
			}
			if !frame.Running {
				return frame.Reason, nil
			}
		}
	}
}
