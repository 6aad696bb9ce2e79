package rotator

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pthm-cable/dreamscape/fractal"
)

// Rotator periodically draws a random parameter set and pushes it into a
// mailbox for the render loop.
type Rotator struct {
	mailbox  *Mailbox[fractal.Params]
	ranges   fractal.Ranges
	interval time.Duration
	rng      *rand.Rand // owned by the rotator goroutine

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a rotator. rng must not be shared with other goroutines.
func New(mailbox *Mailbox[fractal.Params], ranges fractal.Ranges, interval time.Duration, rng *rand.Rand) *Rotator {
	return &Rotator{
		mailbox:  mailbox,
		ranges:   ranges,
		interval: interval,
		rng:      rng,
	}
}

// Start launches the rotator goroutine. Call Stop to end it.
func (r *Rotator) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Run(ctx)
	}()
}

// Stop signals the goroutine to exit and waits for it.
func (r *Rotator) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

// Run publishes a parameter set, then idles for the interval, until ctx is
// done. Shutdown is checked at the top of every cycle and during the idle.
func (r *Rotator) Run(ctx context.Context) {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		p := fractal.RandomParams(r.rng, r.ranges)
		r.mailbox.Push(p)
		slog.Debug("parameters published", "params", p, "pushes", r.mailbox.Pushes())

		timer.Reset(r.interval)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}
