/*
Package gate paces outbound requests.

The kind people at MusicBrainz provide their API at no cost for everyone to use. They
have asked all applications to make no more than one request per second, and they
block clients which do not comply. A Gate is the thing which makes sure we comply: every
request made by this program passes through Gate.Acquire first.
More info: https://musicbrainz.org/doc/MusicBrainz_API/Rate_Limiting
*/
package gate

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the minimal time between two requests allowed by the
// MusicBrainz rate limiting rules.
const DefaultInterval = time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Clock

// Clock is the source of time for a Gate.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After waits for the duration to elapse and then sends the current time on
	// the returned channel.
	After(d time.Duration) <-chan time.Time
}

// Gate guarantees a minimal interval between the moments its Acquire method
// returns. It is safe for concurrent use.
type Gate struct {
	sync.Mutex

	interval time.Duration
	clock    Clock
	last     time.Time
}

// New returns a Gate which uses the wall clock. No more than one Acquire per
// `interval` will return.
func New(interval time.Duration) *Gate {
	return NewWithClock(interval, realClock{})
}

// NewWithClock returns a Gate which measures time using `clock`.
func NewWithClock(interval time.Duration, clock Clock) *Gate {
	if interval < 0 {
		interval = 0
	}
	return &Gate{
		interval: interval,
		clock:    clock,
	}
}

// Acquire blocks until at least the gate interval has passed since the previous
// Acquire returned and then records the current time as the time of the last request.
// The first call never blocks.
//
// Waiting can be interrupted with ctx. In this case ctx.Err() is returned and the
// last request time stays unchanged since no request is supposed to follow.
func (g *Gate) Acquire(ctx context.Context) error {
	g.Lock()
	defer g.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if !g.last.IsZero() {
		elapsed := g.clock.Now().Sub(g.last)
		if deficit := g.interval - elapsed; deficit > 0 {
			select {
			case <-g.clock.After(deficit):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	g.last = g.clock.Now()
	return nil
}

// Last returns the time recorded by the last successful Acquire. It is the zero
// time when Acquire has never been called.
func (g *Gate) Last() time.Time {
	g.Lock()
	defer g.Unlock()

	return g.last
}

// Interval returns the minimal time between two requests for this gate.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
