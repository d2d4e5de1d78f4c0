// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package trigger drives pulse networks over many button presses.
//
// Accumulate sums the pulse counts of a fixed number of presses. Search
// presses the button until a watched receiver gets a watched level, which
// may take an astronomically large number of presses on some networks.
// SearchPeriodic computes the same answer from the periods of the inputs of
// the receiver's predecessor, under the assumption that these are periodic
// (see its documentation).
//
// Presses are counted from the network's current state: node state is never
// reset between presses.
//
package trigger

import (
	"context"
	"io"
	"log/slog"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
)

// Sentinel errors.
//
var (
	ErrLimitReached = errors.New("press limit reached")
	ErrNotPeriodic  = errors.New("network cannot be decomposed into periodic inputs")
)

// DefaultProgress is the default number of presses between progress log
// entries of a search.
//
const DefaultProgress = 1000000

// A Target is the condition awaited by a search: a pulse of the given
// level delivered to Receiver during a wave started at Entry.
//
type Target struct {
	Entry    string
	Receiver string
	Level    pulsesim.Level
}

// DefaultTarget waits for a Low pulse sent to "rx" from presses sent to
// "broadcaster".
//
var DefaultTarget = Target{Entry: "broadcaster", Receiver: "rx", Level: pulsesim.Low}

func (t Target) String() string {
	return t.Entry + " => " + t.Level.String() + " to " + t.Receiver
}

type config struct {
	log      *slog.Logger
	limit    uint64
	progress uint64
	verify   bool
}

// An Option configures a driver.
//
type Option func(c *config)

// WithLogger sets the logger used by the driver. The default is to discard
// all log output.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithLimit sets the maximum number of presses of a search. Searches
// reaching it fail with ErrLimitReached. 0, the default, means no limit.
//
func WithLimit(presses uint64) Option {
	return func(c *config) { c.limit = presses }
}

// WithProgress sets the number of presses between progress log entries.
// 0 disables progress logging.
//
func WithProgress(presses uint64) Option {
	return func(c *config) { c.progress = presses }
}

// VerifyPeriod makes SearchPeriodic check that each input repeats with a
// period equal to its first occurrence.
//
func VerifyPeriod() Option {
	return func(c *config) { c.verify = true }
}

func newConfig(opts []Option) *config {
	c := &config{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress: DefaultProgress,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Accumulate presses the button presses times and returns the sum of the
// pulse counts of all waves. ctx is checked between presses.
//
func Accumulate(ctx context.Context, n *pulsesim.Network, entry string, presses int, opts ...Option) (pulsesim.WaveStats, error) {
	c := newConfig(opts)
	var total pulsesim.WaveStats
	if presses < 0 {
		return total, errors.Errorf("negative press count %d", presses)
	}
	for i := 0; i < presses; i++ {
		if err := ctx.Err(); err != nil {
			return total, errors.Wrapf(err, "accumulate interrupted after %d presses", i)
		}
		s, err := n.Fire(entry)
		if err != nil {
			return total, errors.Wrapf(err, "press %d", i+1)
		}
		total = total.Add(s)
	}
	c.log.Info("pulses counted", "presses", presses, "low", total.Low, "high", total.High, "product", total.Product())
	return total, nil
}

// Search presses the button until t is met and returns the number of
// presses, the last one included.
//
// Without a limit (see WithLimit), Search only returns once t is met, an
// error occurs or ctx is done.
//
func Search(ctx context.Context, n *pulsesim.Network, t Target, opts ...Option) (uint64, error) {
	c := newConfig(opts)
	var presses uint64
	for {
		if err := ctx.Err(); err != nil {
			return presses, errors.Wrapf(err, "search interrupted after %d presses", presses)
		}
		if c.limit > 0 && presses >= c.limit {
			return presses, errors.Wrapf(ErrLimitReached, "%v not met after %d presses", t, presses)
		}
		presses++
		ok, err := n.FireUntil(t.Entry, t.Receiver, t.Level)
		if err != nil {
			return presses, errors.Wrapf(err, "press %d", presses)
		}
		if ok {
			c.log.Info("target met", "target", t.String(), "presses", presses)
			return presses, nil
		}
		if c.progress > 0 && presses%c.progress == 0 {
			c.log.Debug("searching", "target", t.String(), "presses", presses)
		}
	}
}
