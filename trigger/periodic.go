// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package trigger

import (
	"context"
	"math/bits"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SearchPeriodic computes the result of Search without pressing the button
// once per press.
//
// It requires t.Level to be Low and t.Receiver to have a single
// predecessor, the hub, which must be a conjunction. The hub sends Low once
// all its inputs last sent High. For each input, SearchPeriodic presses the
// button on a private copy of n until that input sends High to the hub, and
// returns the least common multiple of these press counts. The copies are
// run in parallel; n itself is not modified.
//
// The result is only correct if every input sends High to the hub exactly
// at multiples of its first press count, and if these pulses line up within
// a wave. This is not verified unless the VerifyPeriod option is given, in
// which case each input must send High to the hub again at twice its first
// press count, and not before. Inputs failing the check cause
// ErrNotPeriodic.
//
// A limit set with WithLimit applies to each input.
//
func SearchPeriodic(ctx context.Context, n *pulsesim.Network, t Target, opts ...Option) (uint64, error) {
	c := newConfig(opts)
	if t.Level != pulsesim.Low {
		return 0, errors.Wrapf(ErrNotPeriodic, "%v: only low targets can be decomposed", t)
	}
	preds := n.Predecessors(t.Receiver)
	if len(preds) != 1 {
		return 0, errors.Wrapf(ErrNotPeriodic, "%v: receiver has %d predecessors, need exactly one", t, len(preds))
	}
	hub, ok := n.Node(preds[0])
	if !ok || hub.Kind() != pulsesim.Conjunction {
		return 0, errors.Wrapf(ErrNotPeriodic, "%v: predecessor %s is not a conjunction", t, preds[0])
	}
	ins := hub.Inputs()
	if len(ins) == 0 {
		return 0, errors.Wrapf(ErrNotPeriodic, "%v: conjunction %s has no input", t, hub.Name())
	}

	periods := make([]uint64, len(ins))
	g, ctx := errgroup.WithContext(ctx)
	for i, in := range ins {
		i, in := i, in
		w :=&edgeWatch{from: in, to: hub.Name()}
		sub := n.Clone(pulsesim.WithObserver(w))
		g.Go(func() error {
			p, err := period(ctx, sub, t.Entry, w, c)
			if err != nil {
				return errors.Wrapf(err, "input %s of %s", in, hub.Name())
			}
			c.log.Debug("input period", "hub", hub.Name(), "input", in, "presses", p)
			periods[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	r, err := LCM(periods...)
	if err != nil {
		return 0, errors.Wrapf(err, "combine periods %v", periods)
	}
	c.log.Info("target met", "target", t.String(), "presses", r, "method", "periodic")
	return r, nil
}

// edgeWatch records High pulses sent along a single edge.
//
type edgeWatch struct {
	from, to string
	hit      bool
}

func (w *edgeWatch) Pulse(p pulsesim.Pulse) {
	if p.From == w.from && p.To == w.to && p.Level == pulsesim.High {
		w.hit = true
	}
}

func (w *edgeWatch) Wave(string, pulsesim.WaveStats) {}

// period presses the button on n, which must be observed by w, until w
// sees a High pulse and returns the press count.
//
func period(ctx context.Context, n *pulsesim.Network, entry string, w *edgeWatch, c *config) (uint64, error) {
	var first, presses uint64
	for {
		if err := ctx.Err(); err != nil {
			return 0, errors.Wrapf(err, "interrupted after %d presses", presses)
		}
		if c.limit > 0 && presses >= c.limit {
			return 0, errors.Wrapf(ErrLimitReached, "no high pulse after %d presses", presses)
		}
		presses++
		w.hit = false
		if _, err := n.Fire(entry); err != nil {
			return 0, errors.Wrapf(err, "press %d", presses)
		}
		if !w.hit {
			continue
		}
		if !c.verify {
			return presses, nil
		}
		if first == 0 {
			first = presses
			continue
		}
		if presses != 2*first {
			return 0, errors.Wrapf(ErrNotPeriodic, "first high pulse at press %d, second at %d", first, presses)
		}
		return first, nil
	}
}

// GCD returns the greatest common divisor of a and b.
//
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of values. It fails if a value is 0
// or if the result overflows an uint64. The LCM of no values is 1.
//
func LCM(values ...uint64) (uint64, error) {
	r := uint64(1)
	for _, v := range values {
		if v == 0 {
			return 0, errors.New("LCM of zero")
		}
		hi, lo := bits.Mul64(r/GCD(r, v), v)
		if hi != 0 {
			return 0, errors.Errorf("LCM overflow: %d * %d", r, v)
		}
		r = lo
	}
	return r, nil
}
