// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/netlist"
)

// Sample network descriptions.
//
const (
	// TwoFlipFlops sends Low to rx on the first press and every other press
	// after that.
	TwoFlipFlops = `broadcaster -> a, b
%a -> c
%b -> c
&c -> rx
`

	// Ring is a three flip-flop ring closed by an inverter. 1000 presses
	// send 8000 low and 4000 high pulses.
	Ring = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

	// Counter is a two flip-flop loop feeding a conjunction with inputs of
	// different periods. 1000 presses send 4250 low and 2750 high pulses.
	Counter = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

	// Counters feeds rx through a conjunction whose inputs send High every
	// 3, 5, 7 and 11 presses. rx first gets Low on press 1155.
	Counters = `broadcaster -> a1, b1, c1, d1
%a1 -> a2, ka
%a2 -> ka
&ka -> ia, a1
&ia -> hub
%b1 -> b2, kb
%b2 -> b3
%b3 -> kb
&kb -> ib, b1, b2
&ib -> hub
%c1 -> c2, kc
%c2 -> c3, kc
%c3 -> kc
&kc -> ic, c1
&ic -> hub
%d1 -> d2, kd
%d2 -> d3, kd
%d3 -> d4
%d4 -> kd
&kd -> id, d1, d3
&id -> hub
&hub -> rx
`
)

// Specs parses a text network description, failing t on error.
//
func Specs(t testing.TB, desc string) []pulsesim.NodeSpec {
	t.Helper()
	specs, err := netlist.ParseString(desc)
	if err != nil {
		t.Fatal(err)
	}
	return specs
}

// Network builds a network from a text description, failing t on error.
//
func Network(t testing.TB, desc string, opts ...pulsesim.Option) *pulsesim.Network {
	t.Helper()
	n, err := pulsesim.New(Specs(t, desc), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// Recorder is a pulsesim.Observer recording all pulses and wave statistics.
//
type Recorder struct {
	Pulses []pulsesim.Pulse
	Waves  []pulsesim.WaveStats
}

// Pulse implements pulsesim.Observer.
//
func (r *Recorder) Pulse(p pulsesim.Pulse) { r.Pulses = append(r.Pulses, p) }

// Wave implements pulsesim.Observer.
//
func (r *Recorder) Wave(_ string, s pulsesim.WaveStats) { r.Waves = append(r.Waves, s) }

// Reset clears the recorded pulses and waves.
//
func (r *Recorder) Reset() {
	r.Pulses = r.Pulses[:0]
	r.Waves = r.Waves[:0]
}

// String returns the recorded pulses, one per line.
//
func (r *Recorder) String() string {
	var b strings.Builder
	for _, p := range r.Pulses {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Compare presses the button of two networks the given number of times and
// fails t at the first press where their statistics differ.
//
func Compare(t testing.TB, entry string, presses int, n1, n2 *pulsesim.Network) {
	t.Helper()
	for i := 1; i <= presses; i++ {
		s1, err := n1.Fire(entry)
		if err != nil {
			t.Fatalf("press %d: %v", i, err)
		}
		s2, err := n2.Fire(entry)
		if err != nil {
			t.Fatalf("press %d: %v", i, err)
		}
		if s1 != s2 {
			t.Fatalf("press %d: got %v and %v", i, s1, s2)
		}
	}
}
