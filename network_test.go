// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim_test

import (
	"testing"

	ps "github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
)

const entry = "broadcaster"

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func fire(t *testing.T, n *ps.Network, presses int) ps.WaveStats {
	t.Helper()
	var total ps.WaveStats
	for i := 0; i < presses; i++ {
		s, err := n.Fire(entry)
		if err != nil {
			trace(t, err)
			t.Fatal(err)
		}
		total = total.Add(s)
	}
	return total
}

func TestFire_twoFlipFlops(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.TwoFlipFlops)
	s := fire(t, n, 1)
	// entry, broadcaster->a, broadcaster->b, c->rx after b's update are
	// Low; a->c, b->c and c->rx after a's update are High.
	if exp := (ps.WaveStats{Low: 4, High: 3}); s != exp {
		t.Fatalf("first wave: expected %v, got %v", exp, s)
	}
	if s.Product() != 12 || s.Total() != 7 {
		t.Fatalf("bad product or total for %v", s)
	}
	for _, name := range []string{"a", "b"} {
		nd, _ := n.Node(name)
		if !nd.On() {
			t.Fatalf("flip-flop %s is off after the first wave", name)
		}
	}
	c, _ := n.Node("c")
	for _, in := range []string{"a", "b"} {
		if l, ok := c.Memory(in); !ok || l != ps.High {
			t.Fatalf("c remembers %v (tracked: %v) from %s, expected high", l, ok, in)
		}
	}
}

func Test_samples(t *testing.T) {
	td := []struct {
		name    string
		desc    string
		presses int
		exp     ps.WaveStats
	}{
		{"TwoFlipFlops", pulsetest.TwoFlipFlops, 1000, ps.WaveStats{Low: 4500, High: 2500}},
		{"Ring/1", pulsetest.Ring, 1, ps.WaveStats{Low: 8, High: 4}},
		{"Ring", pulsetest.Ring, 1000, ps.WaveStats{Low: 8000, High: 4000}},
		{"Counter", pulsetest.Counter, 1000, ps.WaveStats{Low: 4250, High: 2750}},
		{"Counters", pulsetest.Counters, 1000, ps.WaveStats{Low: 20692, High: 31832}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			n := pulsetest.Network(t, d.desc)
			if s := fire(t, n, d.presses); s != d.exp {
				t.Fatalf("expected %v, got %v", d.exp, s)
			}
		})
	}
	if p := (ps.WaveStats{Low: 8000, High: 4000}).Product(); p != 32000000 {
		t.Fatalf("bad product %d", p)
	}
	if p := (ps.WaveStats{Low: 4250, High: 2750}).Product(); p != 11687500 {
		t.Fatalf("bad product %d", p)
	}
}

func TestFire_trace(t *testing.T) {
	td := []struct {
		name string
		desc string
	}{
		{"two_flip_flops", pulsetest.TwoFlipFlops},
		{"counter", pulsetest.Counter},
	}
	g := goldie.New(t)
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			var r pulsetest.Recorder
			n := pulsetest.Network(t, d.desc, ps.WithObserver(&r))
			fire(t, n, 1)
			g.Assert(t, d.name, []byte(r.String()))
		})
	}
}

func TestFire_broadcasters(t *testing.T) {
	n := pulsetest.Network(t, `broadcaster -> x, y
x -> z, w
y -> z
z -> sink
`)
	for i := 0; i < 3; i++ {
		s := fire(t, n, 1)
		if s.High != 0 {
			t.Fatalf("broadcasters sent %d high pulses", s.High)
		}
		// button, 2 from broadcaster, 2 from x, 1 from y, 2 from z.
		if s.Low != 8 {
			t.Fatalf("expected 8 low pulses, got %d", s.Low)
		}
	}
}

// Processing pulses depth first changes the result as soon as a
// conjunction has inputs updated within the same wave.
//
func TestFire_order(t *testing.T) {
	bfs := pulsetest.Network(t, pulsetest.Counter)
	dfs := pulsetest.Network(t, pulsetest.Counter)
	var got ps.WaveStats
	for i := 0; i < 1000; i++ {
		s, err := dfs.FireDepthFirst(entry)
		if err != nil {
			t.Fatal(err)
		}
		got = got.Add(s)
	}
	if exp := (ps.WaveStats{Low: 4000, High: 3000}); got != exp {
		t.Fatalf("depth first: expected %v, got %v", exp, got)
	}
	if s := fire(t, bfs, 1000); s == got {
		t.Fatalf("breadth first and depth first agree on %v", s)
	}

	// the conjunction of TwoFlipFlops only feeds a sink: counts do not
	// depend on the order.
	bfs = pulsetest.Network(t, pulsetest.TwoFlipFlops)
	dfs = pulsetest.Network(t, pulsetest.TwoFlipFlops)
	for i := 0; i < 10; i++ {
		s1 := fire(t, bfs, 1)
		s2, err := dfs.FireDepthFirst(entry)
		if err != nil {
			t.Fatal(err)
		}
		if s1 != s2 {
			t.Fatalf("press %d: %v != %v", i+1, s1, s2)
		}
	}
}

func TestFireUntil(t *testing.T) {
	var r pulsetest.Recorder
	n := pulsetest.Network(t, pulsetest.TwoFlipFlops, ps.WithObserver(&r))
	for i, exp := range []bool{true, false, true, false} {
		r.Reset()
		ok, err := n.FireUntil(entry, "rx", ps.Low)
		if err != nil {
			t.Fatal(err)
		}
		if ok != exp {
			t.Fatalf("press %d: expected %v, got %v", i+1, exp, ok)
		}
		if len(r.Waves) != 1 {
			t.Fatalf("press %d: %d waves reported", i+1, len(r.Waves))
		}
		if ok && r.Waves[0] != (ps.WaveStats{Low: 4, High: 3}) {
			t.Fatalf("press %d: stopped after %v", i+1, r.Waves[0])
		}
	}

	// stops at the first match: the wave is cut short.
	n = pulsetest.Network(t, pulsetest.TwoFlipFlops, ps.WithObserver(&r))
	r.Reset()
	ok, err := n.FireUntil(entry, "c", ps.High)
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
	if exp := (ps.WaveStats{Low: 3, High: 1}); r.Waves[0] != exp {
		t.Fatalf("expected %v, got %v", exp, r.Waves[0])
	}

	if _, err = n.FireMatch(entry, nil); err == nil {
		t.Fatal("nil match function accepted")
	}
}

func TestNew_errors(t *testing.T) {
	b := ps.Broadcaster
	td := []struct {
		name  string
		specs []ps.NodeSpec
	}{
		{"empty", nil},
		{"no name", []ps.NodeSpec{{Kind: b}}},
		{"duplicate", []ps.NodeSpec{{Name: "a", Kind: b}, {Name: "a", Kind: ps.FlipFlop}}},
		{"bad kind", []ps.NodeSpec{{Name: "a", Kind: 42}}},
		{"zero kind", []ps.NodeSpec{{Name: "a"}}},
		{"empty output", []ps.NodeSpec{{Name: "a", Kind: b, Outputs: []string{"b", ""}}}},
		{"reserved name", []ps.NodeSpec{{Name: ps.Button, Kind: b}}},
		{"reserved output", []ps.NodeSpec{{Name: "a", Kind: b, Outputs: []string{ps.Button}}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := ps.New(d.specs)
			if err == nil {
				t.Fatal("no error")
			}
			if !ps.IsConfigError(err) {
				t.Fatalf("not a configuration error: %v", err)
			}
		})
	}
}

func TestFire_badEntry(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.TwoFlipFlops)
	for _, name := range []string{"nope", "rx", "c"} {
		if _, err := n.Fire(name); !ps.IsConfigError(err) {
			t.Fatalf("Fire(%q): expected a configuration error, got %v", name, err)
		}
		if _, err := n.FireUntil(name, "rx", ps.Low); !ps.IsConfigError(err) {
			t.Fatalf("FireUntil(%q): expected a configuration error, got %v", name, err)
		}
	}
	// state untouched
	pulsetest.Compare(t, entry, 4, n, pulsetest.Network(t, pulsetest.TwoFlipFlops))
}

func TestNetwork_structure(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.Counter)
	if n.Len() != 5 {
		t.Fatalf("Len() = %d", n.Len())
	}
	names := n.Names()
	exp := []string{"broadcaster", "a", "inv", "b", "con"}
	for i := range exp {
		if names[i] != exp[i] {
			t.Fatalf("Names() = %v, expected %v", names, exp)
		}
	}
	if s := n.Sinks(); len(s) != 1 || s[0] != "output" {
		t.Fatalf("Sinks() = %v", s)
	}
	if p := n.Predecessors("con"); len(p) != 2 || p[0] != "a" || p[1] != "b" {
		t.Fatalf("Predecessors(con) = %v", p)
	}
	if p := n.Predecessors("output"); len(p) != 1 || p[0] != "con" {
		t.Fatalf("Predecessors(output) = %v", p)
	}
	if p := n.Predecessors("broadcaster"); len(p) != 0 {
		t.Fatalf("Predecessors(broadcaster) = %v", p)
	}
	con, ok := n.Node("con")
	if !ok || con.Kind() != ps.Conjunction {
		t.Fatalf("Node(con) = %v, %v", con, ok)
	}
	if in := con.Inputs(); len(in) != 2 || in[0] != "a" || in[1] != "b" {
		t.Fatalf("con.Inputs() = %v", in)
	}
	if _, ok = n.Node("output"); ok {
		t.Fatal("sink resolved as a node")
	}
}

func TestNetwork_Clone(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.Counters)
	fire(t, n, 17)
	c := n.Clone()
	ref := pulsetest.Network(t, pulsetest.Counters)
	fire(t, ref, 17)

	// advancing the original must not affect the clone.
	fire(t, n, 5)
	pulsetest.Compare(t, entry, 200, c, ref)

	// snapshots are detached too.
	a, _ := c.Node("a1")
	on := a.On()
	fire(t, c, 1)
	if a.On() != on {
		t.Fatal("node snapshot follows the network")
	}
}

func TestNetwork_Reset(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.Counters)
	fire(t, n, 123)
	n.Reset()
	pulsetest.Compare(t, entry, 200, n, pulsetest.Network(t, pulsetest.Counters))
}

// The queue backing array is reused: a network whose state repeats does
// not use more memory over time.
//
func TestFire_queueBounded(t *testing.T) {
	n := pulsetest.Network(t, pulsetest.Ring)
	fire(t, n, 10)
	c := n.QueueCap()
	fire(t, n, 1000)
	if n.QueueCap() != c {
		t.Fatalf("queue capacity grew from %d to %d", c, n.QueueCap())
	}
}

func TestWaveStats(t *testing.T) {
	s := ps.WaveStats{Low: 3, High: 2}.Add(ps.WaveStats{Low: 1, High: 5})
	if s != (ps.WaveStats{Low: 4, High: 7}) {
		t.Fatalf("Add: got %v", s)
	}
	if s.String() != "low=4 high=7" {
		t.Fatalf("String: got %q", s.String())
	}
}
