// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"sort"

	"github.com/pkg/errors"
)

// Network is a runnable pulse network.
//
// A Network owns its nodes. It is not safe for concurrent use: use Clone to
// run independent simulations in parallel.
//
type Network struct {
	nodes []*Node
	index map[string]int
	preds map[string][]string
	q     queue
	obs   []Observer
}

// New builds a network from the given node descriptions.
//
// Every conjunction tracks one input per distinct node listing it in its
// outputs. Names used as outputs but not described are sinks: pulses sent
// to them are counted and dropped.
//
func New(specs []NodeSpec, opts ...Option) (*Network, error) {
	wr, err := wire(specs)
	if err != nil {
		return nil, err
	}
	n := &Network{
		nodes: make([]*Node, len(specs)),
		index: wr.index,
		preds: wr.preds,
	}
	for i := range specs {
		s := &specs[i]
		var ins []string
		if s.Kind == Conjunction {
			ins = wr.preds[s.Name]
		}
		n.nodes[i] = newNode(s, ins)
	}
	for _, o := range opts {
		o(n)
	}
	return n, nil
}

// Fire sends a Low pulse from Button to the entry node and propagates the
// resulting wave until no pulse is pending. It returns the number of
// pulses processed, the initial one included.
//
// Pulses are processed in the order they are sent: all pulses sent in
// response to a pulse are queued behind the ones already pending.
//
func (n *Network) Fire(entry string) (WaveStats, error) {
	_, s, err := n.run(entry, nil)
	return s, err
}

// FireUntil runs a wave like Fire but stops as soon as a pulse of the given
// level is dequeued for the watched receiver. It returns true if this
// happened during the wave. Pending pulses of an interrupted wave are
// discarded.
//
func (n *Network) FireUntil(entry string, watch string, level Level) (bool, error) {
	return n.FireMatch(entry, func(p Pulse) bool {
		return p.To == watch && p.Level == level
	})
}

// FireMatch runs a wave like FireUntil, stopping at the first dequeued
// pulse for which match returns true.
//
func (n *Network) FireMatch(entry string, match func(p Pulse) bool) (bool, error) {
	if match == nil {
		return false, errors.New("nil match function")
	}
	ok, _, err := n.run(entry, match)
	return ok, err
}

func (n *Network) run(entry string, match func(Pulse) bool) (bool, WaveStats, error) {
	var s WaveStats

	e, ok := n.index[entry]
	if !ok {
		return false, s, configError(entry, "unknown entry node")
	}
	if n.nodes[e].kind == Conjunction {
		return false, s, configError(entry, "a conjunction cannot be used as entry node")
	}

	q := &n.q
	q.reset()
	q.push(Pulse{Level: Low, From: Button, To: entry})
	for q.len() > 0 {
		p := q.pop()
		s.count(p.Level)
		for _, o := range n.obs {
			o.Pulse(p)
		}
		if match != nil && match(p) {
			q.reset()
			n.endWave(entry, s)
			return true, s, nil
		}
		i, ok := n.index[p.To]
		if !ok {
			continue
		}
		nd := n.nodes[i]
		l, send, err := nd.Receive(p.Level, p.From)
		if err != nil {
			q.reset()
			return false, s, errors.Wrapf(err, "deliver %v", p)
		}
		if !send {
			continue
		}
		for _, o := range nd.outs {
			q.push(Pulse{Level: l, From: nd.name, To: o})
		}
	}
	n.endWave(entry, s)
	return false, s, nil
}

func (n *Network) endWave(entry string, s WaveStats) {
	for _, o := range n.obs {
		o.Wave(entry, s)
	}
}

// Clone returns a deep copy of the network in its current state, configured
// with the given options. Observers of n are not carried over.
//
func (n *Network) Clone(opts ...Option) *Network {
	c := &Network{
		nodes: make([]*Node, len(n.nodes)),
		index: n.index,
		preds: n.preds,
	}
	for i, nd := range n.nodes {
		c.nodes[i] = nd.clone()
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Reset restores all nodes to their initial state.
//
func (n *Network) Reset() {
	for _, nd := range n.nodes {
		nd.Reset()
	}
}

// Len returns the number of nodes in the network.
//
func (n *Network) Len() int { return len(n.nodes) }

// Node returns a snapshot of the named node. Changes to the network after
// the call are not reflected in the returned value.
//
func (n *Network) Node(name string) (*Node, bool) {
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.nodes[i].clone(), true
}

// Names returns the node names in description order.
//
func (n *Network) Names() []string {
	names := make([]string, len(n.nodes))
	for i, nd := range n.nodes {
		names[i] = nd.name
	}
	return names
}

// Sinks returns the sorted list of names used as outputs that do not
// resolve to a node.
//
func (n *Network) Sinks() []string {
	var sinks []string
	for name := range n.preds {
		if _, ok := n.index[name]; !ok {
			sinks = append(sinks, name)
		}
	}
	sort.Strings(sinks)
	return sinks
}

// Predecessors returns the sorted list of distinct nodes that have name in
// their outputs. name may be a sink.
//
func (n *Network) Predecessors(name string) []string {
	return append([]string(nil), n.preds[name]...)
}
