// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"sort"
	"strconv"
)

// Kind identifies the behavior of a node.
//
type Kind int

// Node kinds.
//
const (
	Broadcaster Kind = iota + 1
	FlipFlop
	Conjunction
)

var kindNames = [...]string{
	Broadcaster: "broadcaster",
	FlipFlop:    "flip-flop",
	Conjunction: "conjunction",
}

func (k Kind) String() string {
	if k < Broadcaster || k > Conjunction {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) valid() bool { return k >= Broadcaster && k <= Conjunction }

// A NodeSpec describes a node of a network: its name, kind and the ordered
// list of nodes it sends pulses to.
//
type NodeSpec struct {
	Name    string
	Kind    Kind
	Outputs []string
}

// A Node is a node in a Network.
//
// Its outputs are fixed at construction time; only its kind specific state
// (the flip-flop state or the conjunction memory) changes, and only through
// Receive.
//
type Node struct {
	name string
	kind Kind
	outs []string

	// flip-flop state
	on bool

	// conjunction memory. ins is sorted and indexes mem.
	ins  []string
	mem  []Level
	high int // number of High entries in mem
}

func newNode(s *NodeSpec, inputs []string) *Node {
	n := &Node{
		name: s.Name,
		kind: s.Kind,
		outs: append([]string(nil), s.Outputs...),
	}
	if s.Kind == Conjunction {
		n.ins = inputs
		n.mem = make([]Level, len(inputs))
	}
	return n
}

// Name returns the node name.
//
func (n *Node) Name() string { return n.name }

// Kind returns the node kind.
//
func (n *Node) Kind() Kind { return n.kind }

// Outputs returns a copy of the node's output names, in send order.
//
func (n *Node) Outputs() []string { return append([]string(nil), n.outs...) }

// On returns the state of a flip-flop. It always returns false for other
// kinds.
//
func (n *Node) On() bool { return n.on }

// Inputs returns the sorted list of inputs tracked by a conjunction.
//
func (n *Node) Inputs() []string { return append([]string(nil), n.ins...) }

// Memory returns the last level received by a conjunction from the given
// input. ok is false if from is not a tracked input.
//
func (n *Node) Memory(from string) (l Level, ok bool) {
	i := n.input(from)
	if i < 0 {
		return Low, false
	}
	return n.mem[i], true
}

func (n *Node) input(from string) int {
	i := sort.SearchStrings(n.ins, from)
	if i < len(n.ins) && n.ins[i] == from {
		return i
	}
	return -1
}

// Reset restores the node to its initial state.
//
func (n *Node) Reset() {
	n.on = false
	for i := range n.mem {
		n.mem[i] = Low
	}
	n.high = 0
}

func (n *Node) clone() *Node {
	c := *n
	if n.mem != nil {
		c.mem = append([]Level(nil), n.mem...)
	}
	// outs and ins are never mutated and can be shared.
	return &c
}
