// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "github.com/pkg/errors"

// Receive delivers a pulse of the given level sent by node from. If the node
// responds, it returns the level to send to all its outputs and ok is true.
//
//	Broadcaster: repeats level.
//	FlipFlop:    ignores High. Low toggles the state and sends High if the
//	             flip-flop turned on, Low if it turned off.
//	Conjunction: records level for input from, then sends Low if all
//	             inputs last sent High, High otherwise.
//
// An *InvariantError is returned if a conjunction does not track from as one
// of its inputs; the node state is left untouched.
//
func (n *Node) Receive(level Level, from string) (out Level, ok bool, err error) {
	switch n.kind {
	case Broadcaster:
		return level, true, nil
	case FlipFlop:
		if level == High {
			return Low, false, nil
		}
		n.on = !n.on
		return Level(n.on), true, nil
	case Conjunction:
		i := n.input(from)
		if i < 0 {
			return Low, false, errors.WithStack(&InvariantError{Node: n.name, From: from})
		}
		if prev := n.mem[i]; prev != level {
			n.mem[i] = level
			if level == High {
				n.high++
			} else {
				n.high--
			}
		}
		return Level(n.high != len(n.mem)), true, nil
	}
	panic("unknown node kind " + n.kind.String())
}
