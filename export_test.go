// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// FireDepthFirst runs a wave like Fire, but processes the pulses sent in
// response to a pulse before any other pending pulse. It is the reference
// for the wrong propagation order.
//
func (n *Network) FireDepthFirst(entry string) (WaveStats, error) {
	var s WaveStats
	stack := []Pulse{{Level: Low, From: Button, To: entry}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.count(p.Level)
		i, ok := n.index[p.To]
		if !ok {
			continue
		}
		nd := n.nodes[i]
		l, send, err := nd.Receive(p.Level, p.From)
		if err != nil {
			return s, err
		}
		if !send {
			continue
		}
		for j := len(nd.outs) - 1; j >= 0; j-- {
			stack = append(stack, Pulse{Level: l, From: nd.name, To: nd.outs[j]})
		}
	}
	return s, nil
}

// QueueCap returns the capacity of the pulse queue.
//
func (n *Network) QueueCap() int { return cap(n.q.buf) }
