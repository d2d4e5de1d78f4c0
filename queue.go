// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// queue is the FIFO of pending pulses. Its backing array is reused from one
// wave to the next, so its size is bounded by the largest wave, not by the
// number of waves.
//
type queue struct {
	buf  []Pulse
	head int
}

func (q *queue) len() int { return len(q.buf) - q.head }

func (q *queue) push(p Pulse) {
	// reclaim the consumed head before growing.
	if len(q.buf) == cap(q.buf) && q.head > 0 && q.head*2 >= len(q.buf) {
		n := copy(q.buf, q.buf[q.head:])
		for i := n; i < len(q.buf); i++ {
			q.buf[i] = Pulse{}
		}
		q.buf = q.buf[:n]
		q.head = 0
	}
	q.buf = append(q.buf, p)
}

// pop removes and returns the oldest pulse. The queue must not be empty.
//
func (q *queue) pop() Pulse {
	p := q.buf[q.head]
	q.buf[q.head] = Pulse{} // release name strings
	q.head++
	if q.head == len(q.buf) {
		q.buf = q.buf[:0]
		q.head = 0
	}
	return p
}

func (q *queue) reset() {
	for i := q.head; i < len(q.buf); i++ {
		q.buf[i] = Pulse{}
	}
	q.buf = q.buf[:0]
	q.head = 0
}
