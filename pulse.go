// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "strconv"

// Level is the state carried by a pulse.
//
type Level bool

// Pulse levels.
//
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Button is the name of the synthetic sender of the pulse that starts a wave.
// It is never resolved as a node.
//
const Button = "button"

// A Pulse is a single level sent from one node to another.
//
type Pulse struct {
	Level Level
	From  string
	To    string
}

func (p Pulse) String() string {
	return p.From + " -" + p.Level.String() + "-> " + p.To
}

// WaveStats counts the pulses dequeued during a single wave.
//
type WaveStats struct {
	Low  uint64
	High uint64
}

func (s *WaveStats) count(l Level) {
	if l == High {
		s.High++
	} else {
		s.Low++
	}
}

// Add returns the sum of s and o.
//
func (s WaveStats) Add(o WaveStats) WaveStats {
	return WaveStats{Low: s.Low + o.Low, High: s.High + o.High}
}

// Total returns the total number of pulses.
//
func (s WaveStats) Total() uint64 { return s.Low + s.High }

// Product returns Low * High.
//
func (s WaveStats) Product() uint64 { return s.Low * s.High }

func (s WaveStats) String() string {
	return "low=" + strconv.FormatUint(s.Low, 10) + " high=" + strconv.FormatUint(s.High, 10)
}
