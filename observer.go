// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// An Observer probes network activity. Pulse is called for every dequeued
// pulse, in processing order, and Wave once at the end of every wave with
// the wave's statistics (including waves cut short by FireUntil).
//
// Observers are called synchronously from Fire and FireUntil.
//
type Observer interface {
	Pulse(p Pulse)
	Wave(entry string, s WaveStats)
}

// An Option configures a Network.
//
type Option func(n *Network)

// WithObserver adds an observer to the network.
//
func WithObserver(o Observer) Option {
	return func(n *Network) {
		n.obs = append(n.obs, o)
	}
}

// WithTrace calls f for every dequeued pulse.
//
func WithTrace(f func(p Pulse)) Option {
	return WithObserver(traceFn(f))
}

type traceFn func(p Pulse)

func (f traceFn) Pulse(p Pulse)           { f(p) }
func (traceFn) Wave(string, WaveStats) {}
