/*
Package pulsesim simulates networks of pulse processing nodes.

A network is a fixed directed graph of named nodes exchanging Low and High
pulses. Three kinds of nodes are supported:

	Broadcaster  repeats every pulse it receives to all its outputs.
	FlipFlop     ignores High pulses. A Low pulse toggles it: it then sends
	             High if it turned on, Low if it turned off.
	Conjunction  remembers the last level received from each of its inputs
	             and sends Low if they are all High, High otherwise.

Pressing the button (Fire) sends a single Low pulse to an entry node. The
network then processes pulses one at a time, in the order they were sent,
until none is pending. This ordering is part of the observable behavior:
conjunction outputs depend on the interleaving of their inputs' updates.

Nodes keep their state from one wave to the next. Package trigger builds on
Fire to count pulses over many presses or to search for the first press at
which a given receiver gets a given level.

*/
package pulsesim
