// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"sort"
)

// wiring is the checked connection table of a network description.
//
type wiring struct {
	index map[string]int      // node name to position in specs
	preds map[string][]string // sorted distinct senders for every name used as an output, sinks included
}

// wire checks the node descriptions and computes the predecessors of every
// referenced name.
//
func wire(specs []NodeSpec) (*wiring, error) {
	if len(specs) == 0 {
		return nil, configError("", "empty node list")
	}
	wr := &wiring{
		index: make(map[string]int, len(specs)),
		preds: make(map[string][]string),
	}
	for i := range specs {
		s := &specs[i]
		if s.Name == "" {
			return nil, configError("", "node #%d has no name", i)
		}
		if s.Name == Button {
			return nil, configError(s.Name, "name is reserved for the entry pulse sender")
		}
		if !s.Kind.valid() {
			return nil, configError(s.Name, "invalid kind %v", s.Kind)
		}
		if _, ok := wr.index[s.Name]; ok {
			return nil, configError(s.Name, "duplicate node name")
		}
		wr.index[s.Name] = i
	}

	seen := make(map[[2]string]bool)
	for i := range specs {
		s := &specs[i]
		for _, o := range s.Outputs {
			if o == "" {
				return nil, configError(s.Name, "empty output name")
			}
			if o == Button {
				return nil, configError(s.Name, "output %q is reserved", Button)
			}
			k := [2]string{s.Name, o}
			if seen[k] {
				continue
			}
			seen[k] = true
			wr.preds[o] = append(wr.preds[o], s.Name)
		}
	}
	for _, p := range wr.preds {
		sort.Strings(p)
	}
	return wr, nil
}
