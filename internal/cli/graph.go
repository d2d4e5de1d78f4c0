// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type graphNode struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Outputs []string `json:"outputs"`
	Inputs  []string `json:"inputs"`
}

type graphResult struct {
	Nodes []graphNode `json:"nodes"`
	Sinks []string    `json:"sinks"`
}

func (a *app) graphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the nodes of a network and their connections",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.network()
			if err != nil {
				return err
			}
			r := graphResult{Sinks: n.Sinks()}
			var b strings.Builder
			for _, name := range n.Names() {
				nd, _ := n.Node(name)
				gn := graphNode{
					Name:    name,
					Kind:    nd.Kind().String(),
					Outputs: nd.Outputs(),
					Inputs:  n.Predecessors(name),
				}
				r.Nodes = append(r.Nodes, gn)
				fmt.Fprintf(&b, "%-12s %s -> %s", gn.Kind, gn.Name, strings.Join(gn.Outputs, ", "))
				if len(gn.Inputs) > 0 {
					fmt.Fprintf(&b, " (inputs: %s)", strings.Join(gn.Inputs, ", "))
				}
				b.WriteByte('\n')
			}
			if len(r.Sinks) > 0 {
				fmt.Fprintf(&b, "sinks: %s\n", strings.Join(r.Sinks, ", "))
			}
			return a.output(cmd, r, "%s", b.String())
		},
	}
}
