// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/spf13/cobra"
)

func (a *app) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Print a network description in the YAML format",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := a.specs()
			if err != nil {
				return err
			}
			// reject inconsistent descriptions.
			if _, err = pulsesim.New(specs); err != nil {
				return err
			}
			b, err := netlist.MarshalYAML(specs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
