// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/db47h/pulsesim/trigger"
	"github.com/spf13/cobra"
)

type countResult struct {
	Entry   string `json:"entry"`
	Presses int    `json:"presses"`
	Low     uint64 `json:"low"`
	High    uint64 `json:"high"`
	Product uint64 `json:"product"`
}

func (a *app) countCommand() *cobra.Command {
	var presses int
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the pulses sent over a number of button presses",
		Long: `Press the button a number of times and print the number of low and
high pulses sent, and their product.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if applied(cmd, "presses") {
				a.cfg.Presses = presses
			}
			if err := a.cfg.Validate(); err != nil {
				return usage(err)
			}
			n, err := a.network()
			if err != nil {
				return err
			}
			s, err := trigger.Accumulate(cmd.Context(), n, a.cfg.Entry, a.cfg.Presses, trigger.WithLogger(a.log))
			if err != nil {
				return err
			}
			return a.output(cmd, countResult{
				Entry:   a.cfg.Entry,
				Presses: a.cfg.Presses,
				Low:     s.Low,
				High:    s.High,
				Product: s.Product(),
			}, "low=%d high=%d product=%d\n", s.Low, s.High, s.Product())
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1000, "number of button presses")
	return cmd
}
