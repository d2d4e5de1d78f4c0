// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/trigger"
	"github.com/spf13/cobra"
)

type searchResult struct {
	Target  string `json:"target"`
	Method  string `json:"method"`
	Presses uint64 `json:"presses"`
}

func (a *app) searchCommand() *cobra.Command {
	var (
		watch    string
		level    string
		periodic bool
		verify   bool
		limit    uint64
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the first press sending a given level to a receiver",
		Long: `Press the button until the watched receiver gets a pulse of the watched
level and print the number of presses.

With --periodic, the answer is computed as the least common multiple of the
periods of the inputs of the receiver's only predecessor, a conjunction. This
is only correct for networks where these inputs are periodic; add --verify to
check it.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			if applied(cmd, "watch") {
				c.Watch.Receiver = watch
			}
			if applied(cmd, "level") {
				l, err := pulsesim.ParseLevel(level)
				if err != nil {
					return usage(err)
				}
				c.Watch.Level = l
			}
			if applied(cmd, "periodic") {
				c.Search.Periodic = periodic
			}
			if applied(cmd, "verify") {
				c.Search.Verify = verify
			}
			if applied(cmd, "limit") {
				c.Search.Limit = limit
			}
			if err := c.Validate(); err != nil {
				return usage(err)
			}

			n, err := a.network()
			if err != nil {
				return err
			}
			t := trigger.Target{Entry: c.Entry, Receiver: c.Watch.Receiver, Level: c.Watch.Level}
			opts := []trigger.Option{
				trigger.WithLogger(a.log),
				trigger.WithLimit(c.Search.Limit),
				trigger.WithProgress(c.Search.Progress),
			}
			method := "press"
			var p uint64
			if c.Search.Periodic {
				method = "periodic"
				if c.Search.Verify {
					opts = append(opts, trigger.VerifyPeriod())
				}
				p, err = trigger.SearchPeriodic(cmd.Context(), n, t, opts...)
			} else {
				p, err = trigger.Search(cmd.Context(), n, t, opts...)
			}
			if err != nil {
				return err
			}
			return a.output(cmd, searchResult{Target: t.String(), Method: method, Presses: p}, "%d\n", p)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&watch, "watch", "w", "rx", "watched receiver")
	f.StringVarP(&level, "level", "l", "low", "watched pulse level (low|high)")
	f.BoolVar(&periodic, "periodic", false, "compute the result from input periods")
	f.BoolVar(&verify, "verify", false, "with --periodic, check that inputs are periodic")
	f.Uint64Var(&limit, "limit", 0, "maximum number of presses (0 for no limit)")
	return cmd
}
