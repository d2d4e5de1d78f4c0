// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsesim simulates pulse networks.
//
// Usage:
//
//	pulsesim count -i network.txt -n 1000
//	pulsesim search -i network.txt --watch rx --level low
//	pulsesim search -i network.txt --periodic --verify
//	pulsesim graph -i network.yaml --format json
//	pulsesim convert -i network.txt > network.yaml
//
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/db47h/pulsesim/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
