// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"github.com/pkg/errors"
)

// A ConfigError reports a malformed or inconsistent network description.
// It is never recoverable: the network must be rebuilt from a fixed
// description.
//
type ConfigError struct {
	Node string // offending node name, may be empty
	Msg  string
}

func (e *ConfigError) Error() string {
	if e.Node == "" {
		return "network configuration: " + e.Msg
	}
	return "network configuration: node " + e.Node + ": " + e.Msg
}

func configError(node, format string, args ...interface{}) error {
	return errors.WithStack(&ConfigError{Node: node, Msg: errors.Errorf(format, args...).Error()})
}

// An InvariantError is returned when a conjunction receives a pulse from a
// node it does not track as an input. A network built with New cannot
// produce it.
//
type InvariantError struct {
	Node string
	From string
}

func (e *InvariantError) Error() string {
	return "conjunction " + e.Node + " received a pulse from untracked input " + e.From
}

// IsConfigError returns true if the cause of err is a *ConfigError.
//
func IsConfigError(err error) bool {
	_, ok := errors.Cause(err).(*ConfigError)
	return ok
}

// IsInvariantError returns true if the cause of err is an *InvariantError.
//
func IsInvariantError(err error) bool {
	_, ok := errors.Cause(err).(*InvariantError)
	return ok
}
