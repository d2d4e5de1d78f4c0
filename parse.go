// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseLevel parses a pulse level. It accepts "low"/"high", "l"/"h" and
// "0"/"1", case insensitive.
//
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l", "0":
		return Low, nil
	case "high", "h", "1":
		return High, nil
	}
	return Low, errors.Errorf("invalid pulse level %q", s)
}

// ParseKind parses a node kind name as returned by Kind.String. It also
// accepts the "%" and "&" prefixes of the text description format and
// "flipflop".
//
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "broadcaster", "broadcast":
		return Broadcaster, nil
	case "flip-flop", "flipflop", "%":
		return FlipFlop, nil
	case "conjunction", "&":
		return Conjunction, nil
	}
	return 0, errors.Errorf("invalid node kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
//
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
//
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, errors.Errorf("invalid node kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
