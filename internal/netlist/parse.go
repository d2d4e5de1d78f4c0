// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist reads network descriptions.
//
// The text format has one node per line:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// A name prefixed with '%' is a flip-flop, with '&' a conjunction. Other
// nodes are broadcasters. Blank lines and text following a '#' are ignored.
//
// The YAML format lists the same information explicitly:
//
//	nodes:
//	  - name: broadcaster
//	    kind: broadcaster
//	    outputs: [a, b, c]
//	  - name: a
//	    kind: flip-flop
//	    outputs: [b]
//
package netlist

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse reads a text network description.
//
func Parse(r io.Reader) ([]pulsesim.NodeSpec, error) {
	var specs []pulsesim.NodeSpec
	s := bufio.NewScanner(r)
	ln := 0
	for s.Scan() {
		ln++
		spec, ok, err := parseLine(s.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", ln)
		}
		if ok {
			specs = append(specs, spec)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read network description")
	}
	return specs, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
//
func ParseString(s string) ([]pulsesim.NodeSpec, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(line string) (spec pulsesim.NodeSpec, ok bool, err error) {
	l := &lexer{in: line}
	i := l.Lex()
	if i.Type == EOF {
		return spec, false, nil
	}
	spec.Kind = pulsesim.Broadcaster
	switch i.Type {
	case Percent:
		spec.Kind = pulsesim.FlipFlop
		i = l.Lex()
	case Ampersand:
		spec.Kind = pulsesim.Conjunction
		i = l.Lex()
	}
	if i.Type != Ident {
		return spec, false, parseError(line, i, "expected node name")
	}
	spec.Name = i.Value
	if i = l.Lex(); i.Type != Arrow {
		return spec, false, parseError(line, i, "expected '->'")
	}
	// the output list may be empty.
	i = l.Lex()
	for i.Type != EOF {
		if i.Type != Ident {
			return spec, false, parseError(line, i, "expected output name")
		}
		spec.Outputs = append(spec.Outputs, i.Value)
		i = l.Lex()
		switch i.Type {
		case EOF:
		case Comma:
			i = l.Lex()
			if i.Type == EOF {
				return spec, false, parseError(line, i, "expected output name after ','")
			}
		default:
			return spec, false, parseError(line, i, "expected ',' or end of line")
		}
	}
	return spec, true, nil
}

func parseError(in string, i Item, msg string) error {
	return errors.Errorf("in %q at pos %d: %s, got %v", in, i.Pos+1, msg, i)
}

type yamlNode struct {
	Name    string        `yaml:"name"`
	Kind    pulsesim.Kind `yaml:"kind"`
	Outputs []string      `yaml:"outputs"`
}

type yamlDoc struct {
	Nodes []yamlNode `yaml:"nodes"`
}

// ParseYAML reads a YAML network description.
//
func ParseYAML(r io.Reader) ([]pulsesim.NodeSpec, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode YAML network description")
	}
	specs := make([]pulsesim.NodeSpec, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.Kind == 0 {
			return nil, errors.Errorf("node #%d (%q): missing kind", i, n.Name)
		}
		specs[i] = pulsesim.NodeSpec{Name: n.Name, Kind: n.Kind, Outputs: n.Outputs}
	}
	return specs, nil
}

// MarshalYAML writes specs in the YAML description format.
//
func MarshalYAML(specs []pulsesim.NodeSpec) ([]byte, error) {
	doc := yamlDoc{Nodes: make([]yamlNode, len(specs))}
	for i, s := range specs {
		doc.Nodes[i] = yamlNode{Name: s.Name, Kind: s.Kind, Outputs: s.Outputs}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, errors.Wrap(err, "encode YAML network description")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode YAML network description")
	}
	return buf.Bytes(), nil
}

// Load reads the network description in the named file. Files with a .yaml
// or .yml extension use the YAML format, others the text format.
//
func Load(name string) ([]pulsesim.NodeSpec, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open network description")
	}
	defer f.Close()

	var specs []pulsesim.NodeSpec
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		specs, err = ParseYAML(f)
	default:
		specs, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return specs, nil
}
