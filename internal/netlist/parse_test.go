// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# sample network
broadcaster -> a, b

%a -> c   # flip-flop
%b -> c
&c -> rx
sink ->
`

var sampleSpecs = []pulsesim.NodeSpec{
	{Name: "broadcaster", Kind: pulsesim.Broadcaster, Outputs: []string{"a", "b"}},
	{Name: "a", Kind: pulsesim.FlipFlop, Outputs: []string{"c"}},
	{Name: "b", Kind: pulsesim.FlipFlop, Outputs: []string{"c"}},
	{Name: "c", Kind: pulsesim.Conjunction, Outputs: []string{"rx"}},
	{Name: "sink", Kind: pulsesim.Broadcaster},
}

func TestParse(t *testing.T) {
	specs, err := ParseString(sample)
	require.NoError(t, err)
	assert.Equal(t, sampleSpecs, specs)
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		in  string
		msg string
	}{
		{"-> a", "expected node name"},
		{"%", "expected node name"},
		{"a b", "expected '->'"},
		{"a -> b c", "expected ',' or end of line"},
		{"a -> b,", "expected output name after ','"},
		{"a -> , b", "expected output name"},
		{"a -> b\n&c => d", "line 2"},
		{"a -> b;", "expected ',' or end of line"},
	}
	for _, d := range td {
		_, err := ParseString(d.in)
		if assert.Error(t, err, d.in) {
			assert.Contains(t, err.Error(), d.msg, d.in)
		}
	}
}

func TestLexer(t *testing.T) {
	l := &lexer{in: "&con -> a1, out_2 # comment"}
	var types []int
	var values []string
	for i := l.Lex(); i.Type != EOF; i = l.Lex() {
		types = append(types, i.Type)
		values = append(values, i.Value)
	}
	assert.Equal(t, []int{Ampersand, Ident, Arrow, Ident, Comma, Ident}, types)
	assert.Equal(t, []string{"&", "con", "->", "a1", ",", "out_2"}, values)
	assert.Equal(t, "name \"con\"", Item{Type: Ident, Value: "con"}.String())
	assert.Equal(t, "'->'", Item{Type: Arrow}.String())
}

func TestYAML(t *testing.T) {
	b, err := MarshalYAML(sampleSpecs)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kind: flip-flop")

	specs, err := ParseYAML(strings.NewReader(string(b)))
	require.NoError(t, err)
	require.Len(t, specs, len(sampleSpecs))
	for i := range specs {
		assert.Equal(t, sampleSpecs[i].Name, specs[i].Name)
		assert.Equal(t, sampleSpecs[i].Kind, specs[i].Kind)
		assert.ElementsMatch(t, sampleSpecs[i].Outputs, specs[i].Outputs)
	}
}

func TestParseYAML_errors(t *testing.T) {
	td := []string{
		"nodes:\n  - name: a\n    outputs: [b]\n",
		"nodes:\n  - name: a\n    kind: nand\n",
		"nodes:\n  - name: a\n    kind: broadcaster\n    color: red\n",
		"nodes: 12\n",
	}
	for _, in := range td {
		_, err := ParseYAML(strings.NewReader(in))
		assert.Error(t, err, in)
	}
	specs, err := ParseYAML(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, specs)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(txt, []byte(sample), 0o644))
	b, err := MarshalYAML(sampleSpecs)
	require.NoError(t, err)
	yml := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(yml, b, 0o644))

	s1, err := Load(txt)
	require.NoError(t, err)
	s2, err := Load(yml)
	require.NoError(t, err)
	require.Len(t, s2, len(s1))
	for i := range s1 {
		assert.Equal(t, s1[i].Name, s2[i].Name)
		assert.Equal(t, s1[i].Kind, s2[i].Kind)
	}

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("a -> b\n?"), 0o644))
	_, err = Load(bad)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "bad.txt")
		assert.Contains(t, err.Error(), "line 2")
	}
}
