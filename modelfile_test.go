package trellis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const casinoModel = `
name: occasionally-gc-rich
states: [b, y, n, e]
transitions:
  - {from: b, to: y, prob: 0.2}
  - {from: b, to: n, prob: 0.8}
  - {from: y, to: y, prob: 0.7}
  - {from: y, to: n, prob: 0.2}
  - {from: y, to: e, prob: 0.1}
  - {from: n, to: n, prob: 0.8}
  - {from: n, to: y, prob: 0.1}
  - {from: n, to: e, prob: 0.1}
emissions:
  y: {A: 0.1, C: 0.4, G: 0.4, T: 0.1}
  n: {A: 0.25, C: 0.25, G: 0.25, T: 0.25}
`

func TestReadModelFile(t *testing.T) {

	mf, e := ReadModelFile(strings.NewReader(casinoModel))
	require.NoError(t, e)

	assert.Equal(t, "occasionally-gc-rich", mf.Name)
	CompareSliceString(t, []string{"b", "y", "n", "e"}, mf.States, "states")
	assert.Len(t, mf.Transitions, 8)
	CompareFloats(t, 0.4, mf.Emissions["y"]["C"], "emission y C", 1e-12)

	m, e := mf.Model()
	require.NoError(t, e)
	assert.Equal(t, "b", m.Begin())
	assert.Equal(t, "e", m.End())
	require.NoError(t, m.Validate([]string{"A", "T", "G", "C", "G"}))

	p, e := m.TransProb("n", "e")
	require.NoError(t, e)
	CompareFloats(t, 0.1, p, "transition n->e", 1e-12)
}

func TestModelFileRoundTrip(t *testing.T) {

	mf, e := ReadModelFile(strings.NewReader(casinoModel))
	require.NoError(t, e)

	var buf bytes.Buffer
	CheckError(t, mf.Write(&buf))

	mf2, e := ReadModelFile(&buf)
	require.NoError(t, e)
	assert.Equal(t, mf, mf2)
}

func TestModelFileBadModel(t *testing.T) {

	mf, e := ReadModelFile(strings.NewReader("states: [only]"))
	require.NoError(t, e)
	_, e = mf.Model()
	assert.Error(t, e)
}
