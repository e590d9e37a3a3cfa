package genconf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Key
	}
	return out
}

func TestPlanOrderIsDeclaredOrder(t *testing.T) {
	p, err := NewPlan(false)
	require.NoError(t, err)
	order, err := p.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"glimmer", "prodigal", "rnammer", "trnascan", "repeatscout", "alienhunter", "predictionresults",
	}, keys(order))
}

func TestPlanWithGeneFunction(t *testing.T) {
	p, err := NewPlan(true)
	require.NoError(t, err)
	order, err := p.Order()
	require.NoError(t, err)
	require.Len(t, order, 8)
	assert.Equal(t, "predictionresults", order[6].Key)
	assert.Equal(t, GeneFunction, order[7])
}

func TestPlanWriteDOT(t *testing.T) {
	p, err := NewPlan(true)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, p.WriteDOT(&buf))
	dot := buf.String()
	assert.Contains(t, dot, "digraph")
	for _, s := range append(append([]Step(nil), geneFinding...), GeneFunction) {
		assert.Contains(t, dot, `"`+s.Key+`"`)
	}
	assert.True(t, strings.Contains(dot, "fillcolor"), "nodes should be coloured")
}

func TestKindColor(t *testing.T) {
	c, err := kindColor(KindGeneFinder)
	require.NoError(t, err)
	assert.Equal(t, "#add8e6", strings.ToLower(c))
}
