package topsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shyptr/graphql/topsort"
)

func before(order []string, a, b string) bool {
	ai, bi := -1, -1
	for i, n := range order {
		if n == a {
			ai = i
		}
		if n == b {
			bi = i
		}
	}
	return ai >= 0 && bi >= 0 && ai < bi
}

func TestSortOrdersADAG(t *testing.T) {
	// c depends on b, b depends on a: a must precede b must precede c.
	deps := map[string]map[string]bool{
		"b": {"a": true},
		"c": {"b": true},
	}
	result := topsort.Sort(deps, []string{"a", "b", "c"})
	assert.False(t, result.HasCycles())
	assert.Len(t, result.Order, 3)
	assert.True(t, before(result.Order, "a", "b"))
	assert.True(t, before(result.Order, "b", "c"))
}

func TestSortIsStableForIndependentNodes(t *testing.T) {
	deps := map[string]map[string]bool{}
	result := topsort.Sort(deps, []string{"z", "y", "x"})
	assert.Equal(t, []string{"z", "y", "x"}, result.Order)
}

func TestSortDetectsTwoNodeCycle(t *testing.T) {
	deps := map[string]map[string]bool{
		"a": {"b": true},
		"b": {"a": true},
	}
	result := topsort.Sort(deps, []string{"a", "b"})
	assert.True(t, result.HasCycles())
	assert.Empty(t, result.Order)
	assert.Len(t, result.Cycles, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, result.Cycles[0])
}

func TestSortDetectsSelfLoop(t *testing.T) {
	deps := map[string]map[string]bool{
		"a": {"a": true},
	}
	result := topsort.Sort(deps, []string{"a"})
	assert.True(t, result.HasCycles())
	assert.Equal(t, [][]string{{"a"}}, result.Cycles)
}

func TestSortReportsOnlyTheCyclicComponent(t *testing.T) {
	// a and b form a cycle; c depends on d and is acyclic, so only a and
	// b are reported as a cycle.
	deps := map[string]map[string]bool{
		"a": {"b": true},
		"b": {"a": true},
		"c": {"d": true},
	}
	result := topsort.Sort(deps, []string{"a", "b", "c", "d"})
	assert.True(t, result.HasCycles())
	assert.Len(t, result.Cycles, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, result.Cycles[0])
}
