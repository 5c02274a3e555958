package engine

import (
	"testing"

	"github.com/jmoralesv/sombra/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxShadow builds a shadow whose corners coincide with the given bounding box.
func boxShadow(id string, minAz, maxAz, minEl, maxEl float64) model.Shadow {
	return model.Shadow{
		ID:        id,
		DownLeft:  model.AngularPoint{Azimut: minAz, Elevation: minEl},
		UpLeft:    model.AngularPoint{Azimut: minAz, Elevation: maxEl},
		UpRight:   model.AngularPoint{Azimut: maxAz, Elevation: maxEl},
		DownRight: model.AngularPoint{Azimut: maxAz, Elevation: minEl},
	}
}

func ids(shadows []model.Shadow) []string {
	out := make([]string, len(shadows))
	for i, s := range shadows {
		out[i] = s.ID
	}
	return out
}

func TestReduce_EarlyExit(t *testing.T) {
	assert.Empty(t, Reduce(nil))

	// A single shadow is returned unchanged, even inside an edge band.
	banded := []model.Shadow{boxShadow("a", 130, 150, 0, 40)}
	assert.Equal(t, banded, Reduce(banded))
}

func TestReduce_DropsContained(t *testing.T) {
	inner := boxShadow("inner", -10, 10, 5, 30)
	outer := boxShadow("outer", -50, 50, 0, 60)
	result := Reduce([]model.Shadow{inner, outer})
	assert.Equal(t, []string{"outer"}, ids(result))
}

func TestReduce_KeepsPartialOverlap(t *testing.T) {
	a := boxShadow("a", 0, 20, 0, 30)
	b := boxShadow("b", 10, 30, 0, 30)
	result := Reduce([]model.Shadow{a, b})
	assert.Equal(t, []string{"a", "b"}, ids(result))
}

func TestReduce_IdenticalShadowsKeepOne(t *testing.T) {
	a := boxShadow("a", -20, 20, 0, 45)
	b := boxShadow("b", -20, 20, 0, 45)
	result := Reduce([]model.Shadow{a, b})
	require.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID, "the sequential scan drops the first of an identical pair")
}

func TestReduce_DropsEdgeBands(t *testing.T) {
	west := boxShadow("west", 130, 150, 0, 40)
	east := boxShadow("east", -170, -140, 10, 60)
	straddling := boxShadow("straddling", 100, 130, 0, 40)
	south := boxShadow("south", -20, 20, 0, 40)
	result := Reduce([]model.Shadow{west, east, straddling, south})
	assert.Equal(t, []string{"straddling", "south"}, ids(result))
}

func TestReduce_CoverageEquivalence(t *testing.T) {
	// C falls inside the union of A and B but inside neither alone, so only
	// the coverage pass can prove it redundant.
	a := boxShadow("a", 0, 10, 0, 50)
	b := boxShadow("b", 5, 20, 0, 50)
	c := boxShadow("c", 2, 15, 0, 50)
	result := Reduce([]model.Shadow{a, b, c})
	assert.Equal(t, []string{"a", "b"}, ids(result))
}

func TestReduce_Idempotent(t *testing.T) {
	shadows := []model.Shadow{
		boxShadow("a", 0, 10, 0, 50),
		boxShadow("b", 5, 20, 0, 50),
		boxShadow("c", 2, 15, 0, 50),
		boxShadow("d", -60, -30, 0, 25),
		boxShadow("e", 140, 160, 0, 80),
	}
	once := Reduce(shadows)
	twice := Reduce(once)
	assert.Equal(t, once, twice)
}

func TestReduce_PreservesCoverage(t *testing.T) {
	// No shadow lies in an edge band, so the reduced list must cover
	// exactly the same grid cells as the input.
	shadows := []model.Shadow{
		boxShadow("a", -40, 0, 0, 30),
		boxShadow("b", -20, 30, 0, 30),
		boxShadow("c", -40, 30, 0, 30),
		boxShadow("d", 50, 70, 20, 60),
	}
	reduced := Reduce(shadows)
	assert.True(t, coverageEqual(coverage(reduced), coverage(shadows)))
	assert.Less(t, len(reduced), len(shadows))
}
