package ecs_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/plus3/hopper/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSetAddGet(t *testing.T) {
	set := ecs.NewSparseSet[Position]()

	set.Add(3, Position{X: 1, Y: 2})
	set.Add(100, Position{X: 3, Y: 4})

	require.NotNil(t, set.Get(3))
	assert.Equal(t, Position{X: 1, Y: 2}, *set.Get(3))
	assert.Equal(t, Position{X: 3, Y: 4}, *set.Get(100))
	assert.Nil(t, set.Get(4))
	assert.Nil(t, set.Get(100000))
	assert.Equal(t, 2, set.Len())
}

func TestSparseSetAddReplaces(t *testing.T) {
	set := ecs.NewSparseSet[Score]()

	set.Add(7, Score(1))
	set.Add(7, Score(2))

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, Score(2), *set.Get(7))
}

func TestSparseSetMutateInPlace(t *testing.T) {
	set := ecs.NewSparseSet[Position]()
	set.Add(1, Position{X: 1})

	set.Get(1).X = 42

	assert.Equal(t, float32(42), set.Get(1).X)
}

func TestSparseSetRemoveSwapsLast(t *testing.T) {
	set := ecs.NewSparseSet[Name]()
	set.Add(0, Name{Value: "a"})
	set.Add(1, Name{Value: "b"})
	set.Add(2, Name{Value: "c"})

	assert.True(t, set.Remove(0))
	assert.False(t, set.Remove(0))
	assert.False(t, set.Remove(55))

	assert.False(t, set.Has(0))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []ecs.Entity{2, 1}, set.Entities())

	// Values follow their entity, not their old slot.
	assert.Equal(t, "b", set.Get(1).Value)
	assert.Equal(t, "c", set.Get(2).Value)
}

func TestSparseSetRemoveLast(t *testing.T) {
	set := ecs.NewSparseSet[Score]()
	set.Add(5, Score(5))

	assert.True(t, set.Remove(5))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Entities())

	set.Add(5, Score(6))
	assert.Equal(t, Score(6), *set.Get(5))
}

func TestSparseSetEntitiesIsSnapshot(t *testing.T) {
	set := ecs.NewSparseSet[Score]()
	for i := range 5 {
		set.Add(ecs.Entity(i), Score(i))
	}

	snapshot := set.Entities()
	for _, e := range snapshot {
		set.Remove(e)
	}

	assert.Equal(t, []ecs.Entity{0, 1, 2, 3, 4}, snapshot)
	assert.Equal(t, 0, set.Len())
}

func TestSparseSetEach(t *testing.T) {
	set := ecs.NewSparseSet[Score]()
	set.Add(1, Score(10))
	set.Add(2, Score(20))
	set.Add(3, Score(30))

	var total Score
	set.Each(func(e ecs.Entity, s *Score) bool {
		total += *s
		*s = 0
		return true
	})
	assert.Equal(t, Score(60), total)
	assert.Equal(t, Score(0), *set.Get(2))

	visited := 0
	set.Each(func(ecs.Entity, *Score) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestSparseSetClear(t *testing.T) {
	set := ecs.NewSparseSet[Score]()
	set.Add(1, Score(1))
	set.Add(900, Score(2))

	set.Clear()

	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Has(1))
	assert.False(t, set.Has(900))

	set.Add(900, Score(3))
	assert.Equal(t, Score(3), *set.Get(900))
}

// Random add/remove sequences checked against a map model.
func TestSparseSetRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for round := range 20 {
		set := ecs.NewSparseSet[int]()
		model := make(map[ecs.Entity]int)

		for step := range 500 {
			e := ecs.Entity(rng.IntN(64))
			if rng.IntN(3) == 0 {
				assert.Equal(t, hasKey(model, e), set.Remove(e))
				delete(model, e)
			} else {
				value := round*1000 + step
				set.Add(e, value)
				model[e] = value
			}

			require.Equal(t, len(model), set.Len())
		}

		entities := set.Entities()
		assert.Len(t, entities, set.Len())
		for e := range ecs.Entity(64) {
			_, inModel := model[e]
			assert.Equal(t, inModel, set.Has(e))
			assert.Equal(t, inModel, slices.Contains(entities, e))
			if inModel {
				assert.Equal(t, model[e], *set.Get(e))
			}
		}
	}
}

func hasKey(m map[ecs.Entity]int, e ecs.Entity) bool {
	_, ok := m[e]
	return ok
}
