package entity

import (
	"testing"

	"line-defense/internal/component"
	"line-defense/internal/defs"
	"line-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	n       int
	removed bool
}

func TestStoreKeepsInsertionOrderAcrossSweep(t *testing.T) {
	s := NewStore[item]()
	for i := 1; i <= 5; i++ {
		s.Add(types.EntityID(i), &item{n: i})
	}
	s.All()[1].removed = true
	s.All()[3].removed = true

	dropped := s.Sweep(func(it *item) bool { return it.removed })
	require.Len(t, dropped, 2)

	var got []int
	for _, it := range s.All() {
		got = append(got, it.n)
	}
	assert.Equal(t, []int{1, 3, 5}, got)

	_, ok := s.Get(types.EntityID(2))
	assert.False(t, ok)
	it, ok := s.Get(types.EntityID(5))
	require.True(t, ok)
	assert.Equal(t, 5, it.n)
}

func TestStoreAddDuringIterationIsNotVisited(t *testing.T) {
	s := NewStore[item]()
	s.Add(1, &item{n: 1})
	visited := 0
	for range s.All() {
		visited++
		s.Add(2, &item{n: 2})
	}
	assert.Equal(t, 1, visited)
	assert.Equal(t, 2, s.Len())
}

func TestStoreIgnoresDuplicateIDs(t *testing.T) {
	s := NewStore[item]()
	s.Add(1, &item{n: 1})
	s.Add(1, &item{n: 2})
	assert.Equal(t, 1, s.Len())
}

func TestECSSweepReturnsRemovedEnemies(t *testing.T) {
	ecs := NewECS()
	def := defs.EnemyDefinition{Kind: defs.KindWalker, HP: 10, Size: 1}
	a := component.NewEnemy(ecs.NewEntity(), def, 0, 0, 10, 10)
	b := component.NewEnemy(ecs.NewEntity(), def, 0, 0, 10, 10)
	ecs.Enemies.Add(a.ID, a)
	ecs.Enemies.Add(b.ID, b)

	b.TakeDamage(20)
	assert.Len(t, ecs.LiveEnemies(), 1)
	_, ok := ecs.Enemy(b.ID)
	assert.False(t, ok, "dead enemies are not returned")

	b.Removed = true
	gone := ecs.Sweep()
	require.Len(t, gone, 1)
	assert.Equal(t, b.ID, gone[0].ID)
	assert.Equal(t, 1, ecs.Enemies.Len())
}

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	assert.Less(t, a, b)
}
