package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolHandlesSurviveCompaction(t *testing.T) {
	pool := NewPool[Mine]()

	a := pool.Spawn(Mine{Life: 1})
	b := pool.Spawn(Mine{Life: 2})
	c := pool.Spawn(Mine{Life: 3})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Equal(t, 3, pool.Len())

	pool.Get(b).Kill()
	assert.Nil(t, pool.Get(b), "dead entities are not returned")
	assert.Equal(t, 2, pool.Len())

	pool.Compact()
	require.NotNil(t, pool.Get(c))
	assert.Equal(t, 3, pool.Get(c).Life)
	assert.Equal(t, 1, pool.Get(a).Life)
	assert.Nil(t, pool.Get(b))

	var order []int
	pool.Each(func(m *Mine) { order = append(order, m.Life) })
	assert.Equal(t, []int{1, 3}, order)
}

func TestPoolEachSkipsDeadBeforeCompaction(t *testing.T) {
	pool := NewPool[Particle]()
	pool.Spawn(Particle{Kind: ParticleSpark})
	h := pool.Spawn(Particle{Kind: ParticleBlood})
	pool.Get(h).Kill()

	visited := 0
	pool.Each(func(*Particle) { visited++ })
	assert.Equal(t, 1, visited)
	assert.Len(t, pool.Snapshot(), 1)
}

func TestPoolClearKeepsHandlesUnique(t *testing.T) {
	pool := NewPool[Turret]()
	first := pool.Spawn(Turret{})
	pool.Clear()
	assert.Zero(t, pool.Len())

	second := pool.Spawn(Turret{})
	assert.NotEqual(t, first, second)
	assert.Nil(t, pool.Get(first))
}
