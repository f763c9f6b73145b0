package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(testSeed))
}

func TestGenerateCoverLayout(t *testing.T) {
	keepClear := Vec2{DefaultWidth / 2, DefaultHeight / 2}
	cover := GenerateCover(testRNG(), DefaultWidth, DefaultHeight, keepClear)
	require.NotEmpty(t, cover)
	assert.LessOrEqual(t, len(cover), CoverCount+1)

	center := cover[len(cover)-1]
	assert.InDelta(t, DefaultWidth*CenterCoverWidth, center.W, 1e-9)
	assert.InDelta(t, DefaultHeight*CenterCoverHeight, center.H, 1e-9)
	assert.InDelta(t, DefaultWidth/2, center.Center().X, 1e-9)
	assert.InDelta(t, DefaultHeight*CenterCoverY, center.Center().Y, 1e-9)

	for i, r := range cover[:len(cover)-1] {
		assert.GreaterOrEqual(t, r.X, CoverPadding, "block %d", i)
		assert.LessOrEqual(t, r.X+r.W, DefaultWidth-CoverPadding, "block %d", i)
		assert.GreaterOrEqual(t, r.Y, CoverPadding+CoverTopBand, "block %d", i)
		assert.LessOrEqual(t, r.Y+r.H, DefaultHeight-CoverPadding, "block %d", i)
		assert.GreaterOrEqual(t, r.W, CoverMinSide)
		assert.LessOrEqual(t, r.W, CoverMaxSide)

		gap := r.ClosestPoint(keepClear).Sub(keepClear).Len()
		assert.GreaterOrEqual(t, gap, CoverPlayerClear, "block %d crowds the player", i)
	}
}

func TestGenerateCoverTinyArena(t *testing.T) {
	cover := GenerateCover(testRNG(), 200, 200, Vec2{100, 100})
	require.Len(t, cover, 1, "only the central block fits")
}

func TestSpawnPointsAvoidPlayerAndCover(t *testing.T) {
	s := newRunningSim(t)
	for i := 0; i < 200; i++ {
		pos := s.randomSpawnPoint(13)
		assert.GreaterOrEqual(t, pos.DistSq(s.player.Pos), SpawnMinDistance*SpawnMinDistance)
		assert.False(t, insideCover(pos, s.cover))
	}
}
