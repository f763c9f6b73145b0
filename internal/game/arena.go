package game

import (
	"math/rand"
)

// GenerateCover lays out the cover rectangles for a width x height arena.
// Random blocks are kept inside the padded region below the status band and
// away from keepClear; one wide block always sits below the centre.
func GenerateCover(rng *rand.Rand, width, height float64, keepClear Vec2) []Rect {
	cover := make([]Rect, 0, CoverCount+1)

	minX, maxX := CoverPadding, width-CoverPadding
	minY, maxY := CoverPadding+CoverTopBand, height-CoverPadding

	for attempts := 0; len(cover) < CoverCount && attempts < CoverCount*CoverAttempts; attempts++ {
		w := randRange(rng, CoverMinSide, CoverMaxSide)
		h := randRange(rng, CoverMinSide, CoverMaxSide)
		if maxX-minX <= w || maxY-minY <= h {
			// Arena too small for this block
			continue
		}

		r := Rect{
			X: randRange(rng, minX, maxX-w),
			Y: randRange(rng, minY, maxY-h),
			W: w,
			H: h,
		}
		if r.ClosestPoint(keepClear).DistSq(keepClear) < CoverPlayerClear*CoverPlayerClear {
			continue
		}
		cover = append(cover, r)
	}

	cw := width * CenterCoverWidth
	ch := height * CenterCoverHeight
	cover = append(cover, Rect{
		X: width/2 - cw/2,
		Y: height*CenterCoverY - ch/2,
		W: cw,
		H: ch,
	})

	return cover
}

// coverRegenerates reports whether cover is rebuilt when wave starts
func coverRegenerates(wave int) bool {
	return wave%2 == 1
}

// randomSpawnPoint picks an edge position away from the player and outside cover
func (s *Simulation) randomSpawnPoint(radius float64) Vec2 {
	var pos Vec2
	for attempt := 0; attempt < SpawnAttempts; attempt++ {
		switch s.rng.Intn(4) {
		case 0:
			pos = Vec2{randRange(s.rng, 0, s.width), radius}
		case 1:
			pos = Vec2{randRange(s.rng, 0, s.width), s.height - radius}
		case 2:
			pos = Vec2{radius, randRange(s.rng, 0, s.height)}
		default:
			pos = Vec2{s.width - radius, randRange(s.rng, 0, s.height)}
		}

		if pos.DistSq(s.player.Pos) < SpawnMinDistance*SpawnMinDistance {
			continue
		}
		if insideCover(pos, s.cover) {
			continue
		}
		return pos
	}
	return resolveAgainstCover(pos, radius, s.cover)
}
