package game

import (
	"math"
	"math/rand"
)

// Vec2 is a point or direction in world space
type Vec2 struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) LenSq() float64         { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64           { return math.Sqrt(v.LenSq()) }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }
func (v Vec2) Angle() float64         { return math.Atan2(v.Y, v.X) }
func (v Vec2) DistSq(o Vec2) float64  { return v.Sub(o).LenSq() }
func (v Vec2) Towards(o Vec2) float64 { return o.Sub(v).Angle() }

func fromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Normalize returns the unit vector, or the zero vector when v has no length
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ClosestPoint returns the point on the rectangle nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{clamp(p.X, r.X, r.X+r.W), clamp(p.Y, r.Y, r.Y+r.H)}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// overlaps tests two circles with the squared-distance form of the radius sum
func overlaps(a Vec2, ra float64, b Vec2, rb float64) bool {
	sum := ra + rb
	return a.DistSq(b) < sum*sum
}

// resolveCircleRect pushes a circle out of a rectangle along the contact normal.
// It returns the corrected center and whether the circle was penetrating.
func resolveCircleRect(pos Vec2, radius float64, r Rect) (Vec2, bool) {
	closest := r.ClosestPoint(pos)
	diff := pos.Sub(closest)
	distSq := diff.LenSq()
	if distSq > radius*radius {
		return pos, false
	}

	dist := math.Sqrt(distSq)
	normal := Vec2{1, 0}
	if dist > 0 {
		normal = diff.Scale(1 / dist)
	}
	return pos.Add(normal.Scale(radius - dist + ResolveEpsilon)), true
}

// resolveAgainstCover runs circle-rectangle resolution against every cover block
func resolveAgainstCover(pos Vec2, radius float64, cover []Rect) Vec2 {
	for _, r := range cover {
		pos, _ = resolveCircleRect(pos, radius, r)
	}
	return pos
}

// insideCover reports whether p is inside any cover rectangle
func insideCover(p Vec2, cover []Rect) bool {
	for _, r := range cover {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// wrap teleports a position that left [-radius, dim+radius] to the opposite edge
func wrap(pos Vec2, radius, width, height float64) Vec2 {
	if pos.X < -radius {
		pos.X = width + radius
	} else if pos.X > width+radius {
		pos.X = -radius
	}
	if pos.Y < -radius {
		pos.Y = height + radius
	} else if pos.Y > height+radius {
		pos.Y = -radius
	}
	return pos
}
