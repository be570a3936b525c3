package geometry

import "math/rand"

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAround returns the square of side 2*halfSize centred on center.
func RectAround(center Vector, halfSize float64) Rect {
	return NewRect(center.X-halfSize, center.Y-halfSize, 2*halfSize, 2*halfSize)
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inset shrinks r by margin on every side.
func (r Rect) Inset(margin float64) Rect {
	return NewRect(r.X+margin, r.Y+margin, r.Width-2*margin, r.Height-2*margin)
}

// RandomPoint picks a point with integer coordinates uniformly from r, edges
// included. A degenerate rect yields its top-left corner.
func (r Rect) RandomPoint(rng *rand.Rand) Vector {
	return Vector{
		X: r.X + float64(randomSpan(rng, int(r.Width))),
		Y: r.Y + float64(randomSpan(rng, int(r.Height))),
	}
}

func randomSpan(rng *rand.Rand, span int) int {
	if span <= 0 {
		return 0
	}
	return rng.Intn(span + 1)
}
