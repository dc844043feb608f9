package core

import "math"

// Layout converts between hex coordinates and continuous world space for
// pointy-top hexes whose centre-to-corner radius is Size. The origin hex is
// centred on (0,0).
type Layout struct {
	Size float64
}

// NewLayout creates a layout for hexes of the given size
func NewLayout(size float64) Layout {
	return Layout{Size: size}
}

// HexToWorld returns the centre of a hex in world space
func (l Layout) HexToWorld(c Coordinate) (float64, float64) {
	x := l.Size * math.Sqrt(3) * (float64(c.Q) + float64(c.R)/2)
	y := l.Size * 1.5 * float64(c.R)
	return x, y
}

// WorldToHex returns the hex containing a world-space point
func (l Layout) WorldToHex(x, y float64) Coordinate {
	if l.Size <= 0 {
		return Coordinate{}
	}
	q := (math.Sqrt(3)/3*x - y/3) / l.Size
	r := (2.0 / 3 * y) / l.Size
	return roundCube(q, r, -q-r)
}

// Corners returns the six corner points of a hex in world space
func (l Layout) Corners(c Coordinate) [6][2]float64 {
	cx, cy := l.HexToWorld(c)
	var out [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * float64(60*i-30)
		out[i] = [2]float64{cx + l.Size*math.Cos(angle), cy + l.Size*math.Sin(angle)}
	}
	return out
}

// roundCube snaps fractional cube coordinates to the nearest hex, fixing the
// axis with the largest rounding error so q+r+s stays zero
func roundCube(fq, fr, fs float64) Coordinate {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Coordinate{Q: int(q), R: int(r)}
}
