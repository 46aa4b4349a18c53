// Package raster converts lines and circles into ordered sequences of
// integer pixel coordinates.
//
// Every function in this package is pure: it allocates a fresh Sequence,
// never retains it, and holds no state between calls, so callers may run
// them concurrently.
package raster

// Point is a rasterized pixel location.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sequence is a list of points in the order the algorithm generated them.
// The order matters: consumers reveal points front to back.
type Sequence []Point

// Len returns the number of points.
func (s Sequence) Len() int {
	return len(s)
}

// Prefix returns the first n points, with n clamped to [0, len(s)].
// The result shares storage with s but its capacity is capped, so
// appending to it never overwrites the rest of s.
func (s Sequence) Prefix(n int) Sequence {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n:n]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
