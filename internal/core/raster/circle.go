package raster

import (
	"errors"
	"fmt"
)

// ErrNegativeRadius is returned by the circle rasterizers when asked for a
// circle with r < 0.
var ErrNegativeRadius = errors.New("raster: negative radius")

// SymmetricOctantPoints reflects the first-octant offset (x, y) into all
// eight octants around center. The order is fixed:
//
//	(+x,+y) (-x,+y) (+x,-y) (-x,-y) (+y,+x) (-y,+x) (+y,-x) (-y,-x)
//
// Offsets on an axis or a diagonal produce repeated points; they are kept.
func SymmetricOctantPoints(center Point, x, y int) [8]Point {
	xc, yc := center.X, center.Y
	return [8]Point{
		{xc + x, yc + y},
		{xc - x, yc + y},
		{xc + x, yc - y},
		{xc - x, yc - y},
		{xc + y, yc + x},
		{xc - y, yc + x},
		{xc + y, yc - x},
		{xc - y, yc - x},
	}
}

// BresenhamCircle rasterizes the circle of radius r around (xc, yc) with
// Bresenham's integer decision parameter, walking one octant from (0, r)
// and emitting eight symmetric points per step.
//
// Points are not deduplicated. A zero radius yields the center eight times.
func BresenhamCircle(xc, yc, r int) (Sequence, error) {
	if r < 0 {
		return nil, fmt.Errorf("%w %d", ErrNegativeRadius, r)
	}

	center := Pt(xc, yc)
	pts := make(Sequence, 0, circleCapacity(r))
	x, y := 0, r
	d := 3 - 2*r

	pts = appendOctants(pts, center, x, y)
	if r == 0 {
		return pts, nil
	}
	for y >= x {
		// d is measured against the point just plotted, so it is updated
		// before x moves. Moving x first drifts off the circle: at r=80 a
		// point lands 179 from r², past the 2r+1 bound.
		if d > 0 {
			d += 4*(x-y) + 10
			y--
		} else {
			d += 4*x + 6
		}
		x++
		pts = appendOctants(pts, center, x, y)
	}
	return pts, nil
}

// MidpointCircle rasterizes the circle of radius r around (xc, yc) by
// testing the midpoint between candidate pixels against the implicit
// circle equation. It covers the same octant as BresenhamCircle and emits
// eight symmetric points per step.
//
// Points are not deduplicated. A zero radius yields the center eight times.
func MidpointCircle(xc, yc, r int) (Sequence, error) {
	if r < 0 {
		return nil, fmt.Errorf("%w %d", ErrNegativeRadius, r)
	}

	center := Pt(xc, yc)
	pts := make(Sequence, 0, circleCapacity(r))
	x, y := 0, r
	p := 1 - r

	pts = appendOctants(pts, center, x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		pts = appendOctants(pts, center, x, y)
	}
	return pts, nil
}

func appendOctants(pts Sequence, center Point, x, y int) Sequence {
	oct := SymmetricOctantPoints(center, x, y)
	return append(pts, oct[:]...)
}

// circleCapacity estimates the output size: an octant spans about r/√2
// steps, plus the initial and final sets.
func circleCapacity(r int) int {
	return 8 * (r*3/4 + 2)
}
