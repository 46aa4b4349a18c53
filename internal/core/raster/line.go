package raster

import "math"

// DDA rasterizes the segment from (x1, y1) to (x2, y2) with the digital
// differential analyzer: equal floating-point increments along both axes,
// rounded to the nearest pixel (halves away from zero).
//
// The result holds max(|dx|, |dy|)+1 points and always starts and ends on
// the given endpoints. Coincident endpoints yield the single point (x1, y1).
func DDA(x1, y1, x2, y2 int) Sequence {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return Sequence{Pt(x1, y1)}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	pts := make(Sequence, 0, steps+1)
	for i := 0; i <= steps; i++ {
		// Position i is derived from the origin instead of summing i
		// increments, so the last point lands exactly on (x2, y2).
		x := float64(x1) + float64(i)*xInc
		y := float64(y1) + float64(i)*yInc
		if i == steps {
			x, y = float64(x2), float64(y2)
		}
		pts = append(pts, Pt(int(math.Round(x)), int(math.Round(y))))
	}
	return pts
}

// BresenhamLine rasterizes the segment from (x1, y1) to (x2, y2) using only
// integer arithmetic. A single error term covers all eight octants: each
// iteration takes one step along the dominant axis and, when the error
// crosses zero, one along the other.
//
// The result holds max(|dx|, |dy|)+1 points, starting at (x1, y1) and ending
// at (x2, y2).
func BresenhamLine(x1, y1, x2, y2 int) Sequence {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	pts := make(Sequence, 0, max(dx, dy)+1)
	x, y := x1, y1
	for {
		pts = append(pts, Pt(x, y))
		if x == x2 && y == y2 {
			return pts
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
