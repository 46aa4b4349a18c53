// Package scene precomputes the rasterized sequences shown by the
// visualizer.
package scene

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/rastervis/internal/config"
	"chosenoffset.com/rastervis/internal/core/raster"
)

// RasterCache holds one computed sequence per algorithm. It is built once
// and only read afterwards.
type RasterCache struct {
	DDA             raster.Sequence
	BresenhamLine   raster.Sequence
	BresenhamCircle raster.Sequence
	MidpointCircle  raster.Sequence
}

// Get returns the sequence computed by algo, or nil for an unknown algorithm.
func (c *RasterCache) Get(algo raster.Algorithm) raster.Sequence {
	switch algo {
	case raster.AlgorithmDDA:
		return c.DDA
	case raster.AlgorithmBresenhamLine:
		return c.BresenhamLine
	case raster.AlgorithmBresenhamCircle:
		return c.BresenhamCircle
	case raster.AlgorithmMidpointCircle:
		return c.MidpointCircle
	default:
		return nil
	}
}

// TotalPoints returns the combined length of all sequences.
func (c *RasterCache) TotalPoints() int {
	total := 0
	for _, algo := range raster.Algorithms {
		total += c.Get(algo).Len()
	}
	return total
}

// Build runs the four rasterizers concurrently, each writing only its own
// field of the cache. If any of them fails no cache is returned.
// The rasterizers themselves cannot be interrupted; ctx is only checked
// before they start.
func Build(ctx context.Context, s config.Scene) (*RasterCache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cache := &RasterCache{}
	var g errgroup.Group

	g.Go(func() error {
		cache.DDA = raster.DDA(s.DDA.X1, s.DDA.Y1, s.DDA.X2, s.DDA.Y2)
		return nil
	})
	g.Go(func() error {
		l := s.BresenhamLine
		cache.BresenhamLine = raster.BresenhamLine(l.X1, l.Y1, l.X2, l.Y2)
		return nil
	})
	g.Go(func() error {
		c := s.BresenhamCircle
		pts, err := raster.BresenhamCircle(c.XC, c.YC, c.R)
		if err != nil {
			return fmt.Errorf("bresenham circle: %w", err)
		}
		cache.BresenhamCircle = pts
		return nil
	})
	g.Go(func() error {
		c := s.MidpointCircle
		pts, err := raster.MidpointCircle(c.XC, c.YC, c.R)
		if err != nil {
			return fmt.Errorf("midpoint circle: %w", err)
		}
		cache.MidpointCircle = pts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	counts := make([]string, 0, len(raster.Algorithms))
	for _, algo := range raster.Algorithms {
		counts = append(counts, fmt.Sprintf("%s=%d", algo.Name(), cache.Get(algo).Len()))
	}
	log.Printf("Rasterized scene, %d points: %s", cache.TotalPoints(), strings.Join(counts, " "))
	return cache, nil
}
