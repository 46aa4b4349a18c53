package raster

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the rasterizers in this package.
type Algorithm int

const (
	AlgorithmDDA Algorithm = iota
	AlgorithmBresenhamLine
	AlgorithmBresenhamCircle
	AlgorithmMidpointCircle
)

// Algorithms lists every rasterizer in display order.
var Algorithms = []Algorithm{
	AlgorithmDDA,
	AlgorithmBresenhamLine,
	AlgorithmBresenhamCircle,
	AlgorithmMidpointCircle,
}

var algorithmNames = map[Algorithm]string{
	AlgorithmDDA:             "dda",
	AlgorithmBresenhamLine:   "bresenham-line",
	AlgorithmBresenhamCircle: "bresenham-circle",
	AlgorithmMidpointCircle:  "midpoint-circle",
}

var algorithmTitles = map[Algorithm]string{
	AlgorithmDDA:             "DDA Algorithm",
	AlgorithmBresenhamLine:   "Bresenham Line",
	AlgorithmBresenhamCircle: "Bresenham Circle",
	AlgorithmMidpointCircle:  "Midpoint Circle",
}

// String returns the human-readable title, e.g. "Bresenham Line".
func (a Algorithm) String() string {
	if t, ok := algorithmTitles[a]; ok {
		return t
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Name returns the short identifier used in config files and flags.
func (a Algorithm) Name() string {
	return algorithmNames[a]
}

// ParseAlgorithm looks up an algorithm by its short name. Matching ignores
// case and accepts underscores in place of dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// MarshalText encodes a as its short name, so config files list
// algorithms as "dda", "midpoint-circle" and so on.
func (a Algorithm) MarshalText() ([]byte, error) {
	name, ok := algorithmNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %d", int(a))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a short name with ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithmList parses a comma-separated list of short names, as
// given on the command line. Empty entries are skipped.
func ParseAlgorithmList(list string) ([]Algorithm, error) {
	var algos []Algorithm
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}
