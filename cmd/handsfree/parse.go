package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// parseFloats splits a comma separated list of exactly n numbers.
func parseFloats(value string, n int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, value)
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(value string) (r3.Vector, error) {
	f, err := parseFloats(value, 3)
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: f[0], Y: f[1], Z: f[2]}, nil
}

func parsePixel(value string) (u, v float64, err error) {
	f, err := parseFloats(value, 2)
	if err != nil {
		return 0, 0, err
	}
	return f[0], f[1], nil
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
