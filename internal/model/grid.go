package model

import "gonum.org/v1/gonum/floats"

// Default time grid around central transit.
const (
	DefaultGridStart  = -0.05
	DefaultGridEnd    = 0.05
	DefaultGridPoints = 100
)

// TimeGrid is an ordered sequence of observation times.
type TimeGrid []float64

// Linspace returns n evenly spaced values over [start, end], endpoints included.
func Linspace(start, end float64, n int) TimeGrid {
	switch {
	case n <= 0:
		return TimeGrid{}
	case n == 1:
		return TimeGrid{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// DefaultTimeGrid returns 100 points spanning [-0.05, 0.05].
func DefaultTimeGrid() TimeGrid {
	return Linspace(DefaultGridStart, DefaultGridEnd, DefaultGridPoints)
}
