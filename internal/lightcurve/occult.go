package lightcurve

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// uniformOverlap returns the fraction of a uniform unit disk hidden by a
// planet of radius p at centre distance z.
func uniformOverlap(z, p float64) float64 {
	switch {
	case p <= 0 || z >= 1+p:
		return 0
	case z <= p-1:
		return 1
	case z <= 1-p:
		return p * p
	}
	k0 := math.Acos(clamp((p*p+z*z-1)/(2*p*z), -1, 1))
	k1 := math.Acos(clamp((1-p*p+z*z)/(2*z), -1, 1))
	root := 4*z*z - (1+z*z-p*p)*(1+z*z-p*p)
	if root < 0 {
		root = 0
	}
	return (p*p*k0 + k1 - 0.5*math.Sqrt(root)) / math.Pi
}

// coveredAngle is the half-angle of the stellar annulus of radius r that
// lies behind a planet of radius p at distance z.
func coveredAngle(r, z, p float64) float64 {
	switch {
	case r <= p-z:
		return math.Pi
	case r <= math.Abs(z-p) || r >= z+p:
		return 0
	}
	return math.Acos(clamp((r*r+z*z-p*p)/(2*r*z), -1, 1))
}

// blockedFlux integrates I(r)·2r·kappa(r) over the part of the disk hidden
// by the planet. The full-circle core (r < p-z) and the partial annuli are
// integrated separately so each integrand is smooth inside its bounds.
func blockedFlux(z, p float64, intensity intensityFunc, nodes int) float64 {
	if p <= 0 || z >= 1+p {
		return 0
	}
	at := func(r float64) float64 {
		mu := math.Sqrt(math.Max(0, 1-r*r))
		return intensity(mu)
	}
	total := 0.0
	if core := math.Min(p-z, 1); core > 0 {
		total += quad.Fixed(func(r float64) float64 {
			return 2 * math.Pi * r * at(r)
		}, 0, core, nodes, quad.Legendre{}, 0)
	}
	lo := math.Abs(z - p)
	hi := math.Min(z+p, 1)
	if z > 0 && hi > lo {
		total += quad.Fixed(func(r float64) float64 {
			return 2 * r * coveredAngle(r, z, p) * at(r)
		}, lo, hi, nodes, quad.Legendre{}, 0)
	}
	return total
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
