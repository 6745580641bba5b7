package lightcurve

import (
	"math"

	"exoplanet-transit/internal/model"
)

const (
	keplerTolerance = 1e-12
	keplerMaxIter   = 50
	// circularEcc is the eccentricity below which the orbit is treated as circular.
	circularEcc = 1e-5
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// eccentricAnomaly converts true anomaly f to eccentric anomaly.
func eccentricAnomaly(f, ecc float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1-ecc)*math.Sin(f/2), math.Sqrt(1+ecc)*math.Cos(f/2))
}

// trueAnomaly converts eccentric anomaly E to true anomaly.
func trueAnomaly(e, ecc float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(e/2), math.Sqrt(1-ecc)*math.Cos(e/2))
}

// solveKepler solves M = E - e sin E for E with Newton iteration.
func solveKepler(m, ecc float64) float64 {
	e := m
	if ecc > 0.8 {
		e = math.Pi
	}
	for i := 0; i < keplerMaxIter; i++ {
		step := (e - ecc*math.Sin(e) - m) / (1 - ecc*math.Cos(e))
		e -= step
		if math.Abs(step) < keplerTolerance {
			break
		}
	}
	return e
}

// timeAtTrueAnomaly returns the time, relative to periastron, at which the
// planet reaches true anomaly f.
func timeAtTrueAnomaly(f float64, p model.TransitParams) float64 {
	e := eccentricAnomaly(f, p.Ecc)
	m := e - p.Ecc*math.Sin(e)
	return p.Per / (2 * math.Pi) * m
}

// TPeriastron returns the time of periastron passage preceding T0.
func TPeriastron(p model.TransitParams) float64 {
	fConj := math.Pi/2 - deg2rad(p.W)
	return p.T0 - timeAtTrueAnomaly(fConj, p)
}

// TConjunction returns the time of inferior conjunction for an orbit whose
// periastron passage happens at tPeri. T0 in p is ignored.
func TConjunction(tPeri float64, p model.TransitParams) float64 {
	fConj := math.Pi/2 - deg2rad(p.W)
	return tPeri + timeAtTrueAnomaly(fConj, p)
}

// TSecondary returns the time of secondary eclipse (superior conjunction)
// following T0.
func TSecondary(p model.TransitParams) float64 {
	fSec := 3*math.Pi/2 - deg2rad(p.W)
	t := TPeriastron(p) + timeAtTrueAnomaly(fSec, p)
	for t < p.T0 {
		t += p.Per
	}
	for t > p.T0+p.Per {
		t -= p.Per
	}
	return t
}

// separations returns the sky-projected planet-star distance, in stellar
// radii, for each time. Points where the planet is behind the star are
// reported as +Inf so they are never occulted.
func separations(p model.TransitParams, times []float64) []float64 {
	out := make([]float64, len(times))
	tp := TPeriastron(p)
	n := 2 * math.Pi / p.Per
	omega := deg2rad(p.W)
	sinInc := math.Sin(deg2rad(p.Inc))

	for i, t := range times {
		m := n * (t - tp)
		var f, r float64
		if p.Ecc < circularEcc {
			f = m
			r = p.A
		} else {
			e := solveKepler(math.Mod(m, 2*math.Pi), p.Ecc)
			f = trueAnomaly(e, p.Ecc)
			r = p.A * (1 - p.Ecc*math.Cos(e))
		}
		s := math.Sin(omega + f)
		if s <= 0 {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = r * math.Sqrt(1-s*s*sinInc*sinInc)
	}
	return out
}
