package lightcurve

import (
	"math"
	"testing"

	"exoplanet-transit/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSeparations_CircularImpactParameter(t *testing.T) {
	p := model.DefaultTransitParams()
	ds := separations(p, []float64{p.T0})
	assert.InDelta(t, p.A*math.Cos(deg2rad(p.Inc)), ds[0], 1e-12)
}

func TestSeparations_BehindStarIsNeverOcculted(t *testing.T) {
	p := model.DefaultTransitParams()
	ds := separations(p, []float64{p.T0 + p.Per/2})
	assert.True(t, math.IsInf(ds[0], 1))
}

func TestSolveKepler(t *testing.T) {
	for _, ecc := range []float64{0.1, 0.5, 0.9} {
		for _, m := range []float64{0.1, 1, 3, 5} {
			e := solveKepler(m, ecc)
			assert.InDelta(t, m, e-ecc*math.Sin(e), 1e-10, "ecc=%g m=%g", ecc, m)
		}
	}
}

func TestAnomalyRoundTrip(t *testing.T) {
	for _, f := range []float64{-2.5, -1, 0, 0.7, 2.9} {
		got := trueAnomaly(eccentricAnomaly(f, 0.4), 0.4)
		assert.InDelta(t, f, got, 1e-12)
	}
}

func TestOrbitTimes(t *testing.T) {
	p := model.DefaultTransitParams()
	assert.InDelta(t, p.T0, TPeriastron(p), 1e-12)
	assert.InDelta(t, p.T0+p.Per/2, TSecondary(p), 1e-12)

	ecc := p.Clone()
	ecc.Ecc = 0.3
	ecc.W = 40
	tp := TPeriastron(ecc)
	assert.InDelta(t, ecc.T0, TConjunction(tp, ecc), 1e-12)

	ts := TSecondary(ecc)
	assert.GreaterOrEqual(t, ts, ecc.T0)
	assert.LessOrEqual(t, ts, ecc.T0+ecc.Per)
	assert.NotEqual(t, ecc.T0+ecc.Per/2, ts)
}

func TestEccentricOrbit_TransitCentredOnT0(t *testing.T) {
	p := model.DefaultTransitParams()
	p.Ecc = 0.2
	p.W = 30
	p.Inc = 90

	ds := separations(p, []float64{p.T0 - 0.001, p.T0, p.T0 + 0.001})
	assert.Less(t, ds[1], ds[0])
	assert.Less(t, ds[1], ds[2])
	assert.InDelta(t, 0, ds[1], 1e-9)
}
