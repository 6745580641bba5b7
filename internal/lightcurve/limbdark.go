package lightcurve

import (
	"fmt"
	"math"

	"exoplanet-transit/internal/model"

	"gonum.org/v1/gonum/integrate/quad"
)

// intensityFunc returns the relative specific intensity at mu = cos(theta).
type intensityFunc func(mu float64) float64

type limbDarkLaw struct {
	coeffs int
	build  func(u []float64) intensityFunc
}

var limbDarkLaws = map[string]limbDarkLaw{
	model.LimbDarkUniform: {
		coeffs: 0,
		build: func(u []float64) intensityFunc {
			return func(float64) float64 { return 1 }
		},
	},
	model.LimbDarkLinear: {
		coeffs: 1,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 { return 1 - u[0]*(1-mu) }
		},
	},
	model.LimbDarkQuadratic: {
		coeffs: 2,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				return 1 - u[0]*(1-mu) - u[1]*(1-mu)*(1-mu)
			}
		},
	},
	model.LimbDarkSquareRoot: {
		coeffs: 2,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				return 1 - u[0]*(1-mu) - u[1]*(1-math.Sqrt(mu))
			}
		},
	},
	model.LimbDarkLogarithmic: {
		coeffs: 2,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				if mu <= 0 {
					return 1 - u[0]
				}
				return 1 - u[0]*(1-mu) - u[1]*mu*math.Log(mu)
			}
		},
	},
	model.LimbDarkExponential: {
		coeffs: 2,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				return 1 - u[0]*(1-mu) - u[1]/(1-math.Exp(mu))
			}
		},
	},
	model.LimbDarkPower2: {
		coeffs: 2,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				return 1 - u[0]*(1-math.Pow(mu, u[1]))
			}
		},
	},
	model.LimbDarkNonlinear: {
		coeffs: 4,
		build: func(u []float64) intensityFunc {
			return func(mu float64) float64 {
				sq := math.Sqrt(mu)
				return 1 - u[0]*(1-sq) - u[1]*(1-mu) - u[2]*(1-mu*sq) - u[3]*(1-mu*mu)
			}
		},
	},
}

// intensityFor resolves a named law and checks the coefficient count.
func intensityFor(name string, u []float64) (intensityFunc, error) {
	law, ok := limbDarkLaws[name]
	if !ok {
		return nil, fmt.Errorf("unsupported limb darkening model: %q", name)
	}
	if len(u) != law.coeffs {
		return nil, fmt.Errorf("limb darkening model %q needs %d coefficients, got %d", name, law.coeffs, len(u))
	}
	coeffs := append([]float64(nil), u...)
	return law.build(coeffs), nil
}

// SupportedLimbDarkening lists the known law names with their coefficient counts.
func SupportedLimbDarkening() map[string]int {
	out := make(map[string]int, len(limbDarkLaws))
	for name, law := range limbDarkLaws {
		out[name] = law.coeffs
	}
	return out
}

// diskFlux integrates I over the unit stellar disk. Working in mu keeps the
// integrand smooth at the limb: r dr = -mu dmu.
func diskFlux(intensity intensityFunc, nodes int) float64 {
	f := func(mu float64) float64 { return 2 * mu * intensity(mu) }
	return math.Pi * quad.Fixed(f, 0, 1, nodes, quad.Legendre{}, 0)
}
