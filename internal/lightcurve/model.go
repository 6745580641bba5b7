package lightcurve

import (
	"fmt"
	"log"

	"exoplanet-transit/internal/model"
)

const defaultQuadratureNodes = 200

// Calculator computes relative flux for a set of transit parameters.
// Callers depend on this interface so the modelling back end can be swapped.
type Calculator interface {
	LightCurve(params model.TransitParams) ([]float64, error)
}

// Option configures a TransitModel.
type Option func(*TransitModel)

// WithSupersample averages each point over factor sub-exposures spread
// across expTime, for long-cadence data.
func WithSupersample(factor int, expTime float64) Option {
	return func(m *TransitModel) {
		m.supersample = factor
		m.expTime = expTime
	}
}

// WithQuadratureNodes sets the Gauss-Legendre node count used by the
// limb-darkened integrals.
func WithQuadratureNodes(n int) Option {
	return func(m *TransitModel) {
		m.nodes = n
	}
}

// TransitModel evaluates primary-transit light curves at fixed times.
// Separations for the orbit given to NewTransitModel are cached; LightCurve
// recomputes them when called with a different orbit.
type TransitModel struct {
	times       []float64
	orbit       orbit
	ds          []float64
	supersample int
	expTime     float64
	nodes       int
}

// NewTransitModel precomputes planet-star separations for times.
func NewTransitModel(params model.TransitParams, times []float64, opts ...Option) (*TransitModel, error) {
	m := &TransitModel{
		times:       append([]float64(nil), times...),
		supersample: 1,
		nodes:       defaultQuadratureNodes,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.supersample < 1 {
		return nil, fmt.Errorf("supersample factor must be >= 1, got %d", m.supersample)
	}
	if m.supersample > 1 && m.expTime <= 0 {
		return nil, fmt.Errorf("exposure time must be > 0 when supersampling")
	}
	if m.nodes < 2 {
		return nil, fmt.Errorf("quadrature nodes must be >= 2, got %d", m.nodes)
	}
	if err := validateOrbit(params); err != nil {
		return nil, err
	}

	m.orbit = orbitOf(params)
	m.ds = separations(params, m.sampleTimes())
	return m, nil
}

// orbit holds the parameters that determine planet-star separations.
type orbit struct {
	t0, per, a, inc, ecc, w float64
}

func orbitOf(p model.TransitParams) orbit {
	return orbit{t0: p.T0, per: p.Per, a: p.A, inc: p.Inc, ecc: p.Ecc, w: p.W}
}

func validateOrbit(p model.TransitParams) error {
	if p.Per <= 0 {
		return fmt.Errorf("orbital period must be > 0, got %g", p.Per)
	}
	if p.Ecc < 0 || p.Ecc >= 1 {
		return fmt.Errorf("eccentricity must be in [0, 1), got %g", p.Ecc)
	}
	return nil
}

// separationsFor returns the cached separations, or fresh ones when params
// describe another orbit. m.ds is never written after construction.
func (m *TransitModel) separationsFor(params model.TransitParams) ([]float64, error) {
	if orbitOf(params) == m.orbit {
		return m.ds, nil
	}
	if err := validateOrbit(params); err != nil {
		return nil, err
	}
	return separations(params, m.sampleTimes()), nil
}

// sampleTimes expands each time into its sub-exposures.
func (m *TransitModel) sampleTimes() []float64 {
	if m.supersample == 1 {
		return m.times
	}
	out := make([]float64, 0, len(m.times)*m.supersample)
	ss := float64(m.supersample)
	for _, t := range m.times {
		for j := 0; j < m.supersample; j++ {
			out = append(out, t-m.expTime/2+(float64(j)+0.5)*m.expTime/ss)
		}
	}
	return out
}

// Times returns the observation times the model was built for.
func (m *TransitModel) Times() []float64 {
	return append([]float64(nil), m.times...)
}

// LightCurve returns one relative flux value per observation time.
func (m *TransitModel) LightCurve(params model.TransitParams) ([]float64, error) {
	intensity, err := intensityFor(params.LimbDark, params.U)
	if err != nil {
		return nil, err
	}
	ds, err := m.separationsFor(params)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, len(ds))
	if params.LimbDark == model.LimbDarkUniform {
		for i, d := range ds {
			samples[i] = 1 - uniformOverlap(d, params.Rp)
		}
	} else {
		norm := diskFlux(intensity, m.nodes)
		if norm <= 0 {
			return nil, fmt.Errorf("limb darkening coefficients %v give non-positive disk flux", params.U)
		}
		for i, d := range ds {
			samples[i] = 1 - blockedFlux(d, params.Rp, intensity, m.nodes)/norm
		}
	}

	if m.supersample == 1 {
		return samples, nil
	}
	flux := make([]float64, len(m.times))
	for i := range flux {
		sum := 0.0
		for j := 0; j < m.supersample; j++ {
			sum += samples[i*m.supersample+j]
		}
		flux[i] = sum / float64(m.supersample)
	}
	return flux, nil
}

// Compute is the one-shot form: build a model for times and evaluate it.
func Compute(params model.TransitParams, times []float64, opts ...Option) ([]float64, error) {
	m, err := NewTransitModel(params, times, opts...)
	if err != nil {
		return nil, err
	}
	flux, err := m.LightCurve(params)
	if err != nil {
		return nil, err
	}
	log.Printf("[LightCurve] Computed %d points (limb_dark=%s, rp=%g, a=%g, inc=%g)",
		len(flux), params.LimbDark, params.Rp, params.A, params.Inc)
	return flux, nil
}
