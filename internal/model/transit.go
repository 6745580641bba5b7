package model

// TransitParams defines the physical parameters of a transiting planet.
// Units:
// - T0, Per: days (any consistent time unit works)
// - Rp: planet radius in stellar radii
// - A: semi-major axis in stellar radii
// - Inc, W: degrees
// - U: limb-darkening coefficients, count depends on LimbDark
type TransitParams struct {
	T0       float64   // time of inferior conjunction
	Per      float64   // orbital period
	Rp       float64   // planet radius (in units of stellar radii)
	A        float64   // semi-major axis (in units of stellar radii)
	Inc      float64   // orbital inclination (in degrees)
	Ecc      float64   // eccentricity
	W        float64   // argument of periastron (in degrees)
	U        []float64 // limb darkening coefficients
	LimbDark string    // limb darkening model, e.g. "quadratic"
}

// Limb darkening model names.
const (
	LimbDarkUniform     = "uniform"
	LimbDarkLinear      = "linear"
	LimbDarkQuadratic   = "quadratic"
	LimbDarkSquareRoot  = "squareroot"
	LimbDarkLogarithmic = "logarithmic"
	LimbDarkExponential = "exponential"
	LimbDarkPower2      = "power2"
	LimbDarkNonlinear   = "nonlinear"
)

// DefaultTransitParams returns the demo planet: a hot Jupiter on a one day
// circular orbit with quadratic limb darkening.
func DefaultTransitParams() TransitParams {
	return TransitParams{
		T0:       0,
		Per:      1,
		Rp:       0.1,
		A:        15,
		Inc:      87,
		Ecc:      0,
		W:        90,
		U:        []float64{0.1, 0.3},
		LimbDark: LimbDarkQuadratic,
	}
}

// Clone returns a copy that shares no memory with p.
func (p TransitParams) Clone() TransitParams {
	out := p
	if p.U != nil {
		out.U = append([]float64(nil), p.U...)
	}
	return out
}
