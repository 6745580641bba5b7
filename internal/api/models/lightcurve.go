package models

// LightCurveRequest is the body for POST /api/v1/lightcurve and /lightcurve/plot.
// Omitted fields fall back to the demo planet and the default time grid.
type LightCurveRequest struct {
	Params TransitParamsRequest `json:"params"`
	Grid   GridRequest          `json:"grid"`
	Plot   PlotRequest          `json:"plot"`
}

// TransitParamsRequest mirrors model.TransitParams. Nil fields keep the
// demo planet's value; an explicit 0 is used as given.
type TransitParamsRequest struct {
	T0       *float64  `json:"t0"`
	Per      *float64  `json:"per" binding:"omitempty,gt=0"`
	Rp       *float64  `json:"rp" binding:"omitempty,gt=0"`
	A        *float64  `json:"a" binding:"omitempty,gt=0"`
	Inc      *float64  `json:"inc"`
	Ecc      *float64  `json:"ecc" binding:"omitempty,gte=0,lt=1"`
	W        *float64  `json:"w"`
	U        []float64 `json:"u,omitempty"`
	LimbDark string    `json:"limb_dark,omitempty"`
}

// GridRequest defines the observation times.
type GridRequest struct {
	Start       *float64 `json:"start"`
	End         *float64 `json:"end"`
	Points      int      `json:"points" binding:"omitempty,min=1,max=100000"`
	Supersample int      `json:"supersample" binding:"omitempty,min=1,max=100"`
	ExpTime     float64  `json:"exp_time" binding:"omitempty,gt=0"`
}

// PlotRequest controls rendering for the plot endpoint.
type PlotRequest struct {
	Title    string  `json:"title,omitempty"`
	Format   string  `json:"format,omitempty" binding:"omitempty,oneof=svg png pdf"`
	WidthIn  float64 `json:"width_in,omitempty" binding:"omitempty,gt=0,lte=40"`
	HeightIn float64 `json:"height_in,omitempty" binding:"omitempty,gt=0,lte=40"`
}

// LightCurveResponse is the computed curve plus a few derived quantities.
type LightCurveResponse struct {
	Times       []float64 `json:"times"`
	Flux        []float64 `json:"flux"`
	MinFlux     float64   `json:"min_flux"`
	Depth       float64   `json:"depth"`
	TPeriastron float64   `json:"t_periastron"`
	TSecondary  float64   `json:"t_secondary"`
}

// LimbDarkeningInfo describes a supported limb darkening law.
type LimbDarkeningInfo struct {
	Name         string `json:"name"`
	Coefficients int    `json:"coefficients"`
}
