package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"

	"exoplanet-transit/internal/api/models"
	"exoplanet-transit/internal/config"
	"exoplanet-transit/internal/lightcurve"
	"exoplanet-transit/internal/model"
	"exoplanet-transit/internal/plot"

	"github.com/gin-gonic/gin"
)

// CalculatorFactory builds a light-curve calculator for a fixed time grid.
type CalculatorFactory func(params model.TransitParams, times []float64, opts ...lightcurve.Option) (lightcurve.Calculator, error)

// TransitModelFactory is the default factory backed by lightcurve.TransitModel.
func TransitModelFactory(params model.TransitParams, times []float64, opts ...lightcurve.Option) (lightcurve.Calculator, error) {
	return lightcurve.NewTransitModel(params, times, opts...)
}

// LightCurveHandler handles light-curve requests
type LightCurveHandler struct {
	newCalculator CalculatorFactory
}

// NewLightCurveHandler creates a new light-curve handler. A nil factory
// selects TransitModelFactory.
func NewLightCurveHandler(factory CalculatorFactory) *LightCurveHandler {
	if factory == nil {
		factory = TransitModelFactory
	}
	return &LightCurveHandler{newCalculator: factory}
}

// Compute handles POST /api/v1/lightcurve
func (h *LightCurveHandler) Compute(c *gin.Context) {
	req, ok := bindLightCurveRequest(c)
	if !ok {
		return
	}
	params, times, flux, ok := h.run(c, req)
	if !ok {
		return
	}

	minFlux := 1.0
	for _, f := range flux {
		if f < minFlux {
			minFlux = f
		}
	}
	c.JSON(http.StatusOK, models.LightCurveResponse{
		Times:       times,
		Flux:        flux,
		MinFlux:     minFlux,
		Depth:       1 - minFlux,
		TPeriastron: lightcurve.TPeriastron(params),
		TSecondary:  lightcurve.TSecondary(params),
	})
}

// Plot handles POST /api/v1/lightcurve/plot
func (h *LightCurveHandler) Plot(c *gin.Context) {
	req, ok := bindLightCurveRequest(c)
	if !ok {
		return
	}
	_, times, flux, ok := h.run(c, req)
	if !ok {
		return
	}

	opts := plot.Options{
		Title:    req.Plot.Title,
		Format:   req.Plot.Format,
		WidthIn:  req.Plot.WidthIn,
		HeightIn: req.Plot.HeightIn,
	}
	if opts.Format == "" {
		opts.Format = "svg"
	}
	var buf bytes.Buffer
	if err := plot.Render(&buf, times, flux, opts); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("PLOT_ERROR", err.Error()))
		return
	}
	c.Data(http.StatusOK, plot.ContentType(opts.Format), buf.Bytes())
}

// ListLimbDarkening handles GET /api/v1/limb-darkening
func (h *LightCurveHandler) ListLimbDarkening(c *gin.Context) {
	laws := lightcurve.SupportedLimbDarkening()
	out := make([]models.LimbDarkeningInfo, 0, len(laws))
	for name, n := range laws {
		out = append(out, models.LimbDarkeningInfo{Name: name, Coefficients: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	c.JSON(http.StatusOK, gin.H{"laws": out})
}

func bindLightCurveRequest(c *gin.Context) (models.LightCurveRequest, bool) {
	var req models.LightCurveRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return req, false
	}
	return req, true
}

// run resolves defaults, builds the model and evaluates it.
func (h *LightCurveHandler) run(c *gin.Context, req models.LightCurveRequest) (model.TransitParams, []float64, []float64, bool) {
	params, grid, err := resolveRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_CONFIG", err.Error()))
		return model.TransitParams{}, nil, nil, false
	}

	times := grid.TimeGrid()
	var opts []lightcurve.Option
	if grid.Supersample > 1 {
		opts = append(opts, lightcurve.WithSupersample(grid.Supersample, grid.ExpTime))
	}

	calc, err := h.newCalculator(params, times, opts...)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_MODEL", err.Error()))
		return model.TransitParams{}, nil, nil, false
	}
	flux, err := calc.LightCurve(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("LIGHTCURVE_ERROR", err.Error()))
		return model.TransitParams{}, nil, nil, false
	}
	return params, times, flux, true
}

func resolveRequest(req models.LightCurveRequest) (model.TransitParams, config.GridConfig, error) {
	defaults := config.Default()

	transit := defaults.Transit
	p := req.Params
	setIfGiven(&transit.T0, p.T0)
	setIfGiven(&transit.Per, p.Per)
	setIfGiven(&transit.Rp, p.Rp)
	setIfGiven(&transit.A, p.A)
	setIfGiven(&transit.Inc, p.Inc)
	setIfGiven(&transit.Ecc, p.Ecc)
	setIfGiven(&transit.W, p.W)
	// Coefficients belong to the law; a new law brings its own (possibly none).
	if p.LimbDark != "" {
		transit.LimbDark = p.LimbDark
		transit.U = p.U
	} else if p.U != nil {
		transit.U = p.U
	}

	grid := defaults.Grid
	if req.Grid.Points > 0 {
		grid.Points = req.Grid.Points
	}
	setIfGiven(&grid.Start, req.Grid.Start)
	setIfGiven(&grid.End, req.Grid.End)
	if grid.Start > grid.End {
		return model.TransitParams{}, config.GridConfig{}, fmt.Errorf("grid.start must be <= grid.end")
	}
	if req.Grid.Supersample > 0 {
		grid.Supersample = req.Grid.Supersample
		grid.ExpTime = req.Grid.ExpTime
	}
	return transit.ToModelParams(), grid, nil
}

func setIfGiven(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}
