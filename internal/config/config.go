package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"exoplanet-transit/internal/catalog"
	"exoplanet-transit/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every section is
// optional; omitted values fall back to the built-in demo and downloader
// settings.
type Config struct {
	Transit TransitConfig `yaml:"transit"`
	Grid    GridConfig    `yaml:"grid"`
	Plot    PlotConfig    `yaml:"plot"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type TransitConfig struct {
	T0       float64   `yaml:"t0"`
	Per      float64   `yaml:"per"`
	Rp       float64   `yaml:"rp"`
	A        float64   `yaml:"a"`
	Inc      float64   `yaml:"inc"`
	Ecc      float64   `yaml:"ecc"`
	W        float64   `yaml:"w"`
	U        []float64 `yaml:"u"`
	LimbDark string    `yaml:"limb_dark"`
}

type GridConfig struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Points int     `yaml:"points"`
	// Optional exposure smearing.
	Supersample int     `yaml:"supersample"`
	ExpTime     float64 `yaml:"exp_time"`
}

type PlotConfig struct {
	Title    string  `yaml:"title"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	Format   string  `yaml:"format"`
	Output   string  `yaml:"output"`
}

type CatalogConfig struct {
	URL       string        `yaml:"url"`
	Column    string        `yaml:"column"`
	Value     string        `yaml:"value"`
	Prefix    string        `yaml:"prefix"`
	OutputDir string        `yaml:"output_dir"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	p := model.DefaultTransitParams()
	return &Config{
		Transit: FromModelParams(p),
		Grid: GridConfig{
			Start:       model.DefaultGridStart,
			End:         model.DefaultGridEnd,
			Points:      model.DefaultGridPoints,
			Supersample: 1,
		},
		Plot: PlotConfig{
			WidthIn:  6.4,
			HeightIn: 4.8,
			Format:   "svg",
			Output:   "lightcurve.svg",
		},
		Catalog: CatalogConfig{
			URL:       catalog.DefaultURL,
			Column:    catalog.DiscoveryMethodColumn,
			Value:     catalog.TransitMethod,
			Prefix:    catalog.CanonicalPrefix,
			OutputDir: ".",
			Timeout:   2 * time.Minute,
		},
	}
}

// Load reads path, overlays it on Default() and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOnto reads path, overlays it on base and validates the result.
// Commands use it when their own defaults differ from Default().
func LoadOnto(base *Config, path string) (*Config, error) {
	c, err := loadOver(base, path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config over Default(), but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	return loadOver(Default(), path)
}

func loadOver(base *Config, path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Keys absent from the file keep the base value; explicit zeros stick.
	out := *base
	out.Transit.U = append([]float64(nil), base.Transit.U...)
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var present struct {
		Transit struct {
			LimbDark *string   `yaml:"limb_dark"`
			U        []float64 `yaml:"u"`
		} `yaml:"transit"`
	}
	if err := yaml.Unmarshal(raw, &present); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	// Coefficients belong to the law; a new law brings its own (possibly none).
	if present.Transit.LimbDark != nil && present.Transit.U == nil {
		out.Transit.U = nil
	}
	return &out, nil
}

// Validate checks settings that the pipelines cannot run without. Physical
// plausibility of the transit parameters is left to the light-curve model.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Transit.LimbDark == "" {
		return errors.New("transit.limb_dark is required")
	}
	if c.Grid.Points <= 0 {
		return errors.New("grid.points must be > 0")
	}
	if c.Grid.Start > c.Grid.End {
		return errors.New("grid.start must be <= grid.end")
	}
	if c.Grid.Supersample < 0 {
		return errors.New("grid.supersample must be >= 0")
	}
	if c.Catalog.URL == "" {
		return errors.New("catalog.url is required")
	}
	if c.Catalog.Column == "" {
		return errors.New("catalog.column is required")
	}
	if c.Catalog.Prefix == "" {
		return errors.New("catalog.prefix is required")
	}
	if c.Catalog.Timeout < 0 {
		return errors.New("catalog.timeout must be >= 0")
	}
	return nil
}

// ToModelParams converts the transit section.
func (t TransitConfig) ToModelParams() model.TransitParams {
	return model.TransitParams{
		T0:       t.T0,
		Per:      t.Per,
		Rp:       t.Rp,
		A:        t.A,
		Inc:      t.Inc,
		Ecc:      t.Ecc,
		W:        t.W,
		U:        append([]float64(nil), t.U...),
		LimbDark: t.LimbDark,
	}
}

// FromModelParams is the inverse of ToModelParams.
func FromModelParams(p model.TransitParams) TransitConfig {
	return TransitConfig{
		T0:       p.T0,
		Per:      p.Per,
		Rp:       p.Rp,
		A:        p.A,
		Inc:      p.Inc,
		Ecc:      p.Ecc,
		W:        p.W,
		U:        append([]float64(nil), p.U...),
		LimbDark: p.LimbDark,
	}
}

// TimeGrid builds the observation times.
func (g GridConfig) TimeGrid() model.TimeGrid {
	return model.Linspace(g.Start, g.End, g.Points)
}
