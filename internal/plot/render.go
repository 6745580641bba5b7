package plot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Axis labels for the light-curve plot.
const (
	XLabel = "Time from central transit"
	YLabel = "Relative flux"
)

// Options controls the rendered image.
type Options struct {
	Title    string
	WidthIn  float64 // inches
	HeightIn float64 // inches
	Format   string  // png, svg, pdf, ...
}

// DefaultOptions matches a typical interactive figure (6.4 x 4.8 in).
func DefaultOptions() Options {
	return Options{
		WidthIn:  6.4,
		HeightIn: 4.8,
		Format:   "svg",
	}
}

// withDefaults fills unset fields from DefaultOptions. A zero or negative
// size is never drawable, so it counts as unset.
func (o Options) withDefaults() (Options, error) {
	if o.WidthIn < 0 {
		o.WidthIn = 0
	}
	if o.HeightIn < 0 {
		o.HeightIn = 0
	}
	if err := mergo.Merge(&o, DefaultOptions()); err != nil {
		return Options{}, fmt.Errorf("failed to apply plot defaults: %w", err)
	}
	o.Format = strings.ToLower(strings.TrimPrefix(o.Format, "."))
	return o, nil
}

// ContentType returns the MIME type for a render format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "pdf":
		return "application/pdf"
	case "eps":
		return "application/postscript"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/svg+xml"
	}
}

// Build creates the flux vs. time line plot.
func Build(times, flux []float64, title string) (*gonumplot.Plot, error) {
	if len(times) != len(flux) {
		return nil, fmt.Errorf("times and flux differ in length: %d vs %d", len(times), len(flux))
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = flux[i]
	}

	p := gonumplot.New()
	p.Title.Text = title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// Render writes the plot to w in opts.Format.
func Render(w io.Writer, times, flux []float64, opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}
	p, err := Build(times, flux, opts.Title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, opts.Format)
	if err != nil {
		return fmt.Errorf("unsupported plot format %q: %w", opts.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

// Save renders to path. If opts.Format is empty it is taken from the extension.
func Save(path string, times, flux []float64, opts Options) error {
	if opts.Format == "" {
		opts.Format = filepath.Ext(path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Render(f, times, flux, opts); err != nil {
		return err
	}
	return f.Close()
}
