// Command lightcurve computes a transit light curve for a demo planet and
// shows flux against time.
//
// By default the plot is written to lightcurve.svg and served on
// http://localhost:8090 until the process is interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"exoplanet-transit/internal/config"
	"exoplanet-transit/internal/lightcurve"
	"exoplanet-transit/internal/plot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lightcurve", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Image path; format taken from the extension (default: plot.output)")
	serve := fs.Bool("serve", true, "Serve the plot over HTTP until interrupted")
	port := fs.String("port", envOr("PLOT_PORT", "8090"), "Port for --serve")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *outPath != "" {
		cfg.Plot.Output = *outPath
		cfg.Plot.Format = ""
	}

	params := cfg.Transit.ToModelParams()
	times := cfg.Grid.TimeGrid()

	var opts []lightcurve.Option
	if cfg.Grid.Supersample > 1 {
		opts = append(opts, lightcurve.WithSupersample(cfg.Grid.Supersample, cfg.Grid.ExpTime))
	}
	m, err := lightcurve.NewTransitModel(params, times, opts...)
	if err != nil {
		return err
	}
	var calc lightcurve.Calculator = m
	flux, err := calc.LightCurve(params)
	if err != nil {
		return err
	}

	plotOpts := plot.Options{
		Title:    cfg.Plot.Title,
		WidthIn:  cfg.Plot.WidthIn,
		HeightIn: cfg.Plot.HeightIn,
		Format:   cfg.Plot.Format,
	}
	if cfg.Plot.Output != "" {
		if err := plot.Save(cfg.Plot.Output, times, flux, plotOpts); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %d points to %s\n", len(flux), cfg.Plot.Output)
	}

	if !*serve {
		return nil
	}
	router, err := plot.NewViewerRouter(times, flux, plotOpts)
	if err != nil {
		return err
	}
	return plot.Serve(ctx, ":"+*port, router)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
