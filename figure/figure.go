// Package figure holds the plotting helpers shared by the tools:
// style configuration, per-series color assignment, and figure
// saving.
package figure

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// New returns a plot with the configured fonts and line widths
// applied.
func New(conf Config) *plot.Plot {
	p := plot.New()
	p.Title.TextStyle.Font.Size = conf.TitleSize
	p.X.Label.TextStyle.Font.Size = conf.LabelSize
	p.Y.Label.TextStyle.Font.Size = conf.LabelSize
	p.X.Tick.Label.Font.Size = conf.TickSize
	p.Y.Tick.Label.Font.Size = conf.TickSize
	p.Legend.TextStyle.Font.Size = conf.LegendSize
	p.Legend.Top = true
	return p
}

// XYs pairs two equal-length series for the plotters.
func XYs(xs, ys []float64) plotter.XYs {
	if len(xs) != len(ys) {
		panic("XYs: dimension mismatch")
	}
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Labels returns the per-series labels and whether a legend should be
// drawn. When no labels are given the returned slice still has one
// empty entry per series to keep indexing consistent.
func Labels(labels []string, n int) (render bool, out []string, err error) {
	if len(labels) == 0 {
		return false, make([]string, n), nil
	}
	if len(labels) != n {
		return false, nil, fmt.Errorf(
			"number of labels %d does not match number of data series %d",
			len(labels), n,
		)
	}
	return true, labels, nil
}

var dashPatterns = map[string][]vg.Length{
	"solid":   nil,
	"dotted":  {vg.Points(1), vg.Points(3)},
	"dashed":  {vg.Points(6), vg.Points(3)},
	"dashdot": {vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)},
}

// Dashes maps a linestyle name to its dash pattern.
func Dashes(name string) ([]vg.Length, error) {
	dashes, ok := dashPatterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown linestyle %q", name)
	}
	return dashes, nil
}

// Save renders p to path, creating the output directory if needed.
// PNG output is rasterized at the configured DPI; other formats go
// through plot's own writers, chosen by extension.
func Save(p *plot.Plot, conf Config, w, h vg.Length, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if filepath.Ext(path) != ".png" {
		return p.Save(w, h, path)
	}
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(conf.DPI))
	p.Draw(draw.New(c))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
