// plot-vasp-band plots the band structure from VASPKIT formatted
// data files. It expects BAND.dat and KLABELS in the working
// directory.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"simplot/figure"
	"simplot/vasp"
)

const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch

	bandFile   = "BAND.dat"
	klabelFile = "KLABELS"
)

var (
	output = flag.String("o", "figures/plot-vasp-bandstructure.png",
		"path to save the resulting figure to")
	emin     = flag.Float64("emin", math.NaN(), "minimum energy")
	emax     = flag.Float64("emax", math.NaN(), "maximum energy")
	spin     = flag.Bool("spin", false, "plot the spin-up and spin-down channels")
	elem     = flag.Bool("elemental", false, "plot the element projected band structure")
	orbital  = flag.Bool("orbital", false, "plot the orbital projected band structure")
	confFile = flag.String("conf", figure.ConfFile,
		"path to the style configuration file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("plot-vasp-band: ")
	flag.Parse()
	if *elem {
		log.Fatal("elemental projection is not supported")
	}
	if *orbital {
		log.Fatal("orbital projection is not supported")
	}
	conf, err := figure.LoadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}
	bf, err := os.Open(bandFile)
	if err != nil {
		log.Fatal(err)
	}
	bands, err := vasp.ParseBand(bf)
	bf.Close()
	if err != nil {
		log.Fatalf("%s: %v", bandFile, err)
	}
	kf, err := os.Open(klabelFile)
	if err != nil {
		log.Fatal(err)
	}
	klabels, err := vasp.ParseKLabels(kf)
	kf.Close()
	if err != nil {
		log.Fatalf("%s: %v", klabelFile, err)
	}
	nchan := len(bands.Labels) - 1
	channels := []int{0}
	if *spin {
		if nchan < 2 {
			log.Fatalf("%s has %d energy columns, spin plotting needs 2",
				bandFile, nchan)
		}
		channels = []int{0, 1}
	}

	p := figure.New(conf)
	p.Y.Label.Text = "E - E_Fermi (eV)"
	ticks := make([]plot.Tick, len(klabels))
	for i, kl := range klabels {
		ticks[i] = plot.Tick{Value: kl.Position, Label: kl.Name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	ymin, ymax := yRange(bands, channels)
	var kmin, kmax float64
	for _, band := range bands.Bands {
		kmax = math.Max(kmax, floats.Max(band.K))
	}
	// the spin channels share the color cycle, distinguished by
	// solid and dashed lines
	for c, ch := range channels {
		var dashes []vg.Length
		if c == 1 {
			dashes, _ = figure.Dashes("dashed")
		}
		for b, band := range bands.Bands {
			l, err := plotter.NewLine(figure.XYs(band.K, band.E[ch]))
			if err != nil {
				log.Fatal(err)
			}
			l.LineStyle.Width = conf.LineWidth
			l.LineStyle.Color = figure.DefaultCycle[b%len(figure.DefaultCycle)]
			l.LineStyle.Dashes = dashes
			p.Add(l)
		}
	}
	guides(p, klabels, kmin, kmax, ymin, ymax)
	p.X.Min, p.X.Max = kmin, kmax
	p.Y.Min, p.Y.Max = ymin, ymax
	if err := figure.Save(p, conf, width, height, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// yRange returns the energy window, from the -emin and -emax flags
// when given and from the data otherwise
func yRange(bands *vasp.BandData, channels []int) (ymin, ymax float64) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, band := range bands.Bands {
		for _, ch := range channels {
			ymin = math.Min(ymin, floats.Min(band.E[ch]))
			ymax = math.Max(ymax, floats.Max(band.E[ch]))
		}
	}
	if !math.IsNaN(*emin) {
		ymin = *emin
	}
	if !math.IsNaN(*emax) {
		ymax = *emax
	}
	return ymin, ymax
}

// guides draws the Fermi level and a vertical line at each high
// symmetry point
func guides(p *plot.Plot, klabels []vasp.KLabel,
	kmin, kmax, ymin, ymax float64) {
	black := color.RGBA{A: 0xff}
	dashes, _ := figure.Dashes("dashed")
	fermi, err := plotter.NewLine(figure.XYs(
		[]float64{kmin, kmax}, []float64{0, 0},
	))
	if err != nil {
		log.Fatal(err)
	}
	fermi.LineStyle.Width = vg.Points(1)
	fermi.LineStyle.Color = black
	fermi.LineStyle.Dashes = dashes
	p.Add(fermi)
	for _, kl := range klabels {
		v, err := plotter.NewLine(figure.XYs(
			[]float64{kl.Position, kl.Position}, []float64{ymin, ymax},
		))
		if err != nil {
			log.Fatal(err)
		}
		v.LineStyle.Width = vg.Points(1)
		v.LineStyle.Color = black
		p.Add(v)
	}
}
