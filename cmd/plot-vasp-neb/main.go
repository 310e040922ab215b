// plot-vasp-neb plots the barrier height from VTST formatted NEB data
// files. Each input becomes a line over the normalized reaction
// coordinate with a scatter overlay marking the image positions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"simplot/figure"
	"simplot/vasp"
)

const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

var (
	output = flag.String("o", "figures/plot-vasp-neb.png",
		"path to save the resulting figure to")
	cmap = flag.String("cmap", "",
		"colormap used to assign colors to each data series")
	confFile = flag.String("conf", figure.ConfFile,
		"path to the style configuration file")

	labels     figure.List
	colors     figure.List
	linestyles figure.List
)

func init() {
	flag.Var(&labels, "l",
		"label to associate with each data series (repeatable)")
	flag.Var(&colors, "c",
		"color to associate with each data series (repeatable)")
	flag.Var(&linestyles, "ls",
		"linestyle for each data series: solid, dotted, dashed, or dashdot (repeatable)")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("plot-vasp-neb: ")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatal("at least one neb.dat file is required")
	}
	if len(linestyles) == 0 {
		for range inputs {
			linestyles = append(linestyles, "solid")
		}
	}
	if len(linestyles) != len(inputs) {
		log.Fatalf("number of linestyles %d does not match number of inputs %d",
			len(linestyles), len(inputs))
	}
	renderLegend, seriesLabels, err := figure.Labels(labels, len(inputs))
	if err != nil {
		log.Fatal(err)
	}
	seriesColors, err := figure.Colors(colors, *cmap, len(inputs))
	if err != nil {
		log.Fatal(err)
	}
	conf, err := figure.LoadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}

	p := figure.New(conf)
	p.X.Label.Text = "Normalized Path Length"
	p.Y.Label.Text = "Migration Energy (eV)"
	for i, input := range inputs {
		f, err := os.Open(input)
		if err != nil {
			log.Fatal(err)
		}
		neb, err := vasp.ParseNEB(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", input, err)
		}
		dashes, err := figure.Dashes(linestyles[i])
		if err != nil {
			log.Fatal(err)
		}
		pts := figure.XYs(neb.Positions, neb.Energies)
		l, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatal(err)
		}
		l.LineStyle.Width = conf.LineWidth
		l.LineStyle.Color = seriesColors[i]
		l.LineStyle.Dashes = dashes
		p.Add(l)
		// mark the explicit image positions
		s, err := plotter.NewScatter(pts)
		if err != nil {
			log.Fatal(err)
		}
		s.GlyphStyle.Color = seriesColors[i]
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		if renderLegend {
			p.Legend.Add(seriesLabels[i], l)
		}
	}
	if err := figure.Save(p, conf, width, height, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *output)
}
