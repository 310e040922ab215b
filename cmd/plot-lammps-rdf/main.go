// plot-lammps-rdf plots the time-averaged radial distribution
// function exported from a LAMMPS simulation by fix ave/time.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"simplot/figure"
	"simplot/lammps"
)

const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

var (
	output = flag.String("o", "figures/plot-lammps-rdf.png",
		"path to save the resulting figure to")
	cmap = flag.String("cmap", "",
		"colormap used to assign colors to each data column")
	confFile = flag.String("conf", figure.ConfFile,
		"path to the style configuration file")

	columns figure.IntList
	labels  figure.List
	colors  figure.List
)

func init() {
	flag.Var(&columns, "col",
		"index of a data column to plot, not counting the bin-id and distance columns (repeatable)")
	flag.Var(&labels, "l",
		"label to associate with each data column (repeatable)")
	flag.Var(&colors, "c",
		"color to associate with each data column (repeatable)")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("plot-lammps-rdf: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("exactly one rdf file is required")
	}
	input := flag.Arg(0)
	if len(columns) == 0 {
		log.Fatal("at least one -col column is required")
	}
	renderLegend, seriesLabels, err := figure.Labels(labels, len(columns))
	if err != nil {
		log.Fatal(err)
	}
	seriesColors, err := figure.Colors(colors, *cmap, len(columns))
	if err != nil {
		log.Fatal(err)
	}
	conf, err := figure.LoadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}

	r, err := lammps.Open(input)
	if err != nil {
		log.Fatal(err)
	}
	distances, averaged, err := lammps.ParseRDF(r, columns)
	r.Close()
	if err != nil {
		log.Fatalf("%s: %v", input, err)
	}

	p := figure.New(conf)
	p.X.Label.Text = "Distance (Å)"
	p.Y.Label.Text = "g(r)"
	for i, col := range columns {
		l, err := plotter.NewLine(figure.XYs(distances, averaged[col]))
		if err != nil {
			log.Fatal(err)
		}
		l.LineStyle.Width = conf.LineWidth
		l.LineStyle.Color = seriesColors[i]
		p.Add(l)
		if renderLegend {
			p.Legend.Add(seriesLabels[i], l)
		}
	}
	if err := figure.Save(p, conf, width, height, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *output)
}
