// plot-lammps-log plots thermodynamic properties from the log files
// of LAMMPS simulations. Each log must be trimmed to a single thermo
// table: the header line naming the properties followed by rows of
// values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"simplot/figure"
	"simplot/lammps"
)

const (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch
)

var (
	output = flag.String("o", "figures/plot-lammps-log.png",
		"path to save the resulting figure to")
	ylabel = flag.String("y", "", "Y axis label")
	cmap   = flag.String("cmap", "",
		"colormap used to assign colors to each data series")
	confFile = flag.String("conf", figure.ConfFile,
		"path to the style configuration file")

	properties figure.List
	labels     figure.List
	colors     figure.List
)

func init() {
	flag.Var(&properties, "p",
		"property name to extract from the log file (repeatable)")
	flag.Var(&labels, "l",
		"label to associate with each data series (repeatable)")
	flag.Var(&colors, "c",
		"color to associate with each data series (repeatable)")
}

// validate enforces the series layout: either one log with any number
// of properties, or any number of logs with a single property
func validate(inputs, properties []string) error {
	if len(inputs) == 0 {
		return errors.New("at least one log file is required")
	}
	if len(properties) == 0 {
		return errors.New("at least one -p property is required")
	}
	if len(properties) > 1 && len(inputs) != 1 {
		return errors.New("too many input files: must have exactly 1 input file if plotting multiple properties")
	}
	if len(inputs) > 1 && len(properties) != 1 {
		return errors.New("too many properties: must have exactly 1 property if plotting multiple input files")
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("plot-lammps-log: ")
	flag.Parse()
	inputs := flag.Args()
	if err := validate(inputs, properties); err != nil {
		log.Fatal(err)
	}
	nseries := len(inputs) * len(properties)
	renderLegend, seriesLabels, err := figure.Labels(labels, nseries)
	if err != nil {
		log.Fatal(err)
	}
	seriesColors, err := figure.Colors(colors, *cmap, nseries)
	if err != nil {
		log.Fatal(err)
	}
	conf, err := figure.LoadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}

	p := figure.New(conf)
	p.X.Label.Text = "Timestep"
	if *ylabel != "" {
		p.Y.Label.Text = *ylabel
	}
	// combined series index across files and properties
	var i int
	for _, input := range inputs {
		r, err := lammps.Open(input)
		if err != nil {
			log.Fatal(err)
		}
		lg, err := lammps.ParseLog(r, properties)
		r.Close()
		if err != nil {
			log.Fatalf("%s: %v", input, err)
		}
		steps := make([]float64, len(lg.Steps))
		for j, s := range lg.Steps {
			steps[j] = float64(s)
		}
		for _, prop := range properties {
			l, err := plotter.NewLine(figure.XYs(steps, lg.Properties[prop]))
			if err != nil {
				log.Fatal(err)
			}
			l.LineStyle.Width = conf.LineWidth
			l.LineStyle.Color = seriesColors[i]
			p.Add(l)
			if renderLegend {
				p.Legend.Add(seriesLabels[i], l)
			}
			i++
		}
	}
	if err := figure.Save(p, conf, width, height, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *output)
}
