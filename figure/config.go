package figure

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"
)

// ConfFile is the default name of the style file, looked up in the
// working directory.
const ConfFile = "plotconf.toml"

// RawConf mirrors the style file. Font sizes are in points and line
// widths in points, matching the values the settings were originally
// tuned with.
type RawConf struct {
	DPI        int
	TitleSize  float64
	LabelSize  float64
	TickSize   float64
	LegendSize float64
	LineWidth  float64
}

type Config struct {
	DPI        int
	TitleSize  vg.Length
	LabelSize  vg.Length
	TickSize   vg.Length
	LegendSize vg.Length
	LineWidth  vg.Length
}

func (rc RawConf) ToConfig() (conf Config) {
	conf.DPI = rc.DPI
	conf.TitleSize = vg.Points(rc.TitleSize)
	conf.LabelSize = vg.Points(rc.LabelSize)
	conf.TickSize = vg.Points(rc.TickSize)
	conf.LegendSize = vg.Points(rc.LegendSize)
	conf.LineWidth = vg.Points(rc.LineWidth)
	return
}

// LoadConfig reads the style file. The file is optional: defaults are
// used for every field it does not set and for everything when it is
// missing entirely.
func LoadConfig(filename string) (Config, error) {
	// Defaults
	rc := RawConf{
		DPI:        300,
		TitleSize:  14,
		LabelSize:  12,
		TickSize:   10,
		LegendSize: 10,
		LineWidth:  1.5,
	}
	cont, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return rc.ToConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, err
	}
	return rc.ToConfig(), nil
}
