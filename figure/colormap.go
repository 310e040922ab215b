package figure

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultCycle is the ten-color qualitative cycle used when neither
// explicit colors nor a colormap are requested.
var DefaultCycle = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	color.RGBA{0x17, 0xbe, 0xcf, 0xff},
}

var namedColors = map[string]color.Color{
	"k": color.RGBA{0x00, 0x00, 0x00, 0xff},
	"w": color.RGBA{0xff, 0xff, 0xff, 0xff},
	"r": color.RGBA{0xd6, 0x27, 0x28, 0xff},
	"g": color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	"b": color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	"c": color.RGBA{0x17, 0xbe, 0xcf, 0xff},
	"m": color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	"y": color.RGBA{0xbc, 0xbd, 0x22, 0xff},

	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"red":     color.RGBA{0xd6, 0x27, 0x28, 0xff},
	"green":   color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	"blue":    color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	"cyan":    color.RGBA{0x17, 0xbe, 0xcf, 0xff},
	"magenta": color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	"yellow":  color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	"orange":  color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	"purple":  color.RGBA{0x94, 0x67, 0xbd, 0xff},
	"brown":   color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"grey":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
}

// smooth colormaps, sampled to the number of data series
var morelandMaps = map[string]func() palette.ColorMap{
	"kindlmann":           moreland.Kindlmann,
	"extended-kindlmann":  moreland.ExtendedKindlmann,
	"black-body":          moreland.BlackBody,
	"extended-black-body": moreland.ExtendedBlackBody,
}

// ParseColor converts a color given on the command line, either a
// known name or a #rrggbb hex triplet.
func ParseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("cannot parse color %q", s)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// Colormap returns n colors sampled evenly from the named colormap.
// The smooth moreland maps are discretized to n samples; any other
// name is looked up among the ColorBrewer palettes.
func Colormap(name string, n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("colormap %q requested for %d series", name, n)
	}
	// a single sample still needs both colormap endpoints
	samples := n
	if samples < 2 {
		samples = 2
	}
	if newMap, ok := morelandMaps[strings.ToLower(name)]; ok {
		cm := newMap()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm.Palette(samples).Colors()[:n], nil
	}
	if strings.EqualFold(name, "smooth-blue-red") {
		cm := moreland.SmoothBlueRed()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm.Palette(samples).Colors()[:n], nil
	}
	// brewer palettes hold between 3 and 12 colors
	want := n
	if want < 3 {
		want = 3
	}
	types := []brewer.PaletteType{
		brewer.TypeQualitative,
		brewer.TypeDiverging,
		brewer.TypeSequential,
	}
	for _, typ := range types {
		if pal, err := brewer.GetPalette(typ, name, want); err == nil {
			return pal.Colors()[:n], nil
		}
	}
	// a known palette may still be too small for the series count
	for _, typ := range types {
		if _, err := brewer.GetPalette(typ, name, 3); err == nil {
			return nil, fmt.Errorf(
				"colormap %q cannot hold %d data series", name, n,
			)
		}
	}
	return nil, fmt.Errorf("unknown colormap %q", name)
}

// Colors assigns a color to each of n data series following the same
// precedence as the tools' flags: an explicit color list, then a
// named colormap, then the default cycle.
func Colors(colors []string, cmapName string, n int) ([]color.Color, error) {
	if len(colors) > 0 {
		if len(colors) != n {
			return nil, fmt.Errorf(
				"number of colors %d does not match number of data series %d",
				len(colors), n,
			)
		}
		out := make([]color.Color, len(colors))
		for i, s := range colors {
			c, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}
	if cmapName != "" {
		return Colormap(cmapName, n)
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = DefaultCycle[i%len(DefaultCycle)]
	}
	return out, nil
}
