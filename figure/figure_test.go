package figure

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestLoadConfig(t *testing.T) {
	got, err := LoadConfig("testfiles/plotconf.toml")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		DPI:        150,
		TitleSize:  vg.Points(14),
		LabelSize:  vg.Points(16),
		TickSize:   vg.Points(10),
		LegendSize: vg.Points(10),
		LineWidth:  vg.Points(2),
	}
	if got != want {
		t.Errorf("got %+v, wanted %+v\n", got, want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	got, err := LoadConfig("testfiles/nonexistent.toml")
	if err != nil {
		t.Fatal(err)
	}
	want := RawConf{
		DPI:        300,
		TitleSize:  14,
		LabelSize:  12,
		TickSize:   10,
		LegendSize: 10,
		LineWidth:  1.5,
	}.ToConfig()
	if got != want {
		t.Errorf("got %+v, wanted %+v\n", got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{"k", color.RGBA{0x00, 0x00, 0x00, 0xff}, true},
		{"Orange", color.RGBA{0xff, 0x7f, 0x0e, 0xff}, true},
		{"#00ff7f", color.RGBA{0x00, 0xff, 0x7f, 0xff}, true},
		{"#12345", nil, false},
		{"chartreuse", nil, false},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if test.ok != (err == nil) {
			t.Errorf("%s: unexpected error state %v\n", test.in, err)
			continue
		}
		if test.ok && !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, wanted %v\n", test.in, got, test.want)
		}
	}
}

func TestColorsExplicit(t *testing.T) {
	got, err := Colors([]string{"r", "#010203"}, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []color.Color{
		color.RGBA{0xd6, 0x27, 0x28, 0xff},
		color.RGBA{0x01, 0x02, 0x03, 0xff},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestColorsCountMismatch(t *testing.T) {
	if _, err := Colors([]string{"r"}, "", 2); err == nil {
		t.Error("expected an error for 1 color over 2 series")
	}
}

func TestColorsDefaultCycle(t *testing.T) {
	got, err := Colors(nil, "", 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 12 {
		t.Fatalf("got %d colors, wanted 12\n", len(got))
	}
	// the cycle wraps after ten series
	if !reflect.DeepEqual(got[10], got[0]) {
		t.Errorf("series 10 got %v, wanted %v\n", got[10], got[0])
	}
}

func TestColormap(t *testing.T) {
	for _, name := range []string{"kindlmann", "black-body", "Set1"} {
		got, err := Colormap(name, 4)
		if err != nil {
			t.Fatalf("%s: %v\n", name, err)
		}
		if len(got) != 4 {
			t.Errorf("%s: got %d colors, wanted 4\n", name, len(got))
		}
	}
	if _, err := Colormap("nonexistent", 4); err == nil {
		t.Error("expected an error for an unknown colormap")
	}
}

func TestColormapTooManySeries(t *testing.T) {
	// Set1 tops out at nine colors
	_, err := Colormap("Set1", 20)
	if err == nil {
		t.Fatal("expected an error for more series than the palette holds")
	}
	if !strings.Contains(err.Error(), "cannot hold") {
		t.Errorf("got %q, wanted the series-count message\n", err)
	}
}

func TestLabels(t *testing.T) {
	render, labels, err := Labels(nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if render {
		t.Error("expected no legend without labels")
	}
	if !reflect.DeepEqual(labels, []string{"", "", ""}) {
		t.Errorf("got %v, wanted 3 empty labels\n", labels)
	}
	render, labels, err = Labels([]string{"300 K", "400 K"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !render || !reflect.DeepEqual(labels, []string{"300 K", "400 K"}) {
		t.Errorf("got %v render %v\n", labels, render)
	}
	if _, _, err := Labels([]string{"300 K"}, 2); err == nil {
		t.Error("expected an error for 1 label over 2 series")
	}
}

func TestDashes(t *testing.T) {
	for _, name := range []string{"solid", "dotted", "dashed", "dashdot"} {
		if _, err := Dashes(name); err != nil {
			t.Errorf("%s: %v\n", name, err)
		}
	}
	if _, err := Dashes("wavy"); err == nil {
		t.Error("expected an error for an unknown linestyle")
	}
}

func TestXYs(t *testing.T) {
	pts := XYs([]float64{1, 2}, []float64{3, 4})
	if pts[1].X != 2 || pts[1].Y != 4 {
		t.Errorf("got %v\n", pts)
	}
}
