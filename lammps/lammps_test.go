package lammps

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestParseLog(t *testing.T) {
	r, err := Open("testfiles/log.lammps")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ParseLog(r, []string{"Temp", "Press"})
	if err != nil {
		t.Fatal(err)
	}
	want := &Log{
		Steps: []int{0, 1000, 2000, 3000},
		Properties: map[string][]float64{
			"Temp":  {300.0, 305.04961, 302.12478, 298.70934},
			"Press": {1525.3807, 2280.4575, 2450.1744, 2513.0517},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestParseLogGzip(t *testing.T) {
	r, err := Open("testfiles/log.lammps.gz")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := ParseLog(r, []string{"TotEng"})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-6568.6362, -6545.2756, -6540.3861, -6539.2522}
	if !reflect.DeepEqual(got.Properties["TotEng"], want) {
		t.Errorf("got %v, wanted %v\n", got.Properties["TotEng"], want)
	}
}

func TestParseLogMissingStep(t *testing.T) {
	in := "Temp Press\n300.0 1525.4\n"
	if _, err := ParseLog(strings.NewReader(in), []string{"Temp"}); !errors.Is(err, ErrNoStep) {
		t.Errorf("got %v, wanted ErrNoStep\n", err)
	}
}

func TestParseLogMissingProperty(t *testing.T) {
	in := "Step Temp\n0 300.0\n"
	if _, err := ParseLog(strings.NewReader(in), []string{"PotEng"}); err == nil {
		t.Error("expected an error for a missing property")
	}
}

func TestParseLogRaggedRow(t *testing.T) {
	in := "Step Temp\n0 300.0\n1000\n"
	if _, err := ParseLog(strings.NewReader(in), []string{"Temp"}); err == nil {
		t.Error("expected an error for a short row")
	}
}

func TestParseRDF(t *testing.T) {
	r, err := Open("testfiles/rdf.dat")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	distances, averaged, err := ParseRDF(r, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	wantDist := []float64{0.05, 0.15, 0.25, 0.35}
	if !reflect.DeepEqual(distances, wantDist) {
		t.Errorf("distances: got %v, wanted %v\n", distances, wantDist)
	}
	want := map[int][]float64{
		0: {0.0, 0.3, 1.6, 2.4},
		1: {0.0, 0.2, 0.6, 1.4},
	}
	for col, vals := range want {
		if len(averaged[col]) != len(vals) {
			t.Fatalf("column %d: got %v, wanted %v\n", col, averaged[col], vals)
		}
		for i := range vals {
			if math.Abs(averaged[col][i]-vals[i]) > 1e-12 {
				t.Errorf("column %d: got %v, wanted %v\n", col, averaged[col], vals)
				break
			}
		}
	}
}

func TestParseRDFColumnOutOfRange(t *testing.T) {
	r, err := Open("testfiles/rdf.dat")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if _, _, err := ParseRDF(r, []int{7}); err == nil {
		t.Error("expected an error for a column past the row width")
	}
}

func TestParseRDFNoBlocks(t *testing.T) {
	in := "# comment\n# comment\n"
	if _, _, err := ParseRDF(strings.NewReader(in), []int{0}); !errors.Is(err, ErrNoBlocks) {
		t.Errorf("got %v, wanted ErrNoBlocks\n", err)
	}
}
