package vasp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoBandMeta = errors.New("band file is missing the NKPTS & NBANDS line")
)

// BandData holds every band from a VASPKIT BAND.dat export.
type BandData struct {
	// column labels from the header line, K-path first; two energy
	// labels mean a spin-polarized export
	Labels []string
	Bands  []Band
}

// Band is a single band: one energy series per non-K column.
type Band struct {
	K []float64
	E [][]float64
}

// ParseBand reads a BAND.dat file: a header line of column labels, a
// "# NKPTS & NBANDS: n m" metadata line, then NBANDS blocks of NKPTS
// rows each. Band-index comment lines and blank lines between blocks
// are skipped.
func ParseBand(r io.Reader) (*BandData, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ErrNoBandMeta
	}
	labels := strings.Fields(strings.TrimPrefix(lines[0], "#"))
	if len(labels) < 2 {
		return nil, fmt.Errorf(
			"band header %q names %d columns, need at least K-path and one energy",
			lines[0], len(labels),
		)
	}
	meta := lines[1]
	if !strings.Contains(meta, "NKPTS") {
		return nil, ErrNoBandMeta
	}
	colon := strings.LastIndex(meta, ":")
	if colon < 0 {
		return nil, ErrNoBandMeta
	}
	counts := strings.Fields(meta[colon+1:])
	if len(counts) != 2 {
		return nil, fmt.Errorf("cannot parse band counts from %q", meta)
	}
	nkpts, err := strconv.Atoi(counts[0])
	if err != nil {
		return nil, fmt.Errorf("cannot parse NKPTS from %q", meta)
	}
	nbands, err := strconv.Atoi(counts[1])
	if err != nil {
		return nil, fmt.Errorf("cannot parse NBANDS from %q", meta)
	}
	if nkpts < 1 || nbands < 1 {
		return nil, fmt.Errorf("bad band counts NKPTS=%d NBANDS=%d", nkpts, nbands)
	}
	// collect the data rows, dropping the per-band index comments
	var rows []string
	for _, line := range lines[2:] {
		if strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) < nkpts*nbands {
		return nil, fmt.Errorf(
			"expected %d band rows, have %d", nkpts*nbands, len(rows),
		)
	}
	nchan := len(labels) - 1
	bd := &BandData{Labels: labels}
	for b := 0; b < nbands; b++ {
		band := Band{
			K: make([]float64, 0, nkpts),
			E: make([][]float64, nchan),
		}
		for k := 0; k < nkpts; k++ {
			row, err := toFloat(strings.Fields(rows[b*nkpts+k]))
			if err != nil {
				return nil, err
			}
			if len(row) != len(labels) {
				return nil, fmt.Errorf(
					"band row %q has %d fields for %d columns",
					rows[b*nkpts+k], len(row), len(labels),
				)
			}
			band.K = append(band.K, row[0])
			for c, v := range row[1:] {
				band.E[c] = append(band.E[c], v)
			}
		}
		bd.Bands = append(bd.Bands, band)
	}
	return bd, nil
}

// KLabel marks a high-symmetry point along the k-path.
type KLabel struct {
	Name     string
	Position float64
}

// ParseKLabels reads a VASPKIT KLABELS file: a header line followed
// by label/position pairs, ending at the first blank line. GAMMA is
// rewritten as the Greek letter.
func ParseKLabels(r io.Reader) ([]KLabel, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	var ret []KLabel
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("cannot parse klabel line %q", line)
		}
		pos, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse klabel position %q", fields[1])
		}
		name := fields[0]
		if name == "GAMMA" {
			name = "Γ"
		}
		ret = append(ret, KLabel{Name: name, Position: pos})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// toFloat converts a list of fields to float64s
func toFloat(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	var err error
	for i, f := range fields {
		ret[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as a float", f)
		}
	}
	return ret, nil
}
