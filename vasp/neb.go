// Package vasp parses VASP post-processing output: VTST neb.dat
// energy profiles and VASPKIT band-structure exports.
package vasp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var ErrEmptyNEB = errors.New("neb file has no images")

// NEB is the energy barrier profile from a VTST neb.dat file.
type NEB struct {
	// reaction coordinate per image, normalized by the total path
	// length
	Positions []float64
	Energies  []float64
}

// ParseNEB reads the VTST nebresults format: one row per image
// holding the image index, reaction coordinate, energy, and force
// columns. The second column becomes the normalized position and the
// third the energy.
func ParseNEB(r io.Reader) (*NEB, error) {
	scanner := bufio.NewScanner(r)
	var ret NEB
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("neb row %q has fewer than 3 columns", scanner.Text())
		}
		pos, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse position %q", fields[1])
		}
		energy, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse energy %q", fields[2])
		}
		ret.Positions = append(ret.Positions, pos)
		ret.Energies = append(ret.Energies, energy)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ret.Positions) == 0 {
		return nil, ErrEmptyNEB
	}
	if max := floats.Max(ret.Positions); max > 0 {
		floats.Scale(1/max, ret.Positions)
	}
	return &ret, nil
}
