package lammps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var ErrNoBlocks = errors.New("no timestep blocks found in rdf file")

// ParseRDF reads an rdf file written by fix ave/time and returns the
// bin distances along with the time average of each requested data
// column. Column indices start at 0 and do not count the bin-id and
// distance columns. The file starts with two comment lines; each
// timestep block opens with a two-field header holding the timestep
// and the number of rows.
func ParseRDF(r io.Reader, columns []int) ([]float64, map[int][]float64, error) {
	scanner := bufio.NewScanner(r)
	for i := 0; i < 2; i++ {
		if !scanner.Scan() {
			return nil, nil, io.ErrUnexpectedEOF
		}
	}
	var (
		distances []float64
		sums      = make(map[int][]float64, len(columns))
		blocks    int
	)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		nrows, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("cannot parse block header %q", scanner.Text())
		}
		if blocks > 0 && nrows != len(distances) {
			return nil, nil, fmt.Errorf(
				"block %d has %d rows, previous blocks had %d",
				blocks, nrows, len(distances),
			)
		}
		block := make(map[int][]float64, len(columns))
		for i := 0; i < nrows; i++ {
			if !scanner.Scan() {
				return nil, nil, io.ErrUnexpectedEOF
			}
			row, err := toFloat(strings.Fields(scanner.Text()))
			if err != nil {
				return nil, nil, err
			}
			if len(row) < 2 {
				return nil, nil, fmt.Errorf("truncated rdf row %q", scanner.Text())
			}
			if blocks == 0 {
				distances = append(distances, row[1])
			}
			for _, col := range columns {
				// offset past the bin-id and distance columns
				if col+2 >= len(row) {
					return nil, nil, fmt.Errorf(
						"column %d out of range for a row with %d fields",
						col, len(row),
					)
				}
				block[col] = append(block[col], row[col+2])
			}
		}
		for _, col := range columns {
			if blocks == 0 {
				sums[col] = block[col]
			} else {
				floats.Add(sums[col], block[col])
			}
		}
		blocks++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if blocks == 0 {
		return nil, nil, ErrNoBlocks
	}
	for _, col := range columns {
		floats.Scale(1/float64(blocks), sums[col])
	}
	return distances, sums, nil
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
