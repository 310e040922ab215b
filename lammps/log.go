// Package lammps parses LAMMPS output: thermodynamic logs and the
// radial distribution functions written by fix ave/time.
package lammps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var (
	ErrNoHeader = errors.New("log has no header line")
	ErrNoStep   = errors.New("log is missing the required Step property")
)

// Log holds the thermodynamic series from a single log file.
type Log struct {
	Steps      []int
	Properties map[string][]float64
}

// Open opens a log file for reading, decompressing gzipped logs
// transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzReadCloser{gz, f}, nil
}

type gzReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g *gzReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

// ParseLog extracts Step and the requested properties from a log that
// has been trimmed to a single thermo table: a header line naming the
// properties followed by one row of numbers per timestep. Logs with
// restart banners or multiple run sections must be cleaned up by hand
// first.
func ParseLog(r io.Reader, properties []string) (*Log, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoHeader
	}
	headings := strings.Fields(scanner.Text())
	// map the headings to their positions
	cols := make(map[string]int, len(headings))
	for i, h := range headings {
		cols[h] = i
	}
	stepCol, ok := cols["Step"]
	if !ok {
		return nil, ErrNoStep
	}
	for _, prop := range properties {
		if _, ok := cols[prop]; !ok {
			return nil, fmt.Errorf("property %q not found in log", prop)
		}
	}
	ret := &Log{Properties: make(map[string][]float64, len(properties))}
	var row int
	for scanner.Scan() {
		row++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(headings) {
			return nil, fmt.Errorf(
				"row %d has %d fields for %d properties",
				row, len(fields), len(headings),
			)
		}
		step, err := strconv.Atoi(fields[stepCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse step %q", row, fields[stepCol])
		}
		ret.Steps = append(ret.Steps, step)
		for _, prop := range properties {
			v, err := strconv.ParseFloat(fields[cols[prop]], 64)
			if err != nil {
				return nil, fmt.Errorf(
					"row %d: cannot parse %q as %s",
					row, fields[cols[prop]], prop,
				)
			}
			ret.Properties[prop] = append(ret.Properties[prop], v)
		}
	}
	return ret, scanner.Err()
}
