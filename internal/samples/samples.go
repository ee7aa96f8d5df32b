// Package samples reads recorded ribbon samples for offline replay.
package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/ribbon"
)

// Stroke is a recorded sequence of per-frame samples.
type Stroke struct {
	ID      string
	Samples []ribbon.Sample
}

// Load reads the CSV file at path. See [Read] for the format.
func Load(path string) ([]Stroke, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	strokes, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return strokes, nil
}

// Read reads strokes from CSV. The header names the x, y and z columns
// (case-insensitive) and optionally a stroke column. Consecutive rows with the
// same stroke value belong to the same stroke; without a stroke column, all
// rows form one stroke. A row whose coordinates are all empty records a frame
// without a sample.
func Read(r io.Reader) ([]Stroke, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty csv")
	}
	if err != nil {
		return nil, err
	}
	idx := map[string]int{"x": -1, "y": -1, "z": -1, "stroke": -1}
	for i, h := range header {
		k := strings.ToLower(strings.TrimSpace(h))
		if j, ok := idx[k]; ok && j == -1 {
			idx[k] = i
		}
	}
	for _, k := range []string{"x", "y", "z"} {
		if idx[k] == -1 {
			return nil, fmt.Errorf("csv: %s column not found", k)
		}
	}

	var strokes []Stroke
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		sample, err := parseSample(row, idx["x"], idx["y"], idx["z"])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		id := field(row, idx["stroke"])
		if len(strokes) == 0 || strokes[len(strokes)-1].ID != id {
			strokes = append(strokes, Stroke{ID: id})
		}
		last := &strokes[len(strokes)-1]
		last.Samples = append(last.Samples, sample)
	}
	return strokes, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseSample(row []string, ix, iy, iz int) (ribbon.Sample, error) {
	xs, ys, zs := field(row, ix), field(row, iy), field(row, iz)
	if xs == "" && ys == "" && zs == "" {
		return ribbon.NoSample, nil
	}
	var c [3]float64
	for i, s := range []string{xs, ys, zs} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ribbon.Sample{}, fmt.Errorf("bad coordinate %q: %w", s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ribbon.Sample{}, fmt.Errorf("bad coordinate %q: not a finite number", s)
		}
		c[i] = v
	}
	return ribbon.SampleAt(ribbon.Pt3(c[0], c[1], c[2])), nil
}
