/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrSourceUnavailable is returned when the row source cannot produce the
// result table. No partial document is returned alongside it.
var ErrSourceUnavailable = errors.New("result source unavailable")

// Row is one raw evaluation result, keyed by (configuration, prompt,
// temperature), with fifteen score columns: each of the five metrics scoped
// to each of the three clusters.
type Row struct {
	Configuration string
	Prompt        string
	// Temperature is NaN when the source cell is empty.
	Temperature float64
	// Scores is keyed by raw score column name, e.g. "Correctness (Avg)".
	Scores map[string]float64
}

// Source supplies the raw result table.
type Source interface {
	Rows() ([]Row, error)
}

// FileSource reads the result table from a CSV file on disk.
type FileSource struct {
	Path string
}

// Rows implements Source.
func (s FileSource) Rows() ([]Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	rows, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	return rows, nil
}

// scoreColumn is the raw header name of one metric's score under one cluster.
func scoreColumn(metric, cluster string) string {
	return fmt.Sprintf("%s (%s)", metric, cluster)
}

// ParseCSV reads a result table. The header row must contain Configuration,
// Prompt, Temperature, and all fifteen score columns; extra columns are
// ignored.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	columns := []string{"Configuration", "Prompt", "Temperature"}
	for _, m := range metrics {
		for _, cluster := range clusters {
			columns = append(columns, scoreColumn(m.name, cluster))
		}
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		row := Row{
			Configuration: record[index["Configuration"]],
			Prompt:        record[index["Prompt"]],
			Temperature:   math.NaN(),
			Scores:        make(map[string]float64, len(metrics)*len(clusters)),
		}
		if cell := record[index["Temperature"]]; cell != "" {
			row.Temperature, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad temperature %q: %w", line, cell, err)
			}
		}
		for _, m := range metrics {
			for _, cluster := range clusters {
				column := scoreColumn(m.name, cluster)
				value, err := strconv.ParseFloat(record[index[column]], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad %s value %q: %w", line, column, record[index[column]], err)
				}
				row.Scores[column] = value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
