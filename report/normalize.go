/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"cmp"
	"math"
	"slices"
)

// entry is one normalized table row: display label, short prompt code, and
// scores regrouped as [cluster][metric] in rendering order, plus the derived
// total of the five averaged scores.
type entry struct {
	label       string
	prompt      string
	temperature float64
	scores      [3][5]float64
	total       float64
}

// normalize filters, relabels, regroups, and sorts the raw rows. Rows with an
// unrecognized prompt are dropped; rows with an unmapped configuration keep
// the raw identifier as their label. The sort is stable on (label, prompt,
// temperature) ascending, with missing temperatures ordered last within their
// (label, prompt) group.
func normalize(rows []Row) []entry {
	entries := make([]entry, 0, len(rows))
	for _, row := range rows {
		code, ok := promptCodes[row.Prompt]
		if !ok {
			continue
		}
		label, ok := modelLabels[row.Configuration]
		if !ok {
			label = row.Configuration
		}

		e := entry{label: label, prompt: code, temperature: row.Temperature}
		for ci, cluster := range clusters {
			for mi, m := range metrics {
				e.scores[ci][mi] = row.Scores[scoreColumn(m.name, cluster)]
			}
		}
		for _, value := range e.scores[0] {
			e.total += value
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.label, b.label); c != 0 {
			return c
		}
		if c := cmp.Compare(a.prompt, b.prompt); c != 0 {
			return c
		}
		return compareTemperature(a.temperature, b.temperature)
	})
	return entries
}

// compareTemperature orders temperatures ascending with NaN (missing) last.
func compareTemperature(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	default:
		return cmp.Compare(a, b)
	}
}
