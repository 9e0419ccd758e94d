// Package report collects measured polygons and writes the tabular
// output files.
package report

import "math"

// Row is a single report entry for one polygon.
type Row struct {
	Name  string
	Acres float64
}

// Report holds rows in placemark encounter order. Names are not
// deduplicated; identity is row position only.
type Report struct {
	Rows []Row
}

// Add appends a row.
func (r *Report) Add(name string, acres float64) {
	r.Rows = append(r.Rows, Row{Name: name, Acres: acres})
}

// Total returns the sum of all row acreages.
func (r *Report) Total() float64 {
	var sum float64
	for _, row := range r.Rows {
		sum += row.Acres
	}
	return sum
}

// round rounds a value half away from zero to the given number of
// decimal places for presentation. Raw values stay untouched in the
// rows.
func round(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}
