// Package processor handles the measurement pipeline from input file to
// report.
package processor

import (
	"fmt"

	"github.com/woozymasta/acreage/internal/config"
	"github.com/woozymasta/acreage/internal/geo"
	"github.com/woozymasta/acreage/internal/kml"
	"github.com/woozymasta/acreage/internal/report"

	"github.com/rs/zerolog/log"
)

// Process loads the input KML or KMZ file, measures every polygon
// placemark and returns the collected report. An input without any
// polygons yields an empty report, not an error.
func Process(path string) (*report.Report, error) {
	data, err := kml.Load(path)
	if err != nil {
		return nil, err
	}

	marks, err := kml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	rep := &report.Report{}
	for _, pm := range marks {
		acres := measure(pm)

		log.Debug().
			Str("name", pm.Name).
			Float64("acres", acres).
			Msg("Measured polygon")

		rep.Add(pm.Name, acres)
	}

	return rep, nil
}

// measure resolves a placemark's acreage. A declared area annotation in
// the description wins over geometry; an annotation with an unknown
// unit falls back to geometric computation.
func measure(pm kml.Placemark) float64 {
	if value, unit, ok := kml.DeclaredArea(pm.Description); ok {
		acres, err := geo.AcresFrom(value, unit)
		if err == nil {
			return acres
		}

		log.Warn().
			Str("name", pm.Name).
			Str("unit", unit).
			Msg("Unknown declared area unit, computing area from geometry")
	}

	return geo.Acres(pm.Polygon)
}

// WriteReport serializes the report in the configured output variant.
func WriteReport(rep *report.Report, cfg *config.Config) error {
	path := cfg.OutputPath()

	switch cfg.Format {
	case config.FormatXLSX:
		return report.WriteXLSX(path, cfg.Sheet, rep, cfg.Precision)
	case config.FormatCSV:
		return report.WriteCSV(path, rep, cfg.Precision)
	default:
		return fmt.Errorf("unsupported report format %q", cfg.Format)
	}
}
