package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the report as a flat CSV file: header row, one row
// per polygon, and the precomputed total carried in the third column of
// the first data row. The file is created or truncated.
func WriteCSV(path string, rep *Report, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"Name", "Acreage", "Total"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, row := range rep.Rows {
		record := []string{row.Name, formatAcres(row.Acres, precision), ""}
		if i == 0 {
			record[2] = formatAcres(rep.Total(), precision)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	return f.Close()
}

// formatAcres renders a value with the same rounding the xlsx variant
// applies, so the two report formats agree cell for cell.
func formatAcres(acres float64, precision int) string {
	return strconv.FormatFloat(round(acres, precision), 'f', precision, 64)
}
