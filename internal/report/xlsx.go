package report

import (
	"fmt"

	"github.com/woozymasta/acreage/internal/geo"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the report as a single-sheet workbook: header row,
// one row per polygon from row 2, a totals row with a SUM formula over
// the acreage column, and an adjacent cell presenting the total in
// square feet, square miles and square meters.
func WriteXLSX(path, sheet string, rep *Report, precision int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming worksheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", "Name"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", "Acreage"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rep.Rows {
		rowNum := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.Name); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), round(row.Acres, precision)); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
	}

	totalRow := len(rep.Rows) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return fmt.Errorf("writing totals row: %w", err)
	}

	totalCell := fmt.Sprintf("B%d", totalRow)
	if len(rep.Rows) > 0 {
		formula := fmt.Sprintf("SUM(B2:B%d)", totalRow-1)
		if err := f.SetCellFormula(sheet, totalCell, formula); err != nil {
			return fmt.Errorf("writing totals formula: %w", err)
		}
	} else {
		if err := f.SetCellValue(sheet, totalCell, 0); err != nil {
			return fmt.Errorf("writing totals value: %w", err)
		}
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), totalBreakdown(rep)); err != nil {
		return fmt.Errorf("writing totals breakdown: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}

// totalBreakdown renders the total area in alternate units.
func totalBreakdown(rep *Report) string {
	acres := rep.Total()

	return fmt.Sprintf("%.0f sq ft / %.4f sq mi / %.2f sq m",
		acres*geo.SquareFeetPerAcre,
		acres/geo.AcresPerSquareMile,
		acres*geo.SquareMetersPerAcre)
}
